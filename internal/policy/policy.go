// Package policy holds the role-based access rules applied to every
// user and blog operation. Authorize is a pure function: it performs no I/O
// and can be evaluated before anything touches the store.
package policy

import (
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-blog/internal/models"
)

// ErrForbidden is wrapped by Decision.Err for every denial.
var ErrForbidden = errors.New("forbidden")

// Action names a resource operation.
type Action string

// Supported actions
const (
	ListAllUsers     Action = "list-all-users"
	ReadSelf         Action = "read-self"
	ReadAnyUser      Action = "read-any-user"
	DeleteUser       Action = "delete-user"
	UpdateOwnProfile Action = "update-own-profile"
	UpdateAnyRole    Action = "update-any-role"
	ListAllBlogs     Action = "list-all-blogs"
	ListOwnBlogs     Action = "list-own-blogs"
	ReadAnyBlog      Action = "read-any-blog"
	CreateBlog       Action = "create-blog"
	UpdateBlog       Action = "update-blog"
	DeleteBlog       Action = "delete-blog"
)

// Reason explains a denial.
type Reason string

// Denial reasons
const (
	ReasonForbiddenRole Reason = "forbidden-role"
	ReasonNotOwner      Reason = "not-owner"
)

// Actor is the authenticated user performing an action.
type Actor struct {
	ID   uuid.UUID
	Role models.Role
}

// NewActor builds an Actor from a stored user.
func NewActor(u *models.UserDB) Actor {
	return Actor{ID: u.ID, Role: u.Role}
}

// Resource carries the ownership of the record an action targets.
// For self-service user actions OwnerID is the id of the target user.
type Resource struct {
	OwnerID uuid.UUID
}

// Decision is the outcome of Authorize.
type Decision struct {
	Allowed bool
	Reason  Reason
}

// Err returns nil for an allowed decision and an error wrapping ErrForbidden otherwise.
func (d Decision) Err() error {
	if d.Allowed {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrForbidden, d.Reason)
}

type rule struct {
	roles []models.Role // roles allowed regardless of ownership
	owner bool          // the resource owner is allowed
}

var (
	adminOnly  = []models.Role{models.RoleAdmin}
	privileged = []models.Role{models.RoleAdmin, models.RoleModerator}
	anyRole    = []models.Role{models.RoleUser, models.RoleAdmin, models.RoleModerator}
)

var rules = map[Action]rule{
	ListAllUsers:     {roles: adminOnly},
	ReadAnyUser:      {roles: adminOnly},
	DeleteUser:       {roles: adminOnly},
	UpdateAnyRole:    {roles: adminOnly},
	ReadSelf:         {owner: true},
	UpdateOwnProfile: {owner: true},
	ListAllBlogs:     {roles: privileged},
	ListOwnBlogs:     {roles: anyRole},
	ReadAnyBlog:      {roles: anyRole},
	CreateBlog:       {roles: anyRole},
	UpdateBlog:       {roles: privileged, owner: true},
	DeleteBlog:       {roles: privileged, owner: true},
}

// Authorize decides whether actor may perform action on resource.
// Unknown actions and unknown roles are denied.
func Authorize(actor Actor, action Action, resource Resource) Decision {
	r, ok := rules[action]
	if !ok || !actor.Role.Valid() {
		return deny(ReasonForbiddenRole)
	}

	if slices.Contains(r.roles, actor.Role) {
		return Decision{Allowed: true}
	}

	if r.owner {
		if actor.ID != uuid.Nil && actor.ID == resource.OwnerID {
			return Decision{Allowed: true}
		}
		return deny(ReasonNotOwner)
	}

	return deny(ReasonForbiddenRole)
}

func deny(reason Reason) Decision {
	return Decision{Allowed: false, Reason: reason}
}
