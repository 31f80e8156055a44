package services

import (
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-blog/internal/logger"
	"github.com/sbilibin2017/gw-blog/internal/models"
	"github.com/sbilibin2017/gw-blog/internal/policy"
)

// authorize asks the policy whether actor may perform action on a record owned by owner.
func authorize(actor *models.UserDB, action policy.Action, owner uuid.UUID) error {
	if actor == nil {
		return ErrUnauthenticated
	}

	decision := policy.Authorize(policy.NewActor(actor), action, policy.Resource{OwnerID: owner})
	if !decision.Allowed {
		logger.Log.Infow("access denied",
			"actor_id", actor.ID,
			"role", actor.Role,
			"action", action,
			"reason", decision.Reason,
		)
		return decision.Err()
	}
	return nil
}
