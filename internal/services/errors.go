package services

import (
	"errors"
	"fmt"

	"github.com/sbilibin2017/gw-blog/internal/policy"
)

// Error taxonomy. Handlers classify with errors.Is against these sentinels.
var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = policy.ErrForbidden
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrInvalidInput    = errors.New("invalid input")
)

// Specific errors
var (
	ErrInvalidCredentials = fmt.Errorf("%w: incorrect email or password", ErrUnauthenticated)
	ErrUserAlreadyExists  = fmt.Errorf("%w: email already registered", ErrConflict)
	ErrUserNotFound       = fmt.Errorf("%w: user not found", ErrNotFound)
	ErrBlogNotFound       = fmt.Errorf("%w: blog not found", ErrNotFound)
)
