package interfaces

import (
	"context"
	"errors"

	"instalaciones_xpto/internal/domain/entities"
)

// ErrPermissionDenied is returned when a role or ownership check fails.
var ErrPermissionDenied = errors.New("permission denied")

// IAccessControl answers capability questions against the external role
// directory. Implementations may cache membership snapshots and may run in a
// development bypass mode where every check passes; the lifecycle never
// assumes a fixed role taxonomy beyond the role codes it asks about.

type IAccessControl interface {
	HasRole(ctx context.Context, userID string, role entities.RoleCode) (bool, error)

	// EnsureRole returns ErrPermissionDenied when the user does not hold the
	// role.
	EnsureRole(ctx context.Context, userID string, role entities.RoleCode) error

	// UsersWithRole returns the distinct user ids currently holding the role.
	UsersWithRole(ctx context.Context, role entities.RoleCode) ([]string, error)
}

// IRoleRepository is the raw membership source consulted by IAccessControl
// implementations (and cached in front of).

type IRoleRepository interface {
	HasRole(ctx context.Context, userID string, role entities.RoleCode) (bool, error)
	UsersWithRole(ctx context.Context, role entities.RoleCode) ([]string, error)
}
