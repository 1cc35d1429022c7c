package accesscontrol

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"instalaciones_xpto/internal/domain/entities"
	"instalaciones_xpto/internal/usecase/interfaces"

	gocache "github.com/patrickmn/go-cache"
)

const defaultCacheTTLSeconds = 60

// AccessControl answers role checks against the role repository with a
// time-bounded lookaside cache in front. Role changes become visible after
// at most one TTL; last-read-wins races with membership edits are accepted.
//
// With bypass enabled every check passes and the directory is never
// consulted. Development only.

type AccessControl struct {
	roles  interfaces.IRoleRepository
	cache  *gocache.Cache
	bypass bool
}

var _ interfaces.IAccessControl = (*AccessControl)(nil)

func New(roles interfaces.IRoleRepository, ttl time.Duration, bypass bool) *AccessControl {
	return &AccessControl{
		roles:  roles,
		cache:  gocache.New(ttl, 2*ttl),
		bypass: bypass,
	}
}

// NewFromEnv wires the cache TTL from ROLE_CACHE_TTL_SECONDS and the bypass
// switch from DEV_BYPASS_AUTH.
func NewFromEnv(roles interfaces.IRoleRepository) *AccessControl {
	ttlSec, err := strconv.Atoi(os.Getenv("ROLE_CACHE_TTL_SECONDS"))
	if err != nil || ttlSec <= 0 {
		ttlSec = defaultCacheTTLSeconds
	}
	bypass := os.Getenv("DEV_BYPASS_AUTH") == "true"
	return New(roles, time.Duration(ttlSec)*time.Second, bypass)
}

func (a *AccessControl) HasRole(ctx context.Context, userID string, role entities.RoleCode) (bool, error) {
	if a.bypass {
		return true, nil
	}
	key := "has:" + string(role) + ":" + userID
	if v, ok := a.cache.Get(key); ok {
		return v.(bool), nil
	}
	held, err := a.roles.HasRole(ctx, userID, role)
	if err != nil {
		return false, err
	}
	a.cache.SetDefault(key, held)
	return held, nil
}

func (a *AccessControl) EnsureRole(ctx context.Context, userID string, role entities.RoleCode) error {
	held, err := a.HasRole(ctx, userID, role)
	if err != nil {
		return err
	}
	if !held {
		return fmt.Errorf("%w: user %s does not hold role %s", interfaces.ErrPermissionDenied, userID, role)
	}
	return nil
}

// UsersWithRole returns a copy so callers cannot mutate the cached pool.
func (a *AccessControl) UsersWithRole(ctx context.Context, role entities.RoleCode) ([]string, error) {
	key := "members:" + string(role)
	if v, ok := a.cache.Get(key); ok {
		return copyMembers(v.([]string)), nil
	}
	ids, err := a.roles.UsersWithRole(ctx, role)
	if err != nil {
		return nil, err
	}
	a.cache.SetDefault(key, ids)
	return copyMembers(ids), nil
}

func copyMembers(ids []string) []string {
	out := make([]string, len(ids))
	copy(out, ids)
	return out
}
