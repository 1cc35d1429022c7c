package usecase

import (
	"context"
	"errors"
	"math/rand/v2"

	"instalaciones_xpto/internal/domain/entities"
	"instalaciones_xpto/internal/usecase/interfaces"
)

var ErrNoSupervisorsAvailable = errors.New("no supervisors available")

// SupervisorAssigner picks a reviewer from the current SUPERVISOR pool,
// uniformly at random. No workload balancing, no affinity, no exclusion of
// previously-assigned reviewers; the pool is whatever the role directory
// reports at call time.

type SupervisorAssigner struct {
	access interfaces.IAccessControl
	pick   func(n int) int
}

func NewSupervisorAssigner(access interfaces.IAccessControl) *SupervisorAssigner {
	return &SupervisorAssigner{access: access, pick: rand.IntN}
}

// Assign returns the chosen supervisor id, or ErrNoSupervisorsAvailable when
// the pool is empty.
func (a *SupervisorAssigner) Assign(ctx context.Context) (string, error) {
	ids, err := a.access.UsersWithRole(ctx, entities.RoleSupervisor)
	if err != nil {
		return "", err
	}
	if len(ids) == 0 {
		return "", ErrNoSupervisorsAvailable
	}
	return ids[a.pick(len(ids))], nil
}
