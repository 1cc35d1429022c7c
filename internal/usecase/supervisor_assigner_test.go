package usecase

import (
	"context"
	"errors"
	"testing"

	"instalaciones_xpto/internal/domain/entities"
	mock_interfaces "instalaciones_xpto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestSupervisorAssigner_Assign(t *testing.T) {
	t.Run("empty pool", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		access := mock_interfaces.NewMockIAccessControl(ctrl)
		assigner := NewSupervisorAssigner(access)

		access.EXPECT().UsersWithRole(gomock.Any(), entities.RoleSupervisor).Return([]string{}, nil)

		_, err := assigner.Assign(context.Background())
		if !errors.Is(err, ErrNoSupervisorsAvailable) {
			t.Fatalf("expected ErrNoSupervisorsAvailable, got %v", err)
		}
	})

	t.Run("directory failure propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		access := mock_interfaces.NewMockIAccessControl(ctrl)
		assigner := NewSupervisorAssigner(access)

		access.EXPECT().UsersWithRole(gomock.Any(), entities.RoleSupervisor).Return(nil, errors.New("dynamo down"))

		if _, err := assigner.Assign(context.Background()); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("picks within the pool", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		access := mock_interfaces.NewMockIAccessControl(ctrl)
		assigner := NewSupervisorAssigner(access)
		assigner.pick = func(n int) int {
			if n != 3 {
				t.Fatalf("expected pool size 3, got %d", n)
			}
			return 1
		}

		access.EXPECT().UsersWithRole(gomock.Any(), entities.RoleSupervisor).Return([]string{"sup-1", "sup-2", "sup-3"}, nil)

		id, err := assigner.Assign(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if id != "sup-2" {
			t.Fatalf("expected sup-2, got %s", id)
		}
	})
}
