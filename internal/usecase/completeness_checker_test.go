package usecase

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"instalaciones_xpto/internal/domain/entities"
	mock_interfaces "instalaciones_xpto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestCompletenessChecker_MissingKinds(t *testing.T) {
	t.Run("all kinds present", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_interfaces.NewMockIRequirementCatalog(ctrl)
		atts := mock_interfaces.NewMockIAttachmentRepository(ctrl)
		checker := NewCompletenessChecker(catalog, atts)

		catalog.EXPECT().List(gomock.Any()).Return(catalogEntries("facade_photo", "speed_test_photo"), nil)
		atts.EXPECT().DistinctKinds(gomock.Any(), "app-1").Return([]string{"speed_test_photo", "facade_photo", "extra_kind"}, nil)

		missing, err := checker.MissingKinds(context.Background(), "app-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(missing) != 0 {
			t.Fatalf("expected no missing kinds, got %v", missing)
		}
	})

	t.Run("missing kinds are sorted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_interfaces.NewMockIRequirementCatalog(ctrl)
		atts := mock_interfaces.NewMockIAttachmentRepository(ctrl)
		checker := NewCompletenessChecker(catalog, atts)

		catalog.EXPECT().List(gomock.Any()).Return(catalogEntries("work_order_photo", "facade_photo", "speed_test_photo"), nil)
		atts.EXPECT().DistinctKinds(gomock.Any(), "app-1").Return([]string{"speed_test_photo"}, nil)

		missing, err := checker.MissingKinds(context.Background(), "app-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []string{"facade_photo", "work_order_photo"}
		if !reflect.DeepEqual(missing, want) {
			t.Fatalf("expected %v, got %v", want, missing)
		}
	})

	t.Run("catalog entries count even when flagged optional", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_interfaces.NewMockIRequirementCatalog(ctrl)
		atts := mock_interfaces.NewMockIAttachmentRepository(ctrl)
		checker := NewCompletenessChecker(catalog, atts)

		catalog.EXPECT().List(gomock.Any()).Return([]entities.RequirementCatalogEntry{
			{Kind: "facade_photo", IsRequired: false},
		}, nil)
		atts.EXPECT().DistinctKinds(gomock.Any(), "app-1").Return(nil, nil)

		missing, err := checker.MissingKinds(context.Background(), "app-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(missing) != 1 || missing[0] != "facade_photo" {
			t.Fatalf("expected facade_photo missing, got %v", missing)
		}
	})

	t.Run("catalog failure propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_interfaces.NewMockIRequirementCatalog(ctrl)
		atts := mock_interfaces.NewMockIAttachmentRepository(ctrl)
		checker := NewCompletenessChecker(catalog, atts)

		catalog.EXPECT().List(gomock.Any()).Return(nil, errors.New("catalog down"))

		if _, err := checker.MissingKinds(context.Background(), "app-1"); err == nil {
			t.Fatal("expected error")
		}
	})
}
