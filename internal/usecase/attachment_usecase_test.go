package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"instalaciones_xpto/internal/domain/entities"
	"instalaciones_xpto/internal/usecase/interfaces"
	mock_interfaces "instalaciones_xpto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestAttachmentUseCase_Upload(t *testing.T) {
	t.Run("blank kind", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		apps := mock_interfaces.NewMockIApplicationRepository(ctrl)
		atts := mock_interfaces.NewMockIAttachmentRepository(ctrl)
		blob := mock_interfaces.NewMockIBlobStore(ctrl)
		uc := NewAttachmentUseCase(apps, atts, blob)

		_, err := uc.Upload(context.Background(), "app-1", "  ", "facade.jpg", "image/jpeg", []byte("x"), "tech-1")
		if !errors.Is(err, ErrInvalidAttachmentInput) {
			t.Fatalf("expected ErrInvalidAttachmentInput, got %v", err)
		}
	})

	t.Run("unknown application", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		apps := mock_interfaces.NewMockIApplicationRepository(ctrl)
		atts := mock_interfaces.NewMockIAttachmentRepository(ctrl)
		blob := mock_interfaces.NewMockIBlobStore(ctrl)
		uc := NewAttachmentUseCase(apps, atts, blob)

		apps.EXPECT().GetByID(gomock.Any(), "app-x").Return(entities.Application{}, nil)

		_, err := uc.Upload(context.Background(), "app-x", "facade_photo", "facade.jpg", "image/jpeg", []byte("x"), "tech-1")
		if !errors.Is(err, ErrApplicationNotFound) {
			t.Fatalf("expected ErrApplicationNotFound, got %v", err)
		}
	})

	t.Run("storage failure aborts before metadata insert", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		apps := mock_interfaces.NewMockIApplicationRepository(ctrl)
		atts := mock_interfaces.NewMockIAttachmentRepository(ctrl)
		blob := mock_interfaces.NewMockIBlobStore(ctrl)
		uc := NewAttachmentUseCase(apps, atts, blob)

		apps.EXPECT().GetByID(gomock.Any(), "app-1").Return(entities.Application{ID: "app-1"}, nil)
		blob.EXPECT().Write(gomock.Any(), gomock.Any(), gomock.Any(), "image/jpeg").Return(interfaces.ErrStorage)

		_, err := uc.Upload(context.Background(), "app-1", "facade_photo", "facade.jpg", "image/jpeg", []byte("x"), "tech-1")
		if !errors.Is(err, interfaces.ErrStorage) {
			t.Fatalf("expected ErrStorage, got %v", err)
		}
	})

	t.Run("success writes blob then metadata", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		apps := mock_interfaces.NewMockIApplicationRepository(ctrl)
		atts := mock_interfaces.NewMockIAttachmentRepository(ctrl)
		blob := mock_interfaces.NewMockIBlobStore(ctrl)
		uc := NewAttachmentUseCase(apps, atts, blob)

		payload := []byte("jpeg bytes")
		apps.EXPECT().GetByID(gomock.Any(), "app-1").Return(entities.Application{ID: "app-1"}, nil)
		blob.EXPECT().Write(gomock.Any(), gomock.Any(), payload, "image/jpeg").DoAndReturn(
			func(_ context.Context, p string, _ []byte, _ string) error {
				if !strings.HasPrefix(p, "attachments/app-1/") || !strings.HasSuffix(p, "-facade.jpg") {
					t.Fatalf("unexpected storage path %q", p)
				}
				return nil
			})
		atts.EXPECT().Insert(gomock.Any(), gomock.AssignableToTypeOf(entities.AttachmentFile{})).DoAndReturn(
			func(_ context.Context, a entities.AttachmentFile) (entities.AttachmentFile, error) {
				if a.Kind != "facade_photo" || a.SizeBytes != int64(len(payload)) || a.UploadedBy != "tech-1" {
					t.Fatalf("unexpected attachment %+v", a)
				}
				return a, nil
			})

		att, err := uc.Upload(context.Background(), "app-1", "facade_photo", "facade.jpg", "image/jpeg", payload, "tech-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if att.ID == "" {
			t.Fatal("expected generated id")
		}
	})

	t.Run("unlisted kind is accepted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		apps := mock_interfaces.NewMockIApplicationRepository(ctrl)
		atts := mock_interfaces.NewMockIAttachmentRepository(ctrl)
		blob := mock_interfaces.NewMockIBlobStore(ctrl)
		uc := NewAttachmentUseCase(apps, atts, blob)

		apps.EXPECT().GetByID(gomock.Any(), "app-1").Return(entities.Application{ID: "app-1"}, nil)
		blob.EXPECT().Write(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		atts.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, a entities.AttachmentFile) (entities.AttachmentFile, error) { return a, nil })

		if _, err := uc.Upload(context.Background(), "app-1", "customer_signature", "sig.png", "image/png", []byte("x"), "tech-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
