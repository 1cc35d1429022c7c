package usecase

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"instalaciones_xpto/internal/domain/entities"
	"instalaciones_xpto/internal/usecase/interfaces"
	mock_interfaces "instalaciones_xpto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type documentFixture struct {
	docs     *mock_interfaces.MockIResolutionDocumentRepository
	atts     *mock_interfaces.MockIAttachmentRepository
	blob     *mock_interfaces.MockIBlobStore
	renderer *mock_interfaces.MockIResolutionRenderer
	uc       *ResolutionDocumentUseCase
}

func newDocumentFixture(t *testing.T, ctrl *gomock.Controller) documentFixture {
	t.Helper()
	f := documentFixture{
		docs:     mock_interfaces.NewMockIResolutionDocumentRepository(ctrl),
		atts:     mock_interfaces.NewMockIAttachmentRepository(ctrl),
		blob:     mock_interfaces.NewMockIBlobStore(ctrl),
		renderer: mock_interfaces.NewMockIResolutionRenderer(ctrl),
	}
	f.uc = NewResolutionDocumentUseCase(f.docs, f.atts, f.blob, f.renderer)
	return f
}

func TestResolutionDocumentUseCase_GenerateForDecision(t *testing.T) {
	app := entities.Application{ID: "app-1", Status: entities.StatusApproved, TechnicianID: "tech-1"}

	t.Run("first version", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newDocumentFixture(t, ctrl)

		f.atts.EXPECT().ListByApplication(gomock.Any(), "app-1").Return(nil, nil)
		f.docs.EXPECT().MaxVersion(gomock.Any(), "app-1").Return(0, nil)
		f.renderer.EXPECT().Render(gomock.Any(), gomock.AssignableToTypeOf(interfaces.ResolutionRenderData{})).DoAndReturn(
			func(_ context.Context, data interfaces.ResolutionRenderData) ([]byte, error) {
				if data.Version != 1 {
					t.Fatalf("expected version 1, got %d", data.Version)
				}
				if data.Decision != entities.StatusApproved {
					t.Fatalf("unexpected decision %s", data.Decision)
				}
				return []byte("%PDF-fake"), nil
			})
		f.blob.EXPECT().Write(gomock.Any(), "resolutions/app-1/resolution-app-1-v1.pdf", []byte("%PDF-fake"), "application/pdf").Return(nil)
		f.docs.EXPECT().Insert(gomock.Any(), gomock.AssignableToTypeOf(entities.ResolutionDocument{})).DoAndReturn(
			func(_ context.Context, d entities.ResolutionDocument) (entities.ResolutionDocument, error) {
				if d.Version != 1 || d.GeneratedBy != "sup-1" {
					t.Fatalf("unexpected document %+v", d)
				}
				return d, nil
			})

		doc, err := f.uc.GenerateForDecision(context.Background(), app, "sup-1", "ok")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if doc.FileName != "resolution-app-1-v1.pdf" {
			t.Fatalf("unexpected file name %q", doc.FileName)
		}
	})

	t.Run("raced version is retried with the next number", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newDocumentFixture(t, ctrl)

		f.atts.EXPECT().ListByApplication(gomock.Any(), "app-1").Return(nil, nil)
		gomock.InOrder(
			f.docs.EXPECT().MaxVersion(gomock.Any(), "app-1").Return(2, nil),
			f.docs.EXPECT().MaxVersion(gomock.Any(), "app-1").Return(3, nil),
		)
		f.renderer.EXPECT().Render(gomock.Any(), gomock.Any()).Return([]byte("pdf"), nil).Times(2)
		f.blob.EXPECT().Write(gomock.Any(), gomock.Any(), gomock.Any(), "application/pdf").Return(nil).Times(2)
		gomock.InOrder(
			f.docs.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(entities.ResolutionDocument{}, nil),
			f.docs.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, d entities.ResolutionDocument) (entities.ResolutionDocument, error) {
					if d.Version != 4 {
						t.Fatalf("expected retry at version 4, got %d", d.Version)
					}
					return d, nil
				}),
		)

		doc, err := f.uc.GenerateForDecision(context.Background(), app, "sup-1", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if doc.Version != 4 {
			t.Fatalf("expected version 4, got %d", doc.Version)
		}
	})

	t.Run("retries exhausted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newDocumentFixture(t, ctrl)

		f.atts.EXPECT().ListByApplication(gomock.Any(), "app-1").Return(nil, nil)
		f.docs.EXPECT().MaxVersion(gomock.Any(), "app-1").Return(0, nil).Times(maxVersionRetries + 1)
		f.renderer.EXPECT().Render(gomock.Any(), gomock.Any()).Return([]byte("pdf"), nil).Times(maxVersionRetries + 1)
		f.blob.EXPECT().Write(gomock.Any(), gomock.Any(), gomock.Any(), "application/pdf").Return(nil).Times(maxVersionRetries + 1)
		f.docs.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(entities.ResolutionDocument{}, nil).Times(maxVersionRetries + 1)

		_, err := f.uc.GenerateForDecision(context.Background(), app, "sup-1", "")
		if !errors.Is(err, ErrVersionConflict) {
			t.Fatalf("expected ErrVersionConflict, got %v", err)
		}
	})

	t.Run("unreadable image is omitted, not fatal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newDocumentFixture(t, ctrl)

		files := []entities.AttachmentFile{
			{Kind: "facade_photo", FileName: "facade.jpg", StoragePath: "attachments/app-1/facade.jpg"},
			{Kind: "work_order_photo", FileName: "order.pdf", StoragePath: "attachments/app-1/order.pdf"},
		}
		f.atts.EXPECT().ListByApplication(gomock.Any(), "app-1").Return(files, nil)
		f.blob.EXPECT().Read(gomock.Any(), "attachments/app-1/facade.jpg").Return(nil, errors.New("gone"))
		f.docs.EXPECT().MaxVersion(gomock.Any(), "app-1").Return(0, nil)
		f.renderer.EXPECT().Render(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, data interfaces.ResolutionRenderData) ([]byte, error) {
				if len(data.Attachments) != 2 {
					t.Fatalf("expected 2 render attachments, got %d", len(data.Attachments))
				}
				if data.Attachments[0].Data != nil {
					t.Fatal("unreadable image must carry nil data")
				}
				return []byte("pdf"), nil
			})
		f.blob.EXPECT().Write(gomock.Any(), gomock.Any(), gomock.Any(), "application/pdf").Return(nil)
		f.docs.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, d entities.ResolutionDocument) (entities.ResolutionDocument, error) { return d, nil })

		if _, err := f.uc.GenerateForDecision(context.Background(), app, "sup-1", ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("storage write failure aborts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newDocumentFixture(t, ctrl)

		f.atts.EXPECT().ListByApplication(gomock.Any(), "app-1").Return(nil, nil)
		f.docs.EXPECT().MaxVersion(gomock.Any(), "app-1").Return(0, nil)
		f.renderer.EXPECT().Render(gomock.Any(), gomock.Any()).Return([]byte("pdf"), nil)
		f.blob.EXPECT().Write(gomock.Any(), gomock.Any(), gomock.Any(), "application/pdf").Return(interfaces.ErrStorage)

		_, err := f.uc.GenerateForDecision(context.Background(), app, "sup-1", "")
		if !errors.Is(err, interfaces.ErrStorage) {
			t.Fatalf("expected ErrStorage, got %v", err)
		}
	})
}

func TestResolutionDocumentUseCase_Download(t *testing.T) {
	t.Run("unknown version", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newDocumentFixture(t, ctrl)

		f.docs.EXPECT().GetByVersion(gomock.Any(), "app-1", 7).Return(entities.ResolutionDocument{}, nil)

		_, _, err := f.uc.Download(context.Background(), "app-1", 7)
		if !errors.Is(err, ErrDocumentNotFound) {
			t.Fatalf("expected ErrDocumentNotFound, got %v", err)
		}
	})

	t.Run("success returns metadata and bytes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newDocumentFixture(t, ctrl)

		doc := entities.ResolutionDocument{ID: "doc-1", ApplicationID: "app-1", Version: 2, FileName: "resolution-app-1-v2.pdf", StoragePath: "resolutions/app-1/resolution-app-1-v2.pdf"}
		f.docs.EXPECT().GetByVersion(gomock.Any(), "app-1", 2).Return(doc, nil)
		f.blob.EXPECT().Read(gomock.Any(), doc.StoragePath).Return([]byte("%PDF-1.3"), nil)

		got, data, err := f.uc.Download(context.Background(), "app-1", 2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "doc-1" || !bytes.HasPrefix(data, []byte("%PDF")) {
			t.Fatalf("unexpected download result %+v %q", got, data)
		}
	})
}

func TestIsImageFileName(t *testing.T) {
	cases := map[string]bool{
		"facade.jpg":  true,
		"facade.JPEG": true,
		"scan.png":    true,
		"anim.gif":    true,
		"order.pdf":   false,
		"notes.txt":   false,
		"noext":       false,
	}
	for name, want := range cases {
		if got := IsImageFileName(name); got != want {
			t.Fatalf("IsImageFileName(%q) = %v, want %v", name, got, want)
		}
	}
}
