package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"instalaciones_xpto/internal/domain/entities"
	"instalaciones_xpto/internal/usecase/interfaces"
	mock_interfaces "instalaciones_xpto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

type lifecycleFixture struct {
	apps      *mock_interfaces.MockIApplicationRepository
	history   *mock_interfaces.MockIHistoryLedger
	access    *mock_interfaces.MockIAccessControl
	catalog   *mock_interfaces.MockIRequirementCatalog
	atts      *mock_interfaces.MockIAttachmentRepository
	generator *mock_interfaces.MockIResolutionDocumentGenerator
	uc        *ApplicationLifecycleUseCase
}

func newLifecycleFixture(t *testing.T, ctrl *gomock.Controller) lifecycleFixture {
	t.Helper()
	f := lifecycleFixture{
		apps:      mock_interfaces.NewMockIApplicationRepository(ctrl),
		history:   mock_interfaces.NewMockIHistoryLedger(ctrl),
		access:    mock_interfaces.NewMockIAccessControl(ctrl),
		catalog:   mock_interfaces.NewMockIRequirementCatalog(ctrl),
		atts:      mock_interfaces.NewMockIAttachmentRepository(ctrl),
		generator: mock_interfaces.NewMockIResolutionDocumentGenerator(ctrl),
	}
	assigner := NewSupervisorAssigner(f.access)
	checker := NewCompletenessChecker(f.catalog, f.atts)
	f.uc = NewApplicationLifecycleUseCase(f.apps, f.history, f.access, assigner, checker, f.generator)
	f.uc.WithClock(fixedClock{t: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)})
	return f
}

func catalogEntries(kinds ...string) []entities.RequirementCatalogEntry {
	out := make([]entities.RequirementCatalogEntry, 0, len(kinds))
	for _, k := range kinds {
		out = append(out, entities.RequirementCatalogEntry{Kind: k, IsRequired: true})
	}
	return out
}

func TestApplicationLifecycleUseCase_Create(t *testing.T) {
	t.Run("missing technician id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newLifecycleFixture(t, ctrl)

		_, err := f.uc.Create(context.Background(), CreateApplicationInput{ApplicantName: "Ana", ApplicantDocument: "CC-1"}, "  ")
		if !errors.Is(err, ErrInvalidActorID) {
			t.Fatalf("expected ErrInvalidActorID, got %v", err)
		}
	})

	t.Run("actor without technician role", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newLifecycleFixture(t, ctrl)

		f.access.EXPECT().EnsureRole(gomock.Any(), "user-1", entities.RoleTecnico).Return(interfaces.ErrPermissionDenied)

		_, err := f.uc.Create(context.Background(), CreateApplicationInput{ApplicantName: "Ana", ApplicantDocument: "CC-1"}, "user-1")
		if !errors.Is(err, interfaces.ErrPermissionDenied) {
			t.Fatalf("expected ErrPermissionDenied, got %v", err)
		}
	})

	t.Run("blank applicant data", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newLifecycleFixture(t, ctrl)

		f.access.EXPECT().EnsureRole(gomock.Any(), "tech-1", entities.RoleTecnico).Return(nil)

		_, err := f.uc.Create(context.Background(), CreateApplicationInput{ApplicantName: "  ", ApplicantDocument: "CC-1"}, "tech-1")
		if !errors.Is(err, ErrInvalidApplicantData) {
			t.Fatalf("expected ErrInvalidApplicantData, got %v", err)
		}
	})

	t.Run("success opens draft with creation history entry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newLifecycleFixture(t, ctrl)

		f.access.EXPECT().EnsureRole(gomock.Any(), "tech-1", entities.RoleTecnico).Return(nil)
		f.apps.EXPECT().Insert(gomock.Any(), gomock.AssignableToTypeOf(entities.Application{}), gomock.AssignableToTypeOf(entities.HistoryEntry{})).DoAndReturn(
			func(_ context.Context, app entities.Application, entry entities.HistoryEntry) (entities.Application, error) {
				if app.Status != entities.StatusDraft {
					t.Fatalf("expected DRAFT, got %s", app.Status)
				}
				if app.TechnicianID != "tech-1" {
					t.Fatalf("expected owner tech-1, got %s", app.TechnicianID)
				}
				if entry.FromStatus != nil {
					t.Fatalf("creation entry must have nil from_status, got %v", *entry.FromStatus)
				}
				if entry.ToStatus != entities.StatusDraft || entry.ActorID != "tech-1" {
					t.Fatalf("unexpected creation entry %+v", entry)
				}
				return app, nil
			})

		app, err := f.uc.Create(context.Background(), CreateApplicationInput{ApplicantName: " Ana ", ApplicantDocument: "CC-1", Stratum: 3}, "tech-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if app.ApplicantName != "Ana" {
			t.Fatalf("expected trimmed name, got %q", app.ApplicantName)
		}
	})
}

func TestApplicationLifecycleUseCase_Update(t *testing.T) {
	base := entities.Application{ID: "app-1", Status: entities.StatusDraft, TechnicianID: "tech-1", ApplicantName: "Ana", ApplicantDocument: "CC-1"}

	t.Run("not owner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newLifecycleFixture(t, ctrl)

		f.access.EXPECT().EnsureRole(gomock.Any(), "tech-2", entities.RoleTecnico).Return(nil)
		f.apps.EXPECT().GetByID(gomock.Any(), "app-1").Return(base, nil)

		_, err := f.uc.Update(context.Background(), "app-1", ApplicationPatch{}, "tech-2")
		if !errors.Is(err, interfaces.ErrPermissionDenied) {
			t.Fatalf("expected ErrPermissionDenied, got %v", err)
		}
	})

	t.Run("not editable after submission", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newLifecycleFixture(t, ctrl)

		submitted := base
		submitted.Status = entities.StatusSubmitted
		f.access.EXPECT().EnsureRole(gomock.Any(), "tech-1", entities.RoleTecnico).Return(nil)
		f.apps.EXPECT().GetByID(gomock.Any(), "app-1").Return(submitted, nil)

		_, err := f.uc.Update(context.Background(), "app-1", ApplicationPatch{}, "tech-1")
		if !errors.Is(err, ErrInvalidState) {
			t.Fatalf("expected ErrInvalidState, got %v", err)
		}
	})

	t.Run("rejected application is editable again", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newLifecycleFixture(t, ctrl)

		rejected := base
		rejected.Status = entities.StatusRejected
		newPhone := "555-0101"
		f.access.EXPECT().EnsureRole(gomock.Any(), "tech-1", entities.RoleTecnico).Return(nil)
		f.apps.EXPECT().GetByID(gomock.Any(), "app-1").Return(rejected, nil)
		f.apps.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Application{})).DoAndReturn(
			func(_ context.Context, app entities.Application) (entities.Application, error) {
				if app.ContactPhone != "555-0101" {
					t.Fatalf("expected patched phone, got %q", app.ContactPhone)
				}
				if app.Status != entities.StatusRejected {
					t.Fatalf("patch must not move status, got %s", app.Status)
				}
				return app, nil
			})

		if _, err := f.uc.Update(context.Background(), "app-1", ApplicationPatch{ContactPhone: &newPhone}, "tech-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestApplicationLifecycleUseCase_Submit(t *testing.T) {
	base := entities.Application{ID: "app-1", Status: entities.StatusDraft, TechnicianID: "tech-1"}

	t.Run("empty supervisor pool leaves application untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newLifecycleFixture(t, ctrl)

		f.access.EXPECT().EnsureRole(gomock.Any(), "tech-1", entities.RoleTecnico).Return(nil)
		f.apps.EXPECT().GetByID(gomock.Any(), "app-1").Return(base, nil)
		f.access.EXPECT().UsersWithRole(gomock.Any(), entities.RoleSupervisor).Return(nil, nil)

		_, err := f.uc.Submit(context.Background(), "app-1", "tech-1")
		if !errors.Is(err, ErrNoSupervisorsAvailable) {
			t.Fatalf("expected ErrNoSupervisorsAvailable, got %v", err)
		}
	})

	t.Run("success assigns supervisor and stamps submitted_at", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newLifecycleFixture(t, ctrl)

		f.access.EXPECT().EnsureRole(gomock.Any(), "tech-1", entities.RoleTecnico).Return(nil)
		f.apps.EXPECT().GetByID(gomock.Any(), "app-1").Return(base, nil)
		f.access.EXPECT().UsersWithRole(gomock.Any(), entities.RoleSupervisor).Return([]string{"sup-1"}, nil)
		f.apps.EXPECT().Transition(gomock.Any(), gomock.AssignableToTypeOf(entities.Application{}), gomock.AssignableToTypeOf(entities.HistoryEntry{})).DoAndReturn(
			func(_ context.Context, app entities.Application, entry entities.HistoryEntry) (entities.Application, error) {
				if app.Status != entities.StatusSubmitted || app.SupervisorID != "sup-1" {
					t.Fatalf("unexpected submit result %+v", app)
				}
				if app.SubmittedAt == nil {
					t.Fatal("submitted_at not set")
				}
				if entry.FromStatus == nil || *entry.FromStatus != entities.StatusDraft {
					t.Fatalf("unexpected from_status in entry %+v", entry)
				}
				if entry.ToStatus != entities.StatusSubmitted || entry.ActorID != "tech-1" {
					t.Fatalf("unexpected entry %+v", entry)
				}
				return app, nil
			})

		app, err := f.uc.Submit(context.Background(), "app-1", "tech-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if app.SupervisorID != "sup-1" {
			t.Fatalf("expected sup-1, got %s", app.SupervisorID)
		}
	})

	t.Run("resubmission after rejection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newLifecycleFixture(t, ctrl)

		rejected := base
		rejected.Status = entities.StatusRejected
		rejected.RejectionReason = "blurry facade photo"
		f.access.EXPECT().EnsureRole(gomock.Any(), "tech-1", entities.RoleTecnico).Return(nil)
		f.apps.EXPECT().GetByID(gomock.Any(), "app-1").Return(rejected, nil)
		f.access.EXPECT().UsersWithRole(gomock.Any(), entities.RoleSupervisor).Return([]string{"sup-2"}, nil)
		f.apps.EXPECT().Transition(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, app entities.Application, entry entities.HistoryEntry) (entities.Application, error) {
				if entry.FromStatus == nil || *entry.FromStatus != entities.StatusRejected {
					t.Fatalf("expected REJECTED -> SUBMITTED entry, got %+v", entry)
				}
				return app, nil
			})

		if _, err := f.uc.Submit(context.Background(), "app-1", "tech-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestApplicationLifecycleUseCase_Approve(t *testing.T) {
	submitted := entities.Application{ID: "app-1", Status: entities.StatusSubmitted, TechnicianID: "tech-1", SupervisorID: "sup-1"}

	t.Run("actor without supervisor role", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newLifecycleFixture(t, ctrl)

		f.access.EXPECT().EnsureRole(gomock.Any(), "tech-1", entities.RoleSupervisor).Return(interfaces.ErrPermissionDenied)

		_, err := f.uc.Approve(context.Background(), "app-1", "tech-1", "")
		if !errors.Is(err, interfaces.ErrPermissionDenied) {
			t.Fatalf("expected ErrPermissionDenied, got %v", err)
		}
	})

	t.Run("missing attachments block the decision", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newLifecycleFixture(t, ctrl)

		f.access.EXPECT().EnsureRole(gomock.Any(), "sup-1", entities.RoleSupervisor).Return(nil)
		f.apps.EXPECT().GetByID(gomock.Any(), "app-1").Return(submitted, nil)
		f.catalog.EXPECT().List(gomock.Any()).Return(catalogEntries("facade_photo", "speed_test_photo"), nil)
		f.atts.EXPECT().DistinctKinds(gomock.Any(), "app-1").Return([]string{"facade_photo"}, nil)

		_, err := f.uc.Approve(context.Background(), "app-1", "sup-1", "looks good")
		if !errors.Is(err, ErrMissingAttachments) {
			t.Fatalf("expected ErrMissingAttachments, got %v", err)
		}
	})

	t.Run("success records decision and generates document", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newLifecycleFixture(t, ctrl)

		f.access.EXPECT().EnsureRole(gomock.Any(), "sup-2", entities.RoleSupervisor).Return(nil)
		f.apps.EXPECT().GetByID(gomock.Any(), "app-1").Return(submitted, nil)
		f.catalog.EXPECT().List(gomock.Any()).Return(catalogEntries("facade_photo"), nil)
		f.atts.EXPECT().DistinctKinds(gomock.Any(), "app-1").Return([]string{"facade_photo"}, nil)
		f.apps.EXPECT().Transition(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, app entities.Application, entry entities.HistoryEntry) (entities.Application, error) {
				if app.Status != entities.StatusApproved {
					t.Fatalf("expected APPROVED, got %s", app.Status)
				}
				if app.SupervisorID != "sup-2" {
					t.Fatalf("deciding supervisor must be recorded, got %s", app.SupervisorID)
				}
				if app.ApprovedAt == nil || app.ReviewedAt == nil {
					t.Fatal("decision timestamps not set")
				}
				if entry.Comment != "all evidence present" {
					t.Fatalf("unexpected entry comment %q", entry.Comment)
				}
				return app, nil
			})
		f.generator.EXPECT().GenerateForDecision(gomock.Any(), gomock.Any(), "sup-2", "all evidence present").Return(entities.ResolutionDocument{ID: "doc-1", Version: 1}, nil)

		app, err := f.uc.Approve(context.Background(), "app-1", "sup-2", "all evidence present")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if app.Status != entities.StatusApproved {
			t.Fatalf("expected APPROVED, got %s", app.Status)
		}
	})

	t.Run("generation failure surfaces but decision stands", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newLifecycleFixture(t, ctrl)

		f.access.EXPECT().EnsureRole(gomock.Any(), "sup-1", entities.RoleSupervisor).Return(nil)
		f.apps.EXPECT().GetByID(gomock.Any(), "app-1").Return(submitted, nil)
		f.catalog.EXPECT().List(gomock.Any()).Return(catalogEntries("facade_photo"), nil)
		f.atts.EXPECT().DistinctKinds(gomock.Any(), "app-1").Return([]string{"facade_photo"}, nil)
		f.apps.EXPECT().Transition(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, app entities.Application, _ entities.HistoryEntry) (entities.Application, error) {
				return app, nil
			})
		f.generator.EXPECT().GenerateForDecision(gomock.Any(), gomock.Any(), "sup-1", "").Return(entities.ResolutionDocument{}, errors.New("render failed"))

		app, err := f.uc.Approve(context.Background(), "app-1", "sup-1", "")
		if err == nil {
			t.Fatal("expected generation error")
		}
		if app.Status != entities.StatusApproved {
			t.Fatalf("approval must survive generation failure, got %s", app.Status)
		}
	})
}

func TestApplicationLifecycleUseCase_Reject(t *testing.T) {
	submitted := entities.Application{ID: "app-1", Status: entities.StatusSubmitted, TechnicianID: "tech-1", SupervisorID: "sup-1"}

	t.Run("blank reason", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newLifecycleFixture(t, ctrl)

		_, err := f.uc.Reject(context.Background(), "app-1", "sup-1", "   ")
		if !errors.Is(err, ErrEmptyRejectionReason) {
			t.Fatalf("expected ErrEmptyRejectionReason, got %v", err)
		}
	})

	t.Run("success stores reason and clears approved_at", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newLifecycleFixture(t, ctrl)

		earlier := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
		app := submitted
		app.ApprovedAt = &earlier

		f.access.EXPECT().EnsureRole(gomock.Any(), "sup-1", entities.RoleSupervisor).Return(nil)
		f.apps.EXPECT().GetByID(gomock.Any(), "app-1").Return(app, nil)
		f.catalog.EXPECT().List(gomock.Any()).Return(catalogEntries("facade_photo"), nil)
		f.atts.EXPECT().DistinctKinds(gomock.Any(), "app-1").Return([]string{"facade_photo"}, nil)
		f.apps.EXPECT().Transition(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, got entities.Application, entry entities.HistoryEntry) (entities.Application, error) {
				if got.Status != entities.StatusRejected {
					t.Fatalf("expected REJECTED, got %s", got.Status)
				}
				if got.RejectionReason != "missing speed test" {
					t.Fatalf("unexpected reason %q", got.RejectionReason)
				}
				if got.ApprovedAt != nil {
					t.Fatal("approved_at must be cleared on rejection")
				}
				if entry.Comment != "missing speed test" {
					t.Fatalf("entry must carry the reason, got %q", entry.Comment)
				}
				return got, nil
			})
		f.generator.EXPECT().GenerateForDecision(gomock.Any(), gomock.Any(), "sup-1", "missing speed test").Return(entities.ResolutionDocument{ID: "doc-1", Version: 2}, nil)

		got, err := f.uc.Reject(context.Background(), "app-1", "sup-1", "missing speed test")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.RejectionReason != "missing speed test" {
			t.Fatalf("unexpected reason %q", got.RejectionReason)
		}
	})
}

func TestApplicationLifecycleUseCase_Reads(t *testing.T) {
	t.Run("get by id not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newLifecycleFixture(t, ctrl)

		f.apps.EXPECT().GetByID(gomock.Any(), "app-x").Return(entities.Application{}, nil)

		_, err := f.uc.GetByID(context.Background(), "app-x")
		if !errors.Is(err, ErrApplicationNotFound) {
			t.Fatalf("expected ErrApplicationNotFound, got %v", err)
		}
	})

	t.Run("history passthrough", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newLifecycleFixture(t, ctrl)

		f.history.EXPECT().ListFor(gomock.Any(), "app-1").Return([]entities.HistoryEntry{{ID: "h-1"}}, nil)

		entries, err := f.uc.HistoryFor(context.Background(), "app-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(entries) != 1 || entries[0].ID != "h-1" {
			t.Fatalf("unexpected entries %+v", entries)
		}
	})

	t.Run("list by technician requires id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newLifecycleFixture(t, ctrl)

		_, err := f.uc.ListByTechnician(context.Background(), " ", "", 10)
		if !errors.Is(err, ErrInvalidActorID) {
			t.Fatalf("expected ErrInvalidActorID, got %v", err)
		}
	})
}
