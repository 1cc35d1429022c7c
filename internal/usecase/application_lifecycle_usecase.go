package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"instalaciones_xpto/internal/domain/entities"
	"instalaciones_xpto/internal/usecase/interfaces"
)

var (
	ErrApplicationNotFound  = errors.New("application not found")
	ErrInvalidApplicationID = errors.New("invalid application id")
	ErrInvalidActorID       = errors.New("invalid actor id")
	ErrInvalidApplicantData = errors.New("invalid applicant data")
	ErrInvalidState         = errors.New("operation not allowed in current status")
	ErrMissingAttachments   = errors.New("required attachments missing")
	ErrEmptyRejectionReason = errors.New("rejection reason is required")
)

// CreateApplicationInput carries the applicant fields for a new draft.
type CreateApplicationInput struct {
	ApplicantName     string
	ApplicantDocument string
	ContactPhone      string
	Address           string
	LocalityCode      string
	Stratum           int
}

// ApplicationPatch updates applicant fields in place. Nil fields are left
// untouched. Patches never move status and never produce a history row.
type ApplicationPatch struct {
	ApplicantName     *string
	ApplicantDocument *string
	ContactPhone      *string
	Address           *string
	LocalityCode      *string
	Stratum           *int
}

// IApplicationLifecycle exposes the request review workflow:
// draft -> submit -> approve/reject, plus the read surfaces the HTTP layer
// serves.

type IApplicationLifecycle interface {
	Create(ctx context.Context, in CreateApplicationInput, technicianID string) (entities.Application, error)
	Update(ctx context.Context, id string, patch ApplicationPatch, technicianID string) (entities.Application, error)
	Submit(ctx context.Context, id, technicianID string) (entities.Application, error)
	Approve(ctx context.Context, id, supervisorID, comment string) (entities.Application, error)
	Reject(ctx context.Context, id, supervisorID, reason string) (entities.Application, error)
	GetByID(ctx context.Context, id string) (entities.Application, error)
	ListByTechnician(ctx context.Context, technicianID, cursor string, limit int32) (interfaces.ApplicationPage, error)
	ListByStatus(ctx context.Context, status entities.ApplicationStatus, cursor string, limit int32) (interfaces.ApplicationPage, error)
	HistoryFor(ctx context.Context, id string) ([]entities.HistoryEntry, error)
}

type ApplicationLifecycleUseCase struct {
	apps      interfaces.IApplicationRepository
	history   interfaces.IHistoryLedger
	access    interfaces.IAccessControl
	assigner  *SupervisorAssigner
	checker   *CompletenessChecker
	generator interfaces.IResolutionDocumentGenerator
	clock     Clock
	ids       IDGenerator
}

var _ IApplicationLifecycle = (*ApplicationLifecycleUseCase)(nil)

func NewApplicationLifecycleUseCase(
	apps interfaces.IApplicationRepository,
	history interfaces.IHistoryLedger,
	access interfaces.IAccessControl,
	assigner *SupervisorAssigner,
	checker *CompletenessChecker,
	generator interfaces.IResolutionDocumentGenerator,
) *ApplicationLifecycleUseCase {
	return &ApplicationLifecycleUseCase{
		apps:      apps,
		history:   history,
		access:    access,
		assigner:  assigner,
		checker:   checker,
		generator: generator,
		clock:     RealClock{},
		ids:       UUIDGenerator{},
	}
}

// WithClock replaces the time source. Test hook.
func (u *ApplicationLifecycleUseCase) WithClock(c Clock) *ApplicationLifecycleUseCase {
	u.clock = c
	return u
}

func (u *ApplicationLifecycleUseCase) Create(ctx context.Context, in CreateApplicationInput, technicianID string) (entities.Application, error) {
	technicianID = strings.TrimSpace(technicianID)
	if technicianID == "" {
		return entities.Application{}, ErrInvalidActorID
	}
	if err := u.access.EnsureRole(ctx, technicianID, entities.RoleTecnico); err != nil {
		return entities.Application{}, err
	}
	if strings.TrimSpace(in.ApplicantName) == "" || strings.TrimSpace(in.ApplicantDocument) == "" {
		return entities.Application{}, ErrInvalidApplicantData
	}

	now := u.clock.Now().UTC()
	app := entities.Application{
		ID:                u.ids.New(),
		ApplicantName:     strings.TrimSpace(in.ApplicantName),
		ApplicantDocument: strings.TrimSpace(in.ApplicantDocument),
		ContactPhone:      strings.TrimSpace(in.ContactPhone),
		Address:           strings.TrimSpace(in.Address),
		LocalityCode:      strings.TrimSpace(in.LocalityCode),
		Stratum:           in.Stratum,
		Status:            entities.StatusDraft,
		TechnicianID:      technicianID,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	entry := u.newEntry(app.ID, nil, entities.StatusDraft, technicianID, "", now)

	created, err := u.apps.Insert(ctx, app, entry)
	if err != nil {
		return entities.Application{}, err
	}
	log.Printf("[lifecycle] application created id=%s technician=%s", created.ID, technicianID)
	return created, nil
}

func (u *ApplicationLifecycleUseCase) Update(ctx context.Context, id string, patch ApplicationPatch, technicianID string) (entities.Application, error) {
	app, err := u.loadOwned(ctx, id, technicianID)
	if err != nil {
		return entities.Application{}, err
	}
	if !app.Status.Editable() {
		return entities.Application{}, ErrInvalidState
	}

	applyPatch(&app, patch)
	app.UpdatedAt = u.clock.Now().UTC()

	updated, err := u.apps.Update(ctx, app)
	if err != nil {
		return entities.Application{}, err
	}
	if updated.ID == "" {
		return entities.Application{}, ErrApplicationNotFound
	}
	return updated, nil
}

func (u *ApplicationLifecycleUseCase) Submit(ctx context.Context, id, technicianID string) (entities.Application, error) {
	app, err := u.loadOwned(ctx, id, technicianID)
	if err != nil {
		return entities.Application{}, err
	}
	if !app.Status.Editable() {
		return entities.Application{}, ErrInvalidState
	}

	// Completeness is deliberately not checked here; the supervisor's
	// decision is the gate for missing evidence.
	supervisorID, err := u.assigner.Assign(ctx)
	if err != nil {
		return entities.Application{}, err
	}

	now := u.clock.Now().UTC()
	from := app.Status
	app.Status = entities.StatusSubmitted
	app.SupervisorID = supervisorID
	app.SubmittedAt = &now
	app.UpdatedAt = now
	entry := u.newEntry(app.ID, &from, entities.StatusSubmitted, technicianID, "", now)

	updated, err := u.apps.Transition(ctx, app, entry)
	if err != nil {
		return entities.Application{}, err
	}
	if updated.ID == "" {
		return entities.Application{}, ErrApplicationNotFound
	}
	log.Printf("[lifecycle] application submitted id=%s technician=%s supervisor=%s", id, technicianID, supervisorID)
	return updated, nil
}

func (u *ApplicationLifecycleUseCase) Approve(ctx context.Context, id, supervisorID, comment string) (entities.Application, error) {
	app, err := u.loadForDecision(ctx, id, supervisorID)
	if err != nil {
		return entities.Application{}, err
	}

	now := u.clock.Now().UTC()
	from := app.Status
	app.Status = entities.StatusApproved
	app.SupervisorID = supervisorID
	app.ReviewedAt = &now
	app.ApprovedAt = &now
	app.RejectionReason = ""
	app.UpdatedAt = now
	entry := u.newEntry(app.ID, &from, entities.StatusApproved, supervisorID, comment, now)

	updated, err := u.apps.Transition(ctx, app, entry)
	if err != nil {
		return entities.Application{}, err
	}
	if updated.ID == "" {
		return entities.Application{}, ErrApplicationNotFound
	}
	log.Printf("[lifecycle] application approved id=%s supervisor=%s", id, supervisorID)

	// The decision is already committed; document generation is its own unit
	// of work and its failure does not undo the approval.
	if _, err := u.generator.GenerateForDecision(ctx, updated, supervisorID, comment); err != nil {
		log.Printf("[lifecycle] resolution document generation failed id=%s err=%v", id, err)
		return updated, err
	}
	return updated, nil
}

func (u *ApplicationLifecycleUseCase) Reject(ctx context.Context, id, supervisorID, reason string) (entities.Application, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return entities.Application{}, ErrEmptyRejectionReason
	}
	app, err := u.loadForDecision(ctx, id, supervisorID)
	if err != nil {
		return entities.Application{}, err
	}

	now := u.clock.Now().UTC()
	from := app.Status
	app.Status = entities.StatusRejected
	app.SupervisorID = supervisorID
	app.ReviewedAt = &now
	app.ApprovedAt = nil
	app.RejectionReason = reason
	app.UpdatedAt = now
	entry := u.newEntry(app.ID, &from, entities.StatusRejected, supervisorID, reason, now)

	updated, err := u.apps.Transition(ctx, app, entry)
	if err != nil {
		return entities.Application{}, err
	}
	if updated.ID == "" {
		return entities.Application{}, ErrApplicationNotFound
	}
	log.Printf("[lifecycle] application rejected id=%s supervisor=%s", id, supervisorID)

	if _, err := u.generator.GenerateForDecision(ctx, updated, supervisorID, reason); err != nil {
		log.Printf("[lifecycle] resolution document generation failed id=%s err=%v", id, err)
		return updated, err
	}
	return updated, nil
}

func (u *ApplicationLifecycleUseCase) GetByID(ctx context.Context, id string) (entities.Application, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Application{}, ErrInvalidApplicationID
	}
	app, err := u.apps.GetByID(ctx, id)
	if err != nil {
		return entities.Application{}, err
	}
	if app.ID == "" {
		return entities.Application{}, ErrApplicationNotFound
	}
	return app, nil
}

func (u *ApplicationLifecycleUseCase) ListByTechnician(ctx context.Context, technicianID, cursor string, limit int32) (interfaces.ApplicationPage, error) {
	technicianID = strings.TrimSpace(technicianID)
	if technicianID == "" {
		return interfaces.ApplicationPage{}, ErrInvalidActorID
	}
	return u.apps.ListByTechnician(ctx, technicianID, cursor, limit)
}

func (u *ApplicationLifecycleUseCase) ListByStatus(ctx context.Context, status entities.ApplicationStatus, cursor string, limit int32) (interfaces.ApplicationPage, error) {
	return u.apps.ListByStatus(ctx, status, cursor, limit)
}

func (u *ApplicationLifecycleUseCase) HistoryFor(ctx context.Context, id string) ([]entities.HistoryEntry, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrInvalidApplicationID
	}
	return u.history.ListFor(ctx, id)
}

// loadOwned resolves an application for a technician-owned mutation.
func (u *ApplicationLifecycleUseCase) loadOwned(ctx context.Context, id, technicianID string) (entities.Application, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Application{}, ErrInvalidApplicationID
	}
	technicianID = strings.TrimSpace(technicianID)
	if technicianID == "" {
		return entities.Application{}, ErrInvalidActorID
	}
	if err := u.access.EnsureRole(ctx, technicianID, entities.RoleTecnico); err != nil {
		return entities.Application{}, err
	}
	app, err := u.apps.GetByID(ctx, id)
	if err != nil {
		return entities.Application{}, err
	}
	if app.ID == "" {
		return entities.Application{}, ErrApplicationNotFound
	}
	if app.TechnicianID != technicianID {
		return entities.Application{}, fmt.Errorf("%w: application %s is not owned by technician %s", interfaces.ErrPermissionDenied, id, technicianID)
	}
	return app, nil
}

// loadForDecision resolves an application for approve/reject. Any user
// holding SUPERVISOR may decide, regardless of the assignment made at
// submission and regardless of current status; the completeness gate is the
// only precondition.
func (u *ApplicationLifecycleUseCase) loadForDecision(ctx context.Context, id, supervisorID string) (entities.Application, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Application{}, ErrInvalidApplicationID
	}
	supervisorID = strings.TrimSpace(supervisorID)
	if supervisorID == "" {
		return entities.Application{}, ErrInvalidActorID
	}
	if err := u.access.EnsureRole(ctx, supervisorID, entities.RoleSupervisor); err != nil {
		return entities.Application{}, err
	}
	app, err := u.apps.GetByID(ctx, id)
	if err != nil {
		return entities.Application{}, err
	}
	if app.ID == "" {
		return entities.Application{}, ErrApplicationNotFound
	}

	missing, err := u.checker.MissingKinds(ctx, id)
	if err != nil {
		return entities.Application{}, err
	}
	if len(missing) > 0 {
		return entities.Application{}, fmt.Errorf("%w: %s", ErrMissingAttachments, strings.Join(missing, ", "))
	}
	return app, nil
}

func (u *ApplicationLifecycleUseCase) newEntry(applicationID string, from *entities.ApplicationStatus, to entities.ApplicationStatus, actorID, comment string, now time.Time) entities.HistoryEntry {
	return entities.HistoryEntry{
		ID:            u.ids.New(),
		ApplicationID: applicationID,
		FromStatus:    from,
		ToStatus:      to,
		ActorID:       actorID,
		Comment:       comment,
		CreatedAt:     now,
	}
}

func applyPatch(app *entities.Application, patch ApplicationPatch) {
	if patch.ApplicantName != nil {
		app.ApplicantName = strings.TrimSpace(*patch.ApplicantName)
	}
	if patch.ApplicantDocument != nil {
		app.ApplicantDocument = strings.TrimSpace(*patch.ApplicantDocument)
	}
	if patch.ContactPhone != nil {
		app.ContactPhone = strings.TrimSpace(*patch.ContactPhone)
	}
	if patch.Address != nil {
		app.Address = strings.TrimSpace(*patch.Address)
	}
	if patch.LocalityCode != nil {
		app.LocalityCode = strings.TrimSpace(*patch.LocalityCode)
	}
	if patch.Stratum != nil {
		app.Stratum = *patch.Stratum
	}
}
