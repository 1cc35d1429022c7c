package interfaces

import (
	"context"
	"time"

	"instalaciones_xpto/internal/domain/entities"
)

// RenderAttachment is an attachment as seen by the renderer. Data carries the
// preloaded bytes for attachments classified as images; it is nil for
// non-images and for images whose bytes could not be loaded (those are
// omitted from the gallery, not failed).
type RenderAttachment struct {
	Kind     string
	FileName string
	Data     []byte
}

// ResolutionRenderData is the decision snapshot handed to the renderer.
type ResolutionRenderData struct {
	Application entities.Application
	Decision    entities.ApplicationStatus
	Note        string
	Version     int
	GeneratedAt time.Time
	Attachments []RenderAttachment
}

// IResolutionRenderer renders a decision snapshot to PDF bytes.

type IResolutionRenderer interface {
	Render(ctx context.Context, data ResolutionRenderData) ([]byte, error)
}

// IResolutionDocumentGenerator allocates a version and persists the rendered
// document for a decision. Consumed by the lifecycle after approve/reject.

type IResolutionDocumentGenerator interface {
	GenerateForDecision(ctx context.Context, app entities.Application, actorID, note string) (entities.ResolutionDocument, error)
}
