package usecase

import (
	"context"
	"sort"

	"instalaciones_xpto/internal/usecase/interfaces"
)

// CompletenessChecker compares the kinds attached to an application against
// the requirement catalog.
//
// Every catalog entry is treated as mandatory; the is_required flag is not
// consulted. Called by approve and reject, never by submit.

type CompletenessChecker struct {
	catalog     interfaces.IRequirementCatalog
	attachments interfaces.IAttachmentRepository
}

func NewCompletenessChecker(catalog interfaces.IRequirementCatalog, attachments interfaces.IAttachmentRepository) *CompletenessChecker {
	return &CompletenessChecker{catalog: catalog, attachments: attachments}
}

// MissingKinds returns the catalog kinds absent from the application's
// attachments, sorted for stable reporting. Empty means complete.
func (c *CompletenessChecker) MissingKinds(ctx context.Context, applicationID string) ([]string, error) {
	entries, err := c.catalog.List(ctx)
	if err != nil {
		return nil, err
	}
	kinds, err := c.attachments.DistinctKinds(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	present := make(map[string]struct{}, len(kinds))
	for _, k := range kinds {
		present[k] = struct{}{}
	}

	var missing []string
	for _, e := range entries {
		if _, ok := present[e.Kind]; !ok {
			missing = append(missing, e.Kind)
		}
	}
	sort.Strings(missing)
	return missing, nil
}
