package catalog

import (
	"context"
	"os"
	"strings"

	"instalaciones_xpto/internal/domain/entities"
	"instalaciones_xpto/internal/usecase/interfaces"
)

// Default evidence kinds. The frontend matches these by tag name.
var defaultEntries = []entities.RequirementCatalogEntry{
	{Kind: "facade_photo", IsRequired: true, Description: "Photo of the property facade"},
	{Kind: "nomenclature_photo", IsRequired: true, Description: "Photo of the address nomenclature plate"},
	{Kind: "speed_test_photo", IsRequired: true, Description: "Photo of the speed test result"},
	{Kind: "work_order_photo", IsRequired: true, Description: "Photo of the signed work order"},
}

// StaticCatalog serves a fixed requirement list, overridable per deployment
// via REQUIRED_ATTACHMENT_KINDS (comma-separated tags).

type StaticCatalog struct {
	entries []entities.RequirementCatalogEntry
}

var _ interfaces.IRequirementCatalog = (*StaticCatalog)(nil)

func NewStaticCatalog(entries []entities.RequirementCatalogEntry) *StaticCatalog {
	if len(entries) == 0 {
		entries = defaultEntries
	}
	return &StaticCatalog{entries: entries}
}

func NewStaticCatalogFromEnv() *StaticCatalog {
	raw := strings.TrimSpace(os.Getenv("REQUIRED_ATTACHMENT_KINDS"))
	if raw == "" {
		return NewStaticCatalog(nil)
	}
	var entries []entities.RequirementCatalogEntry
	for _, kind := range strings.Split(raw, ",") {
		kind = strings.TrimSpace(kind)
		if kind == "" {
			continue
		}
		entries = append(entries, entities.RequirementCatalogEntry{Kind: kind, IsRequired: true})
	}
	return NewStaticCatalog(entries)
}

func (c *StaticCatalog) List(_ context.Context) ([]entities.RequirementCatalogEntry, error) {
	out := make([]entities.RequirementCatalogEntry, len(c.entries))
	copy(out, c.entries)
	return out, nil
}
