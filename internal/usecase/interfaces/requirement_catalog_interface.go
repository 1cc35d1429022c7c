package interfaces

import (
	"context"
	"instalaciones_xpto/internal/domain/entities"
)

// IRequirementCatalog lists the evidence kinds an application must carry
// before a supervisor can decide it.

type IRequirementCatalog interface {
	List(ctx context.Context) ([]entities.RequirementCatalogEntry, error)
}
