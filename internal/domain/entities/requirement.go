package entities

// RequirementCatalogEntry declares an evidence kind the frontend and backend
// agree on by tag name.
//
// IsRequired is kept on the model but the completeness checker currently
// treats every catalog row as mandatory regardless of the flag.

type RequirementCatalogEntry struct {
	Kind        string `json:"kind"`
	IsRequired  bool   `json:"is_required"`
	Description string `json:"description"`
}
