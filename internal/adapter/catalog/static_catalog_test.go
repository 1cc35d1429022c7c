package catalog

import (
	"context"
	"testing"

	"instalaciones_xpto/internal/domain/entities"
)

func TestStaticCatalog_List(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		c := NewStaticCatalog(nil)
		entries, err := c.List(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(entries) != 4 {
			t.Fatalf("expected 4 default kinds, got %d", len(entries))
		}
		if entries[0].Kind != "facade_photo" {
			t.Fatalf("unexpected first kind %q", entries[0].Kind)
		}
	})

	t.Run("returned slice is a copy", func(t *testing.T) {
		c := NewStaticCatalog([]entities.RequirementCatalogEntry{{Kind: "facade_photo", IsRequired: true}})
		entries, _ := c.List(context.Background())
		entries[0].Kind = "mutated"

		again, _ := c.List(context.Background())
		if again[0].Kind != "facade_photo" {
			t.Fatalf("catalog mutated through returned slice: %q", again[0].Kind)
		}
	})

	t.Run("env override", func(t *testing.T) {
		t.Setenv("REQUIRED_ATTACHMENT_KINDS", " facade_photo , customer_signature ,")
		c := NewStaticCatalogFromEnv()
		entries, _ := c.List(context.Background())
		if len(entries) != 2 {
			t.Fatalf("expected 2 kinds, got %d", len(entries))
		}
		if entries[1].Kind != "customer_signature" || !entries[1].IsRequired {
			t.Fatalf("unexpected entry %+v", entries[1])
		}
	})

	t.Run("blank env falls back to defaults", func(t *testing.T) {
		t.Setenv("REQUIRED_ATTACHMENT_KINDS", "   ")
		c := NewStaticCatalogFromEnv()
		entries, _ := c.List(context.Background())
		if len(entries) != 4 {
			t.Fatalf("expected defaults, got %d entries", len(entries))
		}
	})
}
