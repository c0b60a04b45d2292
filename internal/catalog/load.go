package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/litescript/ls-atlas/internal/astro"
)

// entityRecord is the JSON wire form of a catalog entry.
type entityRecord struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Type          string  `json:"type"`
	X             float64 `json:"x"`
	Y             float64 `json:"y"`
	Z             float64 `json:"z"`
	Distance      float64 `json:"distance"`
	Constellation string  `json:"constellation"`
	Sector        int     `json:"sector"`
}

// Load reads a catalog file. The file must parse and every entry must
// carry a name; a malformed catalog is a hard startup error, the
// application does not run on partial data.
func Load(path string) ([]Entity, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var records []entityRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}

	entities := make([]Entity, 0, len(records))
	for i, rec := range records {
		if rec.Name == "" {
			return nil, fmt.Errorf("catalog %s: entry %d has no name", path, i)
		}
		id := rec.ID
		if id == "" {
			id = AssetKey(rec.Name)
		}
		entities = append(entities, Entity{
			ID:            id,
			Name:          rec.Name,
			Type:          ParseType(rec.Type),
			Pos:           astro.Vec3{X: rec.X, Y: rec.Y, Z: rec.Z},
			Distance:      rec.Distance,
			Constellation: rec.Constellation,
			Sector:        rec.Sector,
		})
	}

	if err := Validate(entities); err != nil {
		return nil, err
	}
	return entities, nil
}

// Validate checks catalog-level invariants: unique IDs. Entities with
// an unknown type are allowed through (the resolver skips them with a
// log), duplicate IDs are not.
func Validate(entities []Entity) error {
	seen := make(map[string]bool, len(entities))
	for _, e := range entities {
		if seen[e.ID] {
			return fmt.Errorf("duplicate entity id %q", e.ID)
		}
		seen[e.ID] = true
	}
	return nil
}

// UnknownTyped returns the entities whose type string was not one of
// the four known kinds.
func UnknownTyped(entities []Entity) []Entity {
	var out []Entity
	for _, e := range entities {
		if e.Type == TypeUnknown {
			out = append(out, e)
		}
	}
	return out
}
