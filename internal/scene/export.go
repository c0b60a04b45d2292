package scene

import (
	"encoding/json"
	"io"
	"time"
)

// SnapshotExport is the JSON-serializable scene snapshot written by the
// -snapshot-path headless mode.
type SnapshotExport struct {
	GeneratedAt time.Time      `json:"generated_at"`
	Loader      string         `json:"loader,omitempty"`
	Entities    []EntityExport `json:"entities"`
}

// EntityExport is one catalog entity with its resolved visual.
type EntityExport struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Type          string        `json:"type"`
	X             float64       `json:"x"`
	Y             float64       `json:"y"`
	Z             float64       `json:"z"`
	Distance      float64       `json:"distance_ly"`
	Constellation string        `json:"constellation,omitempty"`
	Sector        int           `json:"sector"`
	Visual        *VisualExport `json:"visual,omitempty"`
}

// VisualExport describes the resolved visual for an entity. Kind is
// "detailed" or "fallback"; skipped entities have no visual at all.
type VisualExport struct {
	Kind    string       `json:"kind"`
	Visible bool         `json:"visible"`
	PosX    float64      `json:"pos_x"`
	PosY    float64      `json:"pos_y"`
	PosZ    float64      `json:"pos_z"`
	Parts   []PartExport `json:"parts"`
}

// PartExport is a JSON-friendly part representation.
type PartExport struct {
	Name   string  `json:"name,omitempty"`
	Radius float64 `json:"radius"`
	Color  string  `json:"color,omitempty"`
}

// ExportSnapshot converts resolution outcomes to an exportable form.
func ExportSnapshot(outcomes []Outcome, loaderName string, at time.Time) *SnapshotExport {
	export := &SnapshotExport{GeneratedAt: at, Loader: loaderName}

	for _, o := range outcomes {
		e := o.Entity
		entry := EntityExport{
			ID:            e.ID,
			Name:          e.Name,
			Type:          e.Type.String(),
			X:             e.Pos.X,
			Y:             e.Pos.Y,
			Z:             e.Pos.Z,
			Distance:      e.Distance,
			Constellation: e.Constellation,
			Sector:        e.Sector,
		}

		if o.Handle != nil {
			kind := "detailed"
			if o.Fallback {
				kind = "fallback"
			}
			visual := &VisualExport{
				Kind:    kind,
				Visible: o.Handle.Visible,
				PosX:    o.Handle.Pos.X,
				PosY:    o.Handle.Pos.Y,
				PosZ:    o.Handle.Pos.Z,
			}
			for _, p := range o.Handle.Parts {
				visual.Parts = append(visual.Parts, PartExport{
					Name:   p.Name,
					Radius: p.Radius,
					Color:  p.Color,
				})
			}
			entry.Visual = visual
		}

		export.Entities = append(export.Entities, entry)
	}

	return export
}

// WriteJSON writes the snapshot as indented JSON.
func (s *SnapshotExport) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}
