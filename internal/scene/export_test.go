package scene

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/litescript/ls-atlas/internal/astro"
	"github.com/litescript/ls-atlas/internal/catalog"
)

func sampleOutcomes() []Outcome {
	star := catalog.Entity{ID: "vega", Name: "Vega", Type: catalog.TypeStar, Pos: astro.Vec3{X: 120}, Distance: 25, Constellation: "Lyra", Sector: 1}
	planet := catalog.Entity{ID: "earth", Name: "Earth", Type: catalog.TypePlanet, Pos: astro.Vec3{X: 150}, Sector: 0}
	anomaly := catalog.Entity{ID: "x1", Name: "Anomaly", Pos: astro.Vec3{Z: 9}}

	return []Outcome{
		{
			Entity: star,
			Handle: &VisualHandle{
				Entity:   star,
				Pos:      star.Pos,
				Visible:  true,
				Detailed: true,
				Parts: []Part{
					{Name: "core", Radius: 10, Color: "#FFD27D"},
					{Name: "corona", Radius: 14, Color: "#FFEBB0"},
				},
			},
		},
		{
			Entity:   planet,
			Handle:   &VisualHandle{Entity: planet, Pos: planet.Pos, Visible: true, Parts: []Part{{Radius: 7, Color: "#3B82F6"}}},
			Fallback: true,
			LoadErr:  errors.New("asset missing"),
		},
		{Entity: anomaly, Skipped: true},
	}
}

func TestExportSnapshot(t *testing.T) {
	at := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	export := ExportSnapshot(sampleOutcomes(), "fs:testdata", at)

	if export.Loader != "fs:testdata" {
		t.Errorf("loader = %q", export.Loader)
	}
	if len(export.Entities) != 3 {
		t.Fatalf("entities = %d, want 3", len(export.Entities))
	}

	vega := export.Entities[0]
	if vega.Visual == nil || vega.Visual.Kind != "detailed" {
		t.Fatalf("vega visual = %+v, want detailed", vega.Visual)
	}
	if len(vega.Visual.Parts) != 2 {
		t.Errorf("vega parts = %d, want 2", len(vega.Visual.Parts))
	}

	earth := export.Entities[1]
	if earth.Visual == nil || earth.Visual.Kind != "fallback" {
		t.Fatalf("earth visual = %+v, want fallback", earth.Visual)
	}

	// Skipped entities appear in the export without a visual.
	if export.Entities[2].Visual != nil {
		t.Error("skipped entity must not carry a visual")
	}
}

func TestWriteJSONRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	export := ExportSnapshot(sampleOutcomes(), "null", time.Now())
	if err := export.WriteJSON(&buf); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	var decoded SnapshotExport
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(decoded.Entities) != 3 {
		t.Errorf("decoded entities = %d, want 3", len(decoded.Entities))
	}
	if decoded.Entities[0].Type != "star" {
		t.Errorf("decoded type = %q, want star", decoded.Entities[0].Type)
	}
}

func TestWriteSummaryTable(t *testing.T) {
	var buf bytes.Buffer
	WriteSummaryTable(&buf, sampleOutcomes())
	out := buf.String()

	for _, want := range []string{"3 entities", "Vega", "Earth", "Anomaly", "1 detailed, 1 fallback, 1 skipped"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q\n%s", want, out)
		}
	}
}

func TestWriteEntityCard(t *testing.T) {
	outcomes := sampleOutcomes()

	var buf bytes.Buffer
	if !WriteEntityCard(&buf, outcomes, "vega") {
		t.Fatal("lookup by lowercase name should succeed")
	}
	out := buf.String()
	for _, want := range []string{"Vega", "Lyra", "25.00 ly", "detailed (2 parts)"} {
		if !strings.Contains(out, want) {
			t.Errorf("card missing %q\n%s", want, out)
		}
	}

	buf.Reset()
	if !WriteEntityCard(&buf, outcomes, "x1") {
		t.Error("lookup by ID should succeed")
	}
	if !strings.Contains(buf.String(), "none") {
		t.Error("skipped entity card should report no visual")
	}

	if WriteEntityCard(&buf, outcomes, "nonexistent") {
		t.Error("unknown entity should report false")
	}
}
