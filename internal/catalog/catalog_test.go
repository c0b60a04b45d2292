package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseType(t *testing.T) {
	tests := []struct {
		in   string
		want Type
	}{
		{"star", TypeStar},
		{"planet", TypePlanet},
		{"moon", TypeMoon},
		{"nebula", TypeNebula},
		{"comet", TypeUnknown},
		{"", TypeUnknown},
		{"Star", TypeUnknown}, // type names are case-sensitive
	}

	for _, tt := range tests {
		if got := ParseType(tt.in); got != tt.want {
			t.Errorf("ParseType(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSpecFor(t *testing.T) {
	tests := []struct {
		typ       Type
		wantScale float64
		emissive  bool
	}{
		{TypeStar, 14, true},
		{TypePlanet, 7, false},
		{TypeMoon, 4, false},
		{TypeNebula, 22, true},
		{TypeUnknown, 6, false},
	}

	for _, tt := range tests {
		spec := SpecFor(tt.typ)
		if spec.Scale != tt.wantScale {
			t.Errorf("SpecFor(%v).Scale = %f, want %f", tt.typ, spec.Scale, tt.wantScale)
		}
		if spec.Emissive != tt.emissive {
			t.Errorf("SpecFor(%v).Emissive = %v, want %v", tt.typ, spec.Emissive, tt.emissive)
		}
		if spec.Color == "" {
			t.Errorf("SpecFor(%v) has empty color", tt.typ)
		}
	}
}

func TestAssetKey(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Sol", "sol"},
		{"Proxima Centauri", "proximacentauri"},
		{"Barnard's Star", "barnardsstar"},
		{"NGC 1976", "ngc1976"},
		{"  spaced   out  ", "spacedout"},
		{"M42!", "m42"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := AssetKey(tt.name); got != tt.want {
			t.Errorf("AssetKey(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestAssetPath(t *testing.T) {
	tests := []struct {
		entity Entity
		want   string
	}{
		{Entity{Name: "Orion Nebula", Type: TypeNebula}, "nebulae/orionnebula.json"},
		{Entity{Name: "Earth", Type: TypePlanet}, "planets/earth.json"},
		{Entity{Name: "Luna", Type: TypeMoon}, "moons/luna.json"},
		{Entity{Name: "Sirius", Type: TypeStar}, "stars/sirius.json"},
	}

	for _, tt := range tests {
		if got := AssetPath(tt.entity); got != tt.want {
			t.Errorf("AssetPath(%s) = %q, want %q", tt.entity.Name, got, tt.want)
		}
	}
}

func TestDefaultCatalogValid(t *testing.T) {
	entities := Default()
	if len(entities) == 0 {
		t.Fatal("default catalog is empty")
	}
	if err := Validate(entities); err != nil {
		t.Fatalf("default catalog invalid: %v", err)
	}

	// All four types should be represented.
	byType := make(map[Type]int)
	for _, e := range entities {
		byType[e.Type]++
	}
	for _, typ := range Types {
		if byType[typ] == 0 {
			t.Errorf("default catalog has no %v entities", typ)
		}
	}

	if len(UnknownTyped(entities)) != 0 {
		t.Error("default catalog should not contain unknown types")
	}
}

func TestSectors(t *testing.T) {
	entities := []Entity{
		{ID: "a", Sector: 3},
		{ID: "b", Sector: 0},
		{ID: "c", Sector: 3},
		{ID: "d", Sector: 1},
	}

	got := Sectors(entities)
	want := []int{0, 1, 3}
	if len(got) != len(want) {
		t.Fatalf("Sectors = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Sectors = %v, want %v", got, want)
		}
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	t.Run("valid file", func(t *testing.T) {
		path := filepath.Join(dir, "catalog.json")
		data := `[
			{"name": "Sol", "type": "star", "x": 0, "y": 0, "z": 0, "sector": 0},
			{"id": "earth", "name": "Earth", "type": "planet", "x": 150, "sector": 1, "constellation": "—"}
		]`
		if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
			t.Fatal(err)
		}

		entities, err := Load(path)
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if len(entities) != 2 {
			t.Fatalf("got %d entities, want 2", len(entities))
		}
		// Missing id falls back to the asset key.
		if entities[0].ID != "sol" {
			t.Errorf("entity 0 id = %q, want sol", entities[0].ID)
		}
		if entities[1].Pos.X != 150 {
			t.Errorf("Earth X = %f, want 150", entities[1].Pos.X)
		}
	})

	t.Run("unknown type is kept", func(t *testing.T) {
		path := filepath.Join(dir, "unknown.json")
		data := `[{"name": "Halley", "type": "comet", "sector": 0}]`
		if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
			t.Fatal(err)
		}

		entities, err := Load(path)
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if len(UnknownTyped(entities)) != 1 {
			t.Error("expected one unknown-typed entity")
		}
	})

	t.Run("duplicate id fails", func(t *testing.T) {
		path := filepath.Join(dir, "dup.json")
		data := `[
			{"id": "x", "name": "A", "type": "star"},
			{"id": "x", "name": "B", "type": "star"}
		]`
		if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
			t.Fatal(err)
		}

		if _, err := Load(path); err == nil {
			t.Error("expected duplicate id error")
		}
	})

	t.Run("malformed json fails", func(t *testing.T) {
		path := filepath.Join(dir, "bad.json")
		if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path); err == nil {
			t.Error("expected parse error")
		}
	})

	t.Run("missing file fails", func(t *testing.T) {
		if _, err := Load(filepath.Join(dir, "nope.json")); err == nil {
			t.Error("expected read error")
		}
	})

	t.Run("missing name fails", func(t *testing.T) {
		path := filepath.Join(dir, "noname.json")
		if err := os.WriteFile(path, []byte(`[{"type":"star"}]`), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path); err == nil {
			t.Error("expected missing name error")
		}
	})
}
