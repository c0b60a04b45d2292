package catalog

import (
	"strings"
	"unicode"
)

// AssetExt is the file extension for detailed model assemblies.
const AssetExt = ".json"

// AssetKey derives the canonical asset key from a display name:
// lower-cased with whitespace and all non-alphanumerics stripped.
// "Proxima Centauri" -> "proximacentauri", "Barnard's Star" ->
// "barnardsstar".
func AssetKey(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// AssetPath returns the conventional detailed-asset path for an entity,
// relative to the assets root: "{type plural}/{key}.json".
func AssetPath(e Entity) string {
	return SpecFor(e.Type).Plural + "/" + AssetKey(e.Name) + AssetExt
}
