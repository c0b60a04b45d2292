package scene

import (
	"fmt"
	"io"
	"strings"
)

// WriteSummaryTable writes a plain-text resolution summary for a
// catalog, one row per entity.
func WriteSummaryTable(w io.Writer, outcomes []Outcome) {
	fmt.Fprintf(w, "Catalog: %d entities\n", len(outcomes))
	fmt.Fprintln(w, strings.Repeat("─", 72))
	fmt.Fprintf(w, "%-20s %-8s %-16s %6s  %-9s\n",
		"Name", "Type", "Constellation", "Sector", "Visual")
	fmt.Fprintln(w, strings.Repeat("─", 72))

	var detailed, fallback, skipped int
	for _, o := range outcomes {
		fmt.Fprintf(w, "%-20s %-8s %-16s %6d  %-9s\n",
			truncateStr(o.Entity.Name, 20),
			o.Entity.Type.String(),
			truncateStr(o.Entity.Constellation, 16),
			o.Entity.Sector,
			visualKind(o),
		)
		switch {
		case o.Skipped:
			skipped++
		case o.Fallback:
			fallback++
		default:
			detailed++
		}
	}

	fmt.Fprintf(w, "\nTotal: %d detailed, %d fallback, %d skipped\n",
		detailed, fallback, skipped)
}

// WriteEntityCard writes a detail card for one entity by name or ID.
// Returns false if the entity is not in the outcomes.
func WriteEntityCard(w io.Writer, outcomes []Outcome, name string) bool {
	for _, o := range outcomes {
		e := o.Entity
		if !strings.EqualFold(e.Name, name) && e.ID != name {
			continue
		}

		fmt.Fprintf(w, "%s\n", e.Name)
		fmt.Fprintln(w, strings.Repeat("─", 40))
		fmt.Fprintf(w, "  Type:          %s\n", e.Type)
		fmt.Fprintf(w, "  Constellation: %s\n", e.Constellation)
		fmt.Fprintf(w, "  Position:      (%.1f, %.1f, %.1f)\n", e.Pos.X, e.Pos.Y, e.Pos.Z)
		fmt.Fprintf(w, "  Distance:      %.2f ly\n", e.Distance)
		fmt.Fprintf(w, "  Sector:        %d\n", e.Sector)
		fmt.Fprintf(w, "  Visual:        %s", visualKind(o))
		if o.Handle != nil {
			fmt.Fprintf(w, " (%d parts)", len(o.Handle.Parts))
		}
		fmt.Fprintln(w)
		return true
	}
	return false
}

func visualKind(o Outcome) string {
	switch {
	case o.Skipped:
		return "none"
	case o.Fallback:
		return "fallback"
	default:
		return "detailed"
	}
}

func truncateStr(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
