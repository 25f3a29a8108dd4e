package render

import (
	"fmt"
	"strings"

	"talkgen/internal/normalize"
)

// statusColors keys lowercased status labels to badge backgrounds.
var statusColors = map[string]string{
	"scheduled": "#2e7d32",
	"tentative": "#f9a825",
	"completed": "#1565c0",
	"canceled":  "#b71c1c",
}

// typeColors keys slugged talk-type labels to badge backgrounds.
var typeColors = map[string]string{
	"oral":       "#5c35a3",
	"invited":    "#00695c",
	"keynote":    "#ad1457",
	"poster":     "#ef6c00",
	"seminar":    "#283593",
	"colloquium": "#00838f",
	"panel":      "#4e342e",
	"tutorial":   "#6d4c41",
}

// StatusBadge renders a status label as a colored badge span. Unknown
// statuses get an uncolored badge; an empty status renders nothing.
func StatusBadge(status string) string {
	s := normalize.Space(status)
	if s == "" {
		return ""
	}
	if color, ok := statusColors[strings.ToLower(s)]; ok {
		return fmt.Sprintf(`<span class="badge" style="background:%s;color:#fff">%s</span>`, color, s)
	}
	return fmt.Sprintf(`<span class="badge">%s</span>`, s)
}

// TypeBadge renders a talk-type label as a colored badge span. Composite
// labels ("Oral, Panel") take the color of the first type while keeping the
// full label.
func TypeBadge(talkType string) string {
	s := normalize.Space(talkType)
	if s == "" {
		return ""
	}
	first, _, _ := strings.Cut(s, ",")
	if color, ok := typeColors[normalize.Slug(first)]; ok {
		return fmt.Sprintf(`<span class="badge" style="background:%s;color:#fff">%s</span>`, color, s)
	}
	return fmt.Sprintf(`<span class="badge">%s</span>`, s)
}
