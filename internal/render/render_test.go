package render

import (
	"strings"
	"testing"
	"time"

	"talkgen/internal/model"
)

func makeTalk(over func(*model.Talk)) model.Talk {
	t := model.Talk{
		ID:          "test-talk",
		Title:       "Test Talk",
		Meeting:     "Test Conf",
		MeetingLink: "https://example.com",
		Location:    "Room 101",
		StartDate:   time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC),
		TalkDate:    time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		StartTime:   "10:00",
		TimeZone:    "PT",
		Duration:    "30",
		Session:     "Session A",
		City:        "Phoenix",
		Country:     "USA",
		Abstract:    "An abstract about things.",
		Slides:      "https://slides.example.com",
		Recording:   "https://rec.example.com",
		Status:      "Scheduled",
		Tags:        []string{"ml", "astro"},
		Type:        "Oral",
		Visibility:  "Public",
	}
	if over != nil {
		over(&t)
	}
	return t
}

func TestStatusBadge(t *testing.T) {
	html := StatusBadge("Scheduled")
	if !strings.Contains(html, `class="badge"`) {
		t.Error("expected badge class")
	}
	if !strings.Contains(html, "#2e7d32") {
		t.Error("expected scheduled color")
	}
	if !strings.Contains(html, "Scheduled") {
		t.Error("expected label")
	}
}

func TestStatusBadge_Unknown(t *testing.T) {
	html := StatusBadge("Unknown")
	if strings.Contains(html, "style=") {
		t.Errorf("unknown status should have no style attr: %s", html)
	}
	if StatusBadge("") != "" {
		t.Error("empty status should render nothing")
	}
}

func TestTypeBadge(t *testing.T) {
	if !strings.Contains(TypeBadge("Oral"), "#5c35a3") {
		t.Error("expected oral color")
	}
	// Composite labels take the first type's color but keep the full label.
	html := TypeBadge("Oral, Panel")
	if !strings.Contains(html, "#5c35a3") || !strings.Contains(html, "Oral, Panel") {
		t.Errorf("composite type badge misrendered: %s", html)
	}
}

func TestCountryFlag(t *testing.T) {
	if CountryFlag("USA") == "" {
		t.Error("expected flag for USA")
	}
	if CountryFlag("India") == "" {
		t.Error("expected flag for India")
	}
	if CountryFlag("Atlantis") != "" {
		t.Error("unknown country should yield empty string")
	}
	if CountryFlag("usa") != CountryFlag("USA") {
		t.Error("lookup should be case-insensitive")
	}
}

func TestProject(t *testing.T) {
	x, y := Project(0, 0, 900, 450)
	if x != 450.0 || y != 225.0 {
		t.Errorf("center: expected (450, 225), got (%v, %v)", x, y)
	}
	x, y = Project(-180, 90, 900, 450)
	if x != 0.0 || y != 0.0 {
		t.Errorf("top-left: expected (0, 0), got (%v, %v)", x, y)
	}
}

func TestContinentPath(t *testing.T) {
	path := ContinentPath([][2]float64{{0, 0}, {10, 0}, {10, 10}, {0, 10}}, 900, 450)
	if !strings.HasPrefix(path, "M") {
		t.Errorf("path should start with M: %s", path)
	}
	if !strings.HasSuffix(path, "Z") {
		t.Errorf("path should end with Z: %s", path)
	}
	if !strings.Contains(path, "L") {
		t.Errorf("path should contain line segments: %s", path)
	}
}

func TestWorldMap_Empty(t *testing.T) {
	if got := WorldMap(nil); got != "" {
		t.Errorf("no talks should render nothing, got %q", got)
	}
	unknown := makeTalk(func(tk *model.Talk) { tk.City = "Atlantis" })
	if got := WorldMap([]model.Talk{unknown}); got != "" {
		t.Errorf("unknown city should be omitted, got %q", got)
	}
}

func TestWorldMap_KnownCity(t *testing.T) {
	svg := WorldMap([]model.Talk{makeTalk(nil)})
	if !strings.Contains(svg, "world-map") {
		t.Error("expected world-map class")
	}
	if !strings.Contains(svg, "map-dot") {
		t.Error("expected map-dot circle")
	}
	if !strings.Contains(svg, "Phoenix") {
		t.Error("expected city label")
	}
}

func TestWorldMap_RepeatVisits(t *testing.T) {
	talks := []model.Talk{
		makeTalk(func(tk *model.Talk) { tk.City = "Pune" }),
		makeTalk(func(tk *model.Talk) { tk.City = "Pune"; tk.ID = "t2" }),
	}
	svg := WorldMap(talks)
	if !strings.Contains(svg, "Pune (2)") {
		t.Errorf("repeat visits should be labeled with a count:\n%s", svg)
	}
}

func TestUpcomingCards_Empty(t *testing.T) {
	if !strings.Contains(UpcomingCards(nil), "No upcoming") {
		t.Error("expected empty notice")
	}
	dateless := makeTalk(func(tk *model.Talk) { tk.TalkDate = time.Time{} })
	if !strings.Contains(UpcomingCards([]model.Talk{dateless}), "No upcoming") {
		t.Error("dateless talks cannot be placed on the board")
	}
}

func TestUpcomingCards_Rendered(t *testing.T) {
	html := UpcomingCards([]model.Talk{makeTalk(nil)})
	if !strings.Contains(html, "talk-card") {
		t.Error("expected talk-card")
	}
	if !strings.Contains(html, "Test Talk") {
		t.Error("expected title")
	}
	if !strings.Contains(html, "March 2026") {
		t.Error("expected month header")
	}
	if !strings.Contains(html, "card-abstract") {
		t.Error("expected abstract block")
	}
}

func TestUpcomingCards_TruncatesAbstract(t *testing.T) {
	long := makeTalk(func(tk *model.Talk) { tk.Abstract = strings.Repeat("A", 300) })
	html := UpcomingCards([]model.Talk{long})
	if !strings.Contains(html, "…") {
		t.Error("long abstract should end with an ellipsis")
	}
	if strings.Contains(html, strings.Repeat("A", 201)) {
		t.Error("abstract should be cut at the limit")
	}
}

func TestCalendar(t *testing.T) {
	html := Calendar([]model.Talk{makeTalk(nil)})
	for _, marker := range []string{"calendar-month-header", "calendar-grid", "calendar-dow", "calendar-daynum", "calendar-chip"} {
		if !strings.Contains(html, marker) {
			t.Errorf("expected %s in calendar output", marker)
		}
	}
	if !strings.Contains(html, "March 2026") {
		t.Error("expected month header")
	}
	// March 1 2026 is a Sunday, so the grid has no leading empty cells
	// before day 1 but pads the trailing week.
	if !strings.Contains(html, "is-empty") {
		t.Error("expected trailing empty cells")
	}
}

func TestChipCloud_Sizing(t *testing.T) {
	chips := []Chip{
		{Label: "ml", Href: "ml/", Count: 4},
		{Label: "astro", Href: "astro/", Count: 2},
		{Label: "llm", Href: "llm/", Count: 1},
	}
	html := ChipCloud(chips)
	if !strings.Contains(html, "chip-cloud") {
		t.Error("expected chip-cloud class")
	}
	// max count gets 0.85+0.65 = 1.50rem, half of max gets 0.85+0.325.
	if !strings.Contains(html, "font-size:1.50rem") {
		t.Errorf("expected 1.50rem for the most frequent chip:\n%s", html)
	}
	if !strings.Contains(html, "font-size:1.17rem") {
		t.Errorf("expected 1.17rem for half frequency:\n%s", html)
	}
	if ChipCloud(nil) != "" {
		t.Error("no chips should render nothing")
	}
}

func TestStatsBar(t *testing.T) {
	talks := []model.Talk{
		makeTalk(nil),
		makeTalk(func(tk *model.Talk) { tk.ID = "t2"; tk.Status = "Completed"; tk.Country = "India" }),
	}
	html := StatsBar(talks)
	if !strings.Contains(html, "stats-bar") {
		t.Error("expected stats-bar class")
	}
	if !strings.Contains(html, `<span class="stat-value">2</span><span class="stat-label">talks</span>`) {
		t.Errorf("expected total count of 2:\n%s", html)
	}
	if !strings.Contains(html, `<span class="stat-value">1</span><span class="stat-label">upcoming</span>`) {
		t.Errorf("expected 1 upcoming:\n%s", html)
	}
}

func TestListItem(t *testing.T) {
	md := ListItem(makeTalk(nil))
	if !strings.Contains(md, "Test Talk") || !strings.Contains(md, "test-talk") {
		t.Errorf("expected title and id: %s", md)
	}
	if !strings.Contains(md, "2026-03-02") {
		t.Errorf("expected ISO date: %s", md)
	}
	if !strings.Contains(md, "Test Conf") {
		t.Errorf("expected meeting: %s", md)
	}
	if !strings.Contains(md, "[`ml`](../tags/ml/)") {
		t.Errorf("expected tag link: %s", md)
	}
}

func TestDetailBlock(t *testing.T) {
	block := DetailBlock(makeTalk(nil))

	if !strings.Contains(block, "All talks") {
		t.Error("expected back link")
	}
	if !strings.Contains(block, "https://example.com") {
		t.Error("expected meeting link")
	}
	if !strings.Contains(block, CountryFlags["usa"]) {
		t.Error("expected country flag")
	}
	if !strings.Contains(block, "## Abstract") || !strings.Contains(block, "An abstract about things.") {
		t.Error("expected abstract section")
	}
	if !strings.Contains(block, `class="badge"`) || !strings.Contains(block, "Scheduled") || !strings.Contains(block, "Oral") {
		t.Error("expected status and type badges")
	}
	if !strings.Contains(block, `class="btn"`) || !strings.Contains(block, "Slides") {
		t.Error("expected slides button")
	}
	if !strings.Contains(block, "ml") || !strings.Contains(block, "astro") {
		t.Error("expected tags")
	}
	if !strings.Contains(block, "**Meeting dates:** 2026-03-01 – 2026-03-03") {
		t.Errorf("expected meeting date range:\n%s", block)
	}
}

func TestDetailBlock_OmitsEmptySections(t *testing.T) {
	bare := makeTalk(func(tk *model.Talk) {
		tk.Abstract = ""
		tk.Slides = ""
		tk.Recording = ""
	})
	block := DetailBlock(bare)
	if strings.Contains(block, "## Abstract") {
		t.Error("no abstract section without an abstract")
	}
	if strings.Contains(block, "## Links") {
		t.Error("no links section without links")
	}
}

func TestLink(t *testing.T) {
	if got := Link("label", ""); got != "label" {
		t.Errorf("empty url should degrade to label, got %q", got)
	}
	if got := Link("label", "https://x"); got != "[label](https://x)" {
		t.Errorf("got %q", got)
	}
}
