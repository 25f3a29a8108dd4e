package render

import (
	"fmt"
	"strings"

	"talkgen/internal/model"
)

// Chip is one entry of a tag or type cloud.
type Chip struct {
	Label string
	Href  string
	Count int
}

// ChipCloud renders chips with a font size scaled by relative frequency:
// 0.85 + 0.65*count/maxCount rem, monotonic in count. Chips are rendered in
// the order given.
func ChipCloud(chips []Chip) string {
	if len(chips) == 0 {
		return ""
	}
	max := 0
	for _, c := range chips {
		if c.Count > max {
			max = c.Count
		}
	}
	if max == 0 {
		max = 1
	}

	var b strings.Builder
	b.WriteString(`<div class="chip-cloud">` + "\n")
	for _, c := range chips {
		size := 0.85 + 0.65*float64(c.Count)/float64(max)
		fmt.Fprintf(&b, `<a class="chip" href="%s" style="font-size:%.2frem">%s <span class="chip-count">%d</span></a>`+"\n",
			c.Href, size, c.Label, c.Count)
	}
	b.WriteString("</div>")
	return b.String()
}

// StatsBar renders the headline counters for the root index.
func StatsBar(talks []model.Talk) string {
	var upcoming, completed int
	countries := map[string]bool{}
	for _, t := range talks {
		if model.UpcomingStatuses[t.Status] {
			upcoming++
		}
		if t.Status == "Completed" {
			completed++
		}
		if t.Country != "" {
			countries[strings.ToLower(t.Country)] = true
		}
	}

	var b strings.Builder
	b.WriteString(`<div class="stats-bar">` + "\n")
	stat := func(value int, label string) {
		fmt.Fprintf(&b, `<div class="stat"><span class="stat-value">%d</span><span class="stat-label">%s</span></div>`+"\n",
			value, label)
	}
	stat(len(talks), "talks")
	stat(upcoming, "upcoming")
	stat(completed, "completed")
	stat(len(countries), "countries")
	b.WriteString("</div>")
	return b.String()
}
