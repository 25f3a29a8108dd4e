package render

import (
	"fmt"
	"sort"
	"strings"

	"talkgen/internal/model"
)

// cardAbstractLimit is the rune budget for a card abstract before it is
// cut off with an ellipsis.
const cardAbstractLimit = 200

// noUpcomingNotice is shown when there is nothing to place on the board
// or calendar.
const noUpcomingNotice = "<p><em>No upcoming talks listed.</em></p>"

// UpcomingCards renders the upcoming talks as a month-grouped card board.
// Talks without a date are left off the board.
func UpcomingCards(talks []model.Talk) string {
	dated := withDates(talks)
	if len(dated) == 0 {
		return noUpcomingNotice
	}

	months, byMonth := groupByMonth(dated)

	var b strings.Builder
	b.WriteString(`<div class="card-board">` + "\n")
	for _, ym := range months {
		items := byMonth[ym]
		sort.SliceStable(items, func(i, j int) bool { return items[i].Less(items[j]) })

		fmt.Fprintf(&b, `<h3 class="card-month">%s</h3>`+"\n", items[0].TalkDate.Format("January 2006"))
		b.WriteString(`<div class="card-grid">` + "\n")
		for _, t := range items {
			b.WriteString(card(t))
		}
		b.WriteString("</div>\n")
	}
	b.WriteString("</div>")
	return b.String()
}

func card(t model.Talk) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<a class="talk-card" href="%s/">`+"\n", t.ID)
	fmt.Fprintf(&b, `<div class="card-title">%s</div>`+"\n", t.DisplayTitle())

	var meta []string
	meta = append(meta, t.TalkDate.Format("January 2, 2006"))
	if t.StartTime != "" {
		piece := t.StartTime
		if t.TimeZone != "" {
			piece += " " + t.TimeZone
		}
		meta = append(meta, piece)
	}
	if where := cityCountry(t); where != "" {
		meta = append(meta, where)
	}
	fmt.Fprintf(&b, `<div class="card-meta">%s</div>`+"\n", strings.Join(meta, " • "))

	badges := strings.TrimSpace(StatusBadge(t.Status) + " " + TypeBadge(t.Type))
	if badges != "" {
		fmt.Fprintf(&b, `<div class="card-badges">%s</div>`+"\n", badges)
	}

	if t.Abstract != "" {
		fmt.Fprintf(&b, `<p class="card-abstract">%s</p>`+"\n", truncate(t.Abstract, cardAbstractLimit))
	}
	b.WriteString("</a>\n")
	return b.String()
}

// truncate cuts s at limit runes, appending an ellipsis when anything was
// dropped.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return strings.TrimRight(string(runes[:limit]), " ") + "…"
}

func cityCountry(t model.Talk) string {
	var parts []string
	if t.City != "" {
		parts = append(parts, t.City)
	}
	if t.Country != "" {
		parts = append(parts, t.Country)
	}
	return strings.Join(parts, ", ")
}

func withDates(talks []model.Talk) []model.Talk {
	var out []model.Talk
	for _, t := range talks {
		if !t.TalkDate.IsZero() {
			out = append(out, t)
		}
	}
	return out
}

type yearMonth struct {
	year  int
	month int
}

// groupByMonth buckets dated talks by calendar month, months in ascending
// order.
func groupByMonth(talks []model.Talk) ([]yearMonth, map[yearMonth][]model.Talk) {
	byMonth := map[yearMonth][]model.Talk{}
	for _, t := range talks {
		ym := yearMonth{t.TalkDate.Year(), int(t.TalkDate.Month())}
		byMonth[ym] = append(byMonth[ym], t)
	}
	months := make([]yearMonth, 0, len(byMonth))
	for ym := range byMonth {
		months = append(months, ym)
	}
	sort.Slice(months, func(i, j int) bool {
		if months[i].year != months[j].year {
			return months[i].year < months[j].year
		}
		return months[i].month < months[j].month
	})
	return months, byMonth
}
