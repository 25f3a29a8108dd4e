package render

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"talkgen/internal/model"
)

var dowLabels = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// Calendar renders Sunday-first month grids covering every dated upcoming
// talk. Talks without a date cannot be placed and are skipped.
func Calendar(talks []model.Talk) string {
	dated := withDates(talks)
	if len(dated) == 0 {
		return noUpcomingNotice
	}

	months, byMonth := groupByMonth(dated)

	var b strings.Builder
	b.WriteString(`<div class="calendar">` + "\n")
	for _, ym := range months {
		byDay := map[int][]model.Talk{}
		for _, t := range byMonth[ym] {
			byDay[t.TalkDate.Day()] = append(byDay[t.TalkDate.Day()], t)
		}

		first := time.Date(ym.year, time.Month(ym.month), 1, 0, 0, 0, 0, time.UTC)
		b.WriteString(`<div class="calendar-month">` + "\n")
		fmt.Fprintf(&b, `<div class="calendar-month-header">%s</div>`+"\n", first.Format("January 2006"))
		b.WriteString(`<div class="calendar-grid">` + "\n")

		for _, lab := range dowLabels {
			fmt.Fprintf(&b, `<div class="calendar-dow">%s</div>`+"\n", lab)
		}

		daysInMonth := first.AddDate(0, 1, -1).Day()
		lead := int(first.Weekday()) // Sunday == 0
		cells := lead + daysInMonth
		if rem := cells % 7; rem != 0 {
			cells += 7 - rem
		}
		for cell := 0; cell < cells; cell++ {
			day := cell - lead + 1
			if day < 1 || day > daysInMonth {
				b.WriteString(`<div class="calendar-cell is-empty"></div>` + "\n")
				continue
			}

			b.WriteString(`<div class="calendar-cell">` + "\n")
			fmt.Fprintf(&b, `<div class="calendar-daynum">%d</div>`+"\n", day)

			items := byDay[day]
			sort.SliceStable(items, func(i, j int) bool { return items[i].SortTime() < items[j].SortTime() })
			for _, t := range items {
				fmt.Fprintf(&b, `<a class="calendar-item" href="%s/">`+"\n", t.ID)
				fmt.Fprintf(&b, `<span class="calendar-chip">%s</span>`+"\n", t.DisplayTitle())
				if meta := calendarMeta(t); meta != "" {
					fmt.Fprintf(&b, `<span class="calendar-meta">%s</span>`+"\n", meta)
				}
				b.WriteString("</a>\n")
			}
			b.WriteString("</div>\n")
		}

		b.WriteString("</div>\n")
		b.WriteString("</div>\n")
	}
	b.WriteString("</div>")
	return b.String()
}

func calendarMeta(t model.Talk) string {
	var bits []string
	if t.StartTime != "" {
		piece := t.StartTime
		if t.TimeZone != "" {
			piece += " " + t.TimeZone
		}
		bits = append(bits, piece)
	}
	if where := cityCountry(t); where != "" {
		bits = append(bits, where)
	}
	return strings.Join(bits, " • ")
}
