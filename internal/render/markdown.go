package render

import (
	"fmt"
	"strings"

	"talkgen/internal/model"
)

// Link renders a markdown link, degrading to the bare label when the URL
// is empty.
func Link(label, url string) string {
	if url == "" {
		return label
	}
	return fmt.Sprintf("[%s](%s)", label, url)
}

// ListItem renders the compact one-entry line used by the index pages.
func ListItem(t model.Talk) string {
	var bits []string
	if !t.TalkDate.IsZero() {
		bits = append(bits, t.TalkDate.Format("2006-01-02"))
	}
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
	if t.Status != "" {
		bits = append(bits, t.Status)
	}

	line := fmt.Sprintf("- **[%s](../%s/)**", t.DisplayTitle(), t.ID)
	if meta := strings.Join(bits, " • "); meta != "" {
		line += "  \n  " + meta
	}
	if t.Meeting != "" {
		line += "  \n  " + Link(t.Meeting, t.MeetingLink)
	}
	if len(t.Tags) > 0 {
		var tagLinks []string
		for _, tag := range t.Tags {
			tagLinks = append(tagLinks, fmt.Sprintf("[`%s`](../tags/%s/)", tag, tag))
		}
		line += "  \n  " + strings.Join(tagLinks, " ")
	}
	return line
}

// DetailBlock renders the auto-generated body of a per-talk page.
func DetailBlock(t model.Talk) string {
	var lines []string

	lines = append(lines, "[← All talks](../)", "")

	var pieces []string
	if t.Meeting != "" {
		pieces = append(pieces, Link(t.Meeting, t.MeetingLink))
	}
	if where := cityCountry(t); where != "" {
		if flag := CountryFlag(t.Country); flag != "" {
			where = flag + " " + where
		}
		pieces = append(pieces, where)
	}
	if !t.TalkDate.IsZero() {
		pieces = append(pieces, t.TalkDate.Format("January 2, 2006"))
	}
	if t.StartTime != "" {
		piece := t.StartTime
		if t.TimeZone != "" {
			piece += " " + t.TimeZone
		}
		pieces = append(pieces, piece)
	}
	if t.Duration != "" {
		pieces = append(pieces, t.Duration+" min")
	}
	if badge := StatusBadge(t.Status); badge != "" {
		pieces = append(pieces, badge)
	}
	if badge := TypeBadge(t.Type); badge != "" {
		pieces = append(pieces, badge)
	}
	if len(pieces) > 0 {
		lines = append(lines, "> "+strings.Join(pieces, " • "), "")
	}

	if t.Session != "" {
		lines = append(lines, "**Session:** "+t.Session)
	}
	if t.Location != "" {
		lines = append(lines, "**Location:** "+t.Location)
	}
	if !t.StartDate.IsZero() || !t.EndDate.IsZero() {
		sd, ed := "", ""
		if !t.StartDate.IsZero() {
			sd = t.StartDate.Format("2006-01-02")
		}
		if !t.EndDate.IsZero() {
			ed = t.EndDate.Format("2006-01-02")
		}
		if sd != "" && ed != "" && sd != ed {
			lines = append(lines, fmt.Sprintf("**Meeting dates:** %s – %s", sd, ed))
		} else if sd != "" {
			lines = append(lines, "**Meeting date:** "+sd)
		}
	}
	if len(t.Tags) > 0 {
		var tagLinks []string
		for _, tag := range t.Tags {
			tagLinks = append(tagLinks, fmt.Sprintf("[`%s`](../../tags/%s/)", tag, tag))
		}
		lines = append(lines, "**Tags:** "+strings.Join(tagLinks, " "))
	}
	lines = append(lines, "")

	if t.Abstract != "" {
		lines = append(lines, "## Abstract", t.Abstract, "")
	}

	var links []string
	if t.Slides != "" {
		links = append(links, fmt.Sprintf(`<a class="btn" href="%s">Slides</a>`, t.Slides))
	}
	if t.Recording != "" {
		links = append(links, fmt.Sprintf(`<a class="btn" href="%s">Recording</a>`, t.Recording))
	}
	if len(links) > 0 {
		lines = append(lines, "## Links", strings.Join(links, " "), "")
	}

	return strings.TrimSpace(strings.Join(lines, "\n")) + "\n"
}
