// Package model defines the core talk data types.
package model

import (
	"strings"
	"time"
)

// Talk represents one normalized talk entry loaded from the CSV source.
// Fields are never mutated after construction; derived sort keys are
// computed on demand.
type Talk struct {
	ID          string    `json:"talk_id"`
	Title       string    `json:"title"`
	Meeting     string    `json:"meeting,omitempty"`
	MeetingLink string    `json:"meeting_link,omitempty"`
	Location    string    `json:"location,omitempty"`
	StartDate   time.Time `json:"start_date,omitzero"`
	EndDate     time.Time `json:"end_date,omitzero"`
	TalkDate    time.Time `json:"talk_date,omitzero"`
	StartTime   string    `json:"start_time,omitempty"`
	TimeZone    string    `json:"time_zone,omitempty"`
	Duration    string    `json:"duration,omitempty"`
	Session     string    `json:"session,omitempty"`
	City        string    `json:"city,omitempty"`
	Country     string    `json:"country,omitempty"`
	Abstract    string    `json:"abstract,omitempty"`
	Slides      string    `json:"slides,omitempty"`
	Recording   string    `json:"recording,omitempty"`
	Status      string    `json:"status,omitempty"`
	Tags        []string  `json:"tags,omitempty"`
	Type        string    `json:"talk_type,omitempty"`
	Visibility  string    `json:"visibility,omitempty"`
}

// UpcomingStatuses are the status labels that place a talk in the
// upcoming bucket.
var UpcomingStatuses = map[string]bool{
	"Scheduled": true,
	"Tentative": true,
}

// sortDateSentinel stands in for a missing talk date so ordering is total.
// It sorts before every real date.
var sortDateSentinel = time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC)

// SortTimeSentinel stands in for a missing start time. It sorts after every
// valid HH:MM value.
const SortTimeSentinel = "99:99"

// IsPublic reports whether the talk should appear in generated output.
// Any visibility other than the case-insensitive literal "private" is public.
func (t Talk) IsPublic() bool {
	return !strings.EqualFold(strings.TrimSpace(t.Visibility), "private")
}

// SortDate returns the talk date, substituting a fixed far-past sentinel
// when the date is absent.
func (t Talk) SortDate() time.Time {
	if t.TalkDate.IsZero() {
		return sortDateSentinel
	}
	return t.TalkDate
}

// SortTime returns the start time, substituting a sentinel that sorts after
// all valid times when absent.
func (t Talk) SortTime() string {
	if t.StartTime == "" {
		return SortTimeSentinel
	}
	return t.StartTime
}

// DisplayTitle returns the title, falling back to the ID when blank.
func (t Talk) DisplayTitle() string {
	if t.Title != "" {
		return t.Title
	}
	return t.ID
}

// Less orders talks by (date, time, meeting, title). Used ascending for
// upcoming lists and reversed for past ones.
func (t Talk) Less(o Talk) bool {
	td, od := t.SortDate(), o.SortDate()
	if !td.Equal(od) {
		return td.Before(od)
	}
	if t.SortTime() != o.SortTime() {
		return t.SortTime() < o.SortTime()
	}
	if t.Meeting != o.Meeting {
		return t.Meeting < o.Meeting
	}
	return t.Title < o.Title
}
