// Package loader reads the talks CSV into normalized Talk records.
package loader

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"talkgen/internal/model"
	"talkgen/internal/normalize"
)

// row is one CSV line keyed by header name.
type row map[string]string

// get returns the first present header alias, defaulting to empty string.
func (r row) get(aliases ...string) string {
	for _, k := range aliases {
		if v, ok := r[k]; ok {
			return v
		}
	}
	return ""
}

// Load reads the CSV at path and returns the de-duplicated talk collection.
// Malformed dates and times degrade silently; only a hard read failure is
// an error.
func Load(path string) ([]model.Talk, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	header := records[0]
	if len(header) > 0 {
		// Tolerate a UTF-8 byte-order mark on the first header cell.
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	var talks []model.Talk
	for _, rec := range records[1:] {
		r := row{}
		for i, name := range header {
			if i < len(rec) {
				r[name] = rec[i]
			} else {
				r[name] = ""
			}
		}
		talks = append(talks, fromRow(r))
	}

	return dedup(talks), nil
}

// fromRow maps one CSV row to a Talk, applying header aliases and the
// normalizer to every field.
func fromRow(r row) model.Talk {
	id := normalize.Space(r.get("Talk ID", "TalkID"))
	if id == "" {
		id = normalize.Slug(r.get("Title"))
	}

	return model.Talk{
		ID:          id,
		Title:       normalize.Space(r.get("Title")),
		Meeting:     normalize.Space(r.get("Meeting", "Meeting/Venue")),
		MeetingLink: normalize.Space(r.get("Meeting Link", "MeetingLink")),
		Location:    normalize.Space(r.get("Location")),
		StartDate:   normalize.Date(r.get("Start Date", "StartDate")),
		EndDate:     normalize.Date(r.get("End Date", "EndDate")),
		TalkDate:    normalize.Date(r.get("Talk Date", "TalkDate", "Date")),
		StartTime:   normalize.Clock(r.get("Start Time", "StartTime")),
		TimeZone:    normalize.Space(r.get("Time Zone", "Timezone", "TZ")),
		Duration:    normalize.Space(r.get("Duration")),
		Session:     normalize.Space(r.get("Session")),
		City:        normalize.Space(r.get("City")),
		Country:     normalize.Space(r.get("Country")),
		// "Abstratct" matches a long-lived typo in the source sheet.
		Abstract:   normalize.Space(r.get("Abstract", "Abstratct")),
		Slides:     normalize.Space(r.get("Slides")),
		Recording:  normalize.Space(r.get("Recording")),
		Status:     normalize.Space(r.get("Status")),
		Tags:       normalize.Tags(r.get("Tags")),
		Type:       normalize.Space(r.get("Talk Type", "TalkType", "Type")),
		Visibility: normalize.Space(r.get("Visibility")),
	}
}

// dedup collapses talks sharing an ID, last occurrence wins. Collection
// order is the order IDs were first seen.
func dedup(talks []model.Talk) []model.Talk {
	index := make(map[string]int, len(talks))
	var out []model.Talk
	for _, t := range talks {
		if i, seen := index[t.ID]; seen {
			out[i] = t
			continue
		}
		index[t.ID] = len(out)
		out = append(out, t)
	}
	return out
}
