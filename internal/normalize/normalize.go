// Package normalize provides the field cleanup helpers applied to every
// value read from the talks CSV.
package normalize

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// SlugFallback is returned by Slug when nothing survives sanitization.
const SlugFallback = "item"

// Space collapses all runs of whitespace (including newlines) to a single
// space and trims both ends.
func Space(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Date parses a calendar date in YYYY-MM-DD or YYYYMMDD form, tried in that
// order. Anything else, including the empty string, yields the zero time.
func Date(s string) time.Time {
	s = Space(s)
	if s == "" {
		return time.Time{}
	}
	if d, err := time.Parse("2006-01-02", s); err == nil {
		return d
	}
	if d, err := time.Parse("20060102", s); err == nil {
		return d
	}
	return time.Time{}
}

// Clock normalizes a wall-clock time of day to HH:MM. Accepts H:MM or HH:MM
// with hour 0-23 and minute 0-59. Non-matching but non-empty input is
// returned unchanged rather than dropped; empty input stays empty.
func Clock(s string) string {
	s = Space(s)
	if s == "" {
		return ""
	}
	colon := strings.IndexByte(s, ':')
	if colon < 1 || colon > 2 || len(s)-colon-1 != 2 {
		return s
	}
	hh, err := strconv.Atoi(s[:colon])
	if err != nil {
		return s
	}
	mm, err := strconv.Atoi(s[colon+1:])
	if err != nil {
		return s
	}
	if hh < 0 || hh > 23 || mm < 0 || mm > 59 {
		return s
	}
	return fmt.Sprintf("%02d:%02d", hh, mm)
}

// Tags splits a comma-separated tag list, lowercasing and trimming each
// piece. Empty pieces are dropped; source order is preserved.
func Tags(s string) []string {
	s = Space(s)
	if s == "" {
		return nil
	}
	var tags []string
	for _, p := range strings.Split(s, ",") {
		p = strings.ToLower(strings.TrimSpace(p))
		if p != "" {
			tags = append(tags, p)
		}
	}
	return tags
}

// Slug lowercases s, strips everything outside [a-z0-9- ], converts spaces
// to hyphens and collapses hyphen runs. An empty result maps to SlugFallback
// so slugs are always usable as path segments.
func Slug(s string) string {
	s = strings.ToLower(Space(s))
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
		case r == ' ':
			b.WriteByte('-')
		}
	}
	out := b.String()
	for strings.Contains(out, "--") {
		out = strings.ReplaceAll(out, "--", "-")
	}
	out = strings.Trim(out, "-")
	if out == "" {
		return SlugFallback
	}
	return out
}

// Quote renders s as a conservatively quoted front-matter scalar,
// backslash-escaping embedded double quotes.
func Quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}
