// Package site builds the full generated output tree from a talk
// collection: per-talk detail pages plus the aggregate index pages.
package site

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"talkgen/internal/model"
	"talkgen/internal/normalize"
	"talkgen/internal/page"
	"talkgen/internal/render"
)

// Options tunes the generated output.
type Options struct {
	// Title heads the root index page.
	Title string
	// RecentLimit caps the "Recently completed" list on the root index.
	RecentLimit int
}

// DefaultOptions returns the options used when none are given.
func DefaultOptions() Options {
	return Options{Title: "Talks", RecentLimit: 12}
}

// typeFallbackSlug buckets talks with a blank type.
const typeFallbackSlug = "unspecified"

// Build writes the whole output tree under outDir and returns the number
// of files written. Private talks are excluded from every page.
func Build(outDir string, talks []model.Talk, opts Options) (int, error) {
	if opts.RecentLimit <= 0 {
		opts.RecentLimit = DefaultOptions().RecentLimit
	}
	if opts.Title == "" {
		opts.Title = DefaultOptions().Title
	}

	var public []model.Talk
	for _, t := range talks {
		if t.IsPublic() {
			public = append(public, t)
		}
	}

	written := 0
	for _, t := range public {
		if err := writeDetail(outDir, t); err != nil {
			return written, err
		}
		written++
	}

	n, err := writeIndices(outDir, public, opts)
	written += n
	return written, err
}

func writeDetail(outDir string, t model.Talk) error {
	talkDate := ""
	if !t.TalkDate.IsZero() {
		talkDate = t.TalkDate.Format("2006-01-02")
	}
	fm := page.FrontMatter{
		page.Scalar("title", t.DisplayTitle()),
		page.Scalar("section", "talks"),
		page.Scalar("talk_id", t.ID),
		page.Scalar("talk_date", talkDate),
		page.Scalar("status", t.Status),
		page.Scalar("meeting", t.Meeting),
		page.Scalar("city", t.City),
		page.Scalar("country", t.Country),
		page.List("tags", t.Tags),
		page.Scalar("talk_type", t.Type),
		page.Scalar("generated", "true"),
	}
	path := filepath.Join(outDir, t.ID, "index.md")
	if err := page.Write(path, fm, render.DetailBlock(t)); err != nil {
		return fmt.Errorf("talk %s: %w", t.ID, err)
	}
	return nil
}

// sortTalks orders by (date, time, meeting, title), optionally reversed.
func sortTalks(talks []model.Talk, descending bool) {
	sort.SliceStable(talks, func(i, j int) bool {
		if descending {
			return talks[j].Less(talks[i])
		}
		return talks[i].Less(talks[j])
	})
}

func writeIndices(outDir string, public []model.Talk, opts Options) (int, error) {
	var upcoming, completed, canceled []model.Talk
	for _, t := range public {
		switch {
		case model.UpcomingStatuses[t.Status]:
			upcoming = append(upcoming, t)
		case t.Status == "Completed":
			completed = append(completed, t)
		case t.Status == "Canceled":
			canceled = append(canceled, t)
		}
	}
	sortTalks(upcoming, false)
	sortTalks(completed, true)
	sortTalks(canceled, true)

	written := 0
	write := func(relPath, title, body string) error {
		fm := page.FrontMatter{
			page.Scalar("title", title),
			page.Scalar("section", "talks"),
			page.Scalar("generated", "true"),
		}
		if err := page.Write(filepath.Join(outDir, relPath), fm, body); err != nil {
			return fmt.Errorf("%s: %w", relPath, err)
		}
		written++
		return nil
	}

	if err := write("index.md", opts.Title, rootIndex(public, upcoming, completed, canceled, opts)); err != nil {
		return written, err
	}
	if err := write(filepath.Join("past", "index.md"), "Past talks", pastIndex(completed)); err != nil {
		return written, err
	}

	// Tags
	tagMap := map[string][]model.Talk{}
	for _, t := range public {
		for _, tag := range t.Tags {
			tagMap[tag] = append(tagMap[tag], t)
		}
	}
	if err := write(filepath.Join("tags", "index.md"), "Talk tags", tagsIndex(tagMap)); err != nil {
		return written, err
	}
	for _, tag := range sortedKeys(tagMap) {
		body := tagPage(tag, tagMap[tag])
		if err := write(filepath.Join("tags", tag, "index.md"), "Tag: "+tag, body); err != nil {
			return written, err
		}
	}

	// Types
	typeMap := map[string][]model.Talk{}
	for _, t := range public {
		key := typeFallbackSlug
		if t.Type != "" {
			key = normalize.Slug(t.Type)
		}
		typeMap[key] = append(typeMap[key], t)
	}
	if err := write(filepath.Join("types", "index.md"), "Talk types", typesIndex(typeMap)); err != nil {
		return written, err
	}
	for _, key := range sortedKeys(typeMap) {
		label := typeLabel(key)
		body := typePage(label, typeMap[key])
		if err := write(filepath.Join("types", key, "index.md"), "Type: "+label, body); err != nil {
			return written, err
		}
	}

	return written, nil
}

func rootIndex(public, upcoming, completed, canceled []model.Talk, opts Options) string {
	var blocks []string
	blocks = append(blocks, "# "+opts.Title+"\n")
	blocks = append(blocks, render.StatsBar(public))

	blocks = append(blocks, "\n## Upcoming\n")
	if len(upcoming) > 0 {
		blocks = append(blocks, render.UpcomingCards(upcoming))
		blocks = append(blocks, render.Calendar(upcoming))
	} else {
		blocks = append(blocks, "_No upcoming talks listed._")
	}

	blocks = append(blocks, "\n## Recently completed\n")
	recent := completed
	if len(recent) > opts.RecentLimit {
		recent = recent[:opts.RecentLimit]
	}
	if len(recent) > 0 {
		for _, t := range recent {
			blocks = append(blocks, render.ListItem(t))
		}
		blocks = append(blocks, "\n[See all past talks](past/)\n")
	} else {
		blocks = append(blocks, "_No completed talks listed._")
	}

	if len(canceled) > 0 {
		blocks = append(blocks, "\n<details>\n<summary>Canceled</summary>\n")
		for _, t := range canceled {
			blocks = append(blocks, render.ListItem(t))
		}
		blocks = append(blocks, "\n</details>\n")
	}

	return strings.Join(blocks, "\n")
}

func pastIndex(completed []model.Talk) string {
	lines := []string{"# Past talks\n"}

	if m := render.WorldMap(completed); m != "" {
		lines = append(lines, m, "")
	}

	byYear := map[int][]model.Talk{}
	for _, t := range completed {
		byYear[t.SortDate().Year()] = append(byYear[t.SortDate().Year()], t)
	}
	years := make([]int, 0, len(byYear))
	for y := range byYear {
		if y == 1900 {
			// Sentinel bucket for dateless talks; not a real year.
			continue
		}
		years = append(years, y)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))

	for _, y := range years {
		group := byYear[y]
		sortTalks(group, true)
		lines = append(lines, fmt.Sprintf("## %d\n", y))
		for _, t := range group {
			lines = append(lines, render.ListItem(t))
		}
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func tagsIndex(tagMap map[string][]model.Talk) string {
	lines := []string{"# Tags\n"}

	var chips []render.Chip
	for _, tag := range sortedKeys(tagMap) {
		chips = append(chips, render.Chip{Label: tag, Href: tag + "/", Count: len(tagMap[tag])})
	}
	if cloud := render.ChipCloud(chips); cloud != "" {
		lines = append(lines, cloud, "")
	}

	for _, tag := range sortedKeys(tagMap) {
		lines = append(lines, fmt.Sprintf("- [`%s`](%s/) (%d)", tag, tag, len(tagMap[tag])))
	}
	return strings.Join(lines, "\n") + "\n"
}

func tagPage(tag string, items []model.Talk) string {
	var upcoming, past []model.Talk
	for _, t := range items {
		if model.UpcomingStatuses[t.Status] {
			upcoming = append(upcoming, t)
		} else if t.Status == "Completed" {
			past = append(past, t)
		}
	}
	sortTalks(upcoming, false)
	sortTalks(past, true)

	lines := []string{fmt.Sprintf("# Tag: `%s`\n", tag), "## Upcoming\n"}
	if len(upcoming) > 0 {
		for _, t := range upcoming {
			lines = append(lines, render.ListItem(t))
		}
	} else {
		lines = append(lines, "_None._")
	}
	lines = append(lines, "\n## Past\n")
	if len(past) > 0 {
		for _, t := range past {
			lines = append(lines, render.ListItem(t))
		}
	} else {
		lines = append(lines, "_None._")
	}
	return strings.Join(lines, "\n") + "\n"
}

func typesIndex(typeMap map[string][]model.Talk) string {
	lines := []string{"# Talk types\n"}

	var chips []render.Chip
	for _, key := range sortedKeys(typeMap) {
		chips = append(chips, render.Chip{Label: typeLabel(key), Href: key + "/", Count: len(typeMap[key])})
	}
	if cloud := render.ChipCloud(chips); cloud != "" {
		lines = append(lines, cloud, "")
	}

	for _, key := range sortedKeys(typeMap) {
		lines = append(lines, fmt.Sprintf("- [%s](%s/) (%d)", typeLabel(key), key, len(typeMap[key])))
	}
	return strings.Join(lines, "\n") + "\n"
}

func typePage(label string, items []model.Talk) string {
	sortTalks(items, true)
	lines := []string{fmt.Sprintf("# Type: %s\n", label)}
	if len(items) > 0 {
		for _, t := range items {
			lines = append(lines, render.ListItem(t))
		}
	} else {
		lines = append(lines, "_None._")
	}
	return strings.Join(lines, "\n") + "\n"
}

// typeLabel turns a type slug back into a display label ("invited-talk" ->
// "Invited Talk").
func typeLabel(slug string) string {
	words := strings.Split(slug, "-")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
