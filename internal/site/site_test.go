package site

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"talkgen/internal/model"
)

func makeTalk(over func(*model.Talk)) model.Talk {
	t := model.Talk{
		ID:         "test-talk",
		Title:      "Test Talk",
		Meeting:    "Test Conf",
		TalkDate:   time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		StartTime:  "10:00",
		City:       "Phoenix",
		Country:    "USA",
		Status:     "Scheduled",
		Tags:       []string{"ml", "astro"},
		Type:       "Oral",
		Visibility: "Public",
	}
	if over != nil {
		over(&t)
	}
	return t
}

func build(t *testing.T, talks []model.Talk) string {
	t.Helper()
	dir := t.TempDir()
	if _, err := Build(dir, talks, DefaultOptions()); err != nil {
		t.Fatalf("build: %v", err)
	}
	return dir
}

func read(t *testing.T, dir string, parts ...string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(append([]string{dir}, parts...)...))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	return string(data)
}

func exists(dir string, parts ...string) bool {
	_, err := os.Stat(filepath.Join(append([]string{dir}, parts...)...))
	return err == nil
}

func TestBuild_CreatesExpectedFiles(t *testing.T) {
	dir := build(t, []model.Talk{
		makeTalk(func(tk *model.Talk) { tk.ID = "upcoming1" }),
		makeTalk(func(tk *model.Talk) {
			tk.ID = "past1"
			tk.Status = "Completed"
			tk.TalkDate = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
		}),
	})

	for _, p := range [][]string{
		{"index.md"},
		{"past", "index.md"},
		{"tags", "index.md"},
		{"types", "index.md"},
		{"upcoming1", "index.md"},
		{"past1", "index.md"},
	} {
		if !exists(dir, p...) {
			t.Errorf("expected %v to exist", filepath.Join(p...))
		}
	}
}

func TestBuild_VisibilityFilter(t *testing.T) {
	dir := build(t, []model.Talk{
		makeTalk(nil),
		makeTalk(func(tk *model.Talk) { tk.ID = "secret"; tk.Visibility = "Private" }),
	})

	if exists(dir, "secret", "index.md") {
		t.Error("private talk must not get a detail page")
	}
	for _, p := range [][]string{{"index.md"}, {"tags", "index.md"}, {"types", "index.md"}} {
		if strings.Contains(read(t, dir, p...), "secret") {
			t.Errorf("private talk leaked into %v", filepath.Join(p...))
		}
	}
}

func TestBuild_TagFanOut(t *testing.T) {
	dir := build(t, []model.Talk{makeTalk(nil)})

	if !exists(dir, "tags", "ml", "index.md") {
		t.Error("expected tags/ml page")
	}
	if !exists(dir, "tags", "astro", "index.md") {
		t.Error("expected tags/astro page")
	}
	if exists(dir, "tags", "other", "index.md") {
		t.Error("unexpected tag page")
	}
	if !strings.Contains(read(t, dir, "tags", "ml", "index.md"), "test-talk") {
		t.Error("tag page should list the talk")
	}
}

func TestBuild_TypePages(t *testing.T) {
	dir := build(t, []model.Talk{
		makeTalk(nil),
		makeTalk(func(tk *model.Talk) { tk.ID = "untyped"; tk.Type = "" }),
	})

	if !exists(dir, "types", "oral", "index.md") {
		t.Error("expected types/oral page")
	}
	if !exists(dir, "types", "unspecified", "index.md") {
		t.Error("blank type should bucket under unspecified")
	}
}

func TestBuild_IndexMarkers(t *testing.T) {
	dir := build(t, []model.Talk{
		makeTalk(nil),
		makeTalk(func(tk *model.Talk) {
			tk.ID = "done"
			tk.Status = "Completed"
			tk.TalkDate = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
		}),
	})

	index := read(t, dir, "index.md")
	if !strings.Contains(index, "stats-bar") {
		t.Error("index should have a stats bar")
	}
	if !strings.Contains(index, "talk-card") {
		t.Error("index should have upcoming cards")
	}
	if !strings.Contains(index, `class="calendar"`) {
		t.Error("index should have the calendar grid")
	}

	past := read(t, dir, "past", "index.md")
	if !strings.Contains(past, "world-map") {
		t.Error("past page should have the world map")
	}
	if !strings.Contains(past, "## 2025") {
		t.Error("past talks should group by year")
	}

	if !strings.Contains(read(t, dir, "tags", "index.md"), "chip-cloud") {
		t.Error("tags index should have the chip cloud")
	}
	if !strings.Contains(read(t, dir, "types", "index.md"), "chip-cloud") {
		t.Error("types index should have the chip cloud")
	}
}

func TestBuild_CanceledCollapsed(t *testing.T) {
	dir := build(t, []model.Talk{
		makeTalk(func(tk *model.Talk) { tk.ID = "axed"; tk.Status = "Canceled" }),
	})
	index := read(t, dir, "index.md")
	if !strings.Contains(index, "<summary>Canceled</summary>") {
		t.Error("canceled talks should render inside a details block")
	}
	if !strings.Contains(index, "axed") {
		t.Error("canceled talk entry missing")
	}
}

func TestBuild_DatelessCompletedHiddenFromYearGroups(t *testing.T) {
	dir := build(t, []model.Talk{
		makeTalk(func(tk *model.Talk) {
			tk.ID = "nodate"
			tk.Status = "Completed"
			tk.TalkDate = time.Time{}
		}),
	})
	past := read(t, dir, "past", "index.md")
	if strings.Contains(past, "## 1900") {
		t.Error("sentinel year bucket must not render")
	}
}

func TestBuild_EndToEndScenario(t *testing.T) {
	// Mirrors the documented t1 scenario: scheduled talk, two tags,
	// default visibility.
	t1 := model.Talk{
		ID:       "t1",
		Title:    "Foo",
		TalkDate: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		Status:   "Scheduled",
		Tags:     []string{"ml", "astro"},
	}
	dir := build(t, []model.Talk{t1})

	detail := read(t, dir, "t1", "index.md")
	if !strings.Contains(detail, `talk_id: "t1"`) {
		t.Error("detail front matter should carry talk_id")
	}
	if !strings.Contains(detail, "tags:\n  - \"ml\"\n  - \"astro\"\n") {
		t.Errorf("detail front matter should list both tags:\n%s", detail)
	}

	index := read(t, dir, "index.md")
	upcoming := index[strings.Index(index, "## Upcoming"):]
	if !strings.Contains(upcoming, "t1") {
		t.Error("t1 should appear in the upcoming section of the root index")
	}

	if !strings.Contains(read(t, dir, "tags", "ml", "index.md"), "t1") {
		t.Error("tags/ml should list t1")
	}
}

func TestBuild_ReturnsFileCount(t *testing.T) {
	dir := t.TempDir()
	n, err := Build(dir, []model.Talk{makeTalk(nil)}, DefaultOptions())
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	// 1 detail + index + past + tags index + 2 tag pages + types index +
	// 1 type page.
	if n != 8 {
		t.Errorf("expected 8 files written, got %d", n)
	}
}
