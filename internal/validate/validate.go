// Package validate checks the rendered HTML output tree for missing files
// and markers after a site build.
package validate

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Report collects findings. Errors fail the run, warnings do not.
type Report struct {
	Errors   []string
	Warnings []string
	// HTMLCount is the number of HTML files inspected.
	HTMLCount int
}

// OK reports whether validation passed.
func (r Report) OK() bool {
	return len(r.Errors) == 0
}

func (r *Report) errorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *Report) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// requiredFiles must exist under the build dir.
var requiredFiles = []string{
	"index.html",
	"past/index.html",
	"tags/index.html",
	"types/index.html",
	"assets/style.css",
}

// Run validates the rendered site under buildDir. A missing build dir is
// the only hard error; everything else lands in the report.
func Run(buildDir string) (Report, error) {
	var r Report

	info, err := os.Stat(buildDir)
	if err != nil || !info.IsDir() {
		return r, fmt.Errorf("build dir %s not found, run the site build first", buildDir)
	}

	for _, f := range requiredFiles {
		if _, err := os.Stat(filepath.Join(buildDir, filepath.FromSlash(f))); err != nil {
			r.errorf("missing required file: %s", f)
		}
	}

	var htmlFiles []string
	_ = filepath.WalkDir(buildDir, func(path string, d fs.DirEntry, err error) error {
		if err == nil && !d.IsDir() && strings.HasSuffix(path, ".html") {
			htmlFiles = append(htmlFiles, path)
		}
		return nil
	})
	if len(htmlFiles) == 0 {
		r.errorf("no HTML files found in %s", buildDir)
	}
	r.HTMLCount = len(htmlFiles)

	for _, f := range htmlFiles {
		checkHTML(&r, buildDir, f)
	}

	checkCSS(&r, buildDir)
	checkMarker(&r, buildDir, "index.html", "stats-bar", "missing stats bar")
	checkMarker(&r, buildDir, "index.html", "talk-card", "no talk cards found")
	checkMarker(&r, buildDir, "past/index.html", "world-map", "missing world map SVG")
	checkMarker(&r, buildDir, "tags/index.html", "chip-cloud", "missing chip cloud")

	return r, nil
}

func checkHTML(r *Report, buildDir, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		r.errorf("%s: %v", path, err)
		return
	}
	text := string(data)
	rel, _ := filepath.Rel(buildDir, path)

	if !strings.Contains(strings.ToLower(text), "<!doctype html>") {
		r.errorf("%s: missing DOCTYPE", rel)
	}
	if !strings.Contains(text, "</html>") {
		r.errorf("%s: missing closing </html>", rel)
	}
	if !strings.Contains(text, "<title>") {
		r.errorf("%s: missing <title>", rel)
	}
	if !strings.Contains(text, "style.css") {
		r.errorf("%s: not linking to style.css", rel)
	}
}

func checkCSS(r *Report, buildDir string) {
	data, err := os.ReadFile(filepath.Join(buildDir, "assets", "style.css"))
	if err != nil {
		return // absence already reported as a missing required file
	}
	css := string(data)
	if !strings.Contains(css, "prefers-color-scheme: dark") {
		r.errorf("style.css: missing dark mode media query")
	}
	if !strings.Contains(css, "--bg:") {
		r.warnf("style.css: no --bg CSS variable found")
	}
}

// checkMarker warns when a page exists but lacks an expected marker string.
func checkMarker(r *Report, buildDir, relPath, marker, msg string) {
	data, err := os.ReadFile(filepath.Join(buildDir, filepath.FromSlash(relPath)))
	if err != nil {
		return
	}
	if !strings.Contains(string(data), marker) {
		r.warnf("%s: %s", relPath, msg)
	}
}
