// Package page writes generated Markdown files while preserving the
// user-editable notes block across regenerations.
package page

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"talkgen/internal/normalize"
)

// Literal markers delimiting the two managed spans of a generated file.
const (
	NotesStart = "<!-- NOTES START (you can edit freely) -->"
	NotesEnd   = "<!-- NOTES END -->"
	AutoStart  = "<!-- AUTO-GENERATED START -->"
	AutoEnd    = "<!-- AUTO-GENERATED END -->"
)

// defaultNotesInterior seeds the notes block of a newly created file.
const defaultNotesInterior = "(Add your notes here. This block will be preserved when regenerating.)"

// Field is one front-matter entry. Exactly one of Value or List is used;
// a list field renders as indented items even when empty.
type Field struct {
	Key   string
	Value string
	List  []string
	isList bool
}

// FrontMatter is an ordered front-matter block. Order matters so that
// regeneration is byte-deterministic.
type FrontMatter []Field

// Scalar returns a scalar front-matter field.
func Scalar(key, value string) Field {
	return Field{Key: key, Value: value}
}

// List returns a list-valued front-matter field.
func List(key string, items []string) Field {
	return Field{Key: key, List: items, isList: true}
}

// serialize renders the delimited front-matter block, everything through the
// closing delimiter and its trailing newline.
func (fm FrontMatter) serialize() string {
	var b strings.Builder
	b.WriteString("---\n")
	for _, f := range fm {
		if f.isList {
			b.WriteString(f.Key + ":\n")
			for _, item := range f.List {
				b.WriteString("  - " + normalize.Quote(item) + "\n")
			}
			continue
		}
		b.WriteString(f.Key + ": " + normalize.Quote(f.Value) + "\n")
	}
	b.WriteString("---\n")
	return b.String()
}

// defaultNotesBlock is the placeholder block used for new files or when the
// markers were removed.
func defaultNotesBlock() string {
	return NotesStart + "\n" + defaultNotesInterior + "\n" + NotesEnd + "\n"
}

// existingNotes recovers the notes block from a previously generated file.
// The span between the first open marker and the first close marker after it
// is kept byte-for-byte. A missing file or missing markers yields the
// default placeholder block; content outside proper markers is not scanned,
// so notes typed there are lost on the next regeneration.
func existingNotes(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return defaultNotesBlock()
	}
	text := string(data)

	open := strings.Index(text, NotesStart)
	if open < 0 {
		return defaultNotesBlock()
	}
	rest := text[open+len(NotesStart):]
	end := strings.Index(rest, NotesEnd)
	if end < 0 {
		return defaultNotesBlock()
	}
	return NotesStart + rest[:end] + NotesEnd + "\n"
}

// Write regenerates the file at path: front matter and auto block are fully
// replaced, the notes block is carried over from the previous version.
// Calling Write twice with identical inputs produces identical bytes. The
// overwrite is not atomic; a crash mid-write can leave a partial file.
func Write(path string, fm FrontMatter, body string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create dir: %w", err)
	}

	notes := existingNotes(path)

	content := fm.serialize() +
		notes +
		"\n" +
		AutoStart + "\n" +
		strings.TrimRight(body, " \t\n") + "\n" +
		AutoEnd + "\n"

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write page: %w", err)
	}
	return nil
}
