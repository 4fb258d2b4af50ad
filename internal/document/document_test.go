package document

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestParseHeaderAndBody(t *testing.T) {
	header, body := Parse("---\nname: X\ndescription: Y\n---\nBODY")
	if header.Len() != 2 {
		t.Fatalf("expected 2 header fields, got %d", header.Len())
	}
	if name, _ := header.Get("name"); name != "X" {
		t.Fatalf("unexpected name: %q", name)
	}
	if desc, _ := header.Get("description"); desc != "Y" {
		t.Fatalf("unexpected description: %q", desc)
	}
	if body != "BODY" {
		t.Fatalf("unexpected body: %q", body)
	}
}

func TestParseWithoutHeaderIsPassthrough(t *testing.T) {
	text := "# Title\n\nSome body text.\n"
	header, body := Parse(text)
	if header.Len() != 0 {
		t.Fatalf("expected empty header, got %v", header.Keys())
	}
	if body != "# Title\n\nSome body text." {
		t.Fatalf("unexpected body: %q", body)
	}
}

func TestParseValueKeepsExtraColons(t *testing.T) {
	header, _ := Parse("---\nurl: https://example.com:8080/x\n---\nbody")
	url, ok := header.Get("url")
	if !ok || url != "https://example.com:8080/x" {
		t.Fatalf("unexpected url value: %q", url)
	}
}

func TestParseDuplicateKeyOverwritesKeepsPosition(t *testing.T) {
	header, _ := Parse("---\na: 1\nb: 2\na: 3\n---\nbody")
	keys := header.Keys()
	if len(keys) != 2 || keys[0] != "a" || keys[1] != "b" {
		t.Fatalf("unexpected key order: %v", keys)
	}
	if v, _ := header.Get("a"); v != "3" {
		t.Fatalf("expected later duplicate to win, got %q", v)
	}
}

func TestParseUnterminatedHeaderYieldsEmptyBody(t *testing.T) {
	header, body := Parse("---\nname: dangling\nno closing fence here")
	if v, _ := header.Get("name"); v != "dangling" {
		t.Fatalf("unexpected name: %q", v)
	}
	if body != "" {
		t.Fatalf("expected empty body for unterminated header, got %q", body)
	}
}

func TestParseIgnoresHeaderLinesWithoutColon(t *testing.T) {
	header, body := Parse("---\njust words\nname: ok\n---\nbody")
	if header.Len() != 1 {
		t.Fatalf("expected 1 field, got %d", header.Len())
	}
	if body != "body" {
		t.Fatalf("unexpected body: %q", body)
	}
}

func TestParseNormalizesCRLF(t *testing.T) {
	header, body := Parse("---\r\nname: X\r\n---\r\nBODY\r\n")
	if v, _ := header.Get("name"); v != "X" {
		t.Fatalf("unexpected name: %q", v)
	}
	if body != "BODY" {
		t.Fatalf("unexpected body: %q", body)
	}
}

func TestLoadMissingFileReturnsReadError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.md"))
	var readErr *ReadError
	if !errors.As(err, &readErr) {
		t.Fatalf("expected *ReadError, got %v", err)
	}
	if readErr.Path == "" || readErr.Err == nil {
		t.Fatalf("ReadError missing path or cause: %+v", readErr)
	}
}

func TestListFiltersAndSorts(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"b.md":       "bravo",
		"a.md":       "alpha",
		"notes.txt":  "ignored",
		"upper.MD":   "ignored, suffix is case-sensitive",
		"z-guide.md": "zulu",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	docs, skipped, err := List(dir)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(skipped) != 0 {
		t.Fatalf("expected no skipped documents, got %d", len(skipped))
	}
	var names []string
	for _, doc := range docs {
		names = append(names, doc.Name)
	}
	want := []string{"a.md", "b.md", "z-guide.md"}
	if len(names) != len(want) {
		t.Fatalf("unexpected listing: %v", names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("unexpected order: %v", names)
		}
	}
}

func TestListMissingDirIsFatal(t *testing.T) {
	_, _, err := List(filepath.Join(t.TempDir(), "nope"))
	if !errors.Is(err, ErrMissingPromptDir) {
		t.Fatalf("expected ErrMissingPromptDir, got %v", err)
	}
}

func TestListSkipsUnreadableDocument(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "good.md"), []byte("fine"), 0o644); err != nil {
		t.Fatal(err)
	}
	// A directory with a .md name forces the per-file read to fail.
	if err := os.Mkdir(filepath.Join(dir, "broken.md"), 0o755); err != nil {
		t.Fatal(err)
	}
	docs, skipped, err := List(dir)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(docs) != 1 || docs[0].Name != "good.md" {
		t.Fatalf("unexpected docs: %+v", docs)
	}
	if len(skipped) != 0 {
		t.Fatalf("directories should be filtered before load, got %d skipped", len(skipped))
	}
	// An unreadable regular file is skipped and reported.
	badPath := filepath.Join(dir, "locked.md")
	if err := os.WriteFile(badPath, []byte("secret"), 0o000); err != nil {
		t.Fatal(err)
	}
	if os.Getuid() == 0 {
		t.Skip("permission bits are not enforced for root")
	}
	docs, skipped, err = List(dir)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(docs) != 1 {
		t.Fatalf("expected 1 readable doc, got %d", len(docs))
	}
	if len(skipped) != 1 || skipped[0].Path != badPath {
		t.Fatalf("expected locked.md to be skipped, got %+v", skipped)
	}
}
