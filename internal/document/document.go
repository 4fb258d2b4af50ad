// Package document loads prompt documents: markdown files that optionally
// open with a `---` delimited block of `key: value` header lines followed by
// the document body.
package document

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const (
	// Delimiter opens and closes a header block. It must be the entire line.
	Delimiter = "---"

	// Extension is the exact, case-sensitive suffix prompt files must carry.
	Extension = ".md"
)

// ErrMissingPromptDir indicates the prompt directory does not exist or is not
// a directory. It is fatal to the whole run.
var ErrMissingPromptDir = errors.New("document: prompt directory missing")

// ReadError reports a single document that could not be read. Prompt-document
// reads that fail this way are skipped, not fatal.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("document: read %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// Field is a single parsed header line.
type Field struct {
	Key   string
	Value string
}

// Header is the ordered key/value mapping parsed from a document's leading
// delimiter block. A duplicate key overwrites the value but keeps the
// position of the first insertion.
type Header struct {
	fields []Field
}

// Get returns the value for key and whether it was present.
func (h Header) Get(key string) (string, bool) {
	for _, f := range h.fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return "", false
}

// Len reports the number of distinct keys.
func (h Header) Len() int { return len(h.fields) }

// Keys returns the keys in insertion order.
func (h Header) Keys() []string {
	keys := make([]string, len(h.fields))
	for i, f := range h.fields {
		keys[i] = f.Key
	}
	return keys
}

func (h *Header) set(key, value string) {
	for i, f := range h.fields {
		if f.Key == key {
			h.fields[i].Value = value
			return
		}
	}
	h.fields = append(h.fields, Field{Key: key, Value: value})
}

// Document is one loaded prompt file. Immutable after Load.
type Document struct {
	// Name is the base filename, e.g. "clean-architecture.md".
	Name string
	// Path is the full path the document was loaded from.
	Path string
	// Header holds the parsed delimiter block, empty when the file has none.
	Header Header
	// Body is the text after the header block, trimmed of surrounding
	// whitespace.
	Body string
}

// Stem returns the filename without its extension.
func (d Document) Stem() string {
	return strings.TrimSuffix(d.Name, filepath.Ext(d.Name))
}

// Load reads and parses a single document. Any read failure is returned as a
// *ReadError carrying the path and cause.
func Load(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, &ReadError{Path: path, Err: err}
	}
	header, body := Parse(string(data))
	return Document{
		Name:   filepath.Base(path),
		Path:   filepath.Clean(path),
		Header: header,
		Body:   body,
	}, nil
}

// Parse splits document text into its header block and body.
//
// The header is parsed only when the very first line is exactly the
// delimiter. Scanning then consumes lines until a closing delimiter: each
// consumed line containing a colon is split at the first colon into a trimmed
// key and a trimmed value (further colons stay verbatim in the value); lines
// without a colon are ignored. If the file ends before a closing delimiter,
// the whole file belongs to the header and the body is empty.
func Parse(text string) (Header, string) {
	normalized := strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(normalized, "\n")
	if len(lines) == 0 || lines[0] != Delimiter {
		return Header{}, strings.TrimSpace(normalized)
	}
	var header Header
	bodyStart := len(lines)
	for i := 1; i < len(lines); i++ {
		if lines[i] == Delimiter {
			bodyStart = i + 1
			break
		}
		if idx := strings.Index(lines[i], ":"); idx >= 0 {
			key := strings.TrimSpace(lines[i][:idx])
			value := strings.TrimSpace(lines[i][idx+1:])
			header.set(key, value)
		}
	}
	if bodyStart >= len(lines) {
		return header, ""
	}
	body := strings.Join(lines[bodyStart:], "\n")
	return header, strings.TrimSpace(body)
}

// List enumerates the prompt directory, filters to the markdown extension,
// sorts lexicographically by full path, and loads each file. Individual read
// failures are collected and skipped rather than aborting the listing; a
// missing directory is fatal and wraps ErrMissingPromptDir.
func List(dir string) ([]Document, []*ReadError, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil, fmt.Errorf("%w: %s", ErrMissingPromptDir, dir)
		}
		return nil, nil, fmt.Errorf("document: stat %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, nil, fmt.Errorf("%w: %s is not a directory", ErrMissingPromptDir, dir)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("document: read %s: %w", dir, err)
	}
	paths := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !strings.HasSuffix(entry.Name(), Extension) {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(paths)

	docs := make([]Document, 0, len(paths))
	var skipped []*ReadError
	for _, path := range paths {
		doc, err := Load(path)
		if err != nil {
			var readErr *ReadError
			if errors.As(err, &readErr) {
				skipped = append(skipped, readErr)
				continue
			}
			return nil, skipped, err
		}
		docs = append(docs, doc)
	}
	return docs, skipped, nil
}
