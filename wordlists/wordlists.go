// Package wordlists provides the word corpora that fontreach shapes and
// measures: lists loaded from files, lists defined in code, and a set of
// built-in per-script lists compiled into the binary.
//
// A word list is an ordered sequence of words, optionally tagged with the
// ISO 15924 script and the language of its words. The tags are shaping
// hints; lists without them still work, with per-word detection.
package wordlists

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// WordList is an ordered list of words with optional script and language
// metadata.
//
// Word lists are immutable after creation and safe for concurrent use;
// built-in lists decompress their words on first access.
type WordList struct {
	name     string
	script   string // ISO 15924 tag, e.g. "Latn"; "" if unknown
	language string // language code, e.g. "en"; "" if unknown

	once  sync.Once
	load  func() []string // nil for eagerly defined lists
	words []string
}

// Option configures a word list created with [Define].
type Option func(*WordList)

// WithScript tags the list with the ISO 15924 script of its words.
func WithScript(script string) Option {
	return func(w *WordList) { w.script = script }
}

// WithLanguage tags the list with the language of its words.
func WithLanguage(language string) Option {
	return func(w *WordList) { w.language = language }
}

// Define creates a word list from a slice. The slice is not copied; the
// caller must not mutate it afterwards.
func Define(name string, words []string, opts ...Option) *WordList {
	w := &WordList{name: name, words: words}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Load reads a word list from a whitespace-delimited file. The list is
// named after the file stem.
func Load(path string) (*WordList, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("wordlists: reading %s: %w", path, err)
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return &WordList{
		name:  strings.ReplaceAll(name, "/", "_"),
		words: strings.Fields(string(content)),
	}, nil
}

// metadata is the JSON sidecar schema: all fields optional.
type metadata struct {
	Name     string `json:"name"`
	Script   string `json:"script"`
	Language string `json:"language"`
}

// LoadWithMetadata reads a word list plus a JSON metadata sidecar of the
// form {"name": ..., "script": ..., "language": ...}. Prefer this over
// [Load] when metadata is available: script and language make shaping both
// faster and more faithful.
func LoadWithMetadata(path, metadataPath string) (*WordList, error) {
	w, err := Load(path)
	if err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(metadataPath)
	if err != nil {
		return nil, fmt.Errorf("wordlists: reading %s: %w", metadataPath, err)
	}
	var md metadata
	if err := json.Unmarshal(raw, &md); err != nil {
		return nil, fmt.Errorf("wordlists: parsing %s: %w", metadataPath, err)
	}
	if md.Name != "" {
		w.name = md.Name
	}
	w.script = md.Script
	w.language = md.Language
	return w, nil
}

// Name returns the name of the word list.
func (w *WordList) Name() string { return w.name }

// Script returns the ISO 15924 script tag of the list, or "" if unknown.
func (w *WordList) Script() string { return w.script }

// Language returns the language code of the list, or "" if unknown.
func (w *WordList) Language() string { return w.language }

// Words returns the words of the list. The returned slice is shared: the
// caller must not mutate it.
//
// For built-in lists the first call decompresses the embedded data.
func (w *WordList) Words() []string {
	if w.load != nil {
		w.once.Do(func() { w.words = w.load() })
	}
	return w.words
}

// Len returns the number of words in the list.
func (w *WordList) Len() int { return len(w.Words()) }

// At returns the i'th word of the list.
func (w *WordList) At(i int) string { return w.Words()[i] }

func (w *WordList) String() string {
	return fmt.Sprintf("WordList(%s)", w.name)
}
