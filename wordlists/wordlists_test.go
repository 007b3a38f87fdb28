package wordlists

import (
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"testing"
)

func TestDefine(t *testing.T) {
	list := Define("greetings", []string{"hello", "xin", "chào"},
		WithScript("Latn"), WithLanguage("vi"))

	if list.Name() != "greetings" {
		t.Errorf("Name() = %q", list.Name())
	}
	if list.Script() != "Latn" || list.Language() != "vi" {
		t.Errorf("metadata = (%q, %q), want (Latn, vi)", list.Script(), list.Language())
	}
	if list.Len() != 3 {
		t.Errorf("Len() = %d, want 3", list.Len())
	}
	if list.At(2) != "chào" {
		t.Errorf("At(2) = %q, want chào", list.At(2))
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "english.txt")
	if err := os.WriteFile(path, []byte("alpha beta\n\tgamma\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	list, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if list.Name() != "english" {
		t.Errorf("Name() = %q, want english", list.Name())
	}
	if want := []string{"alpha", "beta", "gamma"}; !reflect.DeepEqual(list.Words(), want) {
		t.Errorf("Words() = %v, want %v", list.Words(), want)
	}
	if list.Script() != "" || list.Language() != "" {
		t.Errorf("bare file should have no metadata, got (%q, %q)",
			list.Script(), list.Language())
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Error("missing file did not fail")
	}
}

func TestLoadWithMetadata(t *testing.T) {
	dir := t.TempDir()
	wordsPath := filepath.Join(dir, "words.txt")
	metaPath := filepath.Join(dir, "words.json")
	if err := os.WriteFile(wordsPath, []byte("سلام دنیا"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(metaPath,
		[]byte(`{"name":"farsi","script":"Arab","language":"fa"}`), 0o644); err != nil {
		t.Fatal(err)
	}

	list, err := LoadWithMetadata(wordsPath, metaPath)
	if err != nil {
		t.Fatal(err)
	}
	if list.Name() != "farsi" {
		t.Errorf("Name() = %q, want farsi", list.Name())
	}
	if list.Script() != "Arab" || list.Language() != "fa" {
		t.Errorf("metadata = (%q, %q), want (Arab, fa)", list.Script(), list.Language())
	}
	if list.Len() != 2 {
		t.Errorf("Len() = %d, want 2", list.Len())
	}
}

func TestLoadWithMetadataBadJSON(t *testing.T) {
	dir := t.TempDir()
	wordsPath := filepath.Join(dir, "words.txt")
	metaPath := filepath.Join(dir, "words.json")
	if err := os.WriteFile(wordsPath, []byte("a"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(metaPath, []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadWithMetadata(wordsPath, metaPath); err == nil {
		t.Error("bad metadata did not fail")
	}
}

func TestBuiltin(t *testing.T) {
	for _, name := range []string{"latin", "vietnamese", "arabic"} {
		list, ok := Builtin(name)
		if !ok {
			t.Errorf("Builtin(%q) missing", name)
			continue
		}
		if list.Name() != name {
			t.Errorf("Builtin(%q).Name() = %q", name, list.Name())
		}
		if list.Script() == "" {
			t.Errorf("Builtin(%q) has no script metadata", name)
		}
		if list.Len() == 0 {
			t.Errorf("Builtin(%q) decompressed to zero words", name)
		}
	}

	if _, ok := Builtin("no-such-list"); ok {
		t.Error("Builtin invented a list")
	}
}

func TestBuiltinNamesSorted(t *testing.T) {
	names := BuiltinNames()
	if len(names) == 0 {
		t.Fatal("no built-in lists")
	}
	if !sort.StringsAreSorted(names) {
		t.Errorf("BuiltinNames() = %v, not sorted", names)
	}
}

func TestAll(t *testing.T) {
	lists := All()
	names := BuiltinNames()
	if len(lists) != len(names) {
		t.Fatalf("All() returned %d lists for %d names", len(lists), len(names))
	}
	for i, list := range lists {
		if list.Name() != names[i] {
			t.Errorf("All()[%d] = %q, want %q", i, list.Name(), names[i])
		}
	}
}

func TestWordsStableAcrossCalls(t *testing.T) {
	list, ok := Builtin("latin")
	if !ok {
		t.Fatal("latin list missing")
	}
	first := list.Words()
	second := list.Words()
	if &first[0] != &second[0] {
		t.Error("repeated Words() calls decompressed again")
	}
}
