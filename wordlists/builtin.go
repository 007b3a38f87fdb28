package wordlists

import (
	"compress/gzip"
	"embed"
	"encoding/json"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/fontreach/fontreach/internal/logging"
)

// Built-in word lists ship gzip-compressed inside the binary, one
// newline-delimited .txt.gz per list plus a JSON metadata sidecar. The
// registry itself is built on first access; each list's words are
// decompressed on first use and retained for the life of the process.

//go:embed data/*.txt.gz data/*.json
var builtinData embed.FS

var builtinRegistry = sync.OnceValue(func() map[string]*WordList {
	entries, err := builtinData.ReadDir("data")
	if err != nil {
		panic(fmt.Sprintf("wordlists: embedded data unreadable: %v", err))
	}

	registry := make(map[string]*WordList)
	for _, entry := range entries {
		if !strings.HasSuffix(entry.Name(), ".txt.gz") {
			continue
		}
		stem := strings.TrimSuffix(entry.Name(), ".txt.gz")

		var md metadata
		raw, err := builtinData.ReadFile(path.Join("data", stem+".json"))
		if err != nil {
			panic(fmt.Sprintf("wordlists: missing metadata for built-in list %s", stem))
		}
		if err := json.Unmarshal(raw, &md); err != nil {
			panic(fmt.Sprintf("wordlists: bad metadata for built-in list %s: %v", stem, err))
		}
		name := md.Name
		if name == "" {
			name = stem
		}

		dataPath := path.Join("data", entry.Name())
		registry[name] = &WordList{
			name:     name,
			script:   md.Script,
			language: md.Language,
			load:     func() []string { return decompressWords(name, dataPath) },
		}
	}
	return registry
})

// decompressWords inflates one embedded list. The data is produced by this
// repository's build, so failure to decode is a build defect, not a
// runtime condition.
func decompressWords(name, dataPath string) []string {
	f, err := builtinData.Open(dataPath)
	if err != nil {
		panic(fmt.Sprintf("wordlists: opening embedded %s: %v", dataPath, err))
	}
	defer f.Close()

	zr, err := gzip.NewReader(f)
	if err != nil {
		panic(fmt.Sprintf("wordlists: decoding embedded %s: %v", dataPath, err))
	}
	raw, err := io.ReadAll(zr)
	if err != nil {
		panic(fmt.Sprintf("wordlists: decoding embedded %s: %v", dataPath, err))
	}

	words := strings.Fields(string(raw))
	logging.Logger().Debug("loaded built-in word list",
		"list", name, "words", len(words))
	return words
}

// Builtin returns the built-in word list with the given name.
func Builtin(name string) (*WordList, bool) {
	w, ok := builtinRegistry()[name]
	return w, ok
}

// BuiltinNames returns the names of all built-in word lists, sorted.
func BuiltinNames() []string {
	registry := builtinRegistry()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns every built-in word list, sorted by name.
func All() []*WordList {
	names := BuiltinNames()
	lists := make([]*WordList, len(names))
	for i, name := range names {
		lists[i], _ = Builtin(name)
	}
	return lists
}
