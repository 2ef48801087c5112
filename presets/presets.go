// Package presets ships ready-made patterns in the .gol save format.
package presets

import (
	"embed"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-editor/persist"
)

const patternDir = "patterns"

//go:embed patterns/*.gol
var patterns embed.FS

// ErrUnknownPreset is returned for a preset name with no stored pattern
var ErrUnknownPreset = errors.New("unknown preset")

// Names lists the available presets in alphabetical order
func Names() []string {
	entries, err := fs.ReadDir(patterns, patternDir)
	if err != nil {
		return nil
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, strings.TrimSuffix(entry.Name(), persist.FileExtension))
	}
	sort.Strings(names)
	return names
}

// Open returns the saved content of the named preset. Names are case-insensitive.
func Open(name string) ([]byte, error) {
	file := path.Join(patternDir, strings.ToLower(name)+persist.FileExtension)
	data, err := patterns.ReadFile(file)
	if err != nil {
		return nil, errors.Wrapf(ErrUnknownPreset, "[Open] no preset named %q", name)
	}
	return data, nil
}
