// Package persist converts grids to and from the plain-text .gol save format.
//
// A save holds one line per grid row, each listing the row's cells left to
// right as space-separated "true"/"false" tokens, followed by a final
// "<width>,<height>" line. File handling is left to the caller.
package persist

import (
	"bytes"
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-editor/model"
)

// FileExtension is the conventional suffix for save files
const FileExtension = ".gol"

// Encode returns the save format of g
func Encode(g *model.Grid) []byte {
	return []byte(strings.Join(g.Serialize(), "\n"))
}

// Decode parses data produced by Encode. A single trailing newline and
// CRLF line endings are accepted.
func Decode(data []byte) (*model.Grid, error) {
	text := string(bytes.ReplaceAll(data, []byte("\r\n"), []byte("\n")))
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil, errors.Wrap(model.ErrMalformedState, "[Decode] empty input")
	}

	g, err := model.Deserialize(strings.Split(text, "\n"))
	if err != nil {
		return nil, errors.Wrap(err, "[Decode] failed to deserialize grid")
	}
	return g, nil
}
