package abilities

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	tgterr "github.com/KirkDiggler/aoe-targeting/internal/errors"
)

// File is the on-disk definitions document, configs/abilities.json by default
type File struct {
	Abilities []Definition `json:"abilities" jsonschema:"description=Area abilities keyed by their unique key"`
}

// Decode reads and validates a definitions document
func Decode(r io.Reader) (*File, error) {
	var f File
	if err := json.NewDecoder(r).Decode(&f); err != nil {
		return nil, tgterr.WrapWithCode(err, tgterr.CodeInvalidArgument, "failed to decode ability definitions")
	}

	seen := make(map[string]struct{}, len(f.Abilities))
	for i := range f.Abilities {
		d := &f.Abilities[i]
		if err := d.Validate(); err != nil {
			return nil, err
		}
		if _, dup := seen[d.Key]; dup {
			return nil, tgterr.Validationf("duplicate ability key %s", d.Key).WithMeta("ability", d.Key)
		}
		seen[d.Key] = struct{}{}
	}

	return &f, nil
}

// LoadFile opens path and decodes it
func LoadFile(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open ability definitions %s: %w", path, err)
	}
	defer fh.Close()

	return Decode(fh)
}
