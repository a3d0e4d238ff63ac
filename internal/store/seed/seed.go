package seed

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Makepad-fr/itemlist/internal/model"
	"github.com/Makepad-fr/itemlist/internal/store/memstore"
)

// Read-only seed files. Single file, human-readable, JSON or YAML by extension.
// Nothing is ever written back: the store lives and dies with the process.

// ErrUnknownFormat is returned for a seed file that is neither JSON nor YAML.
var ErrUnknownFormat = errors.New("unknown seed format")

// Load returns the items in the file at path, or memstore.DefaultItems when
// path is empty.
func Load(path string) ([]model.Item, error) {
	if path == "" {
		return memstore.DefaultItems(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return Decode(b, filepath.Ext(path))
}

// Decode parses b as the format named by ext (".json", ".yaml" or ".yml").
func Decode(b []byte, ext string) ([]model.Item, error) {
	var items []model.Item
	switch strings.ToLower(ext) {
	case ".json":
		if err := json.Unmarshal(b, &items); err != nil {
			return nil, fmt.Errorf("json unmarshal: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &items); err != nil {
			return nil, fmt.Errorf("yaml unmarshal: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
	if items == nil {
		items = []model.Item{}
	}
	return items, nil
}
