package shortcuts

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-elements/pkg/model"
)

type documentFile struct {
	Shortcuts map[string]model.Template `json:"shortcuts" yaml:"shortcuts"`
}

// LoadFS walks fsys and collects the shortcut definitions of every JSON or
// YAML document. A nil fsys yields no definitions. Names are normalised and
// must be unique across files.
func LoadFS(fsys fs.FS) (map[string]model.Template, error) {
	defs := make(map[string]model.Template)
	if fsys == nil {
		return defs, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isDocumentFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("shortcuts: read %s: %w", path, err)
		}
		doc, err := parseDocument(data, path)
		if err != nil {
			return err
		}

		for rawName, tpl := range doc.Shortcuts {
			name := normalize(rawName)
			if name == "" {
				return fmt.Errorf("shortcuts: file %s defines an empty shortcut name", path)
			}
			if _, exists := defs[name]; exists {
				return fmt.Errorf("shortcuts: duplicate shortcut %q (file %s)", name, path)
			}
			defs[name] = tpl
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return defs, nil
}

func parseDocument(data []byte, source string) (documentFile, error) {
	var doc documentFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return documentFile{}, fmt.Errorf("shortcuts: file %s is empty", source)
	}

	if strings.EqualFold(filepath.Ext(source), ".json") {
		if err := json.Unmarshal(data, &doc); err != nil {
			return documentFile{}, fmt.Errorf("shortcuts: parse %s: %w", source, err)
		}
		return doc, nil
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return documentFile{}, fmt.Errorf("shortcuts: parse %s: %w", source, err)
	}
	return doc, nil
}

func isDocumentFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
