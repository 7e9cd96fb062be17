// Package document reads batch template documents: a list of templates
// plus an optional node map, written in JSON or YAML.
//
//	title: Card
//	templates:
//	  - {tag: p, text: one}
//	  - {tag: p, text: two}
//	  - {tag: div, classList: [card]}
//	nodeMap:
//	  - 2: [0, 1]
package document

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-elements/pkg/dom"
	"github.com/goliatone/go-elements/pkg/materialize"
	"github.com/goliatone/go-elements/pkg/model"
)

// Document is a batch of templates and the wiring applied after they are
// materialized.
type Document struct {
	Title     string           `json:"title,omitempty" yaml:"title,omitempty"`
	Templates []model.Template `json:"templates" yaml:"templates"`
	NodeMap   model.NodeMap    `json:"nodeMap,omitempty" yaml:"nodeMap,omitempty"`
}

// Parse decodes data. Files ending in .json are read as JSON, anything else
// as YAML.
func Parse(data []byte, source string) (Document, error) {
	var doc Document
	if len(strings.TrimSpace(string(data))) == 0 {
		return Document{}, fmt.Errorf("document: %s is empty", source)
	}

	if strings.EqualFold(filepath.Ext(source), ".json") {
		if err := json.Unmarshal(data, &doc); err != nil {
			return Document{}, fmt.Errorf("document: parse %s: %w", source, err)
		}
	} else if err := yaml.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("document: parse %s: %w", source, err)
	}

	if len(doc.Templates) == 0 {
		return Document{}, fmt.Errorf("document: %s defines no templates", source)
	}
	return doc, nil
}

// LoadFile reads and parses the document at path.
func LoadFile(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("document: read %s: %w", path, err)
	}
	return Parse(data, path)
}

// Materialize builds every template with m, applies the node map and
// returns the nodes left without a parent, in template order.
func (d Document) Materialize(m *materialize.Materializer) ([]*dom.Node, error) {
	nodes, err := m.CreateMany(d.Templates, d.NodeMap)
	if err != nil {
		return nil, err
	}
	roots := make([]*dom.Node, 0, len(nodes))
	for _, node := range nodes {
		if node.Parent == nil {
			roots = append(roots, node)
		}
	}
	return roots, nil
}

// RenderHTML materializes the document and serialises its roots.
func (d Document) RenderHTML(m *materialize.Materializer) (string, error) {
	roots, err := d.Materialize(m)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for _, root := range roots {
		if err := dom.RenderNode(&b, root); err != nil {
			return "", fmt.Errorf("document: render: %w", err)
		}
	}
	return b.String(), nil
}
