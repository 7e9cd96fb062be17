package model

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Wiring appends the nodes at Children (indices into a flat node list) to
// the node at Parent, in order.
type Wiring struct {
	Parent   int
	Children []int
}

// NodeMap is an ordered list of wiring instructions applied after a batch
// of templates has been materialized. In documents it is written as a list
// of single-key objects, for example [{"2": [0, 1]}].
type NodeMap []Wiring

// Wire is shorthand for a single Wiring.
func Wire(parent int, children ...int) Wiring {
	return Wiring{Parent: parent, Children: children}
}

// MarshalJSON encodes the map in its document form.
func (m NodeMap) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.document())
}

// UnmarshalJSON decodes the document form.
func (m *NodeMap) UnmarshalJSON(data []byte) error {
	var raw []map[string][]int
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("model: decode node map: %w", err)
	}
	decoded, err := nodeMapFromDocument(raw)
	if err != nil {
		return err
	}
	*m = decoded
	return nil
}

// MarshalYAML encodes the map in its document form.
func (m NodeMap) MarshalYAML() (any, error) {
	return m.document(), nil
}

// UnmarshalYAML decodes the document form.
func (m *NodeMap) UnmarshalYAML(value *yaml.Node) error {
	var raw []map[string][]int
	if err := value.Decode(&raw); err != nil {
		return fmt.Errorf("model: decode node map: %w", err)
	}
	decoded, err := nodeMapFromDocument(raw)
	if err != nil {
		return err
	}
	*m = decoded
	return nil
}

func (m NodeMap) document() []map[string][]int {
	out := make([]map[string][]int, 0, len(m))
	for _, wiring := range m {
		out = append(out, map[string][]int{
			strconv.Itoa(wiring.Parent): append([]int{}, wiring.Children...),
		})
	}
	return out
}

// nodeMapFromDocument expands each object into wirings. Objects holding
// several parents are wired in ascending index order.
func nodeMapFromDocument(raw []map[string][]int) (NodeMap, error) {
	out := make(NodeMap, 0, len(raw))
	for _, entry := range raw {
		wirings := make([]Wiring, 0, len(entry))
		for key, children := range entry {
			parent, err := strconv.Atoi(strings.TrimSpace(key))
			if err != nil {
				return nil, fmt.Errorf("model: node map key %q is not an index", key)
			}
			wirings = append(wirings, Wiring{Parent: parent, Children: children})
		}
		sort.Slice(wirings, func(i, j int) bool {
			return wirings[i].Parent < wirings[j].Parent
		})
		out = append(out, wirings...)
	}
	return out, nil
}
