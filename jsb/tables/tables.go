// Package tables loads the static data that anchors structured access to
// container files: offset tables (field name to the absolute offsets of
// each copy) and season anchor sets. Known layouts ship embedded; callers
// with other file versions load their own YAML.
package tables

import (
	_ "embed"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/jsbtools/jsbkit/pkg/types"
)

//go:embed physics_offsets.yaml
var physicsOffsetsYAML []byte

//go:embed season_anchors.yaml
var seasonAnchorsYAML []byte

type offsetsDoc struct {
	Fields map[string][]int `yaml:"fields"`
}

type anchorsDoc struct {
	Seasons map[string]types.Anchors `yaml:"seasons"`
}

// ParseOffsetTable decodes a YAML offset-table document.
func ParseOffsetTable(raw []byte) (types.OffsetTable, error) {
	var doc offsetsDoc
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("tables: parse offset table: %w", err)
	}
	if len(doc.Fields) == 0 {
		return nil, fmt.Errorf("tables: offset table has no fields")
	}
	for field, offs := range doc.Fields {
		if len(offs) == 0 {
			return nil, fmt.Errorf("tables: field %s has no offsets", field)
		}
		for _, off := range offs {
			if off < 0 {
				return nil, fmt.Errorf("tables: field %s has negative offset %d", field, off)
			}
		}
	}
	return types.OffsetTable(doc.Fields), nil
}

// LoadOffsetTable reads an offset-table YAML file.
func LoadOffsetTable(path string) (types.OffsetTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseOffsetTable(raw)
}

// ParseAnchorSets decodes a YAML document of named season anchor sets.
func ParseAnchorSets(raw []byte) (map[string]types.Anchors, error) {
	var doc anchorsDoc
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("tables: parse anchor sets: %w", err)
	}
	if len(doc.Seasons) == 0 {
		return nil, fmt.Errorf("tables: anchor document has no seasons")
	}
	return doc.Seasons, nil
}

// LoadAnchorSets reads a season-anchors YAML file.
func LoadAnchorSets(path string) (map[string]types.Anchors, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseAnchorSets(raw)
}

var (
	physicsOffsets types.OffsetTable
	seasonAnchors  map[string]types.Anchors
)

func init() {
	var err error
	if physicsOffsets, err = ParseOffsetTable(physicsOffsetsYAML); err != nil {
		panic(err)
	}
	if seasonAnchors, err = ParseAnchorSets(seasonAnchorsYAML); err != nil {
		panic(err)
	}
}

// PhysicsOffsets returns the embedded offset table for the physics
// constraints container. The result is shared; callers must not mutate it.
func PhysicsOffsets() types.OffsetTable { return physicsOffsets }

// SeasonAnchors returns the embedded anchor set with the given name.
func SeasonAnchors(name string) (types.Anchors, bool) {
	a, ok := seasonAnchors[name]
	return a, ok
}

// SeasonNames lists the embedded anchor set names in sorted order.
func SeasonNames() []string {
	names := make([]string, 0, len(seasonAnchors))
	for name := range seasonAnchors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
