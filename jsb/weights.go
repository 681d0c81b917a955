package jsb

import (
	"strings"

	"github.com/jsbtools/jsbkit/internal/reader"
	"github.com/jsbtools/jsbkit/pkg/types"
)

// DefaultWeightPrefixes are the key families found in weight containers:
// group headers, the individual selection factors, and the pack version
// trailer fields.
var DefaultWeightPrefixes = []string{
	"TEAM_PICKING_STYLE::",
	"simatchshared::TSF_",
	"ME_PACK_VERSION_",
}

const (
	packVersionPrefix = "ME_PACK_VERSION_"
	groupHeaderPrefix = "TEAM_PICKING_STYLE::"

	// miscGroup collects weights that appear before any group header.
	miscGroup = "MISC"
)

// DecodeWeights prefix-scans the whole container and groups the recovered
// keys into version-delimited packs. A nil prefixes slice means
// DefaultWeightPrefixes.
//
// The version trailer closes a pack: its fields accumulate until the YEAR
// key arrives, at which point a new pack opens carrying them. Weights seen
// before the first group header land in the MISC group. Value-less version
// fields default to zero.
func (c *Container) DecodeWeights(prefixes []string) ([]types.WeightPack, error) {
	if err := c.guard(); err != nil {
		return nil, err
	}
	if prefixes == nil {
		prefixes = DefaultWeightPrefixes
	}

	var (
		packs    []types.WeightPack
		ver      types.Version
		cur      *types.WeightPack
		curGroup string
	)
	open := func() {
		packs = append(packs, types.WeightPack{Version: ver, Groups: map[string]types.Group{}})
		cur = &packs[len(packs)-1]
		ver = types.Version{}
		curGroup = ""
	}

	for _, hit := range reader.ScanPrefixed(c.data, prefixes) {
		if strings.HasPrefix(hit.Key, packVersionPrefix) {
			field := strings.TrimPrefix(hit.Key, packVersionPrefix)
			switch field {
			case "MAJOR":
				ver.Major = hit.Val
			case "MINOR":
				ver.Minor = hit.Val
			case "RELEASE":
				ver.Release = hit.Val
			case "YEAR":
				ver.Year = hit.Val
				open()
			}
			continue
		}

		if cur == nil {
			open()
		}
		if strings.HasPrefix(hit.Key, groupHeaderPrefix) {
			curGroup = hit.Key
			cur.Groups[curGroup] = types.Group{}
			continue
		}
		if curGroup == "" {
			curGroup = miscGroup
			cur.Groups[curGroup] = types.Group{}
		}
		if hit.HasVal {
			cur.Groups[curGroup][hit.Key] = hit.Val
		}
	}
	return packs, nil
}
