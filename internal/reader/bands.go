package reader

import (
	"github.com/jsbtools/jsbkit/internal/format"
	"github.com/jsbtools/jsbkit/pkg/types"
)

// DefaultScoreRows is the row count of the expected-score table when the
// container uses an uncounted object; every known file carries eleven.
const DefaultScoreRows = 11

var scoreShape = RowShape{
	Name: "expected_score",
	Fields: []FieldSpec{
		{Key: "name", Kinds: []types.Kind{types.KindString}, Resync: TrailingControl},
		{Key: "negative_multiplier", Kinds: []types.Kind{types.KindInt32, types.KindInt64}},
		{Key: "positive_multiplier", Kinds: []types.Kind{types.KindInt32, types.KindInt64}},
	},
}

// ParseScoreBands decodes the expected-score triplet table anchored at
// anchor. A counted array container overrides the default row count.
func ParseScoreBands(b []byte, anchor, stop int) ([]types.ScoreBand, error) {
	body, count, counted, err := format.BodyStart(b, anchor, "expected_score_data")
	if err != nil {
		return nil, containerErr(b, anchor, err)
	}
	rows := DefaultScoreRows
	if counted && count > 0 {
		rows = count
	}
	raw, err := ParseRows(b, body, stop, rows, scoreShape)
	if err != nil {
		return nil, err
	}
	out := make([]types.ScoreBand, len(raw))
	for i, r := range raw {
		out[i] = types.ScoreBand{
			Name:               r[0].Str,
			NegativeMultiplier: r[1].Int,
			PositiveMultiplier: r[2].Int,
		}
	}
	return out, nil
}
