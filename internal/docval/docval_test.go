package docval

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripRemovesNilAtAnyDepth(t *testing.T) {
	in := map[string]any{
		"name":  "Margherita",
		"image": nil,
		"meta": map[string]any{
			"notes": nil,
			"tags":  []any{"veg", nil, map[string]any{"x": nil, "y": 1}},
		},
	}

	got := Strip(in).(map[string]any)

	assert.Equal(t, "Margherita", got["name"])
	assert.NotContains(t, got, "image")
	meta := got["meta"].(map[string]any)
	assert.NotContains(t, meta, "notes")
	tags := meta["tags"].([]any)
	require.Len(t, tags, 3)
	assert.Nil(t, tags[1])
	assert.Equal(t, map[string]any{"y": 1}, tags[2])
}

func TestStripKeepsFalsyValues(t *testing.T) {
	in := map[string]any{"count": 0, "active": false, "note": ""}
	got := Strip(in).(map[string]any)
	assert.Equal(t, in, got)
}

func TestStripIsIdempotent(t *testing.T) {
	in := map[string]any{
		"a": nil,
		"b": map[string]any{"c": nil, "d": []any{map[string]any{"e": nil}}},
		"f": "keep",
	}
	once := Strip(in)
	twice := Strip(once)
	assert.Equal(t, once, twice)
}

func TestStripDoesNotMutateInput(t *testing.T) {
	in := map[string]any{"a": nil, "b": map[string]any{"c": nil}}
	_ = Strip(in)
	assert.Contains(t, in, "a")
	assert.Contains(t, in["b"].(map[string]any), "c")
}

func TestTimeRoundTrip(t *testing.T) {
	t1 := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)
	t2 := time.Date(2025, 3, 14, 10, 5, 30, 123456789, time.UTC)

	in := map[string]any{
		"timestamp": t1,
		"items": []any{
			map[string]any{"servedAt": t2},
		},
		"nested": map[string]any{"paidAt": t1},
		"name":   "table 4",
		"count":  3,
	}

	back := ParseTimes(FormatTimes(in))
	assert.Equal(t, in, back)
}

func TestFormatTimesProducesRFC3339(t *testing.T) {
	ts := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	got := FormatTimes(map[string]any{"at": ts}).(map[string]any)
	assert.Equal(t, "2025-01-02T03:04:05Z", got["at"])
}

func TestParseTimesLeavesPlainStrings(t *testing.T) {
	in := map[string]any{"note": "see you at 10", "date": "2025-01-02T03:04:05Z"}
	got := ParseTimes(in).(map[string]any)
	assert.Equal(t, "see you at 10", got["note"])
	assert.IsType(t, time.Time{}, got["date"])
}

func TestTransformsAreTotalOnScalars(t *testing.T) {
	for _, v := range []any{nil, 1, 1.5, true, "x"} {
		assert.NotPanics(t, func() {
			_ = Strip(v)
			_ = ParseTimes(v)
			_ = FormatTimes(v)
		})
	}
}
