package analysis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimateTokens_Empty(t *testing.T) {
	est := EstimateTokens("")

	assert.Equal(t, 0, est.Approximate)
	assert.Equal(t, 0, est.Range.Min)
	assert.Equal(t, 0, est.Range.Max)
}

func TestEstimateTokens_KnownLength(t *testing.T) {
	// 100 characters: 100/4=25, 100/5=20, ceil(100/3)=34.
	est := EstimateTokens(strings.Repeat("a", 100))

	assert.Equal(t, 25, est.Approximate)
	assert.Equal(t, 20, est.Range.Min)
	assert.Equal(t, 34, est.Range.Max)
}

func TestEstimateTokens_RoundsUp(t *testing.T) {
	est := EstimateTokens("abc")

	assert.Equal(t, 1, est.Approximate)
	assert.Equal(t, 1, est.Range.Min)
	assert.Equal(t, 1, est.Range.Max)
}

func TestEstimateTokens_BandOrdering(t *testing.T) {
	for _, text := range []string{"a", "hello world", strings.Repeat("x", 7), strings.Repeat("word ", 200)} {
		est := EstimateTokens(text)
		assert.LessOrEqual(t, est.Range.Min, est.Approximate, "min <= approximate for %q", text)
		assert.LessOrEqual(t, est.Approximate, est.Range.Max, "approximate <= max for %q", text)
	}
}
