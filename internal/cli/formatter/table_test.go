package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := stripANSI(RenderTable(
		[]string{"#", "PLANET"},
		[][]string{{"1", "Venus"}, {"12", "Sun"}},
		-1,
	))

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "  #   PLANET", lines[0])
	assert.Equal(t, "  ──  ──────", lines[1])
	assert.Equal(t, "  1   Venus", lines[2])
	assert.Equal(t, "  12  Sun", lines[3])
}

func TestRenderTable_HighlightsRow(t *testing.T) {
	out := stripANSI(RenderTable(
		[]string{"#", "PLANET"},
		[][]string{{"1", "Venus"}, {"2", "Mercury"}},
		1,
	))

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[3], "▶ 2"))
	assert.True(t, strings.HasPrefix(lines[2], "  1"))
}

func TestRenderTable_NoHeaders(t *testing.T) {
	assert.Empty(t, RenderTable(nil, [][]string{{"x"}}, 0))
}
