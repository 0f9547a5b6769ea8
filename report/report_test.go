package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTableRendersHeaderAndRow(t *testing.T) {
	var buf bytes.Buffer
	tbl := NewTable(&buf)
	tbl.AddRow(Row{
		B:         3,
		Delta:     1,
		Algorithm: "iterative-greedy",
		Weight:    42,
	})
	tbl.Render()

	out := strings.ToLower(buf.String())
	require.Contains(t, out, "algorithm")
	require.Contains(t, out, "iterative-greedy")
	require.Contains(t, buf.String(), "42")
}
