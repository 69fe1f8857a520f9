package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunOrderS3(t *testing.T) {
	var buf bytes.Buffer
	err := runOrder(&buf, []string{"(1 2)", "(1 2 3)"})
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "order:")
	assert.Contains(t, out, "6")
	assert.Contains(t, out, "abelian: false")
}

func TestRunAnalyzeS3(t *testing.T) {
	var buf bytes.Buffer
	err := runAnalyze(&buf, []string{"(1 2)", "(1 2 3)"}, "")
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "solvable:              true")
	assert.Contains(t, out, "nilpotent:             false")
	assert.Contains(t, out, "simple:")
}

func TestRunSylowCyclicC4(t *testing.T) {
	var buf bytes.Buffer
	err := runSylow(&buf, []string{"2", "(1 2 3 4)"}, "")
	require.NoError(t, err)
	out := buf.String()
	assert.True(t, strings.Contains(out, "|Syl_2(G)|:"))
}

func TestNewOrderCommandShape(t *testing.T) {
	cmd := NewOrderCommand()
	assert.Equal(t, "order <cycle-notation>...", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
}
