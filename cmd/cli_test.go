package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buffer := &bytes.Buffer{}
	prev := stdout
	stdout = buffer
	defer func() { stdout = prev }()
	err := RunWithArgs(args)
	return buffer.String(), err
}

func TestMatchCmd(t *testing.T) {
	testCases := []struct {
		description string
		args        []string
		expected    []map[string]interface{}
	}{
		{
			description: "captures",
			args:        []string{"match", "-p", "IMG_{date}_{label}", "IMG_20240101_beach"},
			expected: []map[string]interface{}{{
				"input":   "IMG_20240101_beach",
				"matched": true,
				"tested":  "IMG_20240101_beach",
				"updates": map[string]interface{}{"name": map[string]interface{}{"date": "20240101", "label": "beach"}},
			}},
		},
		{
			description: "ignore case with endswith",
			args:        []string{"match", "-i", "-p", "*", "--endswith", "_DRAFT", "notes_draft", "notes"},
			expected: []map[string]interface{}{
				{"input": "notes_draft", "matched": true, "tested": "notes_draft", "updates": map[string]interface{}{"name": "notes_draft"}},
				{"input": "notes", "matched": false, "tested": "notes"},
			},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			out, err := runCLI(t, testCase.args...)
			require.NoError(t, err)
			lines := strings.Split(strings.TrimSpace(out), "\n")
			require.Len(t, lines, len(testCase.expected))
			for i, line := range lines {
				var actual map[string]interface{}
				require.NoError(t, json.Unmarshal([]byte(line), &actual))
				assert.EqualValues(t, testCase.expected[i], actual)
			}
		})
	}
}

func TestMatchCmd_InvalidPattern(t *testing.T) {
	_, err := runCLI(t, "match", "-p", "{date", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unterminated capture")
}

func TestCompileCmd(t *testing.T) {
	out, err := runCLI(t, "compile", "{a}.{b}")
	require.NoError(t, err)
	var actual map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &actual))
	assert.EqualValues(t, []interface{}{"a", "b"}, actual["captures"])
	assert.EqualValues(t, []interface{}{"named(a)", `literal(".")`, "named(b)"}, actual["tokens"])
}

func TestScanCmd_RequiresConfig(t *testing.T) {
	_, err := runCLI(t, "scan")
	require.Error(t, err)
}

func TestListActionsCmd(t *testing.T) {
	out, err := runCLI(t, "list-actions", "organize/*")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.NotEmpty(t, lines)
	assert.EqualValues(t, "organize/name\t[name filter]", lines[0])
	assert.Contains(t, out, "  compile\t")
	assert.Contains(t, out, "  match\t")
	assert.NotContains(t, out, "system/")
}
