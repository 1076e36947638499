package tool

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/fluxor/model/types"
)

type matchIn struct {
	Name  string   `json:"name"`
	Match string   `json:"match"`
	Any   []string `json:"contains,omitempty"`
}

type matchOut struct {
	Matched bool `json:"matched"`
}

func TestBuildSchema(t *testing.T) {
	tool, err := BuildSchema(&types.Signature{
		Name:        "organize_name-match",
		Description: "match names",
		Input:       reflect.TypeOf(&matchIn{}),
		Output:      reflect.TypeOf(&matchOut{}),
	})
	require.NoError(t, err)
	assert.EqualValues(t, "organize_name-match", tool.Name)
	assert.EqualValues(t, "match names", *tool.Description)
	assert.EqualValues(t, "object", tool.InputSchema.Type)
	assert.Contains(t, tool.InputSchema.Properties, "match")
	require.NotNil(t, tool.OutputSchema)
	assert.Contains(t, tool.OutputSchema.Properties, "matched")
}
