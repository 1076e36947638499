package conv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Match   string   `json:"match"`
	Values  []string `json:"values,omitempty"`
	Enabled *bool    `json:"enabled,omitempty"`
}

func TestConvert(t *testing.T) {
	var fromMap sample
	require.NoError(t, Convert(map[string]interface{}{"match": "{a}", "values": []interface{}{"x"}, "enabled": false}, &fromMap))
	assert.EqualValues(t, sample{Match: "{a}", Values: []string{"x"}, Enabled: Pointer(false)}, fromMap)

	var fromPtr sample
	require.NoError(t, Convert(&sample{Match: "*"}, &fromPtr))
	assert.EqualValues(t, "*", fromPtr.Match)

	untouched := sample{Match: "keep"}
	require.NoError(t, Convert(nil, &untouched))
	assert.EqualValues(t, "keep", untouched.Match)

	assert.Error(t, Convert(1, nil))
	assert.Error(t, Convert(1, untouched))
	assert.Error(t, Convert("text", &fromMap))
}

func TestAssign(t *testing.T) {
	var generic interface{}
	require.NoError(t, Assign(&generic, &sample{Match: "a"}))
	assert.EqualValues(t, &sample{Match: "a"}, generic)

	var typed sample
	require.NoError(t, Assign(&typed, &sample{Match: "b"}))
	assert.EqualValues(t, "b", typed.Match)

	assert.NoError(t, Assign(nil, 1))
}

func TestDereference(t *testing.T) {
	assert.EqualValues(t, "", Dereference[string](nil))
	assert.EqualValues(t, "x", Dereference(Pointer("x")))
}
