package organize

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveBuiltinServices(t *testing.T) {
	var testCases = []struct {
		description string
		patterns    []string
		expect      []string
		hasError    bool
	}{
		{description: "all", patterns: []string{"*"}, expect: []string{"nop", "printer", "system/exec", "system/secret", "system/storage"}},
		{description: "namespace prefix", patterns: []string{"system/"}, expect: []string{"system/exec", "system/secret", "system/storage"}},
		{description: "wildcard suffix", patterns: []string{"system/s*"}, expect: []string{"system/secret", "system/storage"}},
		{description: "exact and duplicate", patterns: []string{"printer", "printer", "p*"}, expect: []string{"printer"}},
		{description: "no match", patterns: []string{"system"}},
		{description: "invalid", patterns: []string{"{"}, hasError: true},
	}

	for _, testCase := range testCases {
		services, err := resolveBuiltinServices(testCase.patterns)
		if testCase.hasError {
			assert.Error(t, err, testCase.description)
			continue
		}
		require.NoError(t, err, testCase.description)
		var names []string
		for _, svc := range services {
			names = append(names, svc.Name())
		}
		sort.Strings(names)
		assert.EqualValues(t, testCase.expect, names, testCase.description)
	}
}
