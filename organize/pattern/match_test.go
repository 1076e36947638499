package pattern

import (
	"encoding/json"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPattern_Match(t *testing.T) {
	var testCases = []struct {
		description string
		pattern     string
		sensitive   bool
		input       string
		matched     bool
		captures    map[string]string
	}{
		{description: "exact literal", pattern: "report", sensitive: true, input: "report", matched: true, captures: map[string]string{}},
		{description: "literal prefix only", pattern: "report", sensitive: true, input: "report2", matched: false},
		{description: "literal suffix only", pattern: "report", sensitive: true, input: "my report", matched: false},
		{description: "literal case mismatch", pattern: "REPORT", sensitive: true, input: "report", matched: false},
		{description: "literal case folded", pattern: "REPORT", sensitive: false, input: "report", matched: true, captures: map[string]string{}},
		{description: "star matches empty", pattern: "*", sensitive: true, input: "", matched: true, captures: map[string]string{}},
		{description: "star matches anything", pattern: "*", sensitive: true, input: "a/b.c", matched: true, captures: map[string]string{}},
		{description: "stem and ext", pattern: "{a}.{b}", sensitive: true, input: "report.txt", matched: true, captures: map[string]string{"a": "report", "b": "txt"}},
		{description: "greedy leftmost", pattern: "{a}.{b}", sensitive: true, input: "my.file.txt", matched: true, captures: map[string]string{"a": "my.file", "b": "txt"}},
		{description: "missing separator", pattern: "{a}.{b}", sensitive: true, input: "report", matched: false},
		{description: "empty capture omitted", pattern: "{a}.{b}", sensitive: true, input: "report.", matched: true, captures: map[string]string{"a": "report"}},
		{description: "trailing literal backtracks", pattern: "*{ext}.pdf", sensitive: true, input: "scan.2024.pdf", matched: true, captures: map[string]string{}},
		{description: "capture keeps original case", pattern: "invoice_{id}", sensitive: false, input: "INVOICE_Ab12", matched: true, captures: map[string]string{"id": "Ab12"}},
		{description: "adjacent wildcards give first the span", pattern: "{a}{b}", sensitive: true, input: "xyz", matched: true, captures: map[string]string{"a": "xyz"}},
		{description: "middle literal", pattern: "IMG_{date}_{num}", sensitive: true, input: "IMG_20240101_0042", matched: true, captures: map[string]string{"date": "20240101", "num": "0042"}},
		{description: "path separators are plain text", pattern: "{dir}/{file}", sensitive: true, input: "a/b/c", matched: true, captures: map[string]string{"dir": "a/b", "file": "c"}},
		{description: "unicode folding", pattern: "ÄRGER*", sensitive: false, input: "ärger.txt", matched: true, captures: map[string]string{}},
		{description: "unicode capture", pattern: "{name}-Ω", sensitive: true, input: "日本-Ω", matched: true, captures: map[string]string{"name": "日本"}},
		{description: "empty pattern empty input", pattern: "", sensitive: true, input: "", matched: true, captures: map[string]string{}},
		{description: "empty pattern non empty input", pattern: "", sensitive: true, input: "x", matched: false},
		{description: "invalid byte captured verbatim", pattern: "{stem}.txt", sensitive: true, input: "a\xffb.txt", matched: true, captures: map[string]string{"stem": "a\xffb"}},
		{description: "invalid byte folded capture", pattern: "{stem}.TXT", sensitive: false, input: "A\xfeB.txt", matched: true, captures: map[string]string{"stem": "A\xfeB"}},
		{description: "invalid literal byte matches itself", pattern: "a\xffb*", sensitive: false, input: "A\xffB.log", matched: true, captures: map[string]string{}},
		{description: "invalid literal byte differs", pattern: "a\xfeb", sensitive: true, input: "a\xffb", matched: false},
		{description: "invalid byte is not a rune error", pattern: "a\uFFFDb", sensitive: true, input: "a\xffb", matched: false},
		{description: "invalid byte does not split a rune", pattern: "{a}\xa9", sensitive: true, input: "\u00e9", matched: false},
	}

	for _, testCase := range testCases {
		p := MustCompile(testCase.pattern, testCase.sensitive)
		captures, ok := p.Match(testCase.input)
		assert.EqualValues(t, testCase.matched, ok, testCase.description)
		assert.EqualValues(t, testCase.matched, p.Test(testCase.input), testCase.description)
		if !ok {
			assert.Nil(t, captures, testCase.description)
			continue
		}
		assert.EqualValues(t, testCase.captures, captures.Map(), testCase.description)
	}
}

func TestPattern_Match_LiteralEquality(t *testing.T) {
	for _, literal := range []string{"a", "abc", "A.b-C", "  ", "x}y"} {
		p := MustCompile(literal, true)
		for _, input := range []string{"a", "abc", "A.b-C", "a.b-c", "  ", "x}y", ""} {
			assert.EqualValues(t, literal == input, p.Test(input), "%q vs %q", literal, input)
		}
		folded := MustCompile(literal, false)
		for _, input := range []string{"a", "ABC", "a.B-c", "x}Y"} {
			assert.EqualValues(t, strings.EqualFold(literal, input), folded.Test(input), "%q vs %q", literal, input)
		}
	}
}

func TestPattern_Match_InvalidUTF8Equality(t *testing.T) {
	values := []string{"a\xffb", "a\xfeb", "a\uFFFDb", "\xff", "\xc3", "\u00e9", "\xc3\xa9x"}
	for _, literal := range values {
		for _, sensitive := range []bool{true, false} {
			p := MustCompile(literal, sensitive)
			for _, input := range values {
				assert.EqualValues(t, literal == input, p.Test(input), "%q vs %q", literal, input)
			}
		}
	}
}

func TestPattern_Match_Order(t *testing.T) {
	p := MustCompile("{z}_{a}_{m}", true)
	captures, ok := p.Match("1_2_3")
	assert.True(t, ok)
	assert.EqualValues(t, []string{"z", "a", "m"}, captures.Names())
	value, found := captures.Get("a")
	assert.True(t, found)
	assert.EqualValues(t, "2", value)
	_, found = captures.Get("missing")
	assert.False(t, found)

	data, err := json.Marshal(captures)
	assert.NoError(t, err)
	assert.EqualValues(t, `{"z":"1","a":"2","m":"3"}`, string(data))
}

func TestPattern_Match_Idempotent(t *testing.T) {
	p := MustCompile("{a}.{b}", false)
	first, ok := p.Match("My.File.TXT")
	assert.True(t, ok)
	for i := 0; i < 5; i++ {
		again, ok := p.Match("My.File.TXT")
		assert.True(t, ok)
		assert.EqualValues(t, first.Map(), again.Map())
	}
	assert.EqualValues(t, map[string]string{"a": "My.File", "b": "TXT"}, first.Map())
}

func TestPattern_Match_Bounded(t *testing.T) {
	p := MustCompile("*a*a*a*a*a*a*a*a*b", true)
	input := strings.Repeat("a", 2000)
	assert.False(t, p.Test(input))
	assert.True(t, p.Test(input+"b"))
}

func TestPattern_Match_LinearSteps(t *testing.T) {
	var testCases = []struct {
		pattern string
		unit    string
		suffix  string
	}{
		{pattern: "*{a}x", unit: "a"},
		{pattern: "*a*a*a*b", unit: "a"},
		{pattern: "{a}.{b}.{c}", unit: "ab."},
		{pattern: "*{a}x", unit: "a", suffix: "x"},
	}
	for _, testCase := range testCases {
		p := MustCompile(testCase.pattern, true)
		steps := func(n int) int {
			m := newMatcher(p, strings.Repeat(testCase.unit, n)+testCase.suffix)
			m.match(0, 0)
			return m.steps
		}
		small, large := steps(2000), steps(8000)
		size := len(testCase.unit)*8000 + len(testCase.suffix)
		assert.LessOrEqual(t, large, 2*(len(p.tokens)+1)*(size+1), testCase.pattern)
		// four times the input, about four times the work
		assert.Less(t, large, 5*small, testCase.pattern)
	}
}

func TestPattern_Match_Concurrent(t *testing.T) {
	p := MustCompile("{a}.{b}", false)
	inputs := []string{"My.File.TXT", "report.pdf", "noext", "a\xffb.c", "..."}
	expect := make([]*Captures, len(inputs))
	for i, input := range inputs {
		expect[i], _ = p.Match(input)
	}
	var wg sync.WaitGroup
	for g := 0; g < 16; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for n := 0; n < 50; n++ {
				for i, input := range inputs {
					actual, _ := p.Match(input)
					assert.EqualValues(t, expect[i], actual, input)
				}
			}
		}()
	}
	wg.Wait()
}
