package pattern

// Match matches the whole input against the pattern. On success it returns
// the non-empty named captures, sliced from input so case and bytes are
// preserved.
func (p *Pattern) Match(input string) (*Captures, bool) {
	m := newMatcher(p, input)
	if !m.match(0, 0) {
		return nil, false
	}
	captures := &Captures{}
	for i, token := range p.tokens {
		if token.Kind != NamedWildcard {
			continue
		}
		span := m.spans[i]
		if span[1] > span[0] {
			captures.set(token.Text, input[m.offsets[span[0]]:m.offsets[span[1]]])
		}
	}
	return captures, true
}

// matcher works on unit indexes; offsets maps them back to byte positions.
type matcher struct {
	tokens  []Token
	units   []rune
	offsets []int
	spans   [][2]int
	failed  []bool
	// floor[ti] is the lowest start known to fail for wildcard ti: no end at
	// or after it lets the rest of the pattern match.
	floor []int
	steps int
}

func newMatcher(p *Pattern, input string) *matcher {
	units, offsets := decode(input, !p.caseSensitive)
	floor := make([]int, len(p.tokens))
	for i := range floor {
		floor[i] = len(units) + 1
	}
	return &matcher{
		tokens:  p.tokens,
		units:   units,
		offsets: offsets,
		spans:   make([][2]int, len(p.tokens)),
		failed:  make([]bool, (len(p.tokens)+1)*(len(units)+1)),
		floor:   floor,
	}
}

// match reports whether tokens[ti:] match units[pos:]. A failed (ti, pos) is
// never explored twice, and each wildcard tries every end at most once across
// all of its starts, so the work is bounded by len(tokens) × len(input).
func (m *matcher) match(ti, pos int) bool {
	m.steps++
	if ti == len(m.tokens) {
		return pos == len(m.units)
	}
	state := ti*(len(m.units)+1) + pos
	if m.failed[state] {
		return false
	}
	token := m.tokens[ti]
	switch token.Kind {
	case Literal:
		if m.hasLiteral(pos, token.units) && m.match(ti+1, pos+len(token.units)) {
			return true
		}
	default:
		if pos < m.floor[ti] {
			// ends from floor on already failed; try the longest remaining first
			end := m.floor[ti] - 1
			if end > len(m.units) {
				end = len(m.units)
			}
			for ; end >= pos; end-- {
				if m.match(ti+1, end) {
					m.spans[ti] = [2]int{pos, end}
					return true
				}
			}
			m.floor[ti] = pos
		}
	}
	m.failed[state] = true
	return false
}

func (m *matcher) hasLiteral(pos int, literal []rune) bool {
	if len(m.units)-pos < len(literal) {
		return false
	}
	for i, r := range literal {
		if m.units[pos+i] != r {
			return false
		}
	}
	return true
}
