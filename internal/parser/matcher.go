package parser

import "strconv"

// matcher is a cursor over one line for the per-event grammars. Fields are
// separated by runs of spaces and tabs; newlines never occur because the
// scanner already removed them.
type matcher struct {
	s   string
	pos int
}

func newMatcher(line string) *matcher {
	return &matcher{s: line}
}

func (m *matcher) skipSpace() {
	for m.pos < len(m.s) && (m.s[m.pos] == ' ' || m.s[m.pos] == '\t') {
		m.pos++
	}
}

// literal matches an exact string after optional horizontal whitespace.
func (m *matcher) literal(lit string) bool {
	m.skipSpace()
	end := m.pos + len(lit)
	if end > len(m.s) || m.s[m.pos:end] != lit {
		return false
	}
	m.pos = end
	return true
}

// int32 matches a base-10 integer with an optional minus sign. The digit
// run must fit the 32-bit signed range; overflow is a match failure, not a
// truncated value.
func (m *matcher) int32() (int32, bool) {
	m.skipSpace()
	start := m.pos
	if m.pos < len(m.s) && m.s[m.pos] == '-' {
		m.pos++
	}
	digits := m.pos
	for m.pos < len(m.s) && m.s[m.pos] >= '0' && m.s[m.pos] <= '9' {
		m.pos++
	}
	if m.pos == digits {
		m.pos = start
		return 0, false
	}
	v, err := strconv.ParseInt(m.s[start:m.pos], 10, 32)
	if err != nil {
		m.pos = start
		return 0, false
	}
	return int32(v), true
}

// payload matches one maximal non-empty run of non-space characters.
// Only the space character terminates it; any other byte, tabs included,
// is payload.
func (m *matcher) payload() (string, bool) {
	m.skipSpace()
	start := m.pos
	for m.pos < len(m.s) && m.s[m.pos] != ' ' {
		m.pos++
	}
	if m.pos == start {
		return "", false
	}
	return m.s[start:m.pos], true
}

// atEnd reports whether only trailing horizontal whitespace remains.
func (m *matcher) atEnd() bool {
	m.skipSpace()
	return m.pos == len(m.s)
}
