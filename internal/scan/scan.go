// Package scan provides a minimal positional scanner for short
// configuration tokens, such as the time blocks of an exclusion rule.
package scan

// Scanner walks a string with an explicit cursor. Extraction methods
// advance the cursor only when they succeed, so a failed extraction
// leaves the scanner where it was.
type Scanner struct {
	input string
	pos   int
}

// New returns a Scanner positioned at the start of input.
func New(input string) *Scanner {
	return &Scanner{input: input}
}

// Skip consumes c if it is the next byte and reports whether it did.
func (s *Scanner) Skip(c byte) bool {
	if s.pos < len(s.input) && s.input[s.pos] == c {
		s.pos++
		return true
	}
	return false
}

// GetHMS extracts an HH:MM:SS triple at the cursor. The hour may be one
// or two digits; minutes and seconds must be exactly two. Only the shape
// is checked, not the value ranges.
func (s *Scanner) GetHMS() (hh, mm, ss int, ok bool) {
	mark := s.pos

	hh, ok = s.digits(1, 2)
	if !ok || !s.Skip(':') {
		s.pos = mark
		return 0, 0, 0, false
	}
	mm, ok = s.digits(2, 2)
	if !ok || !s.Skip(':') {
		s.pos = mark
		return 0, 0, 0, false
	}
	ss, ok = s.digits(2, 2)
	if !ok {
		s.pos = mark
		return 0, 0, 0, false
	}
	return hh, mm, ss, true
}

// EOS reports whether the cursor has consumed the whole input.
func (s *Scanner) EOS() bool {
	return s.pos >= len(s.input)
}

// digits reads between min and max decimal digits, greedily.
func (s *Scanner) digits(min, max int) (int, bool) {
	value := 0
	n := 0
	for n < max && s.pos < len(s.input) {
		c := s.input[s.pos]
		if c < '0' || c > '9' {
			break
		}
		value = value*10 + int(c-'0')
		s.pos++
		n++
	}
	if n < min {
		s.pos -= n
		return 0, false
	}
	return value, true
}
