package transform

import (
	"fmt"

	"github.com/tdewolff/parse/v2/strconv"
)

// Function is one entry of a transform list, such as "translate(5 10)".
type Function struct {
	Name string
	Args []float64
}

type scanner struct {
	data  string
	index int
}

func (s *scanner) peek() byte {
	if s.index < len(s.data) {
		return s.data[s.index]
	}
	return 0
}

func (s *scanner) next() byte {
	c := s.peek()
	if c != 0 {
		s.index++
	}
	return c
}

func (s *scanner) whitespace() {
	for {
		switch s.peek() {
		case ' ', '\t', '\r', '\n':
			s.index++
		default:
			return
		}
	}
}

func (s *scanner) commaWhitespace() {
	s.whitespace()
	if s.peek() == ',' {
		s.index++
		s.whitespace()
	}
}

func (s *scanner) number() (float64, bool) {
	f, n := strconv.ParseFloat([]byte(s.data[s.index:]))
	if n == 0 {
		return 0, false
	}
	s.index += n
	return f, true
}

func isIdentifier(c byte, first bool) bool {
	if ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') {
		return true
	}
	return !first && (('0' <= c && c <= '9') || c == '_' || c == '-')
}

// ParseFunctions splits a transform list into its functions.
func ParseFunctions(functions string) ([]Function, error) {
	s := &scanner{data: functions}

	var out []Function
	// (wsp* identifier wsp* "(" wsp* number (comma-wsp number)* wsp* ")" comma-wsp*)*
	for {
		s.commaWhitespace()
		if s.peek() == 0 {
			return out, nil
		}

		start := s.index
		if !isIdentifier(s.next(), true) {
			return out, fmt.Errorf("offset %d: identifier must start with a letter, got %q", start, s.data[start:s.index])
		}
		for isIdentifier(s.peek(), false) {
			s.index++
		}
		function := Function{Name: s.data[start:s.index]}

		s.whitespace()
		if c := s.next(); c != '(' {
			return out, fmt.Errorf("offset %d: expected \"(\", got %q", s.index, string(c))
		}

		s.whitespace()
		if n, ok := s.number(); ok {
			function.Args = append(function.Args, n)
			for {
				old := s.index
				s.commaWhitespace()
				n, ok := s.number()
				if !ok {
					s.index = old
					break
				}
				function.Args = append(function.Args, n)
			}
		}

		s.whitespace()
		if c := s.next(); c != ')' {
			return out, fmt.Errorf("offset %d: expected \")\", got %q", s.index, string(c))
		}
		out = append(out, function)
	}
}
