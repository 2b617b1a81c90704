package pathd

import (
	"math"
	"strings"

	"github.com/tdewolff/parse/v2/strconv"
)

// Token is one command letter with the operand text that follows it.
type Token struct {
	Code byte
	Raw  string

	// Offset is the position of the letter in the data passed to Tokenize.
	Offset int
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isLetter(c byte) bool {
	return 'a' <= lower(c) && lower(c) <= 'z'
}

// normalize rewrites path data so that tokens are separated the same way
// everywhere: commas become spaces, glued decimals such as "1.5.5" get a
// space before the second point, and whitespace in front of command letters
// and minus signs is dropped. Remaining whitespace runs collapse to a
// single space. pos maps every byte of the result to the input byte it came
// from; inserted spaces map to the byte they precede.
func normalize(d string) (string, []int) {
	var b strings.Builder
	b.Grow(len(d))
	pos := make([]int, 0, len(d))

	pendingSpace := false
	inNumber, seenDot, seenExp := false, false, false
	var prev byte
	for i := 0; i < len(d); i++ {
		c := d[i]
		if c == ',' || isSpace(c) {
			pendingSpace = b.Len() > 0
			inNumber = false
			continue
		}
		if pendingSpace && !IsCommand(c) && c != '-' {
			b.WriteByte(' ')
			pos = append(pos, i)
		}
		pendingSpace = false

		switch {
		case c == '.':
			if inNumber && (seenDot || seenExp) {
				b.WriteByte(' ')
				pos = append(pos, i)
			}
			inNumber, seenDot, seenExp = true, true, false
		case isDigit(c):
			if !inNumber {
				inNumber, seenDot, seenExp = true, false, false
			}
		case c == 'e' || c == 'E':
			if inNumber {
				seenExp = true
			}
		case c == '+' || c == '-':
			if prev != 'e' && prev != 'E' {
				inNumber, seenDot, seenExp = true, false, false
			}
		default:
			inNumber = false
		}
		b.WriteByte(c)
		pos = append(pos, i)
		prev = c
	}
	return b.String(), pos
}

// Tokenize splits path data into one token per command letter.
func Tokenize(d string) ([]Token, error) {
	n, pos := normalize(d)

	var toks []Token
	// starts holds the position of each token's letter in n.
	var starts []int
	for i := 0; i < len(n); i++ {
		c := n[i]
		if !isLetter(c) || c == 'e' || c == 'E' {
			continue
		}
		if !IsCommand(c) {
			return nil, &SyntaxError{Offset: pos[i], Text: string(c), Err: ErrUnknownCommand}
		}
		if len(toks) == 0 && i > 0 {
			return nil, &SyntaxError{Offset: pos[0], Text: n[:i], Err: ErrNoMoveTo}
		}
		toks = append(toks, Token{Code: c, Offset: pos[i]})
		starts = append(starts, i)
	}
	if len(toks) == 0 && n != "" {
		return nil, &SyntaxError{Offset: pos[0], Text: n, Err: ErrNoMoveTo}
	}

	for i := range toks {
		end := len(n)
		if i+1 < len(toks) {
			end = starts[i+1]
		}
		toks[i].Raw = strings.TrimSpace(n[starts[i]+1 : end])
	}
	return toks, nil
}

// parseOperands scans the numbers of one token. Arc flags may be written
// without separators ("a5 5 0 1010 10"), so flag slots read one digit.
func parseOperands(t Token, lenient bool) ([]float64, error) {
	b := []byte(t.Raw)
	arc := lower(t.Code) == 'a'
	layout := layouts[lower(t.Code)]

	var args []float64
	for i := 0; i < len(b); {
		if b[i] == ' ' {
			i++
			continue
		}
		if arc && layout[len(args)%len(layout)] == kindFlag && (b[i] == '0' || b[i] == '1') {
			args = append(args, float64(b[i]-'0'))
			i++
			continue
		}

		f, n := strconv.ParseFloat(b[i:])
		if n == 0 {
			if !lenient {
				return nil, &SyntaxError{Offset: t.Offset, Cmd: t.Code, Text: t.Raw, Err: ErrBadNumber}
			}
			args = append(args, math.NaN())
			j := i + 1
			for j < len(b) && b[j] != ' ' && b[j] != '-' && b[j] != '+' {
				j++
			}
			i = j
			continue
		}
		args = append(args, f)
		i += n
	}
	return args, nil
}

// Normalize parses the operands of every token and splits tokens holding
// several segments into one command per segment. Extra coordinate pairs after
// a move become line commands of the same case.
func Normalize(toks []Token, lenient bool) (Path, error) {
	var p Path
	for _, t := range toks {
		args, err := parseOperands(t, lenient)
		if err != nil {
			return nil, err
		}
		if len(p) == 0 && lower(t.Code) != 'm' {
			return nil, &SyntaxError{Offset: t.Offset, Cmd: t.Code, Text: t.Raw, Err: ErrNoMoveTo}
		}

		n := Arity(t.Code)
		if n == 0 {
			if len(args) > 0 && !lenient {
				return nil, &SyntaxError{Offset: t.Offset, Cmd: t.Code, Text: t.Raw, Err: ErrOperandCount}
			}
			p = append(p, Command{Code: t.Code})
			continue
		}

		if len(args) == 0 || len(args)%n != 0 {
			if !lenient {
				return nil, &SyntaxError{Offset: t.Offset, Cmd: t.Code, Text: t.Raw, Err: ErrOperandCount}
			}
			for len(args) == 0 || len(args)%n != 0 {
				args = append(args, math.NaN())
			}
		}

		code := t.Code
		for i := 0; i < len(args); i += n {
			p = append(p, Command{Code: code, Args: args[i : i+n : i+n]})
			if lower(code) == 'm' {
				code = 'l'
				if isAbsolute(t.Code) {
					code = 'L'
				}
			}
		}
	}
	return p, nil
}

// Parse tokenizes and normalizes path data.
func Parse(d string, lenient bool) (Path, error) {
	toks, err := Tokenize(d)
	if err != nil {
		return nil, err
	}
	return Normalize(toks, lenient)
}
