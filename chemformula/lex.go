package chemformula

import (
	"fmt"
	"unicode/utf8"
)

const eof = 0

type itemType int

const (
	itemError itemType = iota
	itemEOF
	itemSymbol // element symbol: capital letter and lower case letters
	itemNumber // count or group multiplier
	itemOpen   // ( [ {
	itemClose  // ) ] }
)

func (typ itemType) String() string {
	switch typ {
	case itemError:
		return "Error"
	case itemEOF:
		return "EOF"
	case itemSymbol:
		return "Symbol"
	case itemNumber:
		return "Number"
	case itemOpen:
		return "Open"
	case itemClose:
		return "Close"
	}
	panic(fmt.Sprintf("BUG: Unknown type '%d'.", int(typ)))
}

type item struct {
	typ itemType
	val string
	pos int
}

type stateFn func(lx *lexer) stateFn

type lexer struct {
	input string
	start int
	pos   int
	width int
	state stateFn
	items chan item
}

func lex(input string) *lexer {
	return &lexer{
		input: input,
		state: lexFormula,
		items: make(chan item, 2),
	}
}

func (lx *lexer) nextItem() item {
	for {
		select {
		case it := <-lx.items:
			return it
		default:
			if lx.state == nil {
				return item{itemEOF, "", lx.pos}
			}
			lx.state = lx.state(lx)
		}
	}
}

func (lx *lexer) current() string {
	return lx.input[lx.start:lx.pos]
}

func (lx *lexer) emit(typ itemType) {
	lx.items <- item{typ, lx.current(), lx.start}
	lx.start = lx.pos
}

func (lx *lexer) next() (r rune) {
	if lx.pos >= len(lx.input) {
		lx.width = 0
		return eof
	}
	r, lx.width = utf8.DecodeRuneInString(lx.input[lx.pos:])
	lx.pos += lx.width
	return r
}

// ignore skips over the pending input before this point.
func (lx *lexer) ignore() {
	lx.start = lx.pos
}

// backup steps back one rune. Can be called only once per call of next.
func (lx *lexer) backup() {
	lx.pos -= lx.width
}

func (lx *lexer) peek() rune {
	r := lx.next()
	lx.backup()
	return r
}

// acceptRun consumes runes for as long as valid accepts them and reports
// how many were consumed.
func (lx *lexer) acceptRun(valid func(rune) bool) int {
	n := 0
	for valid(lx.next()) {
		n++
	}
	lx.backup()
	return n
}

// errf stops lexing with an error item.
func (lx *lexer) errf(format string, values ...interface{}) stateFn {
	lx.items <- item{itemError, fmt.Sprintf(format, values...), lx.start}
	return nil
}

func lexFormula(lx *lexer) stateFn {
	r := lx.next()
	switch {
	case r == eof:
		lx.emit(itemEOF)
		return nil
	case isSpace(r):
		lx.ignore()
		return lexFormula
	case isUpper(r):
		return lexSymbol
	case isDigit(r) || r == '.':
		lx.backup()
		return lexNumber
	case r == '(' || r == '[' || r == '{':
		lx.emit(itemOpen)
		return lexFormula
	case r == ')' || r == ']' || r == '}':
		lx.emit(itemClose)
		return lexFormula
	}
	return lx.errf("unexpected character %q", r)
}

// lexSymbol consumes the lower case tail of an element symbol. Whether
// the symbol names a real element is not the lexer's concern.
func lexSymbol(lx *lexer) stateFn {
	lx.acceptRun(isLower)
	lx.emit(itemSymbol)
	return lexFormula
}

// lexNumber consumes an unsigned decimal: "2", "0.5", ".7", "1e-5", "9.e-8".
func lexNumber(lx *lexer) stateFn {
	digits := lx.acceptRun(isDigit)
	if lx.peek() == '.' {
		lx.next()
		digits += lx.acceptRun(isDigit)
	}
	if digits == 0 {
		return lx.errf("number without digits")
	}
	if lx.exponentAhead() {
		lx.next()
		if r := lx.peek(); r == '+' || r == '-' {
			lx.next()
		}
		lx.acceptRun(isDigit)
	}
	lx.emit(itemNumber)
	return lexFormula
}

// exponentAhead reports whether the input continues with an exponent
// marker followed by an optional sign and at least one digit. A bare "E"
// can start the symbol of erbium or europium instead.
func (lx *lexer) exponentAhead() bool {
	rest := lx.input[lx.pos:]
	if len(rest) < 2 || (rest[0] != 'e' && rest[0] != 'E') {
		return false
	}
	i := 1
	if rest[i] == '+' || rest[i] == '-' {
		i++
	}
	return i < len(rest) && rest[i] >= '0' && rest[i] <= '9'
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

func isUpper(r rune) bool {
	return r >= 'A' && r <= 'Z'
}

func isLower(r rune) bool {
	return r >= 'a' && r <= 'z'
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
