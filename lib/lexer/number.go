package lexer

import (
	"fmt"

	"github.com/vyPal/BasicFront/lib/token"
)

// States of the number literal automaton.
type numberState int

const (
	stateDigits         numberState = iota // 123
	stateDot                               // 123.
	stateFraction                          // 123.45
	stateExponent                          // 123.45E
	stateSign                              // 123.45E-
	stateExponentDigits                    // 123.45E-6
)

// numberToken runs the number literal automaton over src:
//
//	digits ['.' digits] ['E' ['+'|'-'] digits]
//
// The literal ends at a terminator or at the end of the line. A rejected
// literal is returned as an invalid token spanning to the next terminator.
func (a *Analyzer) numberToken(src []rune) token.Token {
	state := stateDigits
	for i := 0; ; i++ {
		ch := rune(-1)
		if i < len(src) {
			ch = src[i]
		}
		end := ch < 0 || a.cfg.isTerminator(ch)

		switch state {
		case stateDigits:
			switch {
			case isDigit(ch):
				continue
			case ch == '.':
				state = stateDot
				continue
			case ch == 'E':
				state = stateExponent
				continue
			case end:
				return a.acceptNumber(src[:i])
			}
			return a.rejectNumber(src, i, "invalid number literal: after digits expect '.' or 'E'")

		case stateDot:
			if isDigit(ch) {
				state = stateFraction
				continue
			}
			return a.rejectNumber(src, i, "invalid number literal: digit required after '.'")

		case stateFraction:
			switch {
			case isDigit(ch):
				continue
			case ch == 'E':
				state = stateExponent
				continue
			case end:
				return a.acceptNumber(src[:i])
			}
			return a.rejectNumber(src, i, "invalid number literal")

		case stateExponent:
			switch {
			case isDigit(ch):
				state = stateExponentDigits
				continue
			case ch == '+' || ch == '-':
				state = stateSign
				continue
			}
			return a.rejectNumber(src, i, "invalid number literal: 'E' must be followed by sign or digit")

		case stateSign:
			if isDigit(ch) {
				state = stateExponentDigits
				continue
			}
			return a.rejectNumber(src, i, "invalid number literal: digits missing after exponent sign")

		case stateExponentDigits:
			switch {
			case isDigit(ch):
				continue
			case end:
				return a.acceptNumber(src[:i])
			}
			return a.rejectNumber(src, i, "invalid number literal")
		}
	}
}

func (a *Analyzer) acceptNumber(lexeme []rune) token.Token {
	if exceeds(len(lexeme), a.cfg.maxNumber) {
		return token.Invalid(string(lexeme), fmt.Sprintf("number literal length exceeds maximum of %d characters", a.cfg.maxNumber))
	}
	typ := token.TypeInteger
	for _, r := range lexeme {
		if !isDigit(r) {
			typ = token.TypeDouble
			break
		}
	}
	return token.New(string(lexeme), token.NumberLiteral).WithType(typ)
}

func (a *Analyzer) rejectNumber(src []rune, at int, msg string) token.Token {
	end := a.cfg.nextTerminator(src, at)
	return token.Invalid(string(src[:end]), msg)
}
