package arith

import (
	"strings"
	"unicode"
)

// IsCandidate reports whether text looks like an arithmetic expression worth
// evaluating. It checks only the shape of the text: "1++" is a candidate
// although Evaluate rejects it.
func IsCandidate(text string) bool {
	cleaned := trimSpace(text)
	if cleaned == "" || !allowedChars(cleaned) {
		return false
	}
	if strings.IndexFunc(cleaned, isDigit) < 0 {
		return false
	}
	return (hasOperator(cleaned) && len(cleaned) >= 3) || isBareNumber(cleaned)
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// isSpace reports whether r is whitespace. A byte order mark counts.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\ufeff'
}

func trimSpace(s string) string {
	return strings.TrimFunc(s, isSpace)
}

// stripSpace removes every whitespace rune from s.
func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if isSpace(r) {
			return -1
		}
		return r
	}, s)
}

// allowedChars reports whether every rune of s may appear in an expression:
// digits, operators, parentheses, decimal points, and whitespace.
func allowedChars(s string) bool {
	for _, r := range s {
		switch {
		case isDigit(r), isSpace(r):
		case strings.ContainsRune(Operators+"().", r):
		default:
			return false
		}
	}
	return true
}

func hasOperator(s string) bool {
	return strings.ContainsAny(s, Operators)
}

// isBareNumber reports whether s is an optionally negative decimal literal
// with at least one leading digit, like "-12", "3.5", or "7.".
func isBareNumber(s string) bool {
	s = strings.TrimPrefix(s, "-")
	whole, frac, _ := strings.Cut(s, ".")
	if whole == "" {
		return false
	}
	return allDigits(whole) && allDigits(frac)
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isDigit(rune(s[i])) {
			return false
		}
	}
	return true
}
