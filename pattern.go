// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/yangdoc

package yangdoc

import (
	"regexp/syntax"
	"strings"
)

// automatonSpecialCharacters historically carry meaning in automaton regex
// dialects; they are escaped so YANG patterns using them literally keep
// working.
const automatonSpecialCharacters = `@&"<>#~`

// shorthandClasses rewrites predefined character classes into explicit
// set equivalents before the expression is parsed.
var shorthandClasses = strings.NewReplacer(
	`\d`, "[0-9]",
	`\D`, "[^0-9]",
	`\s`, "[ \t\n\f\r]",
	`\S`, "[^ \t\n\f\r]",
	`\w`, "[a-zA-Z_0-9]",
	`\W`, "[^a-zA-Z_0-9]",
)

// shortestPatternExample returns the lexicographically smallest among the
// shortest strings the pattern accepts. The second result is false when
// the expression cannot be compiled or contains an unsatisfiable branch;
// callers fall back to a generic placeholder and must not treat this as a
// fatal condition.
func shortestPatternExample(pattern string) (string, bool) {
	prepared := shorthandClasses.Replace(escapeAutomatonCharacters(pattern))
	parsed, err := syntax.Parse(prepared, syntax.Perl)
	if err != nil {
		return "", false
	}

	return shortestAccepted(parsed)
}

// escapeAutomatonCharacters backslash-escapes automaton-reserved characters.
func escapeAutomatonCharacters(pattern string) string {
	if !strings.ContainsAny(pattern, automatonSpecialCharacters) {
		return pattern
	}

	var out strings.Builder
	out.Grow(len(pattern) + 4)
	for _, char := range pattern {
		if strings.ContainsRune(automatonSpecialCharacters, char) {
			out.WriteByte('\\')
		}

		out.WriteRune(char)
	}

	return out.String()
}

// shortestAccepted walks a parsed expression and synthesizes its shortest
// accepted string, preferring the lexicographically smallest choice at
// every branch point.
func shortestAccepted(expr *syntax.Regexp) (string, bool) {
	switch expr.Op {
	case syntax.OpEmptyMatch,
		syntax.OpBeginLine, syntax.OpEndLine,
		syntax.OpBeginText, syntax.OpEndText,
		syntax.OpWordBoundary, syntax.OpNoWordBoundary:
		return "", true

	case syntax.OpLiteral:
		return string(expr.Rune), true

	case syntax.OpCharClass:
		// Rune holds inclusive lo/hi pairs in ascending order; the first
		// low bound is the smallest accepted rune.
		if len(expr.Rune) == 0 {
			return "", false
		}

		return string(expr.Rune[0]), true

	case syntax.OpAnyChar, syntax.OpAnyCharNotNL:
		return "\x00", true

	case syntax.OpCapture:
		return shortestAccepted(expr.Sub[0])

	case syntax.OpConcat:
		var out strings.Builder
		for _, sub := range expr.Sub {
			part, ok := shortestAccepted(sub)
			if !ok {
				return "", false
			}

			out.WriteString(part)
		}

		return out.String(), true

	case syntax.OpStar, syntax.OpQuest:
		return "", true

	case syntax.OpPlus:
		return shortestAccepted(expr.Sub[0])

	case syntax.OpRepeat:
		if expr.Min <= 0 {
			return "", true
		}

		part, ok := shortestAccepted(expr.Sub[0])
		if !ok {
			return "", false
		}

		return strings.Repeat(part, expr.Min), true

	case syntax.OpAlternate:
		best := ""
		found := false
		for _, sub := range expr.Sub {
			candidate, ok := shortestAccepted(sub)
			if !ok {
				continue
			}

			if !found || betterExample(candidate, best) {
				best = candidate
				found = true
			}
		}

		return best, found

	default:
		return "", false
	}
}

// betterExample reports whether candidate is shorter than current, or
// equal length and lexicographically smaller.
func betterExample(candidate, current string) bool {
	if len(candidate) != len(current) {
		return len(candidate) < len(current)
	}

	return candidate < current
}
