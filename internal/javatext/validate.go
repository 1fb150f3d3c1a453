package javatext

import (
	"fmt"
	"strings"
)

// ValidationResult is the outcome of a structural check on candidate code.
type ValidationResult struct {
	OK     bool
	Reason string
}

// Validate runs the structural checks on candidate code, in order:
// a type declaration must be present, braces must balance, and no
// statement-looking line may appear before the first type declaration
// at brace depth zero. Blank lines and comment-marker lines are skipped.
//
// This is a heuristic approximation of well-formedness, not a parser.
// It over-rejects legitimate single-line constructs (including leading
// annotations such as @ExtendWith) and under-rejects balanced but
// semantically broken code. That boundary is intentional.
func Validate(code string) ValidationResult {
	if !typeDeclRe.MatchString(code) {
		return invalid("no class, interface or enum declaration found")
	}

	opens := strings.Count(code, "{")
	closes := strings.Count(code, "}")
	if opens != closes {
		return invalid(fmt.Sprintf("unbalanced braces: %d opening, %d closing", opens, closes))
	}

	depth := 0
	typeSeen := false
	for i, line := range strings.Split(code, "\n") {
		t := strings.TrimSpace(line)
		if t == "" || isCommentLine(t) {
			continue
		}
		if typeDeclRe.MatchString(t) {
			typeSeen = true
		}
		if !typeSeen && depth == 0 && looksLikeStrayCode(t) {
			return invalid(fmt.Sprintf("line %d sits outside any type body: %q", i+1, clip(t, 60)))
		}
		depth += strings.Count(t, "{") - strings.Count(t, "}")
	}

	return ValidationResult{OK: true}
}

func invalid(reason string) ValidationResult {
	return ValidationResult{OK: false, Reason: reason}
}

func isCommentLine(t string) bool {
	return strings.HasPrefix(t, "//") ||
		strings.HasPrefix(t, "/*") ||
		strings.HasPrefix(t, "*")
}

// looksLikeStrayCode flags lines that belong inside a type body:
// annotations, access-modifier declarations, and terminated statements.
// Package and import statements are the only ;-lines legal up top.
func looksLikeStrayCode(t string) bool {
	if strings.HasPrefix(t, "package ") || strings.HasPrefix(t, "import ") {
		return false
	}
	if strings.HasPrefix(t, "@") {
		return true
	}
	if strings.HasPrefix(t, "public ") || strings.HasPrefix(t, "private ") || strings.HasPrefix(t, "protected ") {
		return true
	}
	return strings.HasSuffix(t, ";")
}

func clip(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
