package javatext

import (
	"fmt"
	"regexp"
	"strings"
)

var privateFieldRe = regexp.MustCompile(`(?m)^[^\S\n]*private\s+([A-Za-z_$][\w$<>\[\], .?]*?)\s+([A-Za-z_$][\w$]*)\s*;`)

// Scaffold injects Mockito field declarations into candidate test code.
// Every `private <Type> <name>;` field of the source class yields an
// @Mock field of the same type and name, followed by a single
// @InjectMocks field for the subject type whose name is the class name
// with its first character lower-cased. The block lands as the first
// statements inside the candidate's first type body.
//
// No de-duplication is performed: invoking Scaffold twice inserts the
// block twice. The candidate is returned unchanged when it has no type
// declaration or no opening brace to anchor on.
func Scaffold(candidate, source, subject string) string {
	loc := typeDeclRe.FindStringIndex(candidate)
	if loc == nil {
		return candidate
	}
	bodyStart := strings.Index(candidate[loc[1]:], "{")
	if bodyStart < 0 {
		return candidate
	}
	insertAt := loc[1] + bodyStart + 1

	var b strings.Builder
	for _, m := range privateFieldRe.FindAllStringSubmatch(source, -1) {
		b.WriteString("\n    @Mock")
		b.WriteString(fmt.Sprintf("\n    private %s %s;\n", m[1], m[2]))
	}
	b.WriteString("\n    @InjectMocks")
	b.WriteString(fmt.Sprintf("\n    private %s %s;\n", subject, lowerFirst(subject)))

	return candidate[:insertAt] + b.String() + candidate[insertAt:]
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
