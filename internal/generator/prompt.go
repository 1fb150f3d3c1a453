package generator

import (
	"fmt"
	"strings"

	"testsmith/internal/extractor"
	"testsmith/internal/javatext"
)

// PromptBuilder composes generation prompts for Java test classes.
type PromptBuilder struct{}

// BuildTestPrompt embeds the source under test and, when grammar-based
// extraction succeeded, the method inventory the test class should cover.
func (p *PromptBuilder) BuildTestPrompt(decl javatext.Decl, source string, units []*extractor.CodeUnit) string {
	var sb strings.Builder
	sb.WriteString("You are an expert Java developer. Write a JUnit 5 test class for the class below.\n\n")

	sb.WriteString("### CLASS UNDER TEST ###\n")
	sb.WriteString(fmt.Sprintf("Package: %s\n", decl.Package))
	sb.WriteString(fmt.Sprintf("Class: %s\n\n", decl.Name))
	sb.WriteString("```java\n")
	sb.WriteString(source)
	sb.WriteString("\n```\n")

	if methods := methodSignatures(units); len(methods) > 0 {
		sb.WriteString("\n### METHODS TO COVER ###\n")
		for _, m := range methods {
			sb.WriteString("- " + m + "\n")
		}
	}

	sb.WriteString("\n### INSTRUCTIONS ###\n")
	sb.WriteString(fmt.Sprintf("1. Name the test class %sTest and declare it in package %s.\n", decl.Name, decl.Package))
	sb.WriteString("2. Use JUnit 5 (org.junit.jupiter) with meaningful assertions and edge cases.\n")
	sb.WriteString("3. Mock collaborators with Mockito where the class has dependencies.\n")
	sb.WriteString("4. Output only compilable Java code. No prose, no markdown fences.\n")
	return sb.String()
}

func methodSignatures(units []*extractor.CodeUnit) []string {
	var sigs []string
	for _, u := range units {
		if u.UnitType != "method" {
			continue
		}
		details, ok := u.Details.(extractor.JavaMethodDetails)
		if !ok || strings.Contains(details.Modifiers, "private") {
			continue
		}
		sigs = append(sigs, details.Signature)
	}
	return sigs
}
