// Package javatext contains the regex heuristics the generator applies to
// Java source text: declaration extraction, structural validation of
// model-generated code, and deterministic textual repair.
//
// None of this is a parser. The heuristics are line- and pattern-oriented
// on purpose: they run in O(n) over arbitrary model output, and their
// known failure modes (over-rejecting one-line constructs, under-rejecting
// balanced-but-broken code) are accepted and covered by tests. Grammar-level
// extraction lives in internal/extractor and is kept strictly separate.
package javatext

import "regexp"

// DefaultPackage is used when a source file carries no package declaration.
const DefaultPackage = "com.generated.tests"

var (
	typeDeclRe = regexp.MustCompile(`(?m)^[^\S\n]*(?:(?:public|protected|private|abstract|final|static|strictfp)\s+)*(class|interface|enum)\s+([A-Za-z_$][\w$]*)`)
	packageRe  = regexp.MustCompile(`(?m)^[^\S\n]*package\s+([\w.]+)\s*;`)
)

// Decl is the result of heuristic declaration extraction.
type Decl struct {
	Name    string // simple type name, empty when no declaration was found
	Kind    string // "class", "interface" or "enum"
	Package string // declared package, or DefaultPackage
}

// Extract pulls the first type declaration and the package name out of
// Java source text. A Decl with an empty Name means no type declaration
// was found; callers should skip the file rather than abort the batch.
func Extract(src string) Decl {
	d := Decl{Package: DefaultPackage}
	if m := packageRe.FindStringSubmatch(src); m != nil {
		d.Package = m[1]
	}
	if m := typeDeclRe.FindStringSubmatch(src); m != nil {
		d.Kind = m[1]
		d.Name = m[2]
	}
	return d
}
