// Package extractor provides grammar-based symbol extraction from source
// files using tree-sitter. It supplies the precise class/method/field
// inventory used to enrich generation prompts; the regex heuristics that
// gate the pipeline itself live in internal/javatext and stay independent
// of this package.
package extractor

import (
	"context"
	"fmt"
	"os"

	sitter "github.com/smacker/go-tree-sitter"
)

// Extractor orchestrates the extraction process using language-specific extractors.
type Extractor struct {
	langExtractor LanguageExtractor
	langName      string
}

// NewExtractor creates a new extractor for a given language.
func NewExtractor(lang string) (*Extractor, error) {
	var langExt LanguageExtractor
	switch lang {
	case "java":
		langExt = &JavaExtractor{}
	default:
		return nil, fmt.Errorf("unsupported language: %s", lang)
	}
	return &Extractor{langExtractor: langExt, langName: lang}, nil
}

// ExtractFromFile parses a single source file and extracts all relevant code units.
func (e *Extractor) ExtractFromFile(filepath string) ([]*CodeUnit, error) {
	sourceCode, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filepath, err)
	}
	return e.ExtractFromSource(sourceCode, filepath)
}

// ExtractFromSource parses source text the caller already holds in memory.
func (e *Extractor) ExtractFromSource(sourceCode []byte, filepath string) ([]*CodeUnit, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(e.langExtractor.GetLanguage())
	tree, err := parser.ParseCtx(context.Background(), nil, sourceCode)
	if err != nil {
		return nil, fmt.Errorf("failed to parse file %s: %w", filepath, err)
	}

	packageName := e.detectPackageName(tree.RootNode(), sourceCode)

	query, err := sitter.NewQuery([]byte(e.langExtractor.GetQuery()), e.langExtractor.GetLanguage())
	if err != nil {
		return nil, fmt.Errorf("failed to create query: %w", err)
	}

	var codeUnits []*CodeUnit
	qc := sitter.NewQueryCursor()
	qc.Exec(query, tree.RootNode())

	for {
		m, ok := qc.NextMatch()
		if !ok {
			break
		}
		for _, c := range m.Captures {
			captureName := query.CaptureNameForId(c.Index)
			unit := e.langExtractor.ExtractUnit(captureName, c.Node, sourceCode, filepath, packageName)
			if unit != nil {
				codeUnits = append(codeUnits, unit)
			}
		}
	}

	return codeUnits, nil
}

func (e *Extractor) detectPackageName(root *sitter.Node, sourceCode []byte) string {
	pkgQuery, err := sitter.NewQuery([]byte(e.langExtractor.GetPackageQuery()), e.langExtractor.GetLanguage())
	if err != nil {
		return ""
	}
	pqc := sitter.NewQueryCursor()
	pqc.Exec(pkgQuery, root)
	if m, ok := pqc.NextMatch(); ok && len(m.Captures) > 0 {
		return m.Captures[0].Node.Content(sourceCode)
	}
	return ""
}
