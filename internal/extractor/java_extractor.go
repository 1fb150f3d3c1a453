package extractor

import (
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/java"
)

// JavaExtractor implements LanguageExtractor for Java.
type JavaExtractor struct{}

func (j *JavaExtractor) GetLanguage() *sitter.Language {
	return java.GetLanguage()
}

func (j *JavaExtractor) GetQuery() string {
	return `
		(class_declaration) @type
		(interface_declaration) @type
		(enum_declaration) @type
		(method_declaration) @method
		(constructor_declaration) @ctor
		(field_declaration) @field
	`
}

func (j *JavaExtractor) GetPackageQuery() string {
	return `(package_declaration [(scoped_identifier) (identifier)] @pkg)`
}

// Java-specific Detail Schemas

type JavaMethodDetails struct {
	Modifiers  string `json:"modifiers,omitempty"`
	ReturnType string `json:"return_type,omitempty"`
	Parameters string `json:"parameters"`
	Signature  string `json:"signature"`
}

type JavaFieldDetails struct {
	Modifiers string `json:"modifiers,omitempty"`
	Type      string `json:"type"`
}

func (j *JavaExtractor) ExtractUnit(captureName string, node *sitter.Node, sourceCode []byte, filepath string, packageName string) *CodeUnit {
	var unit *CodeUnit
	switch captureName {
	case "type":
		unit = j.extractTypeUnit(node, sourceCode, filepath)
	case "method":
		unit = j.extractMethodUnit(node, sourceCode, filepath, "method")
	case "ctor":
		unit = j.extractMethodUnit(node, sourceCode, filepath, "constructor")
	case "field":
		unit = j.extractFieldUnit(node, sourceCode, filepath)
	}

	if unit != nil {
		unit.Package = packageName
		unit.Language = "java"
	}
	return unit
}

func (j *JavaExtractor) extractTypeUnit(node *sitter.Node, sourceCode []byte, filepath string) *CodeUnit {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return nil
	}
	name := nameNode.Content(sourceCode)

	var unitType string
	switch node.Type() {
	case "class_declaration":
		unitType = "class"
	case "interface_declaration":
		unitType = "interface"
	case "enum_declaration":
		unitType = "enum"
	default:
		return nil
	}

	return &CodeUnit{
		ID:          fmt.Sprintf("%s:%s:%d", filepath, name, node.StartPoint().Row+1),
		Filepath:    filepath,
		StartLine:   int(node.StartPoint().Row) + 1,
		EndLine:     int(node.EndPoint().Row) + 1,
		Content:     node.Content(sourceCode),
		UnitType:    unitType,
		Name:        name,
		Description: j.extractDocComment(node, sourceCode),
	}
}

func (j *JavaExtractor) extractMethodUnit(node *sitter.Node, sourceCode []byte, filepath string, unitType string) *CodeUnit {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return nil
	}
	name := nameNode.Content(sourceCode)

	details := JavaMethodDetails{
		Modifiers: j.extractModifiers(node, sourceCode),
	}
	if typeNode := node.ChildByFieldName("type"); typeNode != nil {
		details.ReturnType = typeNode.Content(sourceCode)
	}
	if paramsNode := node.ChildByFieldName("parameters"); paramsNode != nil {
		details.Parameters = paramsNode.Content(sourceCode)
	}

	var sig strings.Builder
	if details.Modifiers != "" {
		sig.WriteString(details.Modifiers + " ")
	}
	if details.ReturnType != "" {
		sig.WriteString(details.ReturnType + " ")
	}
	sig.WriteString(name + details.Parameters)
	details.Signature = sig.String()

	return &CodeUnit{
		ID:          fmt.Sprintf("%s:%s:%d", filepath, name, node.StartPoint().Row+1),
		Filepath:    filepath,
		StartLine:   int(node.StartPoint().Row) + 1,
		EndLine:     int(node.EndPoint().Row) + 1,
		Content:     node.Content(sourceCode),
		UnitType:    unitType,
		Name:        name,
		Description: j.extractDocComment(node, sourceCode),
		Details:     details,
	}
}

func (j *JavaExtractor) extractFieldUnit(node *sitter.Node, sourceCode []byte, filepath string) *CodeUnit {
	declNode := node.ChildByFieldName("declarator")
	if declNode == nil {
		return nil
	}
	nameNode := declNode.ChildByFieldName("name")
	if nameNode == nil {
		return nil
	}
	name := nameNode.Content(sourceCode)

	details := JavaFieldDetails{
		Modifiers: j.extractModifiers(node, sourceCode),
	}
	if typeNode := node.ChildByFieldName("type"); typeNode != nil {
		details.Type = typeNode.Content(sourceCode)
	}

	return &CodeUnit{
		ID:        fmt.Sprintf("%s:%s:%d", filepath, name, node.StartPoint().Row+1),
		Filepath:  filepath,
		StartLine: int(node.StartPoint().Row) + 1,
		EndLine:   int(node.EndPoint().Row) + 1,
		Content:   node.Content(sourceCode),
		UnitType:  "field",
		Name:      name,
		Details:   details,
	}
}

func (j *JavaExtractor) extractModifiers(node *sitter.Node, sourceCode []byte) string {
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		if child.Type() == "modifiers" {
			return child.Content(sourceCode)
		}
	}
	return ""
}

func (j *JavaExtractor) extractDocComment(node *sitter.Node, sourceCode []byte) string {
	prev := node.PrevNamedSibling()
	if prev == nil {
		return ""
	}
	switch prev.Type() {
	case "block_comment", "line_comment", "comment":
		return strings.TrimSpace(prev.Content(sourceCode))
	}
	return ""
}
