package javatext

import "strings"

// canonicalTestImport is the marker import: when it is present the
// candidate is considered import-equipped and insertion is skipped.
const canonicalTestImport = "import org.junit.jupiter.api.Test;"

// testImports is the fixed block inserted after the package declaration
// of a candidate that is missing the canonical Test import.
var testImports = []string{
	"import org.junit.jupiter.api.Test;",
	"import org.junit.jupiter.api.BeforeEach;",
	"import org.junit.jupiter.api.extension.ExtendWith;",
	"import static org.junit.jupiter.api.Assertions.*;",
	"import org.mockito.Mock;",
	"import org.mockito.InjectMocks;",
	"import org.mockito.Mockito;",
	"import org.mockito.junit.jupiter.MockitoExtension;",
}

// Repair applies both deterministic transforms to invalid candidate code.
// It makes no promise of validity afterward; the caller must re-run
// Validate and treat a second failure as terminal for that file.
func Repair(code string) string {
	return BalanceBraces(AddTestImports(code))
}

// AddTestImports inserts the standard JUnit 5 and Mockito imports right
// after the first package declaration, skipping any line already present
// by exact substring match. Without a package declaration this is a
// no-op. Applying it twice yields the same text as applying it once.
func AddTestImports(code string) string {
	if strings.Contains(code, canonicalTestImport) {
		return code
	}
	loc := packageRe.FindStringIndex(code)
	if loc == nil {
		return code
	}

	var missing []string
	for _, imp := range testImports {
		if !strings.Contains(code, imp) {
			missing = append(missing, imp)
		}
	}
	if len(missing) == 0 {
		return code
	}

	insertAt := loc[1]
	return code[:insertAt] + "\n\n" + strings.Join(missing, "\n") + code[insertAt:]
}

// BalanceBraces appends one closing brace per unmatched opening brace.
// It never removes excess closing braces and never repositions anything;
// it is a best-effort terminator, not a formatter.
func BalanceBraces(code string) string {
	diff := strings.Count(code, "{") - strings.Count(code, "}")
	if diff <= 0 {
		return code
	}
	var b strings.Builder
	b.WriteString(code)
	for i := 0; i < diff; i++ {
		b.WriteString("\n}")
	}
	return b.String()
}
