package javatext

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wellFormed = `package com.example;

import org.junit.jupiter.api.Test;

public class FooTest {

    @Test
    void addsNumbers() {
        assertEquals(4, 2 + 2);
    }
}
`

func TestValidate(t *testing.T) {
	t.Run("Balanced code with a type declaration is valid", func(t *testing.T) {
		v := Validate(wellFormed)
		assert.True(t, v.OK, v.Reason)
	})

	t.Run("Missing type declaration", func(t *testing.T) {
		v := Validate("int x = 1;\n{ }\n")
		require.False(t, v.OK)
		assert.Contains(t, v.Reason, "no class, interface or enum")
	})

	t.Run("Unbalanced braces", func(t *testing.T) {
		v := Validate("public class Foo {\n  void m() {\n}\n")
		require.False(t, v.OK)
		assert.Contains(t, v.Reason, "unbalanced braces")
		assert.Contains(t, v.Reason, "2 opening, 1 closing")
	})

	t.Run("Excess closing braces also mismatch", func(t *testing.T) {
		v := Validate("public class Foo {\n}\n}\n")
		require.False(t, v.OK)
		assert.Contains(t, v.Reason, "unbalanced braces")
	})

	t.Run("Statement before any type declaration", func(t *testing.T) {
		v := Validate("System.out.println(\"hi\");\npublic class Foo {\n}\n")
		require.False(t, v.OK)
		assert.Contains(t, v.Reason, "outside any type body")
	})

	t.Run("Annotation before the class is rejected", func(t *testing.T) {
		// Known heuristic over-rejection: a leading @ExtendWith line
		// counts as stray code. The boundary is preserved on purpose.
		v := Validate("@ExtendWith(MockitoExtension.class)\npublic class FooTest {\n}\n")
		require.False(t, v.OK)
		assert.Contains(t, v.Reason, "outside any type body")
	})

	t.Run("Package and import lines are exempt", func(t *testing.T) {
		v := Validate("package a.b;\nimport java.util.List;\npublic class Foo {\n}\n")
		assert.True(t, v.OK, v.Reason)
	})

	t.Run("Comments and blanks are skipped", func(t *testing.T) {
		code := strings.Join([]string{
			"// header comment",
			"/*",
			" * block comment with a fake statement; inside",
			" */",
			"",
			"public class Foo {",
			"}",
			"",
		}, "\n")
		v := Validate(code)
		assert.True(t, v.OK, v.Reason)
	})

	t.Run("Statements after the class are fine", func(t *testing.T) {
		v := Validate("public class Foo {\n    private int x;\n    void m() { x++; }\n}\n")
		assert.True(t, v.OK, v.Reason)
	})

	t.Run("Balanced but semantically broken code passes", func(t *testing.T) {
		// Known heuristic under-rejection.
		v := Validate("public class Foo { this does not compile }\n")
		assert.True(t, v.OK, v.Reason)
	})
}
