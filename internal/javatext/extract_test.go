package javatext

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract(t *testing.T) {
	t.Run("Class with package", func(t *testing.T) {
		src := "package com.example.foo;\n\npublic class Bar {\n}\n"
		d := Extract(src)
		assert.Equal(t, "Bar", d.Name)
		assert.Equal(t, "class", d.Kind)
		assert.Equal(t, "com.example.foo", d.Package)
	})

	t.Run("Fallback package", func(t *testing.T) {
		src := "public class Orphan {\n}\n"
		d := Extract(src)
		assert.Equal(t, "Orphan", d.Name)
		assert.Equal(t, DefaultPackage, d.Package)
	})

	t.Run("Interface and enum kinds", func(t *testing.T) {
		d := Extract("package a.b;\npublic interface Repo {}\n")
		assert.Equal(t, "Repo", d.Name)
		assert.Equal(t, "interface", d.Kind)

		d = Extract("package a.b;\nenum Color { RED, GREEN }\n")
		assert.Equal(t, "Color", d.Name)
		assert.Equal(t, "enum", d.Kind)
	})

	t.Run("First declaration wins", func(t *testing.T) {
		src := "package p;\npublic class First {\n  class Inner {}\n}\nclass Second {}\n"
		d := Extract(src)
		assert.Equal(t, "First", d.Name)
	})

	t.Run("Modifiers before keyword", func(t *testing.T) {
		d := Extract("package p;\npublic final class Sealed {}\n")
		assert.Equal(t, "Sealed", d.Name)

		d = Extract("package p;\nabstract class Base {}\n")
		assert.Equal(t, "Base", d.Name)
	})

	t.Run("No declaration yields empty name", func(t *testing.T) {
		d := Extract("package p;\n// just a comment, classless file\n")
		assert.Empty(t, d.Name)
		assert.Equal(t, "p", d.Package)
	})

	t.Run("Keyword inside identifier does not match", func(t *testing.T) {
		d := Extract("package p;\npublic classless Foo;\n")
		assert.Empty(t, d.Name)
	})
}
