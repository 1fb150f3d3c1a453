package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"testsmith/internal/extractor"
	"testsmith/internal/javatext"
)

func TestBuildTestPrompt(t *testing.T) {
	pb := &PromptBuilder{}
	decl := javatext.Decl{Name: "OrderService", Kind: "class", Package: "com.example.order"}
	source := "public class OrderService {}"

	units := []*extractor.CodeUnit{
		{
			Name:     "place",
			UnitType: "method",
			Details:  extractor.JavaMethodDetails{Modifiers: "public", Signature: "public Receipt place(Order order)"},
		},
		{
			Name:     "audit",
			UnitType: "method",
			Details:  extractor.JavaMethodDetails{Modifiers: "private", Signature: "private void audit(String message)"},
		},
		{
			Name:     "orderRepository",
			UnitType: "field",
			Details:  extractor.JavaFieldDetails{Type: "OrderRepository"},
		},
	}

	prompt := pb.BuildTestPrompt(decl, source, units)

	assert.Contains(t, prompt, "public class OrderService {}")
	assert.Contains(t, prompt, "Name the test class OrderServiceTest")
	assert.Contains(t, prompt, "package com.example.order")
	assert.Contains(t, prompt, "- public Receipt place(Order order)")

	t.Run("Private methods and fields stay out of the inventory", func(t *testing.T) {
		assert.NotContains(t, prompt, "audit")
		assert.NotContains(t, prompt, "orderRepository")
	})

	t.Run("No inventory section without extracted methods", func(t *testing.T) {
		bare := pb.BuildTestPrompt(decl, source, nil)
		assert.NotContains(t, bare, "METHODS TO COVER")
	})
}
