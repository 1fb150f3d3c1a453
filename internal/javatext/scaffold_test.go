package javatext

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const orderServiceSrc = `package com.example.order;

public class OrderService {

    private OrderRepository orderRepository;
    private PaymentClient paymentClient;
    private int retryCount;

    public void place(Order o) {
    }
}
`

func TestScaffold(t *testing.T) {
	candidate := "package com.example.order;\n\npublic class OrderServiceTest {\n\n    @Test\n    void placesOrder() {\n    }\n}\n"

	t.Run("Mocks every private field", func(t *testing.T) {
		out := Scaffold(candidate, orderServiceSrc, "OrderService")

		assert.Contains(t, out, "@Mock\n    private OrderRepository orderRepository;")
		assert.Contains(t, out, "@Mock\n    private PaymentClient paymentClient;")
		assert.Contains(t, out, "@Mock\n    private int retryCount;")
	})

	t.Run("Single injected instance with lower-cased name", func(t *testing.T) {
		out := Scaffold(candidate, orderServiceSrc, "OrderService")

		assert.Equal(t, 1, strings.Count(out, "@InjectMocks"))
		assert.Contains(t, out, "private OrderService orderService;")
	})

	t.Run("Block lands at the top of the type body", func(t *testing.T) {
		out := Scaffold(candidate, orderServiceSrc, "OrderService")

		classAt := strings.Index(out, "class OrderServiceTest")
		mockAt := strings.Index(out, "@Mock")
		testAt := strings.Index(out, "@Test")
		require.Greater(t, mockAt, classAt)
		assert.Less(t, mockAt, testAt)
	})

	t.Run("No de-duplication on repeat invocation", func(t *testing.T) {
		once := Scaffold(candidate, orderServiceSrc, "OrderService")
		twice := Scaffold(once, orderServiceSrc, "OrderService")
		assert.Equal(t, 2, strings.Count(twice, "@InjectMocks"))
	})

	t.Run("Source without private fields still gets the subject", func(t *testing.T) {
		out := Scaffold(candidate, "public class Util {}\n", "Util")
		assert.NotContains(t, out, "@Mock\n")
		assert.Contains(t, out, "private Util util;")
	})

	t.Run("Candidate without a type body is untouched", func(t *testing.T) {
		assert.Equal(t, "just prose", Scaffold("just prose", orderServiceSrc, "OrderService"))
	})

	t.Run("Generic field types survive", func(t *testing.T) {
		src := "public class Cache {\n    private Map<String, List<Integer>> entries;\n}\n"
		out := Scaffold(candidate, src, "Cache")
		assert.Contains(t, out, "private Map<String, List<Integer>> entries;")
	})
}
