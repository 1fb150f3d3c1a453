package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanCodeFences(t *testing.T) {
	t.Run("Java fence", func(t *testing.T) {
		out := CleanCodeFences("```java\npublic class FooTest {}\n```")
		assert.Equal(t, "public class FooTest {}", out)
	})

	t.Run("Anonymous fence", func(t *testing.T) {
		out := CleanCodeFences("```\npublic class FooTest {}\n```\n")
		assert.Equal(t, "public class FooTest {}", out)
	})

	t.Run("Unfenced text untouched", func(t *testing.T) {
		out := CleanCodeFences("public class FooTest {}")
		assert.Equal(t, "public class FooTest {}", out)
	})

	t.Run("Inner fences survive", func(t *testing.T) {
		in := "public class FooTest {\n// ```\n}"
		assert.Equal(t, in, CleanCodeFences(in))
	})
}
