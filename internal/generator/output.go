package generator

import "strings"

// CleanCodeFences strips the markdown fence the model tends to wrap
// code in despite being told not to.
func CleanCodeFences(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```java") {
		text = strings.TrimPrefix(text, "```java")
		text = strings.TrimSuffix(text, "```")
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(text, "```")
	}
	return strings.TrimSpace(text)
}
