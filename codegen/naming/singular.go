package naming

import "strings"

// Singularize returns the singular form of word using the default Namer.
func Singularize(word string) string {
	return Default().Singularize(word)
}

// Singularize returns the singular form of word. Words ending in "ss" that
// the inflector would only truncate by one character ("address", "class",
// "business") are returned unchanged.
func (n *Namer) Singularize(word string) string {
	result := n.rules.Singularize(word)
	if strings.HasSuffix(word, "ss") && result == word[:len(word)-1] {
		return word
	}
	return result
}
