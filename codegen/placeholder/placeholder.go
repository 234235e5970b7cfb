// Package placeholder resolves ${key} and ${key:default} placeholders found
// in route templates and other generator inputs.
package placeholder

import "strings"

// Resolve replaces every ${key:default} placeholder of input with the value
// src holds for key, or with default when src has none. A placeholder
// without a default falls back to its key. One level of nested braces is
// supported inside a placeholder so "${pattern:{id}}" resolves to "{id}".
// Text following an unterminated placeholder is copied unchanged.
func Resolve(input string, src Source) string {
	if strings.TrimSpace(input) == "" {
		return input
	}
	var b strings.Builder
	pos := 0
	for {
		start := index(input, "${", pos)
		if start == -1 {
			break
		}
		end := index(input, "}", start+2)
		if next := index(input, "{", start+2); next != -1 && end > next {
			end = index(input, "}", end+1)
		}
		if end == -1 {
			break
		}
		key, def := split(input[start+2 : end])
		b.WriteString(input[pos:start])
		b.WriteString(lookup(src, key, def))
		pos = end + 1
	}
	b.WriteString(input[pos:])
	return b.String()
}

// split separates the body of a placeholder into its key and default value
// at the last ':'. The key doubles as the default when there is no ':'.
func split(body string) (key, def string) {
	if i := strings.LastIndexByte(body, ':'); i != -1 {
		return body[:i], body[i+1:]
	}
	return body, body
}

func lookup(src Source, key, def string) string {
	if src != nil {
		if v, ok := src.Lookup(key); ok {
			return v
		}
	}
	return def
}

// index returns the index of the first sub in s at or after from, or -1.
func index(s, sub string, from int) int {
	if from > len(s) {
		return -1
	}
	if i := strings.Index(s[from:], sub); i != -1 {
		return from + i
	}
	return -1
}
