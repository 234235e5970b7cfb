package naming

import (
	"regexp"
	"strings"
)

// versionToken matches the first 'v' of a content type together with the
// digits and dots that follow it.
var versionToken = regexp.MustCompile(`(?i)v[\d.]*`)

// QualifierFor converts a content type into a method name qualifier:
//
//	application/json          -> AsJson
//	application/octet-stream  -> AsBinary
//	text/plain, text/html     -> AsText
//	application/v1.2+json     -> V1_2
//	application/hal+json      -> _HalAsJson
//	application/xml           -> _Xml
//
// Media type parameters (anything after ';') are ignored. The empty string is
// returned when contentType holds neither a version token nor a '/'.
func QualifierFor(contentType string) string {
	ct := contentType
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = ct[:i]
	}
	ct = strings.TrimSpace(ct)
	switch ct {
	case "application/json":
		return "AsJson"
	case "application/octet-stream":
		return "AsBinary"
	case "text/plain", "text/html":
		return "AsText"
	}
	if v := versionToken.FindString(ct); v != "" {
		return strings.ReplaceAll(Capitalize(v), ".", "_")
	}
	sep := strings.IndexByte(ct, '/')
	if sep == -1 {
		return ""
	}
	candidate := strings.ToLower(ct[sep+1:])
	out := ""
	if strings.Contains(candidate, "json") {
		candidate = strings.ReplaceAll(candidate, "json", "")
		out = "AsJson"
	}
	candidate = strings.Map(func(r rune) rune {
		if strings.ContainsRune(" ,.+=-'\"\\|~`#$%^&\n\t", r) || !isIdentifierRune(r) {
			return -1
		}
		return r
	}, candidate)
	if candidate != "" {
		out = Capitalize(candidate) + out
	}
	return "_" + out
}

// Qualifiers returns the qualifier of each content type, in order.
func Qualifiers(contentTypes []string) []string {
	res := make([]string, len(contentTypes))
	for i, ct := range contentTypes {
		res[i] = QualifierFor(ct)
	}
	return res
}
