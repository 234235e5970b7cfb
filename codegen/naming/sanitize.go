package naming

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"goa.design/goa/v3/codegen"
)

// DefaultModelPackage is the sub-package suffix used for request and response
// body models.
const DefaultModelPackage = ".model"

// enumDefault is returned by CleanForEnumConstant when nothing survives
// sanitization.
const enumDefault = "_DEFAULT_"

var (
	// commentContinuation matches block comment continuation markers.
	commentContinuation = regexp.MustCompile(`\s+\*\s+`)
	// classSuffixes matches the implementation suffixes stripped by
	// ResourceClassName.
	classSuffixes = regexp.MustCompile(`(?i)^(.+)(services|service|impl|class|controller)$`)
)

// CleanForIdentifier sanitizes raw with the default Namer.
func CleanForIdentifier(raw string) string {
	return Default().CleanForIdentifier(raw)
}

// CleanForIdentifier turns raw into an identifier. Word delimiters are
// removed and the character following each one is upper-cased, characters
// outside [0-9a-zA-Z_$] are dropped and a leading digit is prefixed with '_'.
// Blank input is returned unchanged. The result may be empty when raw holds
// no legal character.
func (n *Namer) CleanForIdentifier(raw string) string {
	if isBlank(raw) {
		return raw
	}
	s := strings.Map(func(r rune) rune {
		if isIdentifierRune(r) {
			return r
		}
		return -1
	}, n.joinWords(raw))
	if s != "" && s[0] >= '0' && s[0] <= '9' {
		s = "_" + s
	}
	return s
}

// ClassName returns raw as a capitalized identifier.
func (n *Namer) ClassName(raw string) string {
	return Capitalize(n.CleanForIdentifier(raw))
}

// ParameterName returns raw as an identifier suitable for a method
// parameter, e.g. a query parameter or request header name.
func (n *Namer) ParameterName(raw string) string {
	return Uncapitalize(n.CleanForIdentifier(raw))
}

// ClassName returns raw as a capitalized identifier using the default Namer.
func ClassName(raw string) string { return Default().ClassName(raw) }

// ParameterName returns raw as a parameter identifier using the default Namer.
func ParameterName(raw string) string { return Default().ParameterName(raw) }

// CleanForEnumConstant turns raw into an upper snake case enum constant.
// raw is split into camel case character-type groups, groups made only of
// illegal characters are dropped and the rest are joined with '_'.
// "_DEFAULT_" is returned when no group survives.
func CleanForEnumConstant(raw string) string {
	groups := splitByCharacterTypeCamelCase(raw)
	kept := make([]string, 0, len(groups))
	for _, g := range groups {
		g = strings.Map(func(r rune) rune {
			if isIdentifierRune(r) {
				return r
			}
			return '_'
		}, g)
		if strings.Trim(g, "_") == "" {
			continue
		}
		kept = append(kept, g)
	}
	name := strings.ToUpper(strings.Join(kept, "_"))
	if name == "" {
		return enumDefault
	}
	if name[0] >= '0' && name[0] <= '9' {
		name = "_" + name
	}
	return name
}

// CleanFreeText trims the delimiter noise surrounding human readable text
// such as documentation extracted from comments. Runs of whitespace around
// a '*' collapse into a single space.
func CleanFreeText(raw string) string {
	if isBlank(raw) {
		return raw
	}
	s := commentContinuation.ReplaceAllString(raw, " ")
	s = strings.TrimLeft(s, "/\r\n*-\t \\")
	return strings.TrimRight(s, "/\r\n ,\t-*")
}

// IsValidIdentifier reports whether s is non-empty, starts with a letter,
// '_' or '$' and continues with letters, digits, '_' or '$'.
func IsValidIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case unicode.IsLetter(r), r == '_', r == '$':
		case i > 0 && unicode.IsDigit(r):
		default:
			return false
		}
	}
	return true
}

// ResourceClassName derives a resource name from an implementation type
// name by stripping trailing Service, Impl, Class and Controller suffixes:
// "MonitorServiceImpl" becomes "monitor".
func ResourceClassName(typeName string) string {
	name := typeName
	for {
		m := classSuffixes.FindStringSubmatch(name)
		if m == nil {
			break
		}
		name = m[1]
	}
	return Uncapitalize(name)
}

// GoIdentifier renders raw as a Go identifier, exported when exported is
// true.
func GoIdentifier(raw string, exported bool) string {
	return codegen.Goify(CleanForIdentifier(raw), exported)
}

// FileSlug renders name as a lower snake_case token usable as a file or
// directory name. Words are split the way CleanForEnumConstant splits them.
// fallback is returned when nothing survives.
func FileSlug(name, fallback string) string {
	c := CleanForEnumConstant(name)
	if c == enumDefault {
		return fallback
	}
	words := strings.FieldsFunc(strings.ToLower(c), func(r rune) bool { return r == '_' || r == '$' })
	if len(words) == 0 {
		return fallback
	}
	return strings.Join(words, "_")
}

// Capitalize upper-cases the first character of s.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || unicode.IsUpper(r) {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// Uncapitalize lower-cases the first character of s.
func Uncapitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || unicode.IsLower(r) {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}

// joinWords removes the configured delimiters from s, upper-casing the
// character that follows each one. The first character keeps its case.
func (n *Namer) joinWords(s string) string {
	if !strings.ContainsAny(s, n.delimiters) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	upperNext := false
	for i, r := range s {
		if strings.ContainsRune(n.delimiters, r) {
			upperNext = true
			continue
		}
		if upperNext && i > 0 {
			r = unicode.ToUpper(r)
		}
		upperNext = false
		b.WriteRune(r)
	}
	return b.String()
}

func isIdentifierRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_' || r == '$'
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
