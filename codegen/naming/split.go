package naming

import "unicode"

type charType int

const (
	typeOther charType = iota
	typeUpper
	typeLower
	typeTitle
	typeModifierLetter
	typeOtherLetter
	typeDigit
	typeLetterNumber
	typeOtherNumber
	typeSpace
	typeControl
	typeDash
	typeConnector
	typeOpen
	typeClose
	typeInitialQuote
	typeFinalQuote
	typePunct
	typeMath
	typeCurrency
	typeModifierSymbol
	typeOtherSymbol
)

// categories is checked in order; the first table containing the rune
// decides its type.
var categories = []struct {
	table *unicode.RangeTable
	typ   charType
}{
	{unicode.Lu, typeUpper},
	{unicode.Ll, typeLower},
	{unicode.Lt, typeTitle},
	{unicode.Lm, typeModifierLetter},
	{unicode.Lo, typeOtherLetter},
	{unicode.Nd, typeDigit},
	{unicode.Nl, typeLetterNumber},
	{unicode.No, typeOtherNumber},
	{unicode.Zs, typeSpace},
	{unicode.Cc, typeControl},
	{unicode.Pd, typeDash},
	{unicode.Pc, typeConnector},
	{unicode.Ps, typeOpen},
	{unicode.Pe, typeClose},
	{unicode.Pi, typeInitialQuote},
	{unicode.Pf, typeFinalQuote},
	{unicode.Po, typePunct},
	{unicode.Sm, typeMath},
	{unicode.Sc, typeCurrency},
	{unicode.Sk, typeModifierSymbol},
	{unicode.So, typeOtherSymbol},
}

func typeOf(r rune) charType {
	for _, c := range categories {
		if unicode.Is(c.table, r) {
			return c.typ
		}
	}
	return typeOther
}

// splitByCharacterTypeCamelCase splits s into groups of runes sharing the
// same Unicode category. An upper case rune directly followed by a lower case
// rune starts a new group so "ASFRules" yields "ASF" and "Rules".
func splitByCharacterTypeCamelCase(s string) []string {
	runes := []rune(s)
	if len(runes) == 0 {
		return nil
	}
	var groups []string
	start := 0
	current := typeOf(runes[0])
	for pos := 1; pos < len(runes); pos++ {
		t := typeOf(runes[pos])
		if t == current {
			continue
		}
		if t == typeLower && current == typeUpper {
			if split := pos - 1; split != start {
				groups = append(groups, string(runes[start:split]))
				start = split
			}
		} else {
			groups = append(groups, string(runes[start:pos]))
			start = pos
		}
		current = t
	}
	return append(groups, string(runes[start:]))
}
