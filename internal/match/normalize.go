package match

import (
	"strings"
	"unicode"
)

// NormalizeIdent lowercases an identifier and drops '_', '-' and spaces,
// so "orderID", "Order_Id" and "order id" all become "orderid".
func NormalizeIdent(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for _, r := range s {
		if isSeparator(r) {
			continue
		}

		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}
