package estoque

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Normalize lowercases a string and strips diacritics, so "Feijão"
// matches a search for "feijao".
func Normalize(s string) string {
	var b strings.Builder
	for _, r := range norm.NFD.String(strings.ToLower(s)) {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Filter returns the items matching the given category and search term.
// An empty categoria matches every category; an empty busca matches every
// name. Category comparison is exact, the name search is an
// accent-insensitive substring match. Input order is preserved and the
// input slice is not mutated.
func Filter(items []Item, categoria, busca string) []Item {
	busca = Normalize(strings.TrimSpace(busca))

	filtered := make([]Item, 0, len(items))
	for _, it := range items {
		if categoria != "" && it.Categoria != categoria {
			continue
		}
		if busca != "" && !strings.Contains(Normalize(it.Nome), busca) {
			continue
		}
		filtered = append(filtered, it)
	}
	return filtered
}

// Categories returns the distinct categories present in items, in first
// appearance order.
func Categories(items []Item) []string {
	seen := make(map[string]bool)
	var out []string
	for _, it := range items {
		if it.Categoria == "" || seen[it.Categoria] {
			continue
		}
		seen[it.Categoria] = true
		out = append(out, it.Categoria)
	}
	return out
}
