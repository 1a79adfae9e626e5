package compras

import (
	"strconv"

	"github.com/montbiel/controle-cozinha-ibft/internal/estoque"
)

// DefaultThreshold is the stock level below which an item is suggested
// for purchase.
const DefaultThreshold = 10

// DerivedIDPrefix namespaces derived item ids away from user-added ones,
// so regenerating the variable list can never collide with a fixed list.
const DerivedIDPrefix = "var_"

// Derive builds the variable shopping list from a stock snapshot: every
// item with quantity strictly below threshold becomes a suggestion with
// quantity max(1, threshold-quantity). Input order is preserved and the
// input is not mutated. An empty result is a valid state, not an error.
func Derive(stock []estoque.Item, threshold int) []ListItem {
	items := make([]ListItem, 0)
	for _, it := range stock {
		if it.Quantidade >= threshold {
			continue
		}
		sugerida := threshold - it.Quantidade
		if sugerida < 1 {
			sugerida = 1
		}
		items = append(items, ListItem{
			ID:         DerivedIDPrefix + strconv.Itoa(it.ID),
			Nome:       it.Nome,
			Quantidade: sugerida,
			Unidade:    it.Unidade,
			Categoria:  it.Categoria,
			Comprado:   false,
		})
	}
	return items
}
