package compras

// ListItem is one entry of a shopping list. Derived items (low-stock
// suggestions) and user-added items share this shape; they never share a
// container, so the id namespace keeps them apart ("var_" prefix for
// derived ids).
type ListItem struct {
	ID         string `json:"id"`
	Nome       string `json:"nome"`
	Quantidade int    `json:"quantidade"`
	Unidade    string `json:"unidade"`
	Categoria  string `json:"categoria"`
	Comprado   bool   `json:"comprado"`
}

// FixedList is a user-named, persisted shopping list. Item order is
// insertion order and doubles as display and export order.
type FixedList struct {
	ID          string     `json:"id"`
	Nome        string     `json:"nome"`
	Itens       []ListItem `json:"itens"`
	DataCriacao string     `json:"dataCriacao"`
}

// ItemInput carries the user-supplied fields for AddItem.
type ItemInput struct {
	Nome       string `json:"nome"`
	Quantidade int    `json:"quantidade"`
	Unidade    string `json:"unidade"`
	Categoria  string `json:"categoria"`
}
