package estoque

// Item is a single pantry stock item.
type Item struct {
	ID              int    `json:"id"`
	Nome            string `json:"nome"`
	Quantidade      int    `json:"quantidade"`
	Unidade         string `json:"unidade"`
	Categoria       string `json:"categoria"`
	DataCriacao     string `json:"data_criacao"`
	DataAtualizacao string `json:"data_atualizacao"`
}

// ItemCreate carries the caller-supplied fields of a new stock item.
type ItemCreate struct {
	Nome       string `json:"nome"`
	Quantidade int    `json:"quantidade"`
	Unidade    string `json:"unidade"`
	Categoria  string `json:"categoria"`
}

// ItemUpdate carries a partial update; nil fields are left untouched.
type ItemUpdate struct {
	Nome       *string `json:"nome"`
	Quantidade *int    `json:"quantidade"`
	Unidade    *string `json:"unidade"`
	Categoria  *string `json:"categoria"`
}
