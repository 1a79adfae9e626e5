package prato

// Prato is a dish offered on a given day.
type Prato struct {
	ID              int    `json:"id"`
	Nome            string `json:"nome"`
	Descricao       string `json:"descricao"`
	Data            string `json:"data"`
	Ativo           bool   `json:"ativo"`
	DataCriacao     string `json:"data_criacao"`
	DataAtualizacao string `json:"data_atualizacao"`
}

// PratoCreate carries the caller-supplied fields of a new dish.
type PratoCreate struct {
	Nome      string `json:"nome"`
	Descricao string `json:"descricao"`
	Data      string `json:"data"`
	Ativo     *bool  `json:"ativo"`
}

// PratoUpdate carries a partial update; nil fields are left untouched.
type PratoUpdate struct {
	Nome      *string `json:"nome"`
	Descricao *string `json:"descricao"`
	Data      *string `json:"data"`
	Ativo     *bool   `json:"ativo"`
}
