package funcionario

// Funcionario is a kitchen staff member.
type Funcionario struct {
	ID              int    `json:"id"`
	Nome            string `json:"nome"`
	Cargo           string `json:"cargo"`
	Ativo           bool   `json:"ativo"`
	DataCriacao     string `json:"data_criacao"`
	DataAtualizacao string `json:"data_atualizacao"`
}

// FuncionarioCreate carries the caller-supplied fields of a new employee.
type FuncionarioCreate struct {
	Nome  string `json:"nome"`
	Cargo string `json:"cargo"`
	Ativo *bool  `json:"ativo"`
}

// FuncionarioUpdate carries a partial update; nil fields are left untouched.
type FuncionarioUpdate struct {
	Nome  *string `json:"nome"`
	Cargo *string `json:"cargo"`
	Ativo *bool   `json:"ativo"`
}
