package checkin

// CheckIn records one meal served to one employee. Check-ins are
// immutable once recorded: there is no update or delete.
type CheckIn struct {
	ID              int    `json:"id"`
	FuncionarioID   int    `json:"funcionario_id"`
	FuncionarioNome string `json:"funcionario_nome"`
	PratoID         int    `json:"prato_id"`
	PratoNome       string `json:"prato_nome"`
	Data            string `json:"data"`
	Horario         string `json:"horario"`
	DataCriacao     string `json:"data_criacao"`
}

// CheckInCreate carries the caller-supplied fields of a new check-in.
// The employee and dish names are resolved from the ids at create time.
type CheckInCreate struct {
	FuncionarioID int    `json:"funcionario_id"`
	PratoID       int    `json:"prato_id"`
	Data          string `json:"data"`
	Horario       string `json:"horario"`
}
