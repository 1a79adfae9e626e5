package checkin

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/montbiel/controle-cozinha-ibft/internal/shared"
)

// Repository is a database-backed repository for meal check-ins.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new Repository.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// List retrieves all check-ins, oldest first.
func (r *Repository) List(ctx context.Context) ([]CheckIn, error) {
	return r.query(ctx,
		`SELECT id, funcionario_id, funcionario_nome, prato_id, prato_nome, data, horario, data_criacao
		 FROM checkins ORDER BY id`)
}

// ListByDate retrieves the check-ins recorded for a given day.
func (r *Repository) ListByDate(ctx context.Context, data string) ([]CheckIn, error) {
	return r.query(ctx,
		`SELECT id, funcionario_id, funcionario_nome, prato_id, prato_nome, data, horario, data_criacao
		 FROM checkins WHERE data = ? ORDER BY id`, data)
}

func (r *Repository) query(ctx context.Context, q string, args ...any) ([]CheckIn, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list checkins: %w", err)
	}
	defer rows.Close()

	var checkins []CheckIn
	for rows.Next() {
		var c CheckIn
		if err := rows.Scan(&c.ID, &c.FuncionarioID, &c.FuncionarioNome, &c.PratoID, &c.PratoNome, &c.Data, &c.Horario, &c.DataCriacao); err != nil {
			return nil, fmt.Errorf("failed to scan checkin row: %w", err)
		}
		checkins = append(checkins, c)
	}
	return checkins, rows.Err()
}

// Create inserts a new check-in with the already-resolved employee and
// dish names and returns the stored record.
func (r *Repository) Create(ctx context.Context, c CheckIn) (*CheckIn, error) {
	c.DataCriacao = shared.Timestamp()

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO checkins (funcionario_id, funcionario_nome, prato_id, prato_nome, data, horario, data_criacao)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		c.FuncionarioID, c.FuncionarioNome, c.PratoID, c.PratoNome, c.Data, c.Horario, c.DataCriacao)
	if err != nil {
		return nil, fmt.Errorf("failed to insert checkin: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read checkin insert id: %w", err)
	}

	c.ID = int(id)
	return &c, nil
}
