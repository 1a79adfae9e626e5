package prato

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/montbiel/controle-cozinha-ibft/internal/shared"
)

// Repository is a database-backed repository for daily dishes.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new Repository.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// List retrieves all dishes, oldest first.
func (r *Repository) List(ctx context.Context) ([]Prato, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, nome, descricao, data, ativo, data_criacao, data_atualizacao
		 FROM pratos ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list pratos: %w", err)
	}
	defer rows.Close()

	var pratos []Prato
	for rows.Next() {
		var p Prato
		if err := rows.Scan(&p.ID, &p.Nome, &p.Descricao, &p.Data, &p.Ativo, &p.DataCriacao, &p.DataAtualizacao); err != nil {
			return nil, fmt.Errorf("failed to scan prato row: %w", err)
		}
		pratos = append(pratos, p)
	}
	return pratos, rows.Err()
}

// Get retrieves a dish by ID. Returns (nil, nil) when not found.
func (r *Repository) Get(ctx context.Context, id int) (*Prato, error) {
	var p Prato
	err := r.db.QueryRowContext(ctx,
		`SELECT id, nome, descricao, data, ativo, data_criacao, data_atualizacao
		 FROM pratos WHERE id = ?`, id).
		Scan(&p.ID, &p.Nome, &p.Descricao, &p.Data, &p.Ativo, &p.DataCriacao, &p.DataAtualizacao)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get prato: %w", err)
	}
	return &p, nil
}

// Create inserts a new dish. Ativo defaults to true when omitted.
func (r *Repository) Create(ctx context.Context, in PratoCreate) (*Prato, error) {
	ativo := true
	if in.Ativo != nil {
		ativo = *in.Ativo
	}

	now := shared.Timestamp()
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO pratos (nome, descricao, data, ativo, data_criacao, data_atualizacao)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		in.Nome, in.Descricao, in.Data, ativo, now, now)
	if err != nil {
		return nil, fmt.Errorf("failed to insert prato: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read prato insert id: %w", err)
	}

	return &Prato{
		ID:              int(id),
		Nome:            in.Nome,
		Descricao:       in.Descricao,
		Data:            in.Data,
		Ativo:           ativo,
		DataCriacao:     now,
		DataAtualizacao: now,
	}, nil
}

// Update applies a partial update. Returns (nil, nil) when not found.
func (r *Repository) Update(ctx context.Context, id int, in PratoUpdate) (*Prato, error) {
	p, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}

	if in.Nome != nil {
		p.Nome = *in.Nome
	}
	if in.Descricao != nil {
		p.Descricao = *in.Descricao
	}
	if in.Data != nil {
		p.Data = *in.Data
	}
	if in.Ativo != nil {
		p.Ativo = *in.Ativo
	}
	p.DataAtualizacao = shared.Timestamp()

	_, err = r.db.ExecContext(ctx,
		`UPDATE pratos SET nome = ?, descricao = ?, data = ?, ativo = ?, data_atualizacao = ? WHERE id = ?`,
		p.Nome, p.Descricao, p.Data, p.Ativo, p.DataAtualizacao, id)
	if err != nil {
		return nil, fmt.Errorf("failed to update prato: %w", err)
	}
	return p, nil
}

// Delete removes a dish. Returns false when no row matched.
func (r *Repository) Delete(ctx context.Context, id int) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM pratos WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete prato: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read prato delete count: %w", err)
	}
	return n > 0, nil
}
