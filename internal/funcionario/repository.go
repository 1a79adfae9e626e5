package funcionario

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/montbiel/controle-cozinha-ibft/internal/shared"
)

// Repository is a database-backed repository for employees.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new Repository.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// List retrieves all employees, oldest first.
func (r *Repository) List(ctx context.Context) ([]Funcionario, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, nome, cargo, ativo, data_criacao, data_atualizacao
		 FROM funcionarios ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list funcionarios: %w", err)
	}
	defer rows.Close()

	var funcs []Funcionario
	for rows.Next() {
		var f Funcionario
		if err := rows.Scan(&f.ID, &f.Nome, &f.Cargo, &f.Ativo, &f.DataCriacao, &f.DataAtualizacao); err != nil {
			return nil, fmt.Errorf("failed to scan funcionario row: %w", err)
		}
		funcs = append(funcs, f)
	}
	return funcs, rows.Err()
}

// Get retrieves an employee by ID. Returns (nil, nil) when not found.
func (r *Repository) Get(ctx context.Context, id int) (*Funcionario, error) {
	var f Funcionario
	err := r.db.QueryRowContext(ctx,
		`SELECT id, nome, cargo, ativo, data_criacao, data_atualizacao
		 FROM funcionarios WHERE id = ?`, id).
		Scan(&f.ID, &f.Nome, &f.Cargo, &f.Ativo, &f.DataCriacao, &f.DataAtualizacao)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get funcionario: %w", err)
	}
	return &f, nil
}

// Create inserts a new employee. Ativo defaults to true when omitted.
func (r *Repository) Create(ctx context.Context, in FuncionarioCreate) (*Funcionario, error) {
	ativo := true
	if in.Ativo != nil {
		ativo = *in.Ativo
	}

	now := shared.Timestamp()
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO funcionarios (nome, cargo, ativo, data_criacao, data_atualizacao)
		 VALUES (?, ?, ?, ?, ?)`,
		in.Nome, in.Cargo, ativo, now, now)
	if err != nil {
		return nil, fmt.Errorf("failed to insert funcionario: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read funcionario insert id: %w", err)
	}

	return &Funcionario{
		ID:              int(id),
		Nome:            in.Nome,
		Cargo:           in.Cargo,
		Ativo:           ativo,
		DataCriacao:     now,
		DataAtualizacao: now,
	}, nil
}

// Update applies a partial update. Returns (nil, nil) when not found.
func (r *Repository) Update(ctx context.Context, id int, in FuncionarioUpdate) (*Funcionario, error) {
	f, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, nil
	}

	if in.Nome != nil {
		f.Nome = *in.Nome
	}
	if in.Cargo != nil {
		f.Cargo = *in.Cargo
	}
	if in.Ativo != nil {
		f.Ativo = *in.Ativo
	}
	f.DataAtualizacao = shared.Timestamp()

	_, err = r.db.ExecContext(ctx,
		`UPDATE funcionarios SET nome = ?, cargo = ?, ativo = ?, data_atualizacao = ? WHERE id = ?`,
		f.Nome, f.Cargo, f.Ativo, f.DataAtualizacao, id)
	if err != nil {
		return nil, fmt.Errorf("failed to update funcionario: %w", err)
	}
	return f, nil
}

// Delete removes an employee. Returns false when no row matched.
func (r *Repository) Delete(ctx context.Context, id int) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM funcionarios WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete funcionario: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read funcionario delete count: %w", err)
	}
	return n > 0, nil
}
