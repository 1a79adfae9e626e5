package estoque

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/montbiel/controle-cozinha-ibft/internal/shared"
)

// Repository is a database-backed repository for stock items.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new Repository.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// List retrieves all stock items, oldest first.
func (r *Repository) List(ctx context.Context) ([]Item, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, nome, quantidade, unidade, categoria, data_criacao, data_atualizacao
		 FROM estoque ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list estoque: %w", err)
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		var it Item
		if err := rows.Scan(&it.ID, &it.Nome, &it.Quantidade, &it.Unidade, &it.Categoria, &it.DataCriacao, &it.DataAtualizacao); err != nil {
			return nil, fmt.Errorf("failed to scan estoque row: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// Get retrieves a stock item by its ID.
func (r *Repository) Get(ctx context.Context, id int) (*Item, error) {
	var it Item
	err := r.db.QueryRowContext(ctx,
		`SELECT id, nome, quantidade, unidade, categoria, data_criacao, data_atualizacao
		 FROM estoque WHERE id = ?`, id).
		Scan(&it.ID, &it.Nome, &it.Quantidade, &it.Unidade, &it.Categoria, &it.DataCriacao, &it.DataAtualizacao)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // Item not found
		}
		return nil, fmt.Errorf("failed to get estoque item: %w", err)
	}
	return &it, nil
}

// Create inserts a new stock item and returns the stored record.
func (r *Repository) Create(ctx context.Context, in ItemCreate) (*Item, error) {
	now := shared.Timestamp()
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO estoque (nome, quantidade, unidade, categoria, data_criacao, data_atualizacao)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		in.Nome, in.Quantidade, in.Unidade, in.Categoria, now, now)
	if err != nil {
		return nil, fmt.Errorf("failed to insert estoque item: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read estoque insert id: %w", err)
	}

	return &Item{
		ID:              int(id),
		Nome:            in.Nome,
		Quantidade:      in.Quantidade,
		Unidade:         in.Unidade,
		Categoria:       in.Categoria,
		DataCriacao:     now,
		DataAtualizacao: now,
	}, nil
}

// Update applies a partial update to a stock item. Returns (nil, nil)
// when the item does not exist.
func (r *Repository) Update(ctx context.Context, id int, in ItemUpdate) (*Item, error) {
	it, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if it == nil {
		return nil, nil
	}

	if in.Nome != nil {
		it.Nome = *in.Nome
	}
	if in.Quantidade != nil {
		it.Quantidade = *in.Quantidade
	}
	if in.Unidade != nil {
		it.Unidade = *in.Unidade
	}
	if in.Categoria != nil {
		it.Categoria = *in.Categoria
	}
	it.DataAtualizacao = shared.Timestamp()

	_, err = r.db.ExecContext(ctx,
		`UPDATE estoque SET nome = ?, quantidade = ?, unidade = ?, categoria = ?, data_atualizacao = ?
		 WHERE id = ?`,
		it.Nome, it.Quantidade, it.Unidade, it.Categoria, it.DataAtualizacao, id)
	if err != nil {
		return nil, fmt.Errorf("failed to update estoque item: %w", err)
	}
	return it, nil
}

// Delete removes a stock item. Returns false when no row matched.
func (r *Repository) Delete(ctx context.Context, id int) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM estoque WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete estoque item: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read estoque delete count: %w", err)
	}
	return n > 0, nil
}
