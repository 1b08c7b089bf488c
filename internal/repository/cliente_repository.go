package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/yagomat/supra-client-nexus-sub000/internal/models"
)

type clienteRepository struct {
	db *sqlx.DB
}

func NewClienteRepository(db *sqlx.DB) ClienteRepository {
	return &clienteRepository{
		db: db,
	}
}

const clienteColumns = `id, user_id, nome, telefone, status, servidor, uf, dia_vencimento, valor_plano, observacao, created_at`

// ListByFilter resolves clients matching the campaign filter. Empty filter
// fields impose no constraint on that column.
func (r *clienteRepository) ListByFilter(ctx context.Context, userID string, filter models.ClienteFilter) ([]*models.Cliente, error) {
	query := `
		SELECT ` + clienteColumns + `
		FROM clientes
		WHERE user_id = $1
		  AND ($2 = '' OR status = $2)
		  AND ($3 = '' OR servidor = $3)
		  AND ($4 = '' OR uf = $4)
		ORDER BY nome ASC, id ASC
	`

	var clientes []*models.Cliente
	err := r.db.SelectContext(ctx, &clientes, query, userID, filter.Status, filter.Servidor, filter.UF)
	if err != nil {
		return nil, fmt.Errorf("failed to list clientes by filter: %w", err)
	}

	return clientes, nil
}

// ListActive returns the user's active clients, the reminder scheduler's input.
func (r *clienteRepository) ListActive(ctx context.Context, userID string) ([]*models.Cliente, error) {
	query := `
		SELECT ` + clienteColumns + `
		FROM clientes
		WHERE user_id = $1 AND status = 'ativo'
		ORDER BY nome ASC, id ASC
	`

	var clientes []*models.Cliente
	if err := r.db.SelectContext(ctx, &clientes, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list active clientes: %w", err)
	}

	return clientes, nil
}

func (r *clienteRepository) GetByID(ctx context.Context, userID string, id int64) (*models.Cliente, error) {
	query := `
		SELECT ` + clienteColumns + `
		FROM clientes
		WHERE user_id = $1 AND id = $2
	`

	var cliente models.Cliente
	if err := r.db.GetContext(ctx, &cliente, query, userID, id); err != nil {
		return nil, wrapNotFound(fmt.Errorf("failed to get cliente: %w", err))
	}

	return &cliente, nil
}

// FindByPhone matches on the digits of the stored phone so that numbers with
// or without formatting still resolve.
func (r *clienteRepository) FindByPhone(ctx context.Context, userID, phone string) (*models.Cliente, error) {
	query := `
		SELECT ` + clienteColumns + `
		FROM clientes
		WHERE user_id = $1 AND regexp_replace(telefone, '\D', '', 'g') = regexp_replace($2, '\D', '', 'g')
		ORDER BY id ASC
		LIMIT 1
	`

	var cliente models.Cliente
	if err := r.db.GetContext(ctx, &cliente, query, userID, phone); err != nil {
		return nil, wrapNotFound(fmt.Errorf("failed to find cliente by phone: %w", err))
	}

	return &cliente, nil
}
