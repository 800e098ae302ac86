package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/ventas-plazos-api/internal/domain"
	"github.com/tu-usuario/ventas-plazos-api/internal/domain/entity"
	"github.com/tu-usuario/ventas-plazos-api/internal/domain/repository"
)

var _ repository.BranchRepository = (*BranchRepo)(nil)

// BranchRepo implementación de BranchRepository (usable con pool o tx).
type BranchRepo struct {
	q Querier
}

// NewBranchRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBranchRepository(q Querier) *BranchRepo {
	return &BranchRepo{q: q}
}

// Create persiste una nueva sucursal.
func (r *BranchRepo) Create(branch *entity.Branch) error {
	query := `
		INSERT INTO branches (id, code, name, address, phone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		branch.ID, branch.Code, branch.Name, branch.Address, branch.Phone,
		branch.CreatedAt, branch.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert branch: %w", err)
	}
	return nil
}

// GetByID obtiene una sucursal por ID.
func (r *BranchRepo) GetByID(id string) (*entity.Branch, error) {
	query := `
		SELECT id, code, name, address, phone, created_at, updated_at
		FROM branches WHERE id = $1`
	var b entity.Branch
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&b.ID, &b.Code, &b.Name, &b.Address, &b.Phone, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get branch: %w", err)
	}
	return &b, nil
}

// GetByCode obtiene una sucursal por código corto.
func (r *BranchRepo) GetByCode(code string) (*entity.Branch, error) {
	query := `
		SELECT id, code, name, address, phone, created_at, updated_at
		FROM branches WHERE code = $1`
	var b entity.Branch
	err := r.q.QueryRow(context.Background(), query, code).Scan(
		&b.ID, &b.Code, &b.Name, &b.Address, &b.Phone, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get branch by code: %w", err)
	}
	return &b, nil
}

// List lista las sucursales con paginación.
func (r *BranchRepo) List(limit, offset int) ([]*entity.Branch, error) {
	query := `
		SELECT id, code, name, address, phone, created_at, updated_at
		FROM branches ORDER BY code LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list branches: %w", err)
	}
	defer rows.Close()
	var list []*entity.Branch
	for rows.Next() {
		var b entity.Branch
		if err := rows.Scan(&b.ID, &b.Code, &b.Name, &b.Address, &b.Phone, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan branch: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}

// Update actualiza una sucursal.
func (r *BranchRepo) Update(branch *entity.Branch) error {
	query := `
		UPDATE branches SET code = $2, name = $3, address = $4, phone = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		branch.ID, branch.Code, branch.Name, branch.Address, branch.Phone, branch.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update branch: %w", err)
	}
	return nil
}
