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

var _ repository.GuarantorRepository = (*GuarantorRepo)(nil)

const guarantorColumns = `id, branch_id, first_name, last_name, nickname, id_card,
		address, district, city, phone1, phone2, email, created_at, updated_at`

// GuarantorRepo implementación de GuarantorRepository (usable con pool o tx).
type GuarantorRepo struct {
	q Querier
}

// NewGuarantorRepository construye el adaptador. Pasar pool o tx (Querier).
func NewGuarantorRepository(q Querier) *GuarantorRepo {
	return &GuarantorRepo{q: q}
}

// Create persiste un nuevo fiador.
func (r *GuarantorRepo) Create(guarantor *entity.Guarantor) error {
	query := `
		INSERT INTO guarantors (` + guarantorColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		guarantor.ID, guarantor.BranchID, guarantor.FirstName, guarantor.LastName, guarantor.Nickname,
		guarantor.IDCard, guarantor.Address, guarantor.District, guarantor.City,
		guarantor.Phone1, guarantor.Phone2, guarantor.Email,
		guarantor.CreatedAt, guarantor.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert guarantor: %w", err)
	}
	return nil
}

func scanGuarantor(row pgx.Row) (*entity.Guarantor, error) {
	var g entity.Guarantor
	err := row.Scan(
		&g.ID, &g.BranchID, &g.FirstName, &g.LastName, &g.Nickname, &g.IDCard,
		&g.Address, &g.District, &g.City, &g.Phone1, &g.Phone2, &g.Email,
		&g.CreatedAt, &g.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

// GetByID obtiene un fiador por ID.
func (r *GuarantorRepo) GetByID(id string) (*entity.Guarantor, error) {
	query := `SELECT ` + guarantorColumns + ` FROM guarantors WHERE id = $1`
	g, err := scanGuarantor(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get guarantor: %w", err)
	}
	return g, nil
}

// GetByBranchAndIDCard obtiene un fiador por sucursal y documento.
func (r *GuarantorRepo) GetByBranchAndIDCard(branchID, idCard string) (*entity.Guarantor, error) {
	query := `SELECT ` + guarantorColumns + ` FROM guarantors WHERE branch_id = $1 AND id_card = $2`
	g, err := scanGuarantor(r.q.QueryRow(context.Background(), query, branchID, idCard))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get guarantor by id_card: %w", err)
	}
	return g, nil
}

// ListByBranch lista fiadores de la sucursal con paginación y búsqueda.
func (r *GuarantorRepo) ListByBranch(branchID, search string, limit, offset int) ([]*entity.Guarantor, error) {
	query := `SELECT ` + guarantorColumns + `
		FROM guarantors
		WHERE branch_id = $1
		  AND ($2 = '' OR first_name ILIKE '%' || $2 || '%' OR last_name ILIKE '%' || $2 || '%'
		       OR nickname ILIKE '%' || $2 || '%' OR id_card ILIKE '%' || $2 || '%')
		ORDER BY last_name, first_name LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, branchID, search, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list guarantors: %w", err)
	}
	defer rows.Close()
	var list []*entity.Guarantor
	for rows.Next() {
		g, err := scanGuarantor(rows)
		if err != nil {
			return nil, fmt.Errorf("scan guarantor: %w", err)
		}
		list = append(list, g)
	}
	return list, rows.Err()
}

// Update actualiza un fiador.
func (r *GuarantorRepo) Update(guarantor *entity.Guarantor) error {
	query := `
		UPDATE guarantors SET first_name = $2, last_name = $3, nickname = $4, id_card = $5,
			address = $6, district = $7, city = $8, phone1 = $9, phone2 = $10, email = $11,
			updated_at = $12
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		guarantor.ID, guarantor.FirstName, guarantor.LastName, guarantor.Nickname, guarantor.IDCard,
		guarantor.Address, guarantor.District, guarantor.City,
		guarantor.Phone1, guarantor.Phone2, guarantor.Email, guarantor.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update guarantor: %w", err)
	}
	return nil
}

// Delete elimina un fiador por ID.
func (r *GuarantorRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM guarantors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete guarantor: %w", err)
	}
	return nil
}
