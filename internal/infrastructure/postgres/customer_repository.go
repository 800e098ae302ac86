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

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

const customerColumns = `id, branch_id, first_name, last_name, nickname, id_card,
		address, district, city, phone1, phone2, phone3, email, created_at, updated_at`

// CustomerRepo implementación de CustomerRepository (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Create persiste un nuevo cliente.
func (r *CustomerRepo) Create(customer *entity.Customer) error {
	query := `
		INSERT INTO customers (` + customerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(context.Background(), query,
		customer.ID, customer.BranchID, customer.FirstName, customer.LastName, customer.Nickname,
		customer.IDCard, customer.Address, customer.District, customer.City,
		customer.Phone1, customer.Phone2, customer.Phone3, customer.Email,
		customer.CreatedAt, customer.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

func scanCustomer(row pgx.Row) (*entity.Customer, error) {
	var c entity.Customer
	err := row.Scan(
		&c.ID, &c.BranchID, &c.FirstName, &c.LastName, &c.Nickname, &c.IDCard,
		&c.Address, &c.District, &c.City, &c.Phone1, &c.Phone2, &c.Phone3, &c.Email,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetByID obtiene un cliente por ID.
func (r *CustomerRepo) GetByID(id string) (*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1`
	c, err := scanCustomer(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return c, nil
}

// GetByBranchAndIDCard obtiene un cliente por sucursal y documento de identidad.
func (r *CustomerRepo) GetByBranchAndIDCard(branchID, idCard string) (*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE branch_id = $1 AND id_card = $2`
	c, err := scanCustomer(r.q.QueryRow(context.Background(), query, branchID, idCard))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer by id_card: %w", err)
	}
	return c, nil
}

// ListByBranch lista clientes de la sucursal con paginación. search filtra por
// nombre, apellido, apodo o documento (ILIKE).
func (r *CustomerRepo) ListByBranch(branchID, search string, limit, offset int) ([]*entity.Customer, error) {
	query := `SELECT ` + customerColumns + `
		FROM customers
		WHERE branch_id = $1
		  AND ($2 = '' OR first_name ILIKE '%' || $2 || '%' OR last_name ILIKE '%' || $2 || '%'
		       OR nickname ILIKE '%' || $2 || '%' OR id_card ILIKE '%' || $2 || '%')
		ORDER BY last_name, first_name LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, branchID, search, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Update actualiza un cliente.
func (r *CustomerRepo) Update(customer *entity.Customer) error {
	query := `
		UPDATE customers SET first_name = $2, last_name = $3, nickname = $4, id_card = $5,
			address = $6, district = $7, city = $8, phone1 = $9, phone2 = $10, phone3 = $11,
			email = $12, updated_at = $13
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		customer.ID, customer.FirstName, customer.LastName, customer.Nickname, customer.IDCard,
		customer.Address, customer.District, customer.City,
		customer.Phone1, customer.Phone2, customer.Phone3, customer.Email, customer.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update customer: %w", err)
	}
	return nil
}

// Delete elimina un cliente por ID.
func (r *CustomerRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	return nil
}
