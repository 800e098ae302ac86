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

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

const employeeColumns = `id, branch_id, first_name, last_name, nickname, id_card,
		role, route, phone, status, created_at, updated_at`

// EmployeeRepo implementación de EmployeeRepository (usable con pool o tx).
type EmployeeRepo struct {
	q Querier
}

// NewEmployeeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewEmployeeRepository(q Querier) *EmployeeRepo {
	return &EmployeeRepo{q: q}
}

// Create persiste un nuevo empleado.
func (r *EmployeeRepo) Create(employee *entity.Employee) error {
	query := `
		INSERT INTO employees (` + employeeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		employee.ID, employee.BranchID, employee.FirstName, employee.LastName, employee.Nickname,
		employee.IDCard, employee.Role, employee.Route, employee.Phone, employee.Status,
		employee.CreatedAt, employee.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert employee: %w", err)
	}
	return nil
}

func scanEmployee(row pgx.Row) (*entity.Employee, error) {
	var e entity.Employee
	err := row.Scan(
		&e.ID, &e.BranchID, &e.FirstName, &e.LastName, &e.Nickname, &e.IDCard,
		&e.Role, &e.Route, &e.Phone, &e.Status, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// GetByID obtiene un empleado por ID.
func (r *EmployeeRepo) GetByID(id string) (*entity.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`
	e, err := scanEmployee(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee: %w", err)
	}
	return e, nil
}

// ListByBranch lista empleados de la sucursal; role filtra por rol (vacío = todos).
func (r *EmployeeRepo) ListByBranch(branchID, role string, limit, offset int) ([]*entity.Employee, error) {
	query := `SELECT ` + employeeColumns + `
		FROM employees
		WHERE branch_id = $1 AND ($2 = '' OR role = $2)
		ORDER BY last_name, first_name LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, branchID, role, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()
	var list []*entity.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

// Update actualiza un empleado.
func (r *EmployeeRepo) Update(employee *entity.Employee) error {
	query := `
		UPDATE employees SET first_name = $2, last_name = $3, nickname = $4, id_card = $5,
			role = $6, route = $7, phone = $8, status = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		employee.ID, employee.FirstName, employee.LastName, employee.Nickname, employee.IDCard,
		employee.Role, employee.Route, employee.Phone, employee.Status, employee.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update employee: %w", err)
	}
	return nil
}

// Delete elimina un empleado por ID.
func (r *EmployeeRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	return nil
}
