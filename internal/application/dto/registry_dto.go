package dto

import "github.com/shopspring/decimal"

// ── Sucursales ────────────────────────────────────────────────────────────────

// CreateBranchRequest body para POST /api/branches.
type CreateBranchRequest struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
}

// BranchResponse sucursal en respuestas.
type BranchResponse struct {
	ID      string `json:"id"`
	Code    string `json:"code"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
}

// ── Clientes y fiadores ───────────────────────────────────────────────────────

// CreateCustomerRequest body para POST /api/customers (también para fiadores).
type CreateCustomerRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Nickname  string `json:"nickname,omitempty"`
	IDCard    string `json:"id_card"`
	Address   string `json:"address,omitempty"`
	District  string `json:"district,omitempty"`
	City      string `json:"city,omitempty"`
	Phone1    string `json:"phone1,omitempty"`
	Phone2    string `json:"phone2,omitempty"`
	Phone3    string `json:"phone3,omitempty"`
	Email     string `json:"email,omitempty"`
}

// CustomerResponse cliente en respuestas.
type CustomerResponse struct {
	ID        string `json:"id"`
	BranchID  string `json:"branch_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	FullName  string `json:"full_name"`
	Nickname  string `json:"nickname,omitempty"`
	IDCard    string `json:"id_card"`
	Address   string `json:"address,omitempty"`
	District  string `json:"district,omitempty"`
	City      string `json:"city,omitempty"`
	Phone1    string `json:"phone1,omitempty"`
	Phone2    string `json:"phone2,omitempty"`
	Phone3    string `json:"phone3,omitempty"`
	Email     string `json:"email,omitempty"`
}

// GuarantorResponse fiador en respuestas.
type GuarantorResponse struct {
	ID        string `json:"id"`
	BranchID  string `json:"branch_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	FullName  string `json:"full_name"`
	Nickname  string `json:"nickname,omitempty"`
	IDCard    string `json:"id_card"`
	Address   string `json:"address,omitempty"`
	District  string `json:"district,omitempty"`
	City      string `json:"city,omitempty"`
	Phone1    string `json:"phone1,omitempty"`
	Phone2    string `json:"phone2,omitempty"`
	Email     string `json:"email,omitempty"`
}

// ── Empleados ─────────────────────────────────────────────────────────────────

// CreateEmployeeRequest body para POST /api/employees.
type CreateEmployeeRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Nickname  string `json:"nickname,omitempty"`
	IDCard    string `json:"id_card"`
	Role      string `json:"role"` // vendedor | inspector | cobrador | admin
	Route     string `json:"route,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// EmployeeResponse empleado en respuestas.
type EmployeeResponse struct {
	ID        string `json:"id"`
	BranchID  string `json:"branch_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	FullName  string `json:"full_name"`
	Nickname  string `json:"nickname,omitempty"`
	IDCard    string `json:"id_card"`
	Role      string `json:"role"`
	Route     string `json:"route,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Status    string `json:"status"`
}

// ── Productos ─────────────────────────────────────────────────────────────────

// CreateProductRequest body para POST /api/products.
type CreateProductRequest struct {
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	Brand     string          `json:"brand,omitempty"`
	Model     string          `json:"model,omitempty"`
	CashPrice decimal.Decimal `json:"cash_price"`
	Stock     int             `json:"stock"`
}

// ProductResponse producto en respuestas.
type ProductResponse struct {
	ID        string          `json:"id"`
	BranchID  string          `json:"branch_id"`
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	Brand     string          `json:"brand,omitempty"`
	Model     string          `json:"model,omitempty"`
	CashPrice decimal.Decimal `json:"cash_price"`
	Stock     int             `json:"stock"`
}
