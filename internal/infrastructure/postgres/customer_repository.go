package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Pinturas-api/internal/domain"
	"github.com/jhoicas/Pinturas-api/internal/domain/entity"
	"github.com/jhoicas/Pinturas-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación del puerto CustomerRepository sobre PostgreSQL.
type CustomerRepo struct {
	pool *pgxpool.Pool
}

// NewCustomerRepository construye el adaptador de persistencia para clientes.
func NewCustomerRepository(pool *pgxpool.Pool) *CustomerRepo {
	return &CustomerRepo{pool: pool}
}

const customerColumns = `id, name, email, phone, address, company, notes, username, password_hash,
	status, assigned_user_id, created_by, created_at, updated_at`

// Create persiste un nuevo cliente.
func (r *CustomerRepo) Create(customer *entity.Customer) error {
	query := `
		INSERT INTO customers (` + customerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.pool.Exec(context.Background(), query,
		customer.ID, customer.Name, customer.Email, customer.Phone, customer.Address,
		customer.Company, customer.Notes, customer.Username, customer.PasswordHash,
		customer.Status, customer.AssignedUserID, customer.CreatedBy,
		customer.CreatedAt, customer.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateIdentity
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID, o (nil, nil) si no existe.
func (r *CustomerRepo) GetByID(id string) (*entity.Customer, error) {
	return r.findOne(`SELECT `+customerColumns+` FROM customers WHERE id = $1`, id)
}

// GetByUsername busca un cliente con acceso al portal por su username.
func (r *CustomerRepo) GetByUsername(username string) (*entity.Customer, error) {
	return r.findOne(`SELECT `+customerColumns+` FROM customers WHERE username = $1`, username)
}

func (r *CustomerRepo) findOne(query string, arg any) (*entity.Customer, error) {
	var c entity.Customer
	err := r.pool.QueryRow(context.Background(), query, arg).Scan(
		&c.ID, &c.Name, &c.Email, &c.Phone, &c.Address, &c.Company, &c.Notes,
		&c.Username, &c.PasswordHash, &c.Status, &c.AssignedUserID, &c.CreatedBy,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return &c, nil
}

// Update actualiza un cliente.
func (r *CustomerRepo) Update(customer *entity.Customer) error {
	query := `
		UPDATE customers SET name = $2, email = $3, phone = $4, address = $5, company = $6,
			notes = $7, username = $8, password_hash = $9, status = $10,
			assigned_user_id = $11, updated_at = $12
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		customer.ID, customer.Name, customer.Email, customer.Phone, customer.Address,
		customer.Company, customer.Notes, customer.Username, customer.PasswordHash,
		customer.Status, customer.AssignedUserID, customer.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateIdentity
		}
		return fmt.Errorf("update customer: %w", err)
	}
	return nil
}

// List lista clientes aplicando el scope de propiedad en SQL.
func (r *CustomerRepo) List(scope repository.Scope, limit, offset int) ([]*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers`
	args := []any{}
	switch {
	case scope.CustomerID != "":
		query += ` WHERE id = $1`
		args = append(args, scope.CustomerID)
	case scope.UserID != "":
		query += ` WHERE created_by = $1 OR assigned_user_id = $1`
		args = append(args, scope.UserID)
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Customer
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Address, &c.Company, &c.Notes,
			&c.Username, &c.PasswordHash, &c.Status, &c.AssignedUserID, &c.CreatedBy,
			&c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
