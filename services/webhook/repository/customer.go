package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/gamestore-webhook/internal/pkg/models"
	nr "github.com/piresc/gamestore-webhook/internal/pkg/newrelic"
)

const customersTable = "clientes"

// GetCustomerByCPF returns nil when no customer has the given CPF
func (r *WebhookRepo) GetCustomerByCPF(ctx context.Context, cpf string) (*models.Customer, error) {
	query := `SELECT cpf, nome, email FROM clientes WHERE cpf = $1`

	var customer models.Customer
	err := nr.WithDatastoreSegment(ctx, newrelic.DatastorePostgres, customersTable, "SELECT", func() error {
		return r.db.GetContext(ctx, &customer, query, cpf)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	return &customer, nil
}

// CreateCustomer inserts a customer. A duplicate CPF is rejected by the table's unique constraint.
func (r *WebhookRepo) CreateCustomer(ctx context.Context, customer *models.Customer) error {
	query := `INSERT INTO clientes (nome, cpf, email) VALUES (:nome, :cpf, :email)`

	err := nr.WithDatastoreSegment(ctx, newrelic.DatastorePostgres, customersTable, "INSERT", func() error {
		_, err := r.db.NamedExecContext(ctx, query, customer)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to create customer: %w", err)
	}

	return nil
}

func (r *WebhookRepo) UpdateCustomerEmail(ctx context.Context, cpf, email string) error {
	query := `UPDATE clientes SET email = $1 WHERE cpf = $2`

	err := nr.WithDatastoreSegment(ctx, newrelic.DatastorePostgres, customersTable, "UPDATE", func() error {
		_, err := r.db.ExecContext(ctx, query, email, cpf)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to update customer email: %w", err)
	}

	return nil
}
