package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/joshuamatosdev/insight-sub001/internal/contract"
)

type Store struct {
	db *sql.DB
}

var _ contract.Repository = (*Store)(nil)

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

const selectContractColumns = `
	id, contract_number, title, description, agency_name, contract_type, status,
	total_value, funded_value, pop_start_date, pop_end_date,
	contracting_officer_name, contracting_officer_email, cor_name, cor_email,
	program_manager_name, contract_manager_name, created_at, updated_at
`

// scanContract reads a contract row in selectContractColumns order.
func scanContract(s scanner) (*contract.Contract, error) {
	var c contract.Contract

	var typeStr, statusStr string

	if err := s.Scan(
		&c.ID, &c.ContractNumber, &c.Title, &c.Description, &c.AgencyName, &typeStr, &statusStr,
		&c.TotalValue, &c.FundedValue, &c.PopStartDate, &c.PopEndDate,
		&c.Contacts.ContractingOfficerName, &c.Contacts.ContractingOfficerEmail,
		&c.Contacts.CORName, &c.Contacts.COREmail,
		&c.Contacts.ProgramManagerName, &c.Contacts.ContractManagerName,
		&c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		return nil, err
	}

	c.ContractType = contract.ContractType(typeStr)
	c.Status = contract.ContractStatus(statusStr)

	return &c, nil
}

func (s *Store) CreateContract(ctx context.Context, c *contract.Contract) error {
	query := `
		INSERT INTO contracts (
			contract_number, title, description, agency_name, contract_type, status,
			total_value, funded_value, pop_start_date, pop_end_date,
			contracting_officer_name, contracting_officer_email, cor_name, cor_email,
			program_manager_name, contract_manager_name, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		c.ContractNumber,
		c.Title,
		c.Description,
		c.AgencyName,
		c.ContractType,
		c.Status,
		c.TotalValue,
		c.FundedValue,
		c.PopStartDate,
		c.PopEndDate,
		c.Contacts.ContractingOfficerName,
		c.Contacts.ContractingOfficerEmail,
		c.Contacts.CORName,
		c.Contacts.COREmail,
		c.Contacts.ProgramManagerName,
		c.Contacts.ContractManagerName,
	).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating contract: %w", err)
	}

	return nil
}

func (s *Store) GetContract(ctx context.Context, id uuid.UUID) (*contract.Contract, error) {
	return getContract(ctx, s.db, id, "")
}

func getContract(ctx context.Context, q querier, id uuid.UUID, lock string) (*contract.Contract, error) {
	query := `SELECT ` + selectContractColumns + ` FROM contracts WHERE id = $1` + lock

	c, err := scanContract(q.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("contract %s: %w", id, contract.ErrNotFound)
		}

		return nil, fmt.Errorf("getting contract: %w", err)
	}

	return c, nil
}

func (s *Store) ListContracts(ctx context.Context, filter contract.ListFilter) ([]*contract.Contract, error) {
	query := `SELECT ` + selectContractColumns + ` FROM contracts WHERE 1 = 1`

	var args []any

	argIdx := 1

	if filter.Status != nil {
		query += fmt.Sprintf(" AND status = $%d", argIdx)

		args = append(args, *filter.Status)
		argIdx++
	}

	if filter.Agency != "" {
		query += fmt.Sprintf(" AND agency_name ILIKE $%d", argIdx)

		args = append(args, "%"+filter.Agency+"%")
		argIdx++
	}

	if filter.Search != "" {
		query += fmt.Sprintf(" AND (contract_number ILIKE $%d OR title ILIKE $%d)", argIdx, argIdx)

		args = append(args, "%"+filter.Search+"%")
		argIdx++
	}

	query += " ORDER BY contract_number ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing contracts: %w", err)
	}
	defer rows.Close()

	contracts := []*contract.Contract{}

	for rows.Next() {
		c, err := scanContract(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning contract: %w", err)
		}

		contracts = append(contracts, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing contracts: %w", err)
	}

	return contracts, nil
}

func (s *Store) UpdateContract(ctx context.Context, c *contract.Contract) error {
	return updateContract(ctx, s.db, c)
}

func updateContract(ctx context.Context, q querier, c *contract.Contract) error {
	query := `
		UPDATE contracts
		SET title = $1, description = $2, agency_name = $3, contract_type = $4,
			total_value = $5, funded_value = $6, pop_start_date = $7, pop_end_date = $8,
			contracting_officer_name = $9, contracting_officer_email = $10, cor_name = $11, cor_email = $12,
			program_manager_name = $13, contract_manager_name = $14, updated_at = NOW()
		WHERE id = $15
		RETURNING updated_at
	`

	err := q.QueryRowContext(ctx, query,
		c.Title,
		c.Description,
		c.AgencyName,
		c.ContractType,
		c.TotalValue,
		c.FundedValue,
		c.PopStartDate,
		c.PopEndDate,
		c.Contacts.ContractingOfficerName,
		c.Contacts.ContractingOfficerEmail,
		c.Contacts.CORName,
		c.Contacts.COREmail,
		c.Contacts.ProgramManagerName,
		c.Contacts.ContractManagerName,
		c.ID,
	).Scan(&c.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("contract %s: %w", c.ID, contract.ErrNotFound)
		}

		return fmt.Errorf("updating contract: %w", err)
	}

	return nil
}

func (s *Store) UpdateContractStatus(ctx context.Context, id uuid.UUID, status contract.ContractStatus) error {
	query := `
		UPDATE contracts
		SET status = $1, updated_at = NOW()
		WHERE id = $2
	`

	res, err := s.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("updating contract status: %w", err)
	}

	return requireAffected(res, "contract", id)
}

func requireAffected(res sql.Result, entity string, id uuid.UUID) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading affected rows: %w", err)
	}

	if n == 0 {
		return fmt.Errorf("%s %s: %w", entity, id, contract.ErrNotFound)
	}

	return nil
}
