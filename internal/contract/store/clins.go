package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/joshuamatosdev/insight-sub001/internal/contract"
)

const selectClinColumns = `
	id, contract_id, clin_number, description, clin_type, pricing_type,
	total_value, funded_amount, invoiced_amount, remaining_funds, created_at, updated_at
`

func scanClin(s scanner) (*contract.Clin, error) {
	var c contract.Clin

	var clinType, pricingType string

	if err := s.Scan(
		&c.ID, &c.ContractID, &c.ClinNumber, &c.Description, &clinType, &pricingType,
		&c.TotalValue, &c.FundedAmount, &c.InvoicedAmount, &c.RemainingFunds,
		&c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		return nil, err
	}

	c.ClinType = contract.ClinType(clinType)
	c.PricingType = contract.PricingType(pricingType)

	return &c, nil
}

const insertClinQuery = `
	INSERT INTO contract_clins (
		contract_id, clin_number, description, clin_type, pricing_type,
		total_value, funded_amount, invoiced_amount, remaining_funds, created_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
	RETURNING id, created_at
`

func insertClin(ctx context.Context, q querier, c *contract.Clin) error {
	return q.QueryRowContext(ctx, insertClinQuery,
		c.ContractID,
		c.ClinNumber,
		c.Description,
		c.ClinType,
		c.PricingType,
		c.TotalValue,
		c.FundedAmount,
		c.InvoicedAmount,
		c.RemainingFunds,
	).Scan(&c.ID, &c.CreatedAt)
}

func (s *Store) CreateClin(ctx context.Context, c *contract.Clin) error {
	if err := insertClin(ctx, s.db, c); err != nil {
		return fmt.Errorf("creating clin: %w", err)
	}

	return nil
}

// CreateClins inserts every CLIN or none of them.
func (s *Store) CreateClins(ctx context.Context, clins []*contract.Clin) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	for _, c := range clins {
		if err := insertClin(ctx, dbTx, c); err != nil {
			return fmt.Errorf("creating clin %s: %w", c.ClinNumber, err)
		}
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

func (s *Store) GetClin(ctx context.Context, id uuid.UUID) (*contract.Clin, error) {
	query := `SELECT ` + selectClinColumns + ` FROM contract_clins WHERE id = $1`

	c, err := scanClin(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("clin %s: %w", id, contract.ErrNotFound)
		}

		return nil, fmt.Errorf("getting clin: %w", err)
	}

	return c, nil
}

func (s *Store) UpdateClin(ctx context.Context, c *contract.Clin) error {
	query := `
		UPDATE contract_clins
		SET clin_number = $1, description = $2, clin_type = $3, pricing_type = $4,
			total_value = $5, funded_amount = $6, invoiced_amount = $7, remaining_funds = $8,
			updated_at = NOW()
		WHERE id = $9
		RETURNING updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		c.ClinNumber,
		c.Description,
		c.ClinType,
		c.PricingType,
		c.TotalValue,
		c.FundedAmount,
		c.InvoicedAmount,
		c.RemainingFunds,
		c.ID,
	).Scan(&c.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("clin %s: %w", c.ID, contract.ErrNotFound)
		}

		return fmt.Errorf("updating clin: %w", err)
	}

	return nil
}

func (s *Store) ListClins(ctx context.Context, contractID uuid.UUID) ([]*contract.Clin, error) {
	query := `SELECT ` + selectClinColumns + `
		FROM contract_clins
		WHERE contract_id = $1
		ORDER BY clin_number ASC`

	rows, err := s.db.QueryContext(ctx, query, contractID)
	if err != nil {
		return nil, fmt.Errorf("listing clins: %w", err)
	}
	defer rows.Close()

	clins := []*contract.Clin{}

	for rows.Next() {
		c, err := scanClin(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning clin: %w", err)
		}

		clins = append(clins, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing clins: %w", err)
	}

	return clins, nil
}
