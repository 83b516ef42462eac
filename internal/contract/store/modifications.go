package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/joshuamatosdev/insight-sub001/internal/contract"
)

const selectModificationColumns = `
	id, contract_id, modification_number, title, description, modification_type, status,
	value_change, funding_change, pop_extension_days, new_pop_end_date, effective_date,
	executed_at, created_at, updated_at
`

func scanModification(s scanner) (*contract.Modification, error) {
	var m contract.Modification

	var modType, status string

	var extension sql.NullInt32

	if err := s.Scan(
		&m.ID, &m.ContractID, &m.ModificationNumber, &m.Title, &m.Description, &modType, &status,
		&m.ValueChange, &m.FundingChange, &extension, &m.NewPopEndDate, &m.EffectiveDate,
		&m.ExecutedAt, &m.CreatedAt, &m.UpdatedAt,
	); err != nil {
		return nil, err
	}

	m.ModificationType = contract.ModificationType(modType)
	m.Status = contract.ModificationStatus(status)

	if extension.Valid {
		m.PopExtensionDays = new(int(extension.Int32))
	}

	return &m, nil
}

func (s *Store) CreateModification(ctx context.Context, m *contract.Modification) error {
	query := `
		INSERT INTO contract_modifications (
			contract_id, modification_number, title, description, modification_type, status,
			value_change, funding_change, pop_extension_days, new_pop_end_date, effective_date, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		m.ContractID,
		m.ModificationNumber,
		m.Title,
		m.Description,
		m.ModificationType,
		m.Status,
		m.ValueChange,
		m.FundingChange,
		m.PopExtensionDays,
		m.NewPopEndDate,
		m.EffectiveDate,
	).Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating modification: %w", err)
	}

	return nil
}

func (s *Store) GetModification(ctx context.Context, id uuid.UUID) (*contract.Modification, error) {
	return getModification(ctx, s.db, id, "")
}

func getModification(ctx context.Context, q querier, id uuid.UUID, lock string) (*contract.Modification, error) {
	query := `SELECT ` + selectModificationColumns + ` FROM contract_modifications WHERE id = $1` + lock

	m, err := scanModification(q.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("modification %s: %w", id, contract.ErrNotFound)
		}

		return nil, fmt.Errorf("getting modification: %w", err)
	}

	return m, nil
}

func (s *Store) UpdateModification(ctx context.Context, m *contract.Modification) error {
	query := `
		UPDATE contract_modifications
		SET modification_number = $1, title = $2, description = $3, modification_type = $4,
			value_change = $5, funding_change = $6, pop_extension_days = $7,
			new_pop_end_date = $8, effective_date = $9, updated_at = NOW()
		WHERE id = $10
		RETURNING updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		m.ModificationNumber,
		m.Title,
		m.Description,
		m.ModificationType,
		m.ValueChange,
		m.FundingChange,
		m.PopExtensionDays,
		m.NewPopEndDate,
		m.EffectiveDate,
		m.ID,
	).Scan(&m.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("modification %s: %w", m.ID, contract.ErrNotFound)
		}

		return fmt.Errorf("updating modification: %w", err)
	}

	return nil
}

func (s *Store) UpdateModificationStatus(ctx context.Context, id uuid.UUID, from, to contract.ModificationStatus) error {
	query := `
		UPDATE contract_modifications
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND status = $3
	`

	res, err := s.db.ExecContext(ctx, query, to, id, from)
	if err != nil {
		return fmt.Errorf("updating modification status: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading affected rows: %w", err)
	}

	if n == 0 {
		return fmt.Errorf("%w: modification %s is no longer %s", contract.ErrInvalidTransition, id, from)
	}

	return nil
}

// ExecuteModification locks the modification and its contract, re-checks that
// the modification is still APPROVED, and applies it.
func (s *Store) ExecuteModification(
	ctx context.Context,
	id uuid.UUID,
	executedAt time.Time,
) (*contract.Modification, *contract.Contract, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	m, err := getModification(ctx, dbTx, id, " FOR UPDATE")
	if err != nil {
		return nil, nil, err
	}

	if !contract.CanExecute(m.Status) {
		return nil, nil, fmt.Errorf("%w: modification %s is %s", contract.ErrInvalidTransition, id, m.Status)
	}

	c, err := getContract(ctx, dbTx, m.ContractID, " FOR UPDATE")
	if err != nil {
		return nil, nil, err
	}

	contract.ApplyExecution(c, m)

	if err := updateContract(ctx, dbTx, c); err != nil {
		return nil, nil, err
	}

	query := `
		UPDATE contract_modifications
		SET status = $1, executed_at = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING updated_at
	`

	if err := dbTx.QueryRowContext(ctx, query, contract.ModificationStatusExecuted, executedAt, id).Scan(&m.UpdatedAt); err != nil {
		return nil, nil, fmt.Errorf("marking modification executed: %w", err)
	}

	if err := dbTx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("committing transaction: %w", err)
	}

	m.Status = contract.ModificationStatusExecuted
	m.ExecutedAt = &executedAt

	return m, c, nil
}

func (s *Store) ListModifications(ctx context.Context, contractID uuid.UUID) ([]*contract.Modification, error) {
	query := `SELECT ` + selectModificationColumns + `
		FROM contract_modifications
		WHERE contract_id = $1
		ORDER BY modification_number ASC`

	rows, err := s.db.QueryContext(ctx, query, contractID)
	if err != nil {
		return nil, fmt.Errorf("listing modifications: %w", err)
	}
	defer rows.Close()

	mods := []*contract.Modification{}

	for rows.Next() {
		m, err := scanModification(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning modification: %w", err)
		}

		mods = append(mods, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing modifications: %w", err)
	}

	return mods, nil
}
