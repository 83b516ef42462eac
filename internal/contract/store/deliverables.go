package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/joshuamatosdev/insight-sub001/internal/contract"
)

const selectDeliverableColumns = `
	id, contract_id, cdrl_number, title, description, frequency, status,
	due_date, submitted_at, accepted_at, notes, created_at, updated_at
`

func scanDeliverable(s scanner) (*contract.Deliverable, error) {
	var d contract.Deliverable

	var frequency, status string

	if err := s.Scan(
		&d.ID, &d.ContractID, &d.CdrlNumber, &d.Title, &d.Description, &frequency, &status,
		&d.DueDate, &d.SubmittedAt, &d.AcceptedAt, &d.Notes, &d.CreatedAt, &d.UpdatedAt,
	); err != nil {
		return nil, err
	}

	d.Frequency = contract.DeliverableFrequency(frequency)
	d.Status = contract.DeliverableStatus(status)

	return &d, nil
}

func (s *Store) CreateDeliverable(ctx context.Context, d *contract.Deliverable) error {
	query := `
		INSERT INTO contract_deliverables (
			contract_id, cdrl_number, title, description, frequency, status, due_date, notes, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		d.ContractID,
		d.CdrlNumber,
		d.Title,
		d.Description,
		d.Frequency,
		d.Status,
		d.DueDate,
		d.Notes,
	).Scan(&d.ID, &d.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating deliverable: %w", err)
	}

	return nil
}

func (s *Store) GetDeliverable(ctx context.Context, id uuid.UUID) (*contract.Deliverable, error) {
	query := `SELECT ` + selectDeliverableColumns + ` FROM contract_deliverables WHERE id = $1`

	d, err := scanDeliverable(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("deliverable %s: %w", id, contract.ErrNotFound)
		}

		return nil, fmt.Errorf("getting deliverable: %w", err)
	}

	return d, nil
}

func (s *Store) UpdateDeliverable(ctx context.Context, d *contract.Deliverable) error {
	query := `
		UPDATE contract_deliverables
		SET cdrl_number = $1, title = $2, description = $3, frequency = $4, status = $5,
			due_date = $6, submitted_at = $7, accepted_at = $8, notes = $9, updated_at = NOW()
		WHERE id = $10
		RETURNING updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		d.CdrlNumber,
		d.Title,
		d.Description,
		d.Frequency,
		d.Status,
		d.DueDate,
		d.SubmittedAt,
		d.AcceptedAt,
		d.Notes,
		d.ID,
	).Scan(&d.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("deliverable %s: %w", d.ID, contract.ErrNotFound)
		}

		return fmt.Errorf("updating deliverable: %w", err)
	}

	return nil
}

// ListDeliverables orders by due date with undated deliverables last.
func (s *Store) ListDeliverables(ctx context.Context, contractID uuid.UUID) ([]*contract.Deliverable, error) {
	query := `SELECT ` + selectDeliverableColumns + `
		FROM contract_deliverables
		WHERE contract_id = $1
		ORDER BY due_date ASC NULLS LAST, created_at ASC`

	rows, err := s.db.QueryContext(ctx, query, contractID)
	if err != nil {
		return nil, fmt.Errorf("listing deliverables: %w", err)
	}
	defer rows.Close()

	deliverables := []*contract.Deliverable{}

	for rows.Next() {
		d, err := scanDeliverable(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning deliverable: %w", err)
		}

		deliverables = append(deliverables, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing deliverables: %w", err)
	}

	return deliverables, nil
}
