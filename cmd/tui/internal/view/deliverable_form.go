package view

import (
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/joshuamatosdev/insight-sub001/internal/contract"
	"github.com/joshuamatosdev/insight-sub001/internal/http/wire"
)

const dueLayout = "2006-01-02"

// deliverableDraft holds the form values. The form binds to its fields, so
// it must outlive the form by pointer.
type deliverableDraft struct {
	cdrl      string
	title     string
	frequency contract.DeliverableFrequency
	due       string
	notes     string
}

func newDeliverableForm(d *deliverableDraft) *huh.Form {
	frequencies := make([]huh.Option[contract.DeliverableFrequency], 0, len(contract.DeliverableFrequencyValues()))
	for _, f := range contract.DeliverableFrequencyValues() {
		frequencies = append(frequencies, huh.NewOption(f.Label(), f))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("CDRL").
				Placeholder("A001").
				Value(&d.cdrl),
			huh.NewInput().
				Title("Title").
				Validate(required("title")).
				Value(&d.title),
			huh.NewSelect[contract.DeliverableFrequency]().
				Title("Frequency").
				Options(frequencies...).
				Value(&d.frequency),
			huh.NewInput().
				Title("Due date").
				Placeholder(dueLayout).
				Validate(validDue).
				Value(&d.due),
			huh.NewText().
				Title("Notes").
				Lines(3).
				Value(&d.notes),
		),
	).WithWidth(48).WithShowHelp(false)
}

func required(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.New(field + " is required")
		}

		return nil
	}
}

func validDue(s string) error {
	_, err := parseDue(s)
	return err
}

// parseDue accepts an empty string as no due date.
func parseDue(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	t, err := time.Parse(dueLayout, s)
	if err != nil {
		return nil, errors.New("use YYYY-MM-DD")
	}

	return &t, nil
}

func (d *deliverableDraft) request() (wire.DeliverableRequest, error) {
	if err := required("title")(d.title); err != nil {
		return wire.DeliverableRequest{}, err
	}

	due, err := parseDue(d.due)
	if err != nil {
		return wire.DeliverableRequest{}, err
	}

	return wire.DeliverableRequest{
		CdrlNumber: strings.TrimSpace(d.cdrl),
		Title:      strings.TrimSpace(d.title),
		Frequency:  d.frequency,
		DueDate:    due,
		Notes:      strings.TrimSpace(d.notes),
	}, nil
}
