package report

import "time"

func cellDate(t *time.Time) any {
	if t == nil {
		return nil
	}

	return *t
}

func cellInt(n *int) any {
	if n == nil {
		return nil
	}

	return *n
}
