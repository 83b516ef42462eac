package client

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/joshuamatosdev/insight-sub001/internal/contract"
	"github.com/joshuamatosdev/insight-sub001/internal/http/wire"
)

// APIError is a non-2xx response. It matches the contract package sentinel
// errors with errors.Is, so callers handle remote and local failures alike.
type APIError struct {
	StatusCode int
	Message    string
	Fields     map[string]string
}

func newAPIError(status int, body []byte) *APIError {
	var resp wire.Error
	if json.Unmarshal(body, &resp) == nil && resp.Error != "" {
		return &APIError{StatusCode: status, Message: resp.Error, Fields: resp.Fields}
	}

	return &APIError{StatusCode: status, Message: string(body)}
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

func (e *APIError) Is(target error) bool {
	switch target {
	case contract.ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case contract.ErrInvalidTransition:
		return e.StatusCode == http.StatusConflict
	case contract.ErrInvalidInput:
		return e.StatusCode == http.StatusBadRequest
	}

	return false
}
