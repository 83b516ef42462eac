// Package client talks to the contract API over HTTP. It is used by the TUI
// and the CLI.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/joshuamatosdev/insight-sub001/internal/contract"
	"github.com/joshuamatosdev/insight-sub001/internal/http/wire"
)

// Document is a server-rendered report.
type Document string

const (
	DocumentWorkbook Document = "report.xlsx"
	DocumentBrief    Document = "brief.pdf"
)

// HTTPClient calls the /api/v1 REST API and returns domain values.
type HTTPClient struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewHTTPClient targets baseURL (e.g. "http://localhost:8080"). When token is
// non-empty it is sent as a bearer token on every request.
func NewHTTPClient(baseURL, token string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/") + "/api/v1",
		token:      token,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func contractPath(id uuid.UUID, parts ...string) string {
	return "/contracts/" + id.String() + strings.Join(append([]string{""}, parts...), "/")
}

// --- Contracts ---

func (c *HTTPClient) ListContracts(ctx context.Context, filter contract.ListFilter) ([]*contract.Contract, error) {
	q := url.Values{}
	if filter.Status != nil {
		q.Set("status", string(*filter.Status))
	}
	if filter.Agency != "" {
		q.Set("agency", filter.Agency)
	}
	if filter.Search != "" {
		q.Set("search", filter.Search)
	}

	path := "/contracts"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var resp []wire.Contract
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}

	return decodeAll[wire.Contract, contract.Contract](resp)
}

func (c *HTTPClient) GetContract(ctx context.Context, id uuid.UUID) (*contract.Contract, error) {
	var resp wire.Contract
	if err := c.doJSON(ctx, http.MethodGet, contractPath(id), nil, &resp); err != nil {
		return nil, err
	}

	return decode[contract.Contract](resp)
}

func (c *HTTPClient) CreateContract(ctx context.Context, req wire.CreateContractRequest) (*contract.Contract, error) {
	var resp wire.Contract
	if err := c.doJSON(ctx, http.MethodPost, "/contracts", req, &resp); err != nil {
		return nil, err
	}

	return decode[contract.Contract](resp)
}

func (c *HTTPClient) UpdateContract(ctx context.Context, id uuid.UUID, req wire.UpdateContractRequest) (*contract.Contract, error) {
	var resp wire.Contract
	if err := c.doJSON(ctx, http.MethodPatch, contractPath(id), req, &resp); err != nil {
		return nil, err
	}

	return decode[contract.Contract](resp)
}

func (c *HTTPClient) UpdateContractStatus(ctx context.Context, id uuid.UUID, status contract.ContractStatus) (*contract.Contract, error) {
	var resp wire.Contract
	if err := c.doJSON(ctx, http.MethodPatch, contractPath(id, "status"), wire.StatusRequest{Status: string(status)}, &resp); err != nil {
		return nil, err
	}

	return decode[contract.Contract](resp)
}

func (c *HTTPClient) Summary(ctx context.Context, id uuid.UUID) (*contract.Summary, error) {
	var resp wire.Summary
	if err := c.doJSON(ctx, http.MethodGet, contractPath(id, "summary"), nil, &resp); err != nil {
		return nil, err
	}

	return decode[contract.Summary](resp)
}

func (c *HTTPClient) Labels(ctx context.Context) (map[string]contract.LabelTable, error) {
	var resp map[string]contract.LabelTable
	if err := c.doJSON(ctx, http.MethodGet, "/labels", nil, &resp); err != nil {
		return nil, err
	}

	return resp, nil
}

// --- CLINs ---

func (c *HTTPClient) ListClins(ctx context.Context, contractID uuid.UUID) ([]*contract.Clin, error) {
	var resp []wire.Clin
	if err := c.doJSON(ctx, http.MethodGet, contractPath(contractID, "clins"), nil, &resp); err != nil {
		return nil, err
	}

	return decodeAll[wire.Clin, contract.Clin](resp)
}

func (c *HTTPClient) CreateClin(ctx context.Context, contractID uuid.UUID, req wire.ClinRequest) (*contract.Clin, error) {
	var resp wire.Clin
	if err := c.doJSON(ctx, http.MethodPost, contractPath(contractID, "clins"), req, &resp); err != nil {
		return nil, err
	}

	return decode[contract.Clin](resp)
}

func (c *HTTPClient) UpdateClin(ctx context.Context, contractID, clinID uuid.UUID, req wire.ClinRequest) (*contract.Clin, error) {
	var resp wire.Clin
	if err := c.doJSON(ctx, http.MethodPatch, contractPath(contractID, "clins", clinID.String()), req, &resp); err != nil {
		return nil, err
	}

	return decode[contract.Clin](resp)
}

// ImportClins uploads a CLIN schedule file. The server picks the parser from
// the file name.
func (c *HTTPClient) ImportClins(ctx context.Context, contractID uuid.UUID, filename string, file io.Reader) ([]*contract.Clin, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("creating form file: %w", err)
	}

	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("copying file: %w", err)
	}

	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("closing form: %w", err)
	}

	var resp wire.ImportResult
	if err := c.do(ctx, http.MethodPost, contractPath(contractID, "clins", "import"), mw.FormDataContentType(), &buf, &resp); err != nil {
		return nil, err
	}

	return decodeAll[wire.Clin, contract.Clin](resp.Clins)
}

type domainer[D any] interface {
	Domain() (*D, error)
}

// decode converts a response body to its domain value. An enum value the
// server sent but this client does not know fails the call.
func decode[D any](w domainer[D]) (*D, error) {
	d, err := w.Domain()
	if err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	return d, nil
}

func decodeAll[W domainer[D], D any](ws []W) ([]*D, error) {
	out := make([]*D, len(ws))
	for i, w := range ws {
		d, err := decode[D](w)
		if err != nil {
			return nil, err
		}

		out[i] = d
	}

	return out, nil
}

// --- Modifications ---

func (c *HTTPClient) ListModifications(ctx context.Context, contractID uuid.UUID) ([]*contract.Modification, error) {
	var resp []wire.Modification
	if err := c.doJSON(ctx, http.MethodGet, contractPath(contractID, "modifications"), nil, &resp); err != nil {
		return nil, err
	}

	return decodeAll[wire.Modification, contract.Modification](resp)
}

func (c *HTTPClient) CreateModification(ctx context.Context, contractID uuid.UUID, req wire.ModificationRequest) (*contract.Modification, error) {
	var resp wire.Modification
	if err := c.doJSON(ctx, http.MethodPost, contractPath(contractID, "modifications"), req, &resp); err != nil {
		return nil, err
	}

	return decode[contract.Modification](resp)
}

func (c *HTTPClient) UpdateModification(ctx context.Context, contractID, modID uuid.UUID, req wire.ModificationRequest) (*contract.Modification, error) {
	var resp wire.Modification
	if err := c.doJSON(ctx, http.MethodPatch, contractPath(contractID, "modifications", modID.String()), req, &resp); err != nil {
		return nil, err
	}

	return decode[contract.Modification](resp)
}

func (c *HTTPClient) TransitionModification(ctx context.Context, contractID, modID uuid.UUID, status contract.ModificationStatus) (*contract.Modification, error) {
	var resp wire.Modification

	path := contractPath(contractID, "modifications", modID.String(), "status")
	if err := c.doJSON(ctx, http.MethodPatch, path, wire.StatusRequest{Status: string(status)}, &resp); err != nil {
		return nil, err
	}

	return decode[contract.Modification](resp)
}

// ExecuteModification returns the executed modification and the contract
// with the modification's deltas applied.
func (c *HTTPClient) ExecuteModification(ctx context.Context, contractID, modID uuid.UUID) (*contract.Modification, *contract.Contract, error) {
	var resp wire.ExecuteResult
	if err := c.doJSON(ctx, http.MethodPost, contractPath(contractID, "modifications", modID.String(), "execute"), nil, &resp); err != nil {
		return nil, nil, err
	}

	mod, err := decode[contract.Modification](resp.Modification)
	if err != nil {
		return nil, nil, err
	}

	updated, err := decode[contract.Contract](resp.Contract)
	if err != nil {
		return nil, nil, err
	}

	return mod, updated, nil
}

// --- Deliverables ---

func (c *HTTPClient) ListDeliverables(ctx context.Context, contractID uuid.UUID) ([]*contract.Deliverable, error) {
	var resp []wire.Deliverable
	if err := c.doJSON(ctx, http.MethodGet, contractPath(contractID, "deliverables"), nil, &resp); err != nil {
		return nil, err
	}

	return decodeAll[wire.Deliverable, contract.Deliverable](resp)
}

func (c *HTTPClient) CreateDeliverable(ctx context.Context, contractID uuid.UUID, req wire.DeliverableRequest) (*contract.Deliverable, error) {
	var resp wire.Deliverable
	if err := c.doJSON(ctx, http.MethodPost, contractPath(contractID, "deliverables"), req, &resp); err != nil {
		return nil, err
	}

	return decode[contract.Deliverable](resp)
}

func (c *HTTPClient) UpdateDeliverable(ctx context.Context, contractID, delID uuid.UUID, req wire.DeliverableRequest) (*contract.Deliverable, error) {
	var resp wire.Deliverable
	if err := c.doJSON(ctx, http.MethodPatch, contractPath(contractID, "deliverables", delID.String()), req, &resp); err != nil {
		return nil, err
	}

	return decode[contract.Deliverable](resp)
}

func (c *HTTPClient) UpdateDeliverableStatus(ctx context.Context, contractID, delID uuid.UUID, status contract.DeliverableStatus) (*contract.Deliverable, error) {
	var resp wire.Deliverable

	path := contractPath(contractID, "deliverables", delID.String(), "status")
	if err := c.doJSON(ctx, http.MethodPatch, path, wire.StatusRequest{Status: string(status)}, &resp); err != nil {
		return nil, err
	}

	return decode[contract.Deliverable](resp)
}

// --- Reports ---

// Download fetches a rendered report and the file name the server gave it.
func (c *HTTPClient) Download(ctx context.Context, contractID uuid.UUID, doc Document) ([]byte, string, error) {
	resp, err := c.send(ctx, http.MethodGet, contractPath(contractID, string(doc)), "", nil)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, "", newAPIError(resp.StatusCode, body)
	}

	filename := string(doc)
	if _, params, err := mime.ParseMediaType(resp.Header.Get("Content-Disposition")); err == nil && params["filename"] != "" {
		filename = params["filename"]
	}

	return body, filename, nil
}

// --- Transport ---

func (c *HTTPClient) doJSON(ctx context.Context, method, path string, body, result any) error {
	if body == nil {
		return c.do(ctx, method, path, "", nil, result)
	}

	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshaling request body: %w", err)
	}

	return c.do(ctx, method, path, "application/json", bytes.NewReader(data), result)
}

func (c *HTTPClient) do(ctx context.Context, method, path, contentType string, body io.Reader, result any) error {
	resp, err := c.send(ctx, method, path, contentType, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return newAPIError(resp.StatusCode, respBody)
	}

	if result != nil && resp.StatusCode != http.StatusNoContent {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}

	return nil
}

func (c *HTTPClient) send(ctx context.Context, method, path, contentType string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("performing request: %w", err)
	}

	return resp, nil
}
