package contract

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"

	"github.com/joshuamatosdev/insight-sub001/internal/contract"
	"github.com/joshuamatosdev/insight-sub001/internal/http/wire"
	"github.com/joshuamatosdev/insight-sub001/internal/importer"
)

const maxUploadBytes = 10 << 20

func (h *Handler) listClins(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	clins, err := h.svc.ListClins(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, wire.FromClins(clins))
}

func (h *Handler) createClin(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req wire.ClinRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	c, err := h.svc.CreateClin(r.Context(), id, req.Params())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, wire.FromClin(c))
}

func (h *Handler) updateClin(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	clinID, ok := pathID(w, r, "clinID")
	if !ok {
		return
	}

	var req wire.ClinRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	existing, err := h.svc.GetClin(r.Context(), clinID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if existing.ContractID != id {
		writeError(w, r, notFound("clin"))
		return
	}

	c, err := h.svc.UpdateClin(r.Context(), clinID, req.Params())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, wire.FromClin(c))
}

// importClins accepts a CLIN schedule as a multipart upload (field "file"),
// a raw text/csv body, or a JSON list of CLINs. Nothing is written unless
// every row is valid.
func (h *Handler) importClins(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	params, err := h.readSchedule(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	clins, err := h.svc.ImportClins(r.Context(), id, params)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, wire.ImportResult{
		Imported: len(clins),
		Clins:    wire.FromClins(clins),
	})
}

func (h *Handler) readSchedule(w http.ResponseWriter, r *http.Request) ([]contract.ClinParams, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	switch mediaType {
	case "multipart/form-data":
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			return nil, invalid(fmt.Errorf("failed to parse form: %w", err))
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			return nil, invalid(errors.New("file field is required"))
		}
		defer file.Close()

		return h.parse(importer.FormatFromFilename(header.Filename), file)
	case "text/csv":
		return h.parse(importer.FormatCSV, http.MaxBytesReader(w, r.Body, maxUploadBytes))
	default:
		var req wire.ImportRequest
		if err := decodeBody(w, r, &req); err != nil {
			return nil, invalid(err)
		}

		params := make([]contract.ClinParams, len(req.Clins))
		for i, c := range req.Clins {
			params[i] = c.Params()
		}

		return params, nil
	}
}

func (h *Handler) parse(format importer.Format, body io.Reader) ([]contract.ClinParams, error) {
	params, err := h.importSvc.Import(format, body)
	if err != nil {
		return nil, invalid(err)
	}

	return params, nil
}

// invalid marks a parse failure as bad input, keeping field errors intact.
func invalid(err error) error {
	if errors.Is(err, contract.ErrInvalidInput) {
		return err
	}

	return fmt.Errorf("%w: %w", contract.ErrInvalidInput, err)
}
