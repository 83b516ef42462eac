package report

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/joshuamatosdev/insight-sub001/internal/contract"
	"github.com/joshuamatosdev/insight-sub001/internal/http/wire"
	"github.com/joshuamatosdev/insight-sub001/internal/report"
)

// Archiver stores a copy of a generated report.
type Archiver interface {
	Archive(ctx context.Context, d report.Data, filename, contentType string, body []byte) (string, error)
}

type Handler struct {
	svc      *contract.Service
	archiver Archiver
}

// NewHandler serves reports for the contracts in svc. archiver may be nil.
func NewHandler(svc *contract.Service, archiver Archiver) *Handler {
	return &Handler{svc: svc, archiver: archiver}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/{id}/report.xlsx", h.render("xlsx", report.ContentTypeXLSX, report.XLSX))
	r.Get("/{id}/brief.pdf", h.render("pdf", report.ContentTypePDF, report.PDF))
}

func (h *Handler) render(ext, contentType string, renderFn func(report.Data) ([]byte, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid id")
			return
		}

		data, err := report.Load(r.Context(), h.svc, id, h.svc.Now(), h.svc.DueSoonWindow())
		if err != nil {
			if errors.Is(err, contract.ErrNotFound) {
				writeError(w, http.StatusNotFound, err.Error())
				return
			}

			slog.Error("failed to load report data", "contract_id", id, "error", err)
			writeError(w, http.StatusInternalServerError, "internal error")

			return
		}

		body, err := renderFn(data)
		if err != nil {
			slog.Error("failed to render report", "contract_id", id, "format", ext, "error", err)
			writeError(w, http.StatusInternalServerError, "internal error")

			return
		}

		filename := report.Filename(data, ext)

		if h.archiver != nil {
			h.archive(r.Context(), w, data, filename, contentType, body)
		}

		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		w.Header().Set("Last-Modified", data.GeneratedAt.UTC().Format(http.TimeFormat))

		if _, err := w.Write(body); err != nil {
			slog.Error("failed to write report", "error", err)
		}
	}
}

// archive never fails the download; a failed upload is only logged.
func (h *Handler) archive(ctx context.Context, w http.ResponseWriter, d report.Data, filename, contentType string, body []byte) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	key, err := h.archiver.Archive(ctx, d, filename, contentType, body)
	if err != nil {
		slog.Warn("failed to archive report", "contract_id", d.Contract.ID, "file", filename, "error", err)
		return
	}

	w.Header().Set("X-Report-Archive-Key", key)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(wire.Error{Error: msg}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
