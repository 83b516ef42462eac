package contract

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/joshuamatosdev/insight-sub001/internal/contract"
	"github.com/joshuamatosdev/insight-sub001/internal/http/wire"
	"github.com/joshuamatosdev/insight-sub001/internal/importer"
)

type Handler struct {
	svc       *contract.Service
	importSvc *importer.Service
}

func NewHandler(svc *contract.Service, importSvc *importer.Service) *Handler {
	return &Handler{svc: svc, importSvc: importSvc}
}

// Routes mounts the contract routes. Everything but the CLIN import takes
// JSON bodies.
func (h *Handler) Routes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.AllowContentType("application/json"))

		r.Get("/", h.list)
		r.Post("/", h.create)
		r.Get("/{id}", h.get)
		r.Patch("/{id}", h.update)
		r.Patch("/{id}/status", h.updateStatus)
		r.Get("/{id}/summary", h.summary)

		r.Get("/{id}/clins", h.listClins)
		r.Post("/{id}/clins", h.createClin)
		r.Patch("/{id}/clins/{clinID}", h.updateClin)

		r.Get("/{id}/modifications", h.listModifications)
		r.Post("/{id}/modifications", h.createModification)
		r.Patch("/{id}/modifications/{modID}", h.updateModification)
		r.Patch("/{id}/modifications/{modID}/status", h.transitionModification)
		r.Post("/{id}/modifications/{modID}/execute", h.executeModification)

		r.Get("/{id}/deliverables", h.listDeliverables)
		r.Post("/{id}/deliverables", h.createDeliverable)
		r.Patch("/{id}/deliverables/{delID}", h.updateDeliverable)
		r.Patch("/{id}/deliverables/{delID}/status", h.updateDeliverableStatus)
	})

	r.With(middleware.AllowContentType("application/json", "multipart/form-data", "text/csv")).
		Post("/{id}/clins/import", h.importClins)
}

// Labels serves the display label of every enum value.
func (h *Handler) Labels(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, contract.Labels())
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := contract.ListFilter{
		Agency: q.Get("agency"),
		Search: q.Get("search"),
	}

	if s := q.Get("status"); s != "" {
		status, err := contract.ParseContractStatus(s)
		if err != nil {
			writeError(w, r, err)
			return
		}

		filter.Status = new(status)
	}

	cs, err := h.svc.ListContracts(r.Context(), filter)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, wire.FromContracts(cs))
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req wire.CreateContractRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	c, err := h.svc.CreateContract(r.Context(), req.Params())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, wire.FromContract(c))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	c, err := h.svc.GetContract(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, wire.FromContract(c))
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req wire.UpdateContractRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	c, err := h.svc.UpdateContract(r.Context(), id, req.Params())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, wire.FromContract(c))
}

func (h *Handler) updateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req wire.StatusRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	c, err := h.svc.UpdateContractStatus(r.Context(), id, contract.ContractStatus(req.Status))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, wire.FromContract(c))
}

func (h *Handler) summary(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	s, err := h.svc.Summary(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, wire.FromSummary(s))
}

func (h *Handler) now() (time.Time, time.Duration) {
	return h.svc.Now(), h.svc.DueSoonWindow()
}
