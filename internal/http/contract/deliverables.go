package contract

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/joshuamatosdev/insight-sub001/internal/contract"
	"github.com/joshuamatosdev/insight-sub001/internal/http/wire"
)

func (h *Handler) listDeliverables(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	ds, err := h.svc.ListDeliverables(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	now, window := h.now()
	writeJSON(w, http.StatusOK, wire.FromDeliverables(ds, now, window))
}

func (h *Handler) createDeliverable(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req wire.DeliverableRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	d, err := h.svc.CreateDeliverable(r.Context(), id, req.Params())
	if err != nil {
		writeError(w, r, err)
		return
	}

	now, window := h.now()
	writeJSON(w, http.StatusCreated, wire.FromDeliverable(d, now, window))
}

func (h *Handler) updateDeliverable(w http.ResponseWriter, r *http.Request) {
	delID, ok := h.ownedDeliverable(w, r)
	if !ok {
		return
	}

	var req wire.DeliverableRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	d, err := h.svc.UpdateDeliverable(r.Context(), delID, req.Params())
	if err != nil {
		writeError(w, r, err)
		return
	}

	now, window := h.now()
	writeJSON(w, http.StatusOK, wire.FromDeliverable(d, now, window))
}

func (h *Handler) updateDeliverableStatus(w http.ResponseWriter, r *http.Request) {
	delID, ok := h.ownedDeliverable(w, r)
	if !ok {
		return
	}

	var req wire.StatusRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	d, err := h.svc.UpdateDeliverableStatus(r.Context(), delID, contract.DeliverableStatus(req.Status))
	if err != nil {
		writeError(w, r, err)
		return
	}

	now, window := h.now()
	writeJSON(w, http.StatusOK, wire.FromDeliverable(d, now, window))
}

func (h *Handler) ownedDeliverable(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return uuid.Nil, false
	}

	delID, ok := pathID(w, r, "delID")
	if !ok {
		return uuid.Nil, false
	}

	d, err := h.svc.GetDeliverable(r.Context(), delID)
	if err != nil {
		writeError(w, r, err)
		return uuid.Nil, false
	}

	if d.ContractID != id {
		writeError(w, r, notFound("deliverable"))
		return uuid.Nil, false
	}

	return delID, true
}
