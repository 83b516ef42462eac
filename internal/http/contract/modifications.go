package contract

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/joshuamatosdev/insight-sub001/internal/contract"
	"github.com/joshuamatosdev/insight-sub001/internal/http/wire"
)

func (h *Handler) listModifications(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	mods, err := h.svc.ListModifications(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, wire.FromModifications(mods))
}

func (h *Handler) createModification(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req wire.ModificationRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	m, err := h.svc.CreateModification(r.Context(), id, req.Params())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, wire.FromModification(m))
}

func (h *Handler) updateModification(w http.ResponseWriter, r *http.Request) {
	modID, ok := h.ownedModification(w, r)
	if !ok {
		return
	}

	var req wire.ModificationRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	m, err := h.svc.UpdateModification(r.Context(), modID, req.Params())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, wire.FromModification(m))
}

func (h *Handler) transitionModification(w http.ResponseWriter, r *http.Request) {
	modID, ok := h.ownedModification(w, r)
	if !ok {
		return
	}

	var req wire.StatusRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	m, err := h.svc.TransitionModification(r.Context(), modID, contract.ModificationStatus(req.Status))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, wire.FromModification(m))
}

// executeModification answers 409 unless the modification is APPROVED.
func (h *Handler) executeModification(w http.ResponseWriter, r *http.Request) {
	modID, ok := h.ownedModification(w, r)
	if !ok {
		return
	}

	m, c, err := h.svc.ExecuteModification(r.Context(), modID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, wire.ExecuteResult{
		Modification: wire.FromModification(m),
		Contract:     wire.FromContract(c),
	})
}

// ownedModification resolves {modID} and checks it belongs to {id}. It writes
// the error response itself.
func (h *Handler) ownedModification(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return uuid.Nil, false
	}

	modID, ok := pathID(w, r, "modID")
	if !ok {
		return uuid.Nil, false
	}

	if err := h.checkModification(r.Context(), id, modID); err != nil {
		writeError(w, r, err)
		return uuid.Nil, false
	}

	return modID, true
}

func (h *Handler) checkModification(ctx context.Context, contractID, modID uuid.UUID) error {
	m, err := h.svc.GetModification(ctx, modID)
	if err != nil {
		return err
	}

	if m.ContractID != contractID {
		return notFound("modification")
	}

	return nil
}
