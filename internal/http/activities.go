package http

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"activities-service/internal/service"
)

func (h *Handler) handleActivitiesList(w http.ResponseWriter, r *http.Request) {
	const handlerName = "activities_list"

	catalog, err := h.Activities.ListActivities(r.Context())
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	h.writeJSON(w, http.StatusOK, catalog)
}

func (h *Handler) handleSignup(w http.ResponseWriter, r *http.Request) {
	const handlerName = "activity_signup"

	q, err := h.participantQuery(r)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	msg, err := h.Activities.Signup(r.Context(), q.Activity, q.Email)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	h.writeJSON(w, http.StatusOK, signupResponse{Message: msg})
}

func (h *Handler) handleUnregister(w http.ResponseWriter, r *http.Request) {
	const handlerName = "activity_unregister"

	q, err := h.participantQuery(r)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	res, err := h.Activities.Unregister(r.Context(), q.Activity, q.Email)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	h.writeJSON(w, http.StatusOK, unregisterResponse{
		Message:         res.Message,
		Participants:    res.Participants,
		MaxParticipants: res.MaxParticipants,
	})
}

// participantQuery достаёт имя активности из пути и email из query-строки.
// Имя сравнивается как есть, поэтому экранированный путь раскодируется.
func (h *Handler) participantQuery(r *http.Request) (participantQuery, error) {
	name := chi.URLParam(r, "activity_name")
	if r.URL.RawPath != "" {
		decoded, err := url.PathUnescape(name)
		if err != nil {
			return participantQuery{}, service.ErrBadRequest("invalid activity name")
		}
		name = decoded
	}

	q := participantQuery{
		Activity: name,
		Email:    r.URL.Query().Get("email"),
	}
	if err := h.validateParticipantQuery(q); err != nil {
		return participantQuery{}, err
	}
	return q, nil
}
