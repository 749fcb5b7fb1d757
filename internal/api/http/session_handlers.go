package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	authmw "github.com/mind-engage/mindengage-rounds/internal/auth/middleware"
	"github.com/mind-engage/mindengage-rounds/internal/hub"
	"github.com/mind-engage/mindengage-rounds/internal/session"
)

// GET /exercises
func ListExercisesHandler(h *hub.Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]any{"kinds": h.Kinds()})
	}
}

type createSessionResp struct {
	SessionID   string       `json:"session_id"`
	AccessToken string       `json:"access_token"`
	View        session.View `json:"view"`
}

// POST /sessions  { "kind": "trivia" }
func CreateSessionHandler(h *hub.Hub, a *authmw.AuthService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Kind string `json:"kind"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		id, v, err := h.Create(req.Kind)
		if err != nil {
			respondErr(w, err)
			return
		}
		tok, err := a.IssueJWT(id, authmw.RolePlayer)
		if err != nil {
			_ = h.Drop(id)
			http.Error(w, "issue token", http.StatusInternalServerError)
			return
		}
		respondJSON(w, http.StatusCreated, createSessionResp{SessionID: id, AccessToken: tok, View: v})
	}
}

func sessionID(r *http.Request) string { return authmw.SubjectFromContext(r.Context()) }

// GET /sessions/me
func GetSessionHandler(h *hub.Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v, err := h.View(sessionID(r))
		if err != nil {
			respondErr(w, err)
			return
		}
		respondJSON(w, http.StatusOK, v)
	}
}

// PUT /sessions/me/fields/{name}  { "value": "..." } or { "checked": true }
func SetFieldHandler(h *hub.Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "name")
		var req struct {
			Value   *string `json:"value"`
			Checked *bool   `json:"checked"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		var (
			v   session.View
			err error
		)
		switch {
		case req.Checked != nil:
			v, err = h.SetChecked(sessionID(r), name, *req.Checked)
		case req.Value != nil:
			v, err = h.SetField(sessionID(r), name, *req.Value)
		default:
			http.Error(w, "value or checked required", http.StatusBadRequest)
			return
		}
		if err != nil {
			respondErr(w, err)
			return
		}
		respondJSON(w, http.StatusOK, v)
	}
}

// POST /sessions/me/submit
func SubmitHandler(h *hub.Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v, err := h.Submit(r.Context(), sessionID(r))
		if err != nil {
			respondErr(w, err)
			return
		}
		respondJSON(w, http.StatusOK, v)
	}
}

// POST /sessions/me/new-item
func NewItemHandler(h *hub.Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v, err := h.NewItem(sessionID(r))
		if err != nil {
			respondErr(w, err)
			return
		}
		respondJSON(w, http.StatusOK, v)
	}
}

// DELETE /sessions/me
func DropSessionHandler(h *hub.Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.Drop(sessionID(r)); err != nil {
			respondErr(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
