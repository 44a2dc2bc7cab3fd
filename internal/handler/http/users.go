package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-gate-keeper/internal/logger"
	"github.com/MKhiriev/go-gate-keeper/internal/session"
)

type registerRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type registerResponse struct {
	Login string `json:"login"`
	State string `json:"state"`

	// ActivationKey is present only while activation-by-mail is enabled.
	// It is returned exactly once and never stored in cleartext.
	ActivationKey string `json:"activation_key,omitempty"`
}

type changePasswordRequest struct {
	NewPassword string `json:"new_password"`
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request registerRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	user, activationKey, err := h.services.Users.CreateUser(ctx, request.Login, request.Password)
	if err != nil {
		log.Err(err).Str("func", "Handler.register").Msg("registration failed")
		http.Error(w, "cannot register user", statusFromError(err))
		return
	}

	if activationKey != "" {
		if err := h.trust.SetFlag(ctx, sessionFromContext(ctx), session.FlagDisplayActivationNotice); err != nil {
			log.Warn().Err(err).Str("func", "Handler.register").Msg("cannot raise activation notice flag")
		}
	}

	writeJSON(w, http.StatusOK, registerResponse{
		Login:         user.Login,
		State:         string(user.State),
		ActivationKey: activationKey,
	})
}

func (h *Handler) activate(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		http.Error(w, "missing activation key", http.StatusBadRequest)
		return
	}

	if err := h.services.Users.ActivateUser(r.Context(), key); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "Handler.activate").Msg("activation failed")
		http.Error(w, "cannot activate account", statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusOK)
}

// denyActivation is the "this was not me" path: consuming the key deletes
// the pending account it belongs to.
func (h *Handler) denyActivation(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		http.Error(w, "missing activation key", http.StatusBadRequest)
		return
	}

	if err := h.services.Users.DenyActivation(r.Context(), key); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "Handler.denyActivation").Msg("activation denial failed")
		http.Error(w, "cannot deny activation", statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := userIDFromContext(ctx)
	if !ok {
		http.Error(w, "authentication required", http.StatusUnauthorized)
		return
	}

	var request changePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.services.Users.ChangePassword(ctx, userID, request.NewPassword); err != nil {
		log.Err(err).Str("func", "Handler.changePassword").Msg("password change failed")
		http.Error(w, "cannot change password", statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) deleteAccount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := userIDFromContext(ctx)
	if !ok {
		http.Error(w, "authentication required", http.StatusUnauthorized)
		return
	}

	if err := h.services.Users.DeleteUser(ctx, userID); err != nil {
		log.Err(err).Str("func", "Handler.deleteAccount").Msg("account deletion failed")
		http.Error(w, "cannot delete account", statusFromError(err))
		return
	}

	// The account is gone; a failure to tidy the session must not undo that.
	if err := h.services.Login.DoLogout(ctx, sessionFromContext(ctx), jarFromContext(ctx)); err != nil {
		log.Warn().Err(err).Str("func", "Handler.deleteAccount").Msg("cannot clear session after deletion")
	}

	w.WriteHeader(http.StatusOK)
}
