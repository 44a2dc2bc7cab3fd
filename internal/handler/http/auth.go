package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-gate-keeper/internal/logger"
	"github.com/MKhiriev/go-gate-keeper/internal/service"
	"github.com/MKhiriev/go-gate-keeper/internal/session"
)

type loginRequest struct {
	Login      string `json:"login"`
	Password   string `json:"password"`
	RememberMe bool   `json:"remember_me"`
}

type loginResponse struct {
	LoggedIn bool  `json:"logged_in"`
	UserID   int64 `json:"user_id"`
}

type sessionInfoResponse struct {
	LoggedIn bool     `json:"logged_in"`
	UserID   int64    `json:"user_id,omitempty"`
	Flags    []string `json:"flags,omitempty"`
}

// login authenticates interactive credentials against the current session.
// Bad credentials and an active throttle produce byte-identical responses,
// so a blocked caller cannot probe whether a guess was correct.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request loginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	sess := sessionFromContext(ctx)
	jar := jarFromContext(ctx)

	userID, outcome, err := h.services.Login.DoLogin(ctx, sess, jar, clientIP(r), request.Login, request.Password, request.RememberMe)
	if err != nil {
		log.Err(err).Str("func", "Handler.login").Msg("login attempt failed")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	switch outcome {
	case service.OutcomeOK:
		writeJSON(w, http.StatusOK, loginResponse{LoggedIn: true, UserID: userID})
	case service.OutcomePendingActivation:
		http.Error(w, "account is pending activation", http.StatusForbidden)
	default:
		http.Error(w, "invalid login/password", http.StatusUnauthorized)
	}
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.services.Login.DoLogout(ctx, sessionFromContext(ctx), jarFromContext(ctx)); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "Handler.logout").Msg("logout failed")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// sessionInfo reports the trust state of the current session together with
// any one-shot UI flags, which are consumed by this read.
func (h *Handler) sessionInfo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	sess := sessionFromContext(ctx)

	userID, trusted, err := h.trust.UserID(ctx, sess)
	if err != nil {
		log.Err(err).Str("func", "Handler.sessionInfo").Msg("cannot read session identity")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	response := sessionInfoResponse{LoggedIn: trusted, UserID: userID}
	for _, flag := range []string{
		session.FlagLoginFailed,
		session.FlagAutologinFailed,
		session.FlagDisplayActivationNotice,
	} {
		raised, err := h.trust.PopFlag(ctx, sess, flag)
		if err != nil {
			log.Warn().Err(err).Str("func", "Handler.sessionInfo").Str("flag", flag).Msg("cannot pop session flag")
			continue
		}
		if raised {
			response.Flags = append(response.Flags, flag)
		}
	}

	writeJSON(w, http.StatusOK, response)
}
