package http

import (
	"net/http"

	"github.com/MKhiriev/go-room-design/internal/logger"
	"github.com/MKhiriev/go-room-design/internal/service"
	"github.com/MKhiriev/go-room-design/internal/utils"
	"github.com/MKhiriev/go-room-design/models"
)

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	account, err := h.services.AccountService.Register(ctx, models.RegisterRequest{
		Email:    r.PostFormValue("email"),
		Username: r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
	})
	if err != nil {
		log.Debug().Err(err).Msg("registration failed")
		writeError(w, r, err)
		return
	}

	token, err := h.services.AccountService.CreateToken(ctx, account)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Str("user_id", account.ID).Msg("account registered")
	utils.WriteJSON(w, models.AuthResponse{
		Message: "Registration successful",
		UserID:  account.ID,
		Token:   token.String(),
	}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	account, err := h.services.AccountService.Login(ctx, models.LoginRequest{
		Username: r.PostFormValue("username"),
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
	})
	if err != nil {
		log.Debug().Err(err).Msg("login failed")
		writeError(w, r, err)
		return
	}

	token, err := h.services.AccountService.CreateToken(ctx, account)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Str("user_id", account.ID).Msg("user successfully logged in")
	utils.WriteJSON(w, models.AuthResponse{
		Message: "Login successful",
		UserID:  account.ID,
		Token:   token.String(),
	}, http.StatusOK)
}

// isAdmin answers 403 for every failed check, whatever its cause, except
// server-side failures.
func (h *Handler) isAdmin(w http.ResponseWriter, r *http.Request) {
	_, err := h.services.AccountService.CheckAdmin(r.Context(), actorFromRequest(r).ID)
	if err != nil {
		if statusFromError(err) >= http.StatusInternalServerError {
			writeError(w, r, err)
			return
		}
		writeErrorMessage(w, r, http.StatusForbidden, service.Message(err))
		return
	}

	writeMessage(w, r, http.StatusOK, "User is an admin")
}
