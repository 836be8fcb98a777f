package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-room-design/internal/logger"
	"github.com/MKhiriev/go-room-design/internal/service"
	"github.com/MKhiriev/go-room-design/internal/utils"
	"github.com/MKhiriev/go-room-design/models"
)

// multipartMemory is the part of a multipart body kept in memory; the rest
// of the files spill to temporary files.
const multipartMemory = 8 << 20

func (h *Handler) withBodyLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Body != nil {
			r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
		}
		next.ServeHTTP(w, r)
	})
}

// withActor resolves the caller once per request. A bearer token takes
// precedence over the "userid" form or query value.
func (h *Handler) withActor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromRequest(r)

		if err := parseForm(r); err != nil {
			log.Debug().Err(err).Msg("error parsing form")
			var maxBytesErr *http.MaxBytesError
			if errors.As(err, &maxBytesErr) {
				writeErrorMessage(w, r, http.StatusRequestEntityTooLarge, msgUploadTooLarge)
				return
			}
			writeErrorMessage(w, r, http.StatusBadRequest, msgInvalidFormData)
			return
		}

		userID := strings.TrimSpace(r.FormValue("userid"))
		if authHeader := r.Header.Get("Authorization"); authHeader != "" {
			tokenString, err := utils.ParseBearerToken(authHeader)
			if err != nil {
				log.Debug().Err(err).Send()
				writeErrorMessage(w, r, http.StatusForbidden, msgInvalidAuthHeader)
				return
			}

			token, err := h.services.AccountService.ParseToken(ctx, tokenString)
			if err != nil {
				writeError(w, r, err)
				return
			}
			userID = token.UserID
		}

		actor, err := h.services.AccountService.ResolveActor(ctx, userID)
		if err != nil {
			writeError(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithActor(ctx, actor)))
	})
}

// adminOnly lets the request through only for an existing admin account.
func (h *Handler) adminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor := actorFromRequest(r)

		if _, err := h.services.AccountService.CheckAdmin(r.Context(), actor.ID); err != nil {
			if errors.Is(err, service.ErrUnexpected) {
				writeError(w, r, err)
				return
			}
			logger.FromRequest(r).Debug().Err(err).Str("user_id", actor.ID).Msg("admin access denied")
			writeErrorMessage(w, r, http.StatusForbidden, msgAdminRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func actorFromRequest(r *http.Request) models.Actor {
	actor, _ := utils.GetActorFromContext(r.Context())
	return actor
}

func isMultipart(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data")
}

func parseForm(r *http.Request) error {
	if isMultipart(r) {
		return r.ParseMultipartForm(multipartMemory)
	}
	return r.ParseForm()
}
