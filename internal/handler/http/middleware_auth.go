package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/notekeeper/notekeeper/internal/logger"
	"github.com/notekeeper/notekeeper/internal/service"
	"github.com/notekeeper/notekeeper/internal/store"
	"github.com/notekeeper/notekeeper/internal/utils"
	"github.com/notekeeper/notekeeper/models"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer
// token, validates it via [service.AuthService.ParseToken], and on success
// stores the authenticated actor (ID and role) in the request context under
// [utils.AuthUserCtxKey] before delegating to the next handler.
//
// The role placed in the context comes from the token's role claim. When
// the handler runs with refreshRole enabled, the claim is ignored and the
// current role is fetched from the store instead, so role changes take
// effect immediately rather than on the next token issuance.
//
// Rejections:
//   - missing or non-Bearer "Authorization" header → 401, generic
//     no-token message
//   - expired token → 401 "Token expired"
//   - any other invalid token → 401 "Invalid token"
//   - refreshRole lookup finds the account deleted → 401 "Invalid token"
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := getTokenFromAuthHeader(r.Header.Get("Authorization"))
		if err != nil {
			log.Err(err).Send()
			utils.WriteJSON(w, models.MessageResponse{Message: msgNoToken}, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrTokenExpired):
				log.Err(err).Msg("token expired")
				utils.WriteJSON(w, models.MessageResponse{Message: msgTokenExpired}, http.StatusUnauthorized)
				return
			default:
				log.Err(err).Msg("error occurred during parsing token")
				utils.WriteJSON(w, models.MessageResponse{Message: msgInvalidToken}, http.StatusUnauthorized)
				return
			}
		}

		authUser := models.AuthUser{
			ID:   token.UserID,
			Role: token.Claims.Role,
		}

		if h.refreshRole {
			currentUser, err := h.services.AuthService.GetUser(ctx, token.UserID)
			if err != nil {
				if errors.Is(err, store.ErrUserNotFound) {
					log.Warn().Int64("id", token.UserID).Msg("token subject no longer exists")
					utils.WriteJSON(w, models.MessageResponse{Message: msgInvalidToken}, http.StatusUnauthorized)
					return
				}
				log.Err(err).Int64("id", token.UserID).Msg("role refresh failed")
				utils.WriteJSON(w, models.MessageResponse{Message: msgInternalError}, http.StatusInternalServerError)
				return
			}
			authUser.Role = currentUser.Role
		}

		// Downstream handlers retrieve the actor without re-parsing the token.
		ctx = context.WithValue(ctx, utils.AuthUserCtxKey, authUser)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromAuthHeader extracts the bearer token string from a raw
// "Authorization" HTTP header value.
//
// The header must follow the standard format:
//
//	Authorization: Bearer <token>
//
// It returns the following sentinel errors:
//   - [ErrEmptyAuthorizationHeader] — if the header is absent.
//   - [ErrInvalidAuthorizationHeader] — if the header does not carry the
//     "Bearer " scheme prefix.
//   - [ErrEmptyToken] — if the prefix exists but the token value is empty.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrEmptyAuthorizationHeader
	}

	tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
	if !found {
		return "", ErrInvalidAuthorizationHeader
	}
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
