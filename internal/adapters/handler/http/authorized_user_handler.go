package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/vncsmyrnk/authlist/internal/core/domain"
	"github.com/vncsmyrnk/authlist/internal/core/ports"
)

type AuthorizedUserHandler struct {
	service ports.AuthorizationService
}

func NewAuthorizedUserHandler(service ports.AuthorizationService) *AuthorizedUserHandler {
	return &AuthorizedUserHandler{
		service: service,
	}
}

type authorizeRequest struct {
	Email          string `json:"email"`
	ExpirationDate string `json:"expirationDate"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Error     string `json:"error"`
	Reference string `json:"reference,omitempty"`
}

type validationResponse struct {
	Errors []domain.FieldError `json:"errors"`
}

// Authorize godoc
// @Summary      Authorizes a user until a date
// @Description  Creates or replaces the grant for the given email. Expiration dates are kept at day precision.
// @Tags         authorized-users
// @Accept       json
// @Produce      json
// @Success      201
// @Failure      400
// @Failure      422
// @Failure      500
// @Router       /api/authorized-users [post]
func (h *AuthorizedUserHandler) Authorize(w http.ResponseWriter, r *http.Request) {
	var req authorizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	var expirationDate time.Time
	if req.ExpirationDate != "" {
		var err error
		expirationDate, err = parseExpirationDate(req.ExpirationDate)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
			return
		}
	}

	err := h.service.RequestAuthorization(r.Context(), req.Email, expirationDate)
	if err != nil {
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) {
			writeJSON(w, http.StatusUnprocessableEntity, validationResponse{Errors: validationErr.Fields})
			return
		}

		resp := errorResponse{Error: "Failed to authorize user"}
		var storeErr *domain.StoreError
		if errors.As(err, &storeErr) {
			resp.Reference = storeErr.Ref.String()
		}
		writeJSON(w, http.StatusInternalServerError, resp)
		return
	}

	writeJSON(w, http.StatusCreated, messageResponse{Message: "User authorized successfully"})
}

// List godoc
// @Summary      Lists authorized users
// @Description  Returns every authorized user with its current status. An unavailable store yields an empty list.
// @Tags         authorized-users
// @Produce      json
// @Success      200
// @Router       /api/authorized-users [get]
func (h *AuthorizedUserHandler) List(w http.ResponseWriter, r *http.Request) {
	users := h.service.FetchAuthorizedUsers(r.Context())
	if users == nil {
		users = []domain.AuthorizedUserView{}
	}
	writeJSON(w, http.StatusOK, users)
}

// parseExpirationDate accepts a bare date, read as UTC midnight, or a full
// RFC 3339 timestamp.
func parseExpirationDate(value string) (time.Time, error) {
	if t, err := time.Parse(domain.ExpirationDateLayout, value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}
