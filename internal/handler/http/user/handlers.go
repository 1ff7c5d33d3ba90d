// Package user provides HTTP handlers for author and operator management.
// There is no delete surface; accounts are retired by role changes instead.
package user

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"pressroom/internal/common/pagination"
	"pressroom/internal/domain/entity"
	"pressroom/internal/handler/http/respond"
	"pressroom/internal/observability/logging"
	userUC "pressroom/internal/usecase/user"
)

// DTO is the JSON representation of a user.
type DTO struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Gender    string    `json:"gender,omitempty"`
	Bio       string    `json:"bio,omitempty"`
	AvatarURL string    `json:"avatarUrl,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toDTO(u *entity.User) DTO {
	return DTO{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		Gender:    string(u.Gender),
		Bio:       u.Bio,
		AvatarURL: u.AvatarURL,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// writeUserError maps usecase errors onto the admin error taxonomy.
func writeUserError(w http.ResponseWriter, err error) {
	var ve entity.ValidationErrors
	var fe *entity.ValidationError
	switch {
	case errors.As(err, &ve):
		respond.ValidationFailed(w, ve)
	case errors.As(err, &fe):
		respond.ValidationFailed(w, entity.ValidationErrors{fe})
	case errors.Is(err, userUC.ErrUserNotFound):
		respond.SafeError(w, http.StatusNotFound, err)
	case errors.Is(err, userUC.ErrDuplicateEmail):
		respond.SafeError(w, http.StatusBadRequest, err)
	default:
		respond.SafeError(w, http.StatusInternalServerError, err)
	}
}

type CreateHandler struct{ Svc *userUC.Service }

// ServeHTTP creates a user. Role defaults to AUTHOR.
// @Summary      Create user
// @Tags         admin-users
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        user body object true "User payload"
// @Success      201 {object} map[string]string "Created"
// @Failure      400 {object} map[string]any "Validation failed or email conflict"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Failure      403 {string} string "Forbidden - insufficient role"
// @Router       /admin/users/create [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name      string `json:"name"`
		Email     string `json:"email"`
		Role      string `json:"role"`
		Gender    string `json:"gender"`
		Bio       string `json:"bio"`
		AvatarURL string `json:"avatarUrl"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	_, err := h.Svc.Create(r.Context(), userUC.CreateInput{
		Name:      req.Name,
		Email:     req.Email,
		Role:      req.Role,
		Gender:    req.Gender,
		Bio:       req.Bio,
		AvatarURL: req.AvatarURL,
	})
	if err != nil {
		writeUserError(w, err)
		return
	}

	respond.Message(w, http.StatusCreated, "user created")
}

type UpdateHandler struct{ Svc *userUC.Service }

// ServeHTTP updates a user. Only the fields present in the body change.
// @Summary      Update user
// @Tags         admin-users
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        user body object true "User payload with id"
// @Success      200 {object} map[string]any "Updated user"
// @Failure      400 {object} map[string]any "Validation failed or email conflict"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Failure      403 {string} string "Forbidden - insufficient role"
// @Failure      404 {object} map[string]string "User not found"
// @Router       /admin/users/update [put]
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID        int64   `json:"id"`
		Name      *string `json:"name"`
		Email     *string `json:"email"`
		Role      *string `json:"role"`
		Gender    *string `json:"gender"`
		Bio       *string `json:"bio"`
		AvatarURL *string `json:"avatarUrl"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	user, err := h.Svc.Update(r.Context(), userUC.UpdateInput{
		ID:        req.ID,
		Name:      req.Name,
		Email:     req.Email,
		Role:      req.Role,
		Gender:    req.Gender,
		Bio:       req.Bio,
		AvatarURL: req.AvatarURL,
	})
	if err != nil {
		writeUserError(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, map[string]any{
		"message": "user updated",
		"user":    toDTO(user),
	})
}

type ListHandler struct {
	Svc           *userUC.Service
	PaginationCfg pagination.Config
	Logger        *slog.Logger
}

// ServeHTTP lists users for the back office.
// @Summary      List users (admin)
// @Tags         admin-users
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        query body object true "Body with page, limit and optional search"
// @Success      200 {object} pagination.Response[DTO] "Paginated user page"
// @Failure      400 {object} map[string]string "Invalid pagination parameters"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Failure      500 {string} string "Server error"
// @Router       /admin/users/get [post]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logging.WithRequestID(ctx, h.Logger)

	var req struct {
		Page   int    `json:"page"`
		Limit  int    `json:"limit"`
		Search string `json:"search"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	params, err := pagination.FromBody(req.Page, req.Limit, h.PaginationCfg)
	if err != nil {
		pagination.RecordError("validation")
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	result, err := h.Svc.List(ctx, req.Search, params)
	if err != nil {
		logger.Error("Failed to list users",
			"error", err.Error(),
			"page", params.Page,
			"limit", params.Limit)
		pagination.RecordError("database")
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	dtos := make([]DTO, 0, len(result.Data))
	for _, u := range result.Data {
		dtos = append(dtos, toDTO(u))
	}

	pagination.RecordRequest(http.StatusOK, params.Page)
	respond.JSON(w, http.StatusOK, pagination.NewResponse(dtos, result.Pagination))
}
