// Package contact provides HTTP handlers for the public contact form and
// the back-office inbox.
package contact

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
	"pressroom/internal/observability/metrics"
	contactUC "pressroom/internal/usecase/contact"
)

// DTO is the JSON representation of a contact message.
type DTO struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toDTO(m *entity.ContactMessage) DTO {
	return DTO{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Subject:   m.Subject,
		Message:   m.Message,
		Status:    string(m.Status),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// writeContactError maps usecase errors onto the error taxonomy.
func writeContactError(w http.ResponseWriter, err error) {
	var ve entity.ValidationErrors
	var fe *entity.ValidationError
	switch {
	case errors.As(err, &ve):
		respond.ValidationFailed(w, ve)
	case errors.As(err, &fe):
		respond.ValidationFailed(w, entity.ValidationErrors{fe})
	case errors.Is(err, contactUC.ErrMessageNotFound):
		respond.SafeError(w, http.StatusNotFound, err)
	default:
		respond.SafeError(w, http.StatusInternalServerError, err)
	}
}

type SubmitHandler struct{ Svc *contactUC.Service }

// ServeHTTP accepts a message from the public contact form.
// @Summary      Submit contact message
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        message body object true "Contact payload"
// @Success      201 {object} map[string]string "Stored"
// @Failure      400 {object} map[string]any "Validation failed"
// @Failure      429 {object} map[string]string "Rate limit exceeded"
// @Router       /contact [post]
func (h SubmitHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Subject string `json:"subject"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	if _, err := h.Svc.Submit(r.Context(), contactUC.SubmitInput{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}); err != nil {
		writeContactError(w, err)
		return
	}

	metrics.RecordContactMessageReceived()
	respond.Message(w, http.StatusCreated, "message received")
}

type ListHandler struct {
	Svc           *contactUC.Service
	PaginationCfg pagination.Config
	Logger        *slog.Logger
}

// ServeHTTP lists contact messages for the back office.
// @Summary      List contact messages (admin)
// @Tags         admin-contacts
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        query body object true "Body with page, limit and optional status"
// @Success      200 {object} pagination.Response[DTO] "Paginated message page"
// @Failure      400 {object} map[string]string "Invalid pagination parameters"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Failure      500 {string} string "Server error"
// @Router       /admin/contacts/get [post]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logging.WithRequestID(ctx, h.Logger)

	var req struct {
		Page   int    `json:"page"`
		Limit  int    `json:"limit"`
		Status string `json:"status"`
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

	result, err := h.Svc.List(ctx, req.Status, params)
	if err != nil {
		var fe *entity.ValidationError
		if errors.As(err, &fe) {
			respond.ValidationFailed(w, entity.ValidationErrors{fe})
			return
		}
		logger.Error("Failed to list contact messages",
			"error", err.Error(),
			"page", params.Page,
			"limit", params.Limit)
		pagination.RecordError("database")
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	dtos := make([]DTO, 0, len(result.Data))
	for _, m := range result.Data {
		dtos = append(dtos, toDTO(m))
	}

	pagination.RecordRequest(http.StatusOK, params.Page)
	respond.JSON(w, http.StatusOK, pagination.NewResponse(dtos, result.Pagination))
}

type UpdateHandler struct{ Svc *contactUC.Service }

// ServeHTTP moves a contact message to another handling state.
// @Summary      Update contact message status
// @Tags         admin-contacts
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body body object true "Body with id and status"
// @Success      200 {object} map[string]any "Updated message summary"
// @Failure      400 {object} map[string]any "Validation failed"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Failure      404 {object} map[string]string "Message not found"
// @Router       /admin/contacts/update [put]
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID     int64  `json:"id"`
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	msg, err := h.Svc.UpdateStatus(r.Context(), req.ID, req.Status)
	if err != nil {
		writeContactError(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, map[string]any{
		"message": "contact message updated",
		"contact": map[string]any{"id": msg.ID, "status": string(msg.Status)},
	})
}
