// Copyright (c) 2026 Toma Beauty. All rights reserved.

package remedy

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tomabeauty/toma/internal/platform/apperr"
	"github.com/tomabeauty/toma/internal/platform/middleware"
	requestutil "github.com/tomabeauty/toma/internal/platform/request"
	"github.com/tomabeauty/toma/internal/platform/respond"
	"github.com/tomabeauty/toma/internal/platform/sec"
	"github.com/tomabeauty/toma/pkg/pagination"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	// Public
	router.Get("/", handler.listRemedies)
	router.Get("/{id}", handler.getRemedy)

	// Admin only
	router.Group(func(adminRoute chi.Router) {
		adminRoute.Use(middleware.RequireRole(sec.RoleAdmin))

		adminRoute.Post("/", handler.createRemedy)
		adminRoute.Delete("/{id}", handler.deleteRemedy)
	})
}

func (handler *Handler) listRemedies(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	remedies, total, err := handler.service.ListRemedies(request.Context(), paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, remedies, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getRemedy(writer http.ResponseWriter, request *http.Request) {
	remedy, err := handler.service.GetRemedy(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, remedy)
}

func (handler *Handler) createRemedy(writer http.ResponseWriter, request *http.Request) {
	var input CreateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	remedy, err := handler.service.CreateRemedy(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, remedy)
}

func (handler *Handler) deleteRemedy(writer http.ResponseWriter, request *http.Request) {
	if !requestutil.Confirmed(request) {
		respond.Error(writer, request, apperr.ValidationError("Deletion requires confirmation",
			apperr.FieldError{Field: FieldConfirm, Message: "Pass confirm=true to delete"}))
		return
	}

	if err := handler.service.DeleteRemedy(request.Context(), requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
