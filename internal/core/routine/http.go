// Copyright (c) 2026 Toma Beauty. All rights reserved.

package routine

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
	router.Get("/", handler.listRoutines)
	router.Get("/{id}", handler.getRoutine)

	// Admin only
	router.Group(func(adminRoute chi.Router) {
		adminRoute.Use(middleware.RequireRole(sec.RoleAdmin))

		adminRoute.Post("/", handler.createRoutine)
		adminRoute.Delete("/{id}", handler.deleteRoutine)
	})
}

func (handler *Handler) listRoutines(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	filter := Filter{
		Category: request.URL.Query().Get("category"),
	}

	routines, total, err := handler.service.ListRoutines(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, routines, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getRoutine(writer http.ResponseWriter, request *http.Request) {
	routine, err := handler.service.GetRoutine(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, routine)
}

func (handler *Handler) createRoutine(writer http.ResponseWriter, request *http.Request) {
	var input CreateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	routine, err := handler.service.CreateRoutine(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, routine)
}

func (handler *Handler) deleteRoutine(writer http.ResponseWriter, request *http.Request) {
	if !requestutil.Confirmed(request) {
		respond.Error(writer, request, apperr.ValidationError("Deletion requires confirmation",
			apperr.FieldError{Field: FieldConfirm, Message: "Pass confirm=true to delete"}))
		return
	}

	if err := handler.service.DeleteRoutine(request.Context(), requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
