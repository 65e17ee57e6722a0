// Copyright (c) 2026 Toma Beauty. All rights reserved.

package article

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/tomabeauty/toma/internal/platform/apperr"
	"github.com/tomabeauty/toma/internal/platform/middleware"
	requestutil "github.com/tomabeauty/toma/internal/platform/request"
	"github.com/tomabeauty/toma/internal/platform/respond"
	"github.com/tomabeauty/toma/internal/platform/sec"
	"github.com/tomabeauty/toma/pkg/pagination"
	"github.com/tomabeauty/toma/pkg/pointer"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	// Public
	router.Get("/", handler.listArticles)
	router.Get("/{id}", handler.getArticle)

	// Admin only
	router.Group(func(adminRoute chi.Router) {
		adminRoute.Use(middleware.RequireRole(sec.RoleAdmin))

		adminRoute.Post("/", handler.createArticle)
		adminRoute.Delete("/{id}", handler.deleteArticle)
	})
}

func (handler *Handler) listArticles(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	filter := Filter{
		Category: request.URL.Query().Get("category"),
	}
	if raw := request.URL.Query().Get("published"); raw != "" {
		if published, err := strconv.ParseBool(raw); err == nil {
			filter.Published = pointer.To(published)
		}
	}

	articles, total, err := handler.service.ListArticles(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, articles, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getArticle(writer http.ResponseWriter, request *http.Request) {
	article, err := handler.service.GetArticle(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, article)
}

func (handler *Handler) createArticle(writer http.ResponseWriter, request *http.Request) {
	var input CreateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	article, err := handler.service.CreateArticle(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, article)
}

func (handler *Handler) deleteArticle(writer http.ResponseWriter, request *http.Request) {
	if !requestutil.Confirmed(request) {
		respond.Error(writer, request, apperr.ValidationError("Deletion requires confirmation",
			apperr.FieldError{Field: FieldConfirm, Message: "Pass confirm=true to delete"}))
		return
	}

	if err := handler.service.DeleteArticle(request.Context(), requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
