// Copyright (c) 2026 Toma Beauty. All rights reserved.

package section

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/tomabeauty/toma/internal/platform/request"
	"github.com/tomabeauty/toma/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listSections)
	router.Get("/{key}", handler.getSection)
}

func (handler *Handler) listSections(writer http.ResponseWriter, request *http.Request) {
	sections, err := handler.service.ListSections(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, sections)
}

func (handler *Handler) getSection(writer http.ResponseWriter, request *http.Request) {
	section, err := handler.service.GetByKey(request.Context(), requestutil.Param(request, "key"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, section)
}
