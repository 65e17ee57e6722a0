// Copyright (c) 2026 Toma Beauty. All rights reserved.

package tip

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tomabeauty/toma/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listTips)
	router.Get("/today", handler.tipOfTheDay)
}

func (handler *Handler) listTips(writer http.ResponseWriter, request *http.Request) {
	tips, err := handler.service.ListTips(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, tips)
}

func (handler *Handler) tipOfTheDay(writer http.ResponseWriter, request *http.Request) {
	tip, err := handler.service.TipOfTheDay(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, tip)
}
