// Copyright (c) 2026 Toma Beauty. All rights reserved.

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tomabeauty/toma/internal/core/article"
	"github.com/tomabeauty/toma/internal/core/remedy"
	"github.com/tomabeauty/toma/internal/core/routine"
	"github.com/tomabeauty/toma/internal/core/section"
	"github.com/tomabeauty/toma/internal/core/tip"
	"github.com/tomabeauty/toma/internal/platform/apperr"
	"github.com/tomabeauty/toma/internal/platform/middleware"
	requestutil "github.com/tomabeauty/toma/internal/platform/request"
	"github.com/tomabeauty/toma/internal/platform/respond"
	"github.com/tomabeauty/toma/internal/platform/sec"
	"github.com/tomabeauty/toma/internal/users/auth"
)

// legacyPageSize bounds the unpaginated legacy list responses. The original
// site never paginated; the catalog is small enough to return whole.
const legacyPageSize = 500

// LegacyHandler reproduces the unversioned endpoint shapes of the original
// site backend: bare JSON arrays without the success envelope, and an
// /auth/me probe used by the admin page on load.
//
// Deprecated: new clients use /api/v1. This surface exists only to keep
// already-deployed site builds working and will be removed once they are
// migrated.
type LegacyHandler struct {
	articles *article.Service
	routines *routine.Service
	remedies *remedy.Service
	sections *section.Service
	tips     *tip.Service
	auth     *auth.Service
}

func NewLegacyHandler(
	articles *article.Service,
	routines *routine.Service,
	remedies *remedy.Service,
	sections *section.Service,
	tips *tip.Service,
	authService *auth.Service,
) *LegacyHandler {
	return &LegacyHandler{
		articles: articles,
		routines: routines,
		remedies: remedies,
		sections: sections,
		tips:     tips,
		auth:     authService,
	}
}

// RegisterRoutes mounts the compatibility routes directly under /api.
func (handler *LegacyHandler) RegisterRoutes(router chi.Router) {
	router.Get("/health", handler.health)
	router.Get("/auth/me", handler.me)

	router.Get("/sections", handler.listSections)
	router.Get("/articles", handler.listArticles)
	router.Get("/articles/{id}", handler.getArticle)
	router.Get("/routines", handler.listRoutines)
	router.Get("/remedies", handler.listRemedies)
	router.Get("/tips", handler.listTips)

	router.With(middleware.RequireRole(sec.RoleAdmin)).Post("/articles", handler.createArticle)
}

func (handler *LegacyHandler) health(writer http.ResponseWriter, _ *http.Request) {
	respond.JSON(writer, http.StatusOK, map[string]string{"status": "ok"})
}

// me mirrors the original admin-page probe: 200 with the account when the
// bearer is valid (including the dev fallback token), 401 otherwise.
func (handler *LegacyHandler) me(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, apperr.Unauthorized("Authentication required"))
		return
	}

	account, err := handler.auth.Me(request.Context(), claims.UserID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.JSON(writer, http.StatusOK, account)
}

func (handler *LegacyHandler) listSections(writer http.ResponseWriter, request *http.Request) {
	sections, err := handler.sections.ListSections(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.JSON(writer, http.StatusOK, sections)
}

func (handler *LegacyHandler) listArticles(writer http.ResponseWriter, request *http.Request) {
	articles, _, err := handler.articles.ListArticles(request.Context(), article.Filter{}, legacyPageSize, 0)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.JSON(writer, http.StatusOK, articles)
}

func (handler *LegacyHandler) getArticle(writer http.ResponseWriter, request *http.Request) {
	found, err := handler.articles.GetArticle(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.JSON(writer, http.StatusOK, found)
}

func (handler *LegacyHandler) createArticle(writer http.ResponseWriter, request *http.Request) {
	var input article.CreateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.articles.CreateArticle(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.JSON(writer, http.StatusCreated, created)
}

func (handler *LegacyHandler) listRoutines(writer http.ResponseWriter, request *http.Request) {
	routines, _, err := handler.routines.ListRoutines(request.Context(), routine.Filter{}, legacyPageSize, 0)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.JSON(writer, http.StatusOK, routines)
}

func (handler *LegacyHandler) listRemedies(writer http.ResponseWriter, request *http.Request) {
	remedies, _, err := handler.remedies.ListRemedies(request.Context(), legacyPageSize, 0)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.JSON(writer, http.StatusOK, remedies)
}

func (handler *LegacyHandler) listTips(writer http.ResponseWriter, request *http.Request) {
	tips, err := handler.tips.ListTips(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.JSON(writer, http.StatusOK, tips)
}
