// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package review

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/steamreviews/internal/platform/request"
	"github.com/taibuivan/steamreviews/internal/platform/respond"
	"github.com/taibuivan/steamreviews/pkg/pagination"
	"github.com/taibuivan/steamreviews/pkg/query"
)

// # Handler Implementation

// Handler implements the HTTP layer for the review archive.
type Handler struct {
	service *Service
}

// NewHandler constructs a new review [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router mounted at /api/v1/apps/{appID}/reviews.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listReviews)
	router.Post("/", handler.ingestReviews)
	router.Get("/summary", handler.summarizeReviews)

	return router
}

func (handler *Handler) ingestReviews(writer http.ResponseWriter, request *http.Request) {
	appID, err := requestutil.AppID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var body IngestRequest
	if err := requestutil.DecodeBody(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.service.Ingest(request.Context(), appID, body)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, result)
}

// listReviews answers in JSON or msgpack depending on the Accept header.
func (handler *Handler) listReviews(writer http.ResponseWriter, request *http.Request) {
	appID, err := requestutil.AppID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	filter, err := ParseFilter(query.StringSlice(request.URL.Query().Get(FieldLanguage)))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	params := pagination.FromRequest(request)
	reviews, total, err := handler.service.List(request.Context(), appID, filter, params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, request, reviews, pagination.NewMeta(params, total))
}

func (handler *Handler) summarizeReviews(writer http.ResponseWriter, request *http.Request) {
	appID, err := requestutil.AppID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	summary, err := handler.service.Summary(request.Context(), appID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, summary)
}
