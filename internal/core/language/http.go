package language

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/steamreviews/internal/platform/constants"
	"github.com/taibuivan/steamreviews/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router mounted at /api/v1/languages.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	handler.RegisterRoutes(router)
	return router
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listLanguages)
	router.Get("/negotiate", handler.negotiateLanguage)
	router.Get("/{token}", handler.getLanguage)
}

func (handler *Handler) listLanguages(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, handler.service.ListLanguages(request.Context()))
}

func (handler *Handler) getLanguage(writer http.ResponseWriter, request *http.Request) {
	token := chi.URLParam(request, "token")

	lang, err := handler.service.GetLanguage(request.Context(), token)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, lang)
}

func (handler *Handler) negotiateLanguage(writer http.ResponseWriter, request *http.Request) {
	header := request.Header.Get(constants.HeaderAcceptLanguage)
	respond.OK(writer, handler.service.Negotiate(request.Context(), header))
}
