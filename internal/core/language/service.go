package language

import (
	"context"
	"log/slog"

	"github.com/taibuivan/steamreviews/internal/platform/apperr"
)

// Entry is the API view of one catalogued language.
type Entry struct {
	WireForm   Language `json:"wire_form"`
	ShortCode  string   `json:"short_code"`
	NativeName string   `json:"native_name"`
	Tag        string   `json:"tag"`
}

// NewEntry projects l into its API view.
func NewEntry(l Language) Entry {
	return Entry{
		WireForm:   l,
		ShortCode:  l.ShortCode(),
		NativeName: l.NativeName(),
		Tag:        l.Tag().String(),
	}
}

// Service exposes the static catalog to the HTTP layer.
type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	return &Service{logger: logger}
}

func (service *Service) ListLanguages(context context.Context) []Entry {
	langs := Languages()
	entries := make([]Entry, len(langs))
	for i, l := range langs {
		entries[i] = NewEntry(l)
	}
	return entries
}

// GetLanguage resolves any projection of a language. Unknown tokens are a
// NOT_FOUND error.
func (service *Service) GetLanguage(context context.Context, token string) (*Entry, error) {
	l, err := Parse(token)
	if err != nil {
		return nil, apperr.NotFound("Language")
	}
	entry := NewEntry(l)
	return &entry, nil
}

// Negotiate returns the language the caller prefers. A language already
// negotiated by middleware wins over the raw header.
func (service *Service) Negotiate(context context.Context, acceptLanguage string) Entry {
	if l, ok := FromContext(context); ok {
		return NewEntry(l)
	}

	l := Negotiate(acceptLanguage)
	service.logger.DebugContext(context, "language_negotiated",
		slog.String("accept_language", acceptLanguage),
		slog.String("language", l.String()),
	)
	return NewEntry(l)
}
