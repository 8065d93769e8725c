package language_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/steamreviews/internal/core/language"
	"github.com/taibuivan/steamreviews/internal/platform/constants"
)

func newTestHandler() http.Handler {
	service := language.NewService(slog.New(slog.NewTextHandler(io.Discard, nil)))
	return language.NewHandler(service).Routes()
}

func serve(handler http.Handler, target string, headers ...string) *httptest.ResponseRecorder {
	request := httptest.NewRequest(http.MethodGet, target, nil)
	for i := 0; i+1 < len(headers); i += 2 {
		request.Header.Set(headers[i], headers[i+1])
	}
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	return recorder
}

func decodeEntry(t *testing.T, recorder *httptest.ResponseRecorder) language.Entry {
	t.Helper()
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())
	var envelope struct {
		Data language.Entry `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	return envelope.Data
}

func TestHTTP_ListLanguages(t *testing.T) {
	recorder := serve(newTestHandler(), "/")
	require.Equal(t, http.StatusOK, recorder.Code)

	var envelope struct {
		Data []language.Entry `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	require.Len(t, envelope.Data, 30)
	assert.Equal(t, language.All, envelope.Data[0].WireForm)
	assert.Equal(t, language.Vietnamese, envelope.Data[29].WireForm)
	assert.Contains(t, recorder.Body.String(), `"wire_form":"schinese"`)
}

func TestHTTP_GetLanguage(t *testing.T) {
	handler := newTestHandler()

	tests := []struct {
		token string
		want  language.Language
	}{
		{"koreana", language.Korean},
		{"pt-BR", language.PortugueseBrazilian},
		{"el el", language.Greek},
		{"日本語", language.Japanese},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			entry := decodeEntry(t, serve(handler, "/"+url.PathEscape(tt.token)))
			assert.Equal(t, tt.want, entry.WireForm)
			assert.Equal(t, tt.want.ShortCode(), entry.ShortCode)
			assert.Equal(t, tt.want.NativeName(), entry.NativeName)
		})
	}
}

func TestHTTP_GetLanguage_NotFound(t *testing.T) {
	recorder := serve(newTestHandler(), "/Koreana")
	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.NotContains(t, recorder.Body.String(), "Koreana")
}

func TestHTTP_Negotiate(t *testing.T) {
	handler := newTestHandler()

	entry := decodeEntry(t, serve(handler, "/negotiate", constants.HeaderAcceptLanguage, "uk-UA,uk;q=0.9"))
	assert.Equal(t, language.Ukrainian, entry.WireForm)
	assert.Equal(t, "uk", entry.Tag)

	entry = decodeEntry(t, serve(handler, "/negotiate"))
	assert.Equal(t, language.English, entry.WireForm)
}
