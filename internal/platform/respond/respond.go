// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package respond provides HTTP response helpers used by all API handlers.
//
// # Architecture
//
// Every response, success or error, follows the same envelope. JSON is the
// default representation; [Negotiated] lets list endpoints answer in any
// format registered in the codec package.
package respond

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/taibuivan/steamreviews/internal/platform/apperr"
	"github.com/taibuivan/steamreviews/internal/platform/codec"
	"github.com/taibuivan/steamreviews/internal/platform/constants"
	"github.com/taibuivan/steamreviews/internal/platform/ctxutil"
	"github.com/taibuivan/steamreviews/pkg/pagination"
)

// SuccessEnvelope is the envelope for successful single-resource responses.
type SuccessEnvelope struct {
	Data any `json:"data" msgpack:"data"`
}

// PaginatedEnvelope is the envelope for paginated list responses.
type PaginatedEnvelope struct {
	Data any             `json:"data" msgpack:"data"`
	Meta pagination.Meta `json:"meta" msgpack:"meta"`
}

// ErrorEnvelope is the JSON envelope for error responses.
type ErrorEnvelope struct {
	Error   string              `json:"error"`
	Code    string              `json:"code"`
	Details []apperr.FieldError `json:"details,omitempty"`
}

// JSON writes a JSON response with the given status code.
func JSON(writer http.ResponseWriter, statusCode int, payload any) {
	writer.Header().Set(constants.HeaderContentType, "application/json; charset=utf-8")
	writer.WriteHeader(statusCode)
	_ = json.NewEncoder(writer).Encode(payload)
}

// OK writes a 200 OK response with data wrapped in the standard success envelope.
func OK(writer http.ResponseWriter, data any) {
	JSON(writer, http.StatusOK, SuccessEnvelope{Data: data})
}

// Created writes a 201 Created response with data wrapped in the standard success envelope.
func Created(writer http.ResponseWriter, data any) {
	JSON(writer, http.StatusCreated, SuccessEnvelope{Data: data})
}

// Negotiated writes payload with status in the first format of the request's
// Accept header that the codec package supports. Unsupported Accept headers
// get a 406 error in JSON.
func Negotiated(writer http.ResponseWriter, request *http.Request, statusCode int, payload any) {
	accept := request.Header.Get(constants.HeaderAccept)
	c, ok := codec.ForAccept(accept)
	if !ok {
		Error(writer, request, apperr.NotAcceptable(accept))
		return
	}

	if c.MediaType() == codec.MediaTypeJSON {
		JSON(writer, statusCode, payload)
		return
	}

	body, err := c.Marshaler()(payload)
	if err != nil {
		Error(writer, request, apperr.Internal(err))
		return
	}

	writer.Header().Set(constants.HeaderContentType, c.MediaType())
	writer.WriteHeader(statusCode)
	_, _ = writer.Write(body)
}

// Paginated writes a 200 OK response with paginated data and a metadata block,
// in the representation the client asked for.
func Paginated(writer http.ResponseWriter, request *http.Request, data any, metadata pagination.Meta) {
	Negotiated(writer, request, http.StatusOK, PaginatedEnvelope{Data: data, Meta: metadata})
}

// Error converts any Go error into a standardized JSON API error response.
func Error(writer http.ResponseWriter, request *http.Request, err error) {
	logger := ctxutil.GetLogger(request.Context())
	requestID := ctxutil.GetRequestID(request.Context())

	appError := apperr.As(err)
	if appError == nil {
		// Unexpected internal error: log full details but hide them from the client.
		logger.ErrorContext(request.Context(), "unhandled_error_swallowed",
			slog.String("error", err.Error()),
			slog.String("request_id", requestID),
		)
		appError = apperr.Internal(err)
	}

	// Always log 5xx errors as they indicate server-side issues.
	if appError.HTTPStatus >= 500 {
		logger.ErrorContext(request.Context(), "api_server_error",
			slog.String("code", appError.Code),
			slog.String("request_id", requestID),
			slog.Any("cause", appError.Cause),
		)
	}

	JSON(writer, appError.HTTPStatus, ErrorEnvelope{
		Error:   appError.Message,
		Code:    appError.Code,
		Details: appError.Details,
	})
}
