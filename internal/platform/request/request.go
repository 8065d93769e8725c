// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package requestutil provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and body
decoding, so handlers get [apperr.AppError] values they can pass straight to
the respond package.
*/
package requestutil

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/steamreviews/internal/platform/apperr"
	"github.com/taibuivan/steamreviews/internal/platform/codec"
	"github.com/taibuivan/steamreviews/internal/platform/constants"
	"github.com/taibuivan/steamreviews/internal/platform/validate"
	"github.com/taibuivan/steamreviews/pkg/query"
)

/*
DecodeBody reads the request body and decodes it into target with the codec
selected by the Content-Type header.

Returns:
  - apperr.UnsupportedMediaType if no codec handles the Content-Type
  - validate.ErrInvalidBody if the body is too large or cannot be decoded
*/
func DecodeBody(request *http.Request, target any) error {
	contentType := request.Header.Get(constants.HeaderContentType)
	c, ok := codec.ForContentType(contentType)
	if !ok {
		return apperr.UnsupportedMediaType(contentType)
	}

	body, err := io.ReadAll(io.LimitReader(request.Body, constants.MaxRequestBodyBytes+1))
	if err != nil || len(body) > constants.MaxRequestBodyBytes {
		return validate.ErrInvalidBody
	}

	if err := c.Unmarshaler()(body, target); err != nil {
		return validate.ErrInvalidBody
	}
	return nil
}

/*
AppID parses the {appID} URL parameter as a Steam app ID.

Returns:
  - error: a VALIDATION_ERROR naming the "app_id" field when it is not a uint32
*/
func AppID(request *http.Request) (uint32, error) {
	appID, err := query.Uint32(chi.URLParam(request, "appID"))
	if err != nil {
		return 0, validate.RequiredError("app_id", "Must be a Steam app ID")
	}
	return appID, nil
}
