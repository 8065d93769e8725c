// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
package dberr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/taibuivan/steamreviews/internal/platform/apperr"
)

// SQLSTATE codes that map to client errors.
const (
	codeCheckViolation  = "23514"
	codeNumericOverflow = "22003"
)

// Wrap inspects a database error and wraps it into a meaningful [apperr.AppError].
// It hides internal database details from the client while classifying the
// error type. action names the failed operation in the logged cause.
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.NotFound("Resource")
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeCheckViolation, codeNumericOverflow:
			appErr := apperr.ValidationError("Value rejected by storage")
			appErr.Cause = fmt.Errorf("%s: %w", action, err)
			return appErr
		}
	}

	return apperr.Internal(fmt.Errorf("%s: %w", action, err))
}
