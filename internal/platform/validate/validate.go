// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package validate provides a chainable Validator that collects field-level
// errors before returning a single [apperr.AppError].
//
// # Architecture
//
// This package is used exclusively in the service layer, never in handlers or
// storage. It ensures that business logic only operates on semantically valid data.
package validate

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/taibuivan/steamreviews/internal/core/language"
	"github.com/taibuivan/steamreviews/internal/platform/apperr"
)

var (
	// digitsRegex matches the decimal strings Steam uses for 64-bit IDs.
	digitsRegex = regexp.MustCompile(`^[0-9]{1,20}$`)

	// ErrInvalidBody is returned when the request body cannot be decoded.
	ErrInvalidBody = apperr.ValidationError("Invalid request payload")
)

// Validator collects field-level validation errors via a fluent, chainable API.
//
// # Concurrency
//
// Validator is not safe for concurrent use. A new instance must be created
// for every request/operation.
type Validator struct {
	errs []apperr.FieldError
}

// Required fails if the trimmed value is empty.
func (v *Validator) Required(field, value string) *Validator {
	if strings.TrimSpace(value) == "" {
		v.add(field, "This field is required")
	}
	return v
}

// MaxLen fails if the Unicode character count exceeds max.
func (v *Validator) MaxLen(field, value string, max int) *Validator {
	if utf8.RuneCountInString(value) > max {
		v.add(field, fmt.Sprintf("Maximum %d characters", max))
	}
	return v
}

// Range fails if the value is outside the [min, max] range (inclusive).
func (v *Validator) Range(field string, value, min, max int) *Validator {
	if value < min || value > max {
		v.add(field, fmt.Sprintf("Must be between %d and %d", min, max))
	}
	return v
}

// Digits fails if the value is not a decimal string, the format of Steam IDs
// and recommendation IDs. A blank value fails as [Validator.Required] does.
func (v *Validator) Digits(field, value string) *Validator {
	if strings.TrimSpace(value) == "" {
		return v.Required(field, value)
	}
	if !digitsRegex.MatchString(value) {
		v.add(field, "Must be a decimal identifier")
	}
	return v
}

// Language parses value as a Steam language and stores it in out.
//
// A failure records the field without echoing the rejected value.
func (v *Validator) Language(field, value string, out *language.Language) *Validator {
	parsed, err := language.Decode(field, value)
	if err != nil {
		message := "Unrecognized language"
		if !errors.Is(err, language.ErrUnknownLanguage) {
			message = err.Error()
		}
		v.add(field, message)
		return v
	}
	*out = parsed
	return v
}

// Custom adds a failure with a custom message if the condition is true.
//
// # Example
//
//	v.Custom("reviews[2].recommendationid", seen[id], "Duplicate recommendation ID in batch")
func (v *Validator) Custom(field string, failed bool, message string) *Validator {
	if failed {
		v.add(field, message)
	}
	return v
}

// Err returns a [apperr.AppError] (VALIDATION_ERROR) if any rules failed,
// or nil if all rules passed.
//
// This is the only output method; call it at the end of the chain.
func (v *Validator) Err() error {
	if len(v.errs) == 0 {
		return nil
	}
	return apperr.ValidationError("Validation failed", v.errs...)
}

// HasErrors reports whether any validation rule has failed so far.
func (v *Validator) HasErrors() bool {
	return len(v.errs) > 0
}

// add appends a [apperr.FieldError] to the internal slice.
func (v *Validator) add(field, message string) {
	v.errs = append(v.errs, apperr.FieldError{Field: field, Message: message})
}

// RequiredError is a shortcut to create a single-field validation error.
func RequiredError(field, message string) *apperr.AppError {
	return apperr.ValidationError("Validation failed", apperr.FieldError{
		Field:   field,
		Message: message,
	})
}

// Path builds the field path of an element in a list, e.g.
// Path("reviews", 3, "language") is "reviews[3].language".
func Path(list string, index int, field string) string {
	return list + "[" + strconv.Itoa(index) + "]." + field
}
