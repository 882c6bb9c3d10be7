// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/MKhiriev/shareit/models"
	"github.com/go-playground/validator/v10"
	nonstandard "github.com/go-playground/validator/v10/non-standard/validators"
)

// RequestValidator checks request payloads against their `validate` struct
// tags and applies the cross-field rules tags cannot express.
type RequestValidator struct {
	validate *validator.Validate
	now      func() time.Time
}

func NewRequestValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// notblank is registered under its conventional name; it cannot fail for a
	// non-empty tag and a non-nil function.
	_ = v.RegisterValidation("notblank", nonstandard.NotBlank)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &RequestValidator{
		validate: v,
		now:      time.Now,
	}
}

// Validate validates obj. When fields are given only those struct fields
// are checked.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CreateBookingRequest:
		return v.validateBooking(ctx, value, fields...)
	case *models.CreateBookingRequest:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateBooking(ctx, *value, fields...)

	case models.CreateUserRequest, *models.CreateUserRequest,
		models.UpdateUserRequest, *models.UpdateUserRequest,
		models.CreateItemRequest, *models.CreateItemRequest,
		models.UpdateItemRequest, *models.UpdateItemRequest,
		models.CreateCommentRequest, *models.CreateCommentRequest,
		models.CreateItemRequestRequest, *models.CreateItemRequestRequest:
		return v.validateStruct(ctx, value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateStruct(ctx context.Context, obj any, fields ...string) error {
	var err error
	if len(fields) > 0 {
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	} else {
		err = v.validate.StructCtx(ctx, obj)
	}
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return fmt.Errorf("%w: %s failed on '%s'", ErrInvalidField, fe.Field(), fe.Tag())
	}

	var invalidErr *validator.InvalidValidationError
	if errors.As(err, &invalidErr) {
		return fmt.Errorf("%w: %w", ErrUnsupportedType, err)
	}

	return fmt.Errorf("%w: %w", ErrUnknownField, err)
}

// validateBooking requires both ends of the period to lie in the future and
// start to precede end.
func (v *RequestValidator) validateBooking(ctx context.Context, req models.CreateBookingRequest, fields ...string) error {
	if err := v.validateStruct(ctx, req, fields...); err != nil {
		return err
	}
	if req.Start == nil || req.End == nil {
		return nil
	}

	now := v.now()
	if !req.Start.After(now) {
		return ErrStartInPast
	}
	if !req.End.After(now) {
		return ErrEndInPast
	}
	if !req.Start.Before(req.End.Time) {
		return ErrStartNotBeforeEnd
	}

	return nil
}
