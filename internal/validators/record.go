// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/MKhiriev/go-collections-keeper/models"
)

// Field name constants restrict validation of a struct to the named fields.
const (
	FieldClientID = "ClientID"
	FieldAmount   = "Amount"
	FieldMode     = "Mode"
	FieldDate     = "Date"
)

// fieldErrors maps struct field names onto the sentinel reported for them.
var fieldErrors = map[string]error{
	"ClientID":     ErrInvalidClientID,
	"Amount":       ErrInvalidAmount,
	"Mode":         ErrInvalidMode,
	"Date":         ErrInvalidDate,
	"DateBefore":   ErrInvalidDate,
	"From":         ErrInvalidFilter,
	"To":           ErrInvalidFilter,
	"WorkerName":   ErrMissingOwner,
	"ReceivedBy":   ErrMissingOwner,
	"CounterName":  ErrMissingParty,
	"CustomerName": ErrMissingParty,
	"Name":         ErrInvalidActor,
	"Role":         ErrInvalidActor,
	"Data":         ErrEmptyData,
	"IDs":          ErrEmptyIDs,
}

// RecordValidator validates records, patches, actors and the document store
// payloads built from them.
type RecordValidator struct {
	validate *validator.Validate
}

// NewRecordValidator constructs a RecordValidator with the decimal amount
// rule registered.
func NewRecordValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// decimals are validated through their string form
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.String()
		}
		return nil
	}, decimal.Decimal{})

	_ = v.RegisterValidation("positive_decimal", func(fl validator.FieldLevel) bool {
		d, err := decimal.NewFromString(fl.Field().String())
		return err == nil && d.IsPositive()
	})

	return &RecordValidator{validate: v}
}

// Validate dispatches on the dynamic type of obj. Both value and pointer
// forms are accepted. Optional fields restrict struct validation to the
// named Go field names.
func (v *RecordValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Record:
		return v.validateStruct(value, fields...)
	case *models.Record:
		return v.validateStruct(*value, fields...)

	case models.RecordPatch:
		return v.validatePatch(value)
	case *models.RecordPatch:
		return v.validatePatch(*value)

	case models.Actor:
		return v.validateStruct(value, fields...)
	case *models.Actor:
		return v.validateStruct(*value, fields...)

	case models.Document:
		return v.validateStruct(value, fields...)
	case *models.Document:
		return v.validateStruct(*value, fields...)

	case models.DocumentQuery:
		return v.validateStruct(value, fields...)
	case models.BatchDeleteRequest:
		return v.validateStruct(value, fields...)
	case models.ReportFilter:
		return v.validateStruct(value, fields...)

	case models.Dataset:
		parsed, err := models.ParseDataset(string(value))
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidCollection, err)
		}
		if parsed != value {
			return fmt.Errorf("%w: %q is an alias of %q", ErrInvalidCollection, value, parsed)
		}
		return nil
	}

	return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
}

// ValidateCollection checks a remote collection name taken from a URL.
func ValidateCollection(collection string) error {
	if collection == "" || len(collection) > 64 {
		return fmt.Errorf("%w: %q", ErrInvalidCollection, collection)
	}
	for _, r := range collection {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '_') {
			return fmt.Errorf("%w: %q", ErrInvalidCollection, collection)
		}
	}
	return nil
}

func (v *RecordValidator) validateStruct(obj any, fields ...string) error {
	var err error
	if len(fields) > 0 {
		if err = v.checkFields(obj, fields); err != nil {
			return err
		}
		err = v.validate.StructPartial(obj, fields...)
	} else {
		err = v.validate.Struct(obj)
	}
	return mapValidationError(err)
}

func (v *RecordValidator) checkFields(obj any, fields []string) error {
	t := reflect.TypeOf(obj)
	for _, f := range fields {
		if _, ok := t.FieldByName(f); !ok {
			return fmt.Errorf("%w: %s.%s", ErrUnknownField, t.Name(), f)
		}
	}
	return nil
}

func (v *RecordValidator) validatePatch(p models.RecordPatch) error {
	if p.Empty() {
		return ErrNoFieldsToUpdate
	}
	if p.Amount != nil && !p.Amount.IsPositive() {
		return fmt.Errorf("%w: %s", ErrInvalidAmount, p.Amount.String())
	}
	if p.Mode != nil && !p.Mode.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidMode, *p.Mode)
	}
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return ErrEmptyName
	}
	return nil
}

// mapValidationError reports the first failed field as its sentinel.
func mapValidationError(err error) error {
	if err == nil {
		return nil
	}

	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return err
	}

	fe := errs[0]
	// dive errors name the element, e.g. IDs[0]
	field, _, _ := strings.Cut(fe.StructField(), "[")
	sentinel, ok := fieldErrors[field]
	if !ok {
		return fmt.Errorf("field %s failed %q: %w", fe.Namespace(), fe.Tag(), err)
	}
	return fmt.Errorf("%w: field %s failed %q", sentinel, fe.Field(), fe.Tag())
}
