// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-collections-keeper/models"
)

func validRecord() models.Record {
	return models.Record{
		ClientID:    "0190f3a4-7c1e-7b2a-9a51-3f2b8c1d0e11",
		WorkerName:  "ravi",
		CounterName: "Main Street",
		Amount:      decimal.RequireFromString("150.50"),
		Mode:        models.ModeCash,
		Date:        "2026-03-01",
	}
}

func TestRecordValidator_Record(t *testing.T) {
	v := NewRecordValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(r *models.Record)
		wantErr error
	}{
		{name: "valid collection", mutate: func(r *models.Record) {}},
		{
			name: "valid onshop",
			mutate: func(r *models.Record) {
				r.WorkerName, r.CounterName = "", ""
				r.ReceivedBy, r.CustomerName = "anita", "walk-in"
				r.Mode = models.ModeOnline
			},
		},
		{name: "zero amount", mutate: func(r *models.Record) { r.Amount = decimal.Zero }, wantErr: ErrInvalidAmount},
		{name: "negative amount", mutate: func(r *models.Record) { r.Amount = decimal.NewFromInt(-5) }, wantErr: ErrInvalidAmount},
		{name: "unknown mode", mutate: func(r *models.Record) { r.Mode = "card" }, wantErr: ErrInvalidMode},
		{name: "bad date", mutate: func(r *models.Record) { r.Date = "01/03/2026" }, wantErr: ErrInvalidDate},
		{name: "no client id", mutate: func(r *models.Record) { r.ClientID = "" }, wantErr: ErrInvalidClientID},
		{name: "no owner", mutate: func(r *models.Record) { r.WorkerName = "" }, wantErr: ErrMissingOwner},
		{name: "no counter", mutate: func(r *models.Record) { r.CounterName = "" }, wantErr: ErrMissingParty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validRecord()
			tt.mutate(&r)

			err := v.Validate(ctx, r)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRecordValidator_PartialFields(t *testing.T) {
	v := NewRecordValidator()
	r := validRecord()
	r.ClientID = ""

	// client id is assigned later; only the user supplied fields are checked
	require.NoError(t, v.Validate(context.Background(), &r, FieldAmount, FieldMode, FieldDate))

	err := v.Validate(context.Background(), r, "Colour")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestRecordValidator_Patch(t *testing.T) {
	v := NewRecordValidator()
	ctx := context.Background()
	amount := decimal.NewFromInt(10)
	zero := decimal.Zero
	online := models.ModeOnline
	bad := models.Mode("barter")
	blank := "  "
	name := "North Gate"

	assert.ErrorIs(t, v.Validate(ctx, models.RecordPatch{}), ErrNoFieldsToUpdate)
	assert.NoError(t, v.Validate(ctx, models.RecordPatch{Amount: &amount, Mode: &online, Name: &name}))
	assert.ErrorIs(t, v.Validate(ctx, &models.RecordPatch{Amount: &zero}), ErrInvalidAmount)
	assert.ErrorIs(t, v.Validate(ctx, models.RecordPatch{Mode: &bad}), ErrInvalidMode)
	assert.ErrorIs(t, v.Validate(ctx, models.RecordPatch{Name: &blank}), ErrEmptyName)
}

func TestRecordValidator_Actor(t *testing.T) {
	v := NewRecordValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.Actor{Name: "ravi", Role: models.RoleWorker}))
	assert.ErrorIs(t, v.Validate(ctx, models.Actor{Role: models.RoleAdmin}), ErrInvalidActor)
	assert.ErrorIs(t, v.Validate(ctx, models.Actor{Name: "ravi", Role: "owner"}), ErrInvalidActor)
}

func TestRecordValidator_DocumentStoreTypes(t *testing.T) {
	v := NewRecordValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.Document{Date: "2026-03-01", Data: models.JSONData(`{}`)}))
	assert.ErrorIs(t, v.Validate(ctx, models.Document{Date: "2026-03-01"}), ErrEmptyData)
	assert.ErrorIs(t, v.Validate(ctx, models.Document{Date: "yesterday", Data: models.JSONData(`{}`)}), ErrInvalidDate)

	assert.NoError(t, v.Validate(ctx, models.DocumentQuery{}))
	assert.ErrorIs(t, v.Validate(ctx, models.DocumentQuery{DateBefore: "2026-13-01"}), ErrInvalidDate)

	assert.NoError(t, v.Validate(ctx, models.BatchDeleteRequest{IDs: []string{"a"}}))
	assert.ErrorIs(t, v.Validate(ctx, models.BatchDeleteRequest{}), ErrEmptyIDs)
	assert.ErrorIs(t, v.Validate(ctx, models.BatchDeleteRequest{IDs: []string{""}}), ErrEmptyIDs)

	assert.NoError(t, v.Validate(ctx, models.DatasetOnShop))
	assert.ErrorIs(t, v.Validate(ctx, models.Dataset("payroll")), ErrInvalidCollection)

	assert.ErrorIs(t, v.Validate(ctx, 42), ErrUnsupportedType)
}

func TestValidateCollection(t *testing.T) {
	assert.NoError(t, ValidateCollection("collections"))
	assert.NoError(t, ValidateCollection("onShopCollections"))
	assert.ErrorIs(t, ValidateCollection(""), ErrInvalidCollection)
	assert.ErrorIs(t, ValidateCollection("../etc"), ErrInvalidCollection)
	assert.ErrorIs(t, ValidateCollection("a b"), ErrInvalidCollection)
}
