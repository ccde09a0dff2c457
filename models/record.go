// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Mode is the payment channel of a record.
type Mode string

const (
	// ModeCash marks a cash payment. Stored as "offline" for compatibility
	// with existing documents.
	ModeCash Mode = "offline"
	// ModeOnline marks a digital payment.
	ModeOnline Mode = "online"
)

// Valid reports whether m is one of the known payment modes.
func (m Mode) Valid() bool {
	return m == ModeCash || m == ModeOnline
}

// Record is a single collection entry. The same shape is used for both
// datasets: counter collections fill WorkerName/CounterID/CounterName,
// OnShop entries fill CustomerName/ReceivedBy.
//
// ClientID is assigned once when the record is created and never changes.
// RemoteID stays empty until the remote store has accepted the record.
type Record struct {
	ClientID string `json:"client_id" validate:"required"`
	RemoteID string `json:"remote_id,omitempty"`
	// Dirty is set when a local edit has not been confirmed by the remote store.
	Dirty bool `json:"dirty,omitempty"`

	WorkerName  string `json:"worker_name,omitempty" validate:"required_without=ReceivedBy"`
	CounterID   string `json:"counter_id,omitempty"`
	CounterName string `json:"counter_name,omitempty" validate:"required_with=WorkerName"`

	CustomerName string `json:"customer_name,omitempty" validate:"required_with=ReceivedBy"`
	ReceivedBy   string `json:"received_by,omitempty" validate:"required_without=WorkerName"`

	Amount    decimal.Decimal `json:"amount" validate:"positive_decimal"`
	Mode      Mode            `json:"mode" validate:"oneof=offline online"`
	Date      string          `json:"date" validate:"required,datetime=2006-01-02"`
	Timestamp time.Time       `json:"timestamp"`
}

// Owner returns the name of the user the record is attributed to.
func (r Record) Owner() string {
	if r.WorkerName != "" {
		return r.WorkerName
	}
	return r.ReceivedBy
}

// Party returns the counter or customer name the money was collected from.
func (r Record) Party() string {
	if r.CounterName != "" {
		return r.CounterName
	}
	return r.CustomerName
}

// Mirrored reports whether the remote store holds the current version of r.
func (r Record) Mirrored() bool {
	return r.RemoteID != "" && !r.Dirty
}

// Pending is the negation of Mirrored.
func (r Record) Pending() bool {
	return !r.Mirrored()
}

// RecordPatch lists the fields a user may change after creation.
// Nil fields are left untouched.
type RecordPatch struct {
	Amount *decimal.Decimal `json:"amount,omitempty"`
	Mode   *Mode            `json:"mode,omitempty"`
	// Name replaces the counter name or the customer name, whichever the
	// record carries.
	Name *string `json:"name,omitempty"`
}

// Empty reports whether the patch changes nothing.
func (p RecordPatch) Empty() bool {
	return p.Amount == nil && p.Mode == nil && p.Name == nil
}

// Apply returns a copy of r with the patch applied.
func (p RecordPatch) Apply(r Record) Record {
	if p.Amount != nil {
		r.Amount = *p.Amount
	}
	if p.Mode != nil {
		r.Mode = *p.Mode
	}
	if p.Name != nil {
		if r.WorkerName == "" && r.ReceivedBy != "" {
			r.CustomerName = *p.Name
		} else {
			r.CounterName = *p.Name
		}
	}
	return r
}
