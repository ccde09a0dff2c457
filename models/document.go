// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Document is the unit stored by the remote document store. Owner, Date and
// ClientID are copied out of the payload so the store can filter on them.
type Document struct {
	ID         string    `db:"id" json:"id,omitempty"`
	Collection string    `db:"collection" json:"collection,omitempty"`
	ClientID   string    `db:"client_id" json:"client_id,omitempty"`
	Owner      string    `db:"owner" json:"owner,omitempty"`
	Date       string    `db:"date" json:"date" validate:"required,datetime=2006-01-02"`
	Data       JSONData  `db:"data" json:"data" validate:"required"`
	CreatedAt  time.Time `db:"created_at" json:"created_at,omitempty"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

// DocumentQuery filters a document listing. Empty fields do not filter.
type DocumentQuery struct {
	Owner    string `json:"owner,omitempty"`
	ClientID string `json:"client_id,omitempty"`
	// DateBefore keeps documents with Date strictly before the value.
	DateBefore string `json:"date_before,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// AddDocumentResponse is returned when the remote store assigns an id.
type AddDocumentResponse struct {
	ID string `json:"id"`
}

// BatchDeleteRequest lists remote ids to delete in one round trip.
type BatchDeleteRequest struct {
	IDs []string `json:"ids" validate:"required,min=1,dive,required"`
}

// BatchDeleteResponse reports how many documents were removed.
type BatchDeleteResponse struct {
	Deleted int `json:"deleted"`
}

// DocumentsResponse wraps a listing.
type DocumentsResponse struct {
	Documents []Document `json:"documents"`
	Length    int        `json:"length"`
}

// recordPayload is the part of a Record that travels inside Document.Data.
// Sync bookkeeping (ids, dirty flag) stays on the device.
type recordPayload struct {
	WorkerName   string          `json:"workerName,omitempty"`
	CounterID    string          `json:"counterId,omitempty"`
	CounterName  string          `json:"counterName,omitempty"`
	CustomerName string          `json:"customerName,omitempty"`
	ReceivedBy   string          `json:"receivedBy,omitempty"`
	Amount       decimal.Decimal `json:"amount"`
	Mode         Mode            `json:"mode"`
	Date         string          `json:"date"`
	Timestamp    time.Time       `json:"timestamp"`
}

// NewDocument builds the remote representation of r.
func NewDocument(r Record) (Document, error) {
	data, err := json.Marshal(recordPayload{
		WorkerName:   r.WorkerName,
		CounterID:    r.CounterID,
		CounterName:  r.CounterName,
		CustomerName: r.CustomerName,
		ReceivedBy:   r.ReceivedBy,
		Amount:       r.Amount,
		Mode:         r.Mode,
		Date:         r.Date,
		Timestamp:    r.Timestamp,
	})
	if err != nil {
		return Document{}, fmt.Errorf("marshal record payload: %w", err)
	}

	return Document{
		ID:       r.RemoteID,
		ClientID: r.ClientID,
		Owner:    r.Owner(),
		Date:     r.Date,
		Data:     data,
	}, nil
}

// Record decodes the document back into a mirrored Record.
// Documents created elsewhere carry no client id; the remote id is used in
// its place so the record still has a stable local key.
func (d Document) Record() (Record, error) {
	var p recordPayload
	if err := json.Unmarshal(d.Data, &p); err != nil {
		return Record{}, fmt.Errorf("unmarshal document %s: %w", d.ID, err)
	}

	clientID := d.ClientID
	if clientID == "" {
		clientID = d.ID
	}
	date := p.Date
	if date == "" {
		date = d.Date
	}

	return Record{
		ClientID:     clientID,
		RemoteID:     d.ID,
		WorkerName:   p.WorkerName,
		CounterID:    p.CounterID,
		CounterName:  p.CounterName,
		CustomerName: p.CustomerName,
		ReceivedBy:   p.ReceivedBy,
		Amount:       p.Amount,
		Mode:         p.Mode,
		Date:         date,
		Timestamp:    p.Timestamp,
	}, nil
}

// NewPatchData encodes the editable fields of a patched record as a partial
// payload suitable for a remote merge update.
func NewPatchData(r Record, p RecordPatch) (JSONData, error) {
	fields := make(map[string]any, 3)
	if p.Amount != nil {
		fields["amount"] = r.Amount
	}
	if p.Mode != nil {
		fields["mode"] = r.Mode
	}
	if p.Name != nil {
		if r.CustomerName != "" && r.WorkerName == "" {
			fields["customerName"] = r.CustomerName
		} else {
			fields["counterName"] = r.CounterName
		}
	}
	data, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("marshal patch: %w", err)
	}
	return data, nil
}

// JSONData is a raw JSON object that can be stored in a jsonb column.
type JSONData []byte

// MarshalJSON returns d verbatim, or null when empty.
func (d JSONData) MarshalJSON() ([]byte, error) {
	if len(d) == 0 {
		return []byte("null"), nil
	}
	return d, nil
}

// UnmarshalJSON stores a copy of data.
func (d *JSONData) UnmarshalJSON(data []byte) error {
	if d == nil {
		return errors.New("models.JSONData: UnmarshalJSON on nil pointer")
	}
	*d = append((*d)[0:0], data...)
	return nil
}

// Value implements driver.Valuer.
func (d JSONData) Value() (driver.Value, error) {
	if len(d) == 0 {
		return nil, nil
	}
	return []byte(d), nil
}

// Scan implements sql.Scanner.
func (d *JSONData) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*d = nil
	case []byte:
		*d = append((*d)[0:0], v...)
	case string:
		*d = JSONData(v)
	default:
		return fmt.Errorf("models.JSONData: cannot scan %T", src)
	}
	return nil
}
