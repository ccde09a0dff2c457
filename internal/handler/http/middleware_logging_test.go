// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-collections-keeper/internal/logger"
	"github.com/MKhiriev/go-collections-keeper/models"
)

// newLoggedHandler returns a mocked Handler whose log output lands in buf.
func newLoggedHandler(t *testing.T, buf *bytes.Buffer) (*Handler, serviceMocks) {
	t.Helper()
	h, m := newMockedHandler(t, "")
	h.logger = &logger.Logger{Logger: zerolog.New(buf)}
	return h, m
}

// accessLine returns the entry withLogging wrote, skipping handler logs.
func accessLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var found map[string]any
	sc := bufio.NewScanner(bytes.NewReader(buf.Bytes()))
	for sc.Scan() {
		var entry map[string]any
		require.NoError(t, json.Unmarshal(sc.Bytes(), &entry))
		if _, ok := entry["uri"]; ok {
			found = entry
		}
	}
	require.NotNil(t, found, "no access log entry in %q", buf.String())
	return found
}

func TestWithLogging_DocumentRoutes(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		target     string
		body       []byte
		expect     func(m serviceMocks)
		wantLevel  string
		wantStatus float64
		wantFields map[string]string
		wantAbsent []string
	}{
		{
			name:   "get document",
			method: http.MethodGet,
			target: "/api/collections/onShopCollections/documents/R9",
			expect: func(m serviceMocks) {
				m.documents.EXPECT().Get(gomock.Any(), "onShopCollections", "R9").
					Return(models.Document{ID: "R9", Date: "2026-03-31", Data: models.JSONData(`{}`)}, nil)
			},
			wantLevel:  "info",
			wantStatus: http.StatusOK,
			wantFields: map[string]string{
				"route":       documentRoute,
				"collection":  "onShopCollections",
				"document_id": "R9",
				"method":      http.MethodGet,
				"uri":         "/api/collections/onShopCollections/documents/R9",
			},
		},
		{
			name:   "added document logs assigned id",
			method: http.MethodPost,
			target: "/api/collections/collections/documents",
			body:   []byte(testDocumentBody),
			expect: func(m serviceMocks) {
				m.documents.EXPECT().Add(gomock.Any(), "collections", gomock.Any()).Return("01JREMOTE", nil)
			},
			wantLevel:  "info",
			wantStatus: http.StatusCreated,
			wantFields: map[string]string{
				"route":       documentsRoute,
				"collection":  "collections",
				"document_id": "01JREMOTE",
			},
		},
		{
			name:   "listing has no document id",
			method: http.MethodGet,
			target: "/api/collections/collections/documents?owner=ravi",
			expect: func(m serviceMocks) {
				m.documents.EXPECT().List(gomock.Any(), "collections", gomock.Any()).Return(nil, nil)
			},
			wantLevel:  "info",
			wantStatus: http.StatusOK,
			wantFields: map[string]string{
				"collection": "collections",
				"uri":        "/api/collections/collections/documents?owner=ravi",
			},
			wantAbsent: []string{"document_id"},
		},
		{
			name:   "store failure is an error",
			method: http.MethodDelete,
			target: "/api/collections/collections/documents/R1",
			expect: func(m serviceMocks) {
				m.documents.EXPECT().Delete(gomock.Any(), "collections", "R1").Return(errors.New("boom"))
			},
			wantLevel:  "error",
			wantStatus: http.StatusInternalServerError,
			wantFields: map[string]string{
				"collection":  "collections",
				"document_id": "R1",
			},
		},
		{
			name:   "service route",
			method: http.MethodGet,
			target: "/api/ping",
			expect: func(m serviceMocks) {
				m.health.EXPECT().Ping(gomock.Any()).Return(nil)
			},
			wantLevel:  "info",
			wantStatus: http.StatusOK,
			wantFields: map[string]string{"route": "/api/ping"},
			wantAbsent: []string{"collection", "document_id"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h, m := newLoggedHandler(t, &buf)
			tt.expect(m)

			rr := serve(h, tt.method, tt.target, tt.body)
			require.Equal(t, int(tt.wantStatus), rr.Code, rr.Body.String())

			entry := accessLine(t, &buf)
			assert.Equal(t, tt.wantLevel, entry["level"])
			assert.Equal(t, tt.wantStatus, entry["status"])
			assert.Equal(t, rr.Header().Get(traceIDHeader), entry["trace_id"])
			assert.Contains(t, entry, "duration")
			for k, v := range tt.wantFields {
				assert.Equal(t, v, entry[k], k)
			}
			for _, k := range tt.wantAbsent {
				assert.NotContains(t, entry, k)
			}
		})
	}
}

// size is what the client received, so a compressed listing reports fewer
// bytes than its JSON.
func TestWithLogging_SizeIsWireSize(t *testing.T) {
	var buf bytes.Buffer
	h, m := newLoggedHandler(t, &buf)
	m.documents.EXPECT().List(gomock.Any(), "collections", gomock.Any()).Return(sampleDocuments(30), nil)

	rr := serveGzip(t, h, http.MethodGet, "/api/collections/collections/documents", nil, false)
	require.Equal(t, http.StatusOK, rr.Code)

	entry := accessLine(t, &buf)
	assert.Equal(t, float64(rr.Body.Len()), entry["size"])
}

func TestWithLogging_NoStatusWritten(t *testing.T) {
	var buf bytes.Buffer
	l := zerolog.New(&buf)

	middleware := withLogging(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	req := httptest.NewRequest(http.MethodGet, "/api/collections/collections/documents", nil)
	req = req.WithContext(l.WithContext(req.Context()))
	middleware.ServeHTTP(httptest.NewRecorder(), req)

	entry := accessLine(t, &buf)
	assert.Equal(t, float64(0), entry["status"])
	assert.Equal(t, float64(0), entry["size"])
	assert.NotContains(t, entry, "route")
}

func TestWithLogging_PanicNotSuppressed(t *testing.T) {
	middleware := withLogging(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("document decoder exploded")
	}))
	req := httptest.NewRequest(http.MethodGet, "/api/collections/collections/documents/R1", nil)
	req = req.WithContext(logger.Nop().WithContext(req.Context()))

	assert.Panics(t, func() {
		middleware.ServeHTTP(httptest.NewRecorder(), req)
	})
}
