// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBusinessDate(t *testing.T) {
	tests := []struct {
		name    string
		instant time.Time
		want    string
	}{
		{
			name:    "UTC evening rolls over to the next business day",
			instant: time.Date(2026, 10, 18, 18, 30, 0, 0, time.UTC),
			want:    "2026-10-19",
		},
		{
			name:    "just before midnight business time",
			instant: time.Date(2026, 10, 18, 18, 29, 59, 0, time.UTC),
			want:    "2026-10-18",
		},
		{
			name:    "device time zone is ignored",
			instant: time.Date(2026, 10, 18, 23, 0, 0, 0, time.FixedZone("PST", -8*60*60)),
			want:    "2026-10-19",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BusinessDate(tt.instant))
		})
	}
}

func TestCutoffDate(t *testing.T) {
	tests := []struct {
		name    string
		instant time.Time
		days    int
		want    string
	}{
		{name: "thirty days", instant: time.Date(2026, 3, 15, 6, 0, 0, 0, time.UTC), days: 30, want: "2026-02-13"},
		{name: "zero keeps today", instant: time.Date(2026, 10, 19, 6, 0, 0, 0, time.UTC), days: 0, want: "2026-10-19"},
		// 20:00 UTC is already the next business day
		{name: "business midnight", instant: time.Date(2026, 12, 31, 20, 0, 0, 0, time.UTC), days: 1, want: "2026-12-31"},
		{name: "year boundary", instant: time.Date(2027, 1, 1, 6, 0, 0, 0, time.UTC), days: 1, want: "2026-12-31"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CutoffDate(tt.instant, tt.days))
		})
	}
}

func TestClockFunc(t *testing.T) {
	fixed := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	var c Clock = ClockFunc(func() time.Time { return fixed })
	assert.Equal(t, fixed, c.Now())
}
