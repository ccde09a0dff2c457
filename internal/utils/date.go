// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"fmt"
	"time"
)

// DateLayout is the format of every business date in the application.
const DateLayout = "2006-01-02"

// BusinessLocation is the fixed UTC+05:30 offset records are dated in,
// regardless of the device time zone.
var BusinessLocation = time.FixedZone("UTC+05:30", 5*60*60+30*60)

// BusinessDate returns the business calendar day that instant falls on.
func BusinessDate(instant time.Time) string {
	return instant.In(BusinessLocation).Format(DateLayout)
}

// ParseBusinessDate parses a YYYY-MM-DD business date.
func ParseBusinessDate(date string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, date, BusinessLocation)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid business date %q: %w", date, err)
	}
	return t, nil
}

// CutoffDate returns the oldest business date still retained at instant
// when records are kept for retentionDays days. A record dated exactly on
// the cutoff is kept.
func CutoffDate(instant time.Time, retentionDays int) string {
	return instant.In(BusinessLocation).AddDate(0, 0, -retentionDays).Format(DateLayout)
}

// Clock abstracts the current time so that date-dependent logic can be
// tested against a simulated calendar.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }
