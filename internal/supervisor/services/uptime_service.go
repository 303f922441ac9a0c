// Logroute - Category-Routed Structured Logging
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/logroute

package services

import (
	"context"
	"time"

	"github.com/tomtom215/logroute/internal/metrics"
)

// UptimeService keeps the app_uptime_seconds gauge current.
type UptimeService struct {
	start    time.Time
	interval time.Duration
}

// NewUptimeService measures uptime from start, refreshing every interval.
// A non-positive interval selects 15s.
func NewUptimeService(start time.Time, interval time.Duration) *UptimeService {
	if interval <= 0 {
		interval = 15 * time.Second
	}
	return &UptimeService{start: start, interval: interval}
}

// Serve implements suture.Service.
func (u *UptimeService) Serve(ctx context.Context) error {
	metrics.TrackUptime(u.start, u.interval, ctx.Done())
	return ctx.Err()
}

func (u *UptimeService) String() string {
	return "uptime"
}
