// SPDX-FileCopyrightText: 2026 api2spec
// SPDX-License-Identifier: FSL-1.1-MIT

// Package status assembles the status bar contents in the background.
package status

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/llbbl/startmenu/internal/sysinfo"
)

// Snapshot is one status bar refresh: machine identity on the left, weather
// and clock on the right.
type Snapshot struct {
	Host    string
	OS      string
	Weather string
	Clock   string // HH:MM
}

// Left renders the left half of the status bar.
func (s Snapshot) Left() string {
	return s.Host + " • " + s.OS
}

// Right renders the right half of the status bar. Blank weather collapses
// to just the clock.
func (s Snapshot) Right() string {
	return strings.TrimSpace(s.Weather + "   " + s.Clock)
}

// IsZero reports whether the snapshot has never been filled in.
func (s Snapshot) IsZero() bool {
	return s == Snapshot{}
}

// WeatherFetcher is the slice of the weather client the refresher needs.
type WeatherFetcher interface {
	Fetch(ctx context.Context) (string, error)
}

// Refresher produces Snapshots on a fixed cadence. Host probes run every
// tick; weather is refetched only once its own longer interval has passed,
// so the status cadence stays snappy without hammering the weather endpoint.
type Refresher struct {
	prober          *sysinfo.Prober
	weather         WeatherFetcher // nil disables weather entirely
	interval        time.Duration
	weatherInterval time.Duration
	stopCh          chan struct{}
	msgCh           chan Snapshot

	lastWeather   string
	lastWeatherAt time.Time
}

// New creates a Refresher. Pass a nil weather fetcher to leave the weather
// field blank.
func New(prober *sysinfo.Prober, weather WeatherFetcher, interval, weatherInterval time.Duration) *Refresher {
	return &Refresher{
		prober:          prober,
		weather:         weather,
		interval:        interval,
		weatherInterval: weatherInterval,
		stopCh:          make(chan struct{}),
		msgCh:           make(chan Snapshot, 10), // buffered to prevent blocking
	}
}

// Start begins background refreshing. Returns a channel that receives
// snapshots for the TUI. The channel will be closed when Stop is called.
func (r *Refresher) Start() <-chan Snapshot {
	go r.run()
	return r.msgCh
}

// Stop stops the background refresh and closes the snapshot channel.
func (r *Refresher) Stop() {
	close(r.stopCh)
}

// SnapshotOnce assembles a single snapshot synchronously. Used for the
// first paint and in tests.
func (r *Refresher) SnapshotOnce() Snapshot {
	return r.snapshot(time.Now())
}

// run is the main background refresh loop.
func (r *Refresher) run() {
	defer close(r.msgCh)

	// First snapshot right away so the bar is populated on startup.
	r.send(r.snapshot(time.Now()))

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-r.stopCh:
			return
		case now := <-ticker.C:
			slog.Debug("status tick", "component", "status", "interval", r.interval)
			r.send(r.snapshot(now))
		}
	}
}

// send delivers a snapshot unless the refresher is stopping.
func (r *Refresher) send(s Snapshot) {
	select {
	case r.msgCh <- s:
	case <-r.stopCh:
	}
}

// snapshot assembles the current status, refetching weather only when the
// last fetch is stale. A failed fetch blanks the field and stays stale, so
// the next tick retries instead of waiting out the whole weather interval.
func (r *Refresher) snapshot(now time.Time) Snapshot {
	if r.weather != nil && now.Sub(r.lastWeatherAt) >= r.weatherInterval {
		w, err := r.weather.Fetch(context.Background())
		if err != nil {
			slog.Debug("weather fetch failed", "component", "status", "error", err)
			r.lastWeather = ""
		} else {
			r.lastWeather = w
			r.lastWeatherAt = now
		}
	}

	return Snapshot{
		Host:    r.prober.Hostname(),
		OS:      r.prober.OSVersion(),
		Weather: r.lastWeather,
		Clock:   now.Format("15:04"),
	}
}
