// Package store holds the view state of the booking timeline: the loaded
// snapshot, the selected day and zones, and derived read-only views. All
// derivation is pure and recomputed on demand; nothing is cached
// destructively.
package store

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"floorline/internal/filter"
	"floorline/internal/layout"
	"floorline/internal/metrics"
	"floorline/internal/model"
	"floorline/internal/provider"
	"floorline/internal/timeutil"
)

// Store is the view state controller. A single instance owns the selection
// state; derived getters degrade to empty values while no data is loaded.
type Store struct {
	provider provider.Provider
	logger   zerolog.Logger
	locale   timeutil.Locale

	mu            sync.RWMutex
	data          *model.BookingSnapshot
	loading       bool
	loadErr       error
	selectedDay   string
	selectedZones []string
}

// New creates a store reading snapshots from p.
func New(p provider.Provider, logger zerolog.Logger) *Store {
	return &Store{
		provider: p,
		logger:   logger,
		locale:   timeutil.LocaleEN,
	}
}

// SetLocale sets the weekday-name locale used by DayLabel.
func (s *Store) SetLocale(locale timeutil.Locale) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.locale = locale
}

// Load fetches a fresh snapshot and resets the selection to the server's
// current day and all zones. A fetch failure is logged and leaves the store
// in an empty ready state; the error is also retained (see Err) and
// returned so hosts can surface it instead of silently rendering nothing.
// Overlapping loads are not serialized: the last response wins.
func (s *Store) Load(ctx context.Context) error {
	loadID := uuid.NewString()

	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	snap, err := s.provider.FetchSnapshot(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	s.loadErr = err

	if err != nil {
		s.logger.Error().Err(err).Str("load_id", loadID).Msg("snapshot load failed")
		metrics.IncSnapshotLoad("error")
		s.data = nil
		s.selectedDay = ""
		s.selectedZones = nil
		return err
	}

	s.data = snap
	s.selectedDay = snap.CurrentDay
	s.selectedZones = filter.Zones(snap)
	metrics.IncSnapshotLoad("success")
	s.logger.Info().
		Str("load_id", loadID).
		Str("current_day", snap.CurrentDay).
		Int("tables", len(snap.Tables)).
		Msg("snapshot loaded")
	return nil
}

// Loading reports whether a load is in flight.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Err returns the error of the most recent load, nil after a success.
func (s *Store) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadErr
}

// Snapshot returns the loaded snapshot, nil when none is loaded.
func (s *Store) Snapshot() *model.BookingSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data
}

// SetDay selects a day. A no-op in effect before data is loaded, since all
// derived getters return empty collections then anyway.
func (s *Store) SetDay(day string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedDay = day
}

// ToggleZone adds the zone to the selection, or removes it when present.
func (s *Store) ToggleZone(zone string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, z := range s.selectedZones {
		if z == zone {
			s.selectedZones = append(s.selectedZones[:i], s.selectedZones[i+1:]...)
			return
		}
	}
	s.selectedZones = append(s.selectedZones, zone)
}

// SelectedDay returns the currently selected day.
func (s *Store) SelectedDay() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selectedDay
}

// SelectedZones returns a copy of the currently selected zones.
func (s *Store) SelectedZones() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.selectedZones...)
}

// AvailableDays returns the days the snapshot has data for.
func (s *Store) AvailableDays() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.data == nil {
		return nil
	}
	return append([]string(nil), s.data.AvailableDays...)
}

// AllZones returns the distinct zones present in the snapshot.
func (s *Store) AllZones() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return filter.Zones(s.data)
}

// FilteredTables returns the tables narrowed to the selected day and zones.
func (s *Store) FilteredTables() []model.Table {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return filter.Tables(s.data, s.selectedDay, s.selectedZones)
}

// OpenMinutes returns the opening time in minutes since midnight.
func (s *Store) OpenMinutes() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.data == nil {
		return 0
	}
	return timeutil.ClockToMinutesOrZero(s.data.Restaurant.OpeningTime)
}

// CloseMinutes returns the closing time in minutes since midnight.
func (s *Store) CloseMinutes() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.data == nil {
		return 0
	}
	return timeutil.ClockToMinutesOrZero(s.data.Restaurant.ClosingTime)
}

// TotalMinutes returns the length of the operating window, circular-safe
// for windows crossing midnight.
func (s *Store) TotalMinutes() int {
	return timeutil.WindowDuration(s.OpenMinutes(), s.CloseMinutes())
}

// DayLabel labels a day relative to the snapshot's current day: "today",
// "tomorrow" or the weekday name in the store's locale.
func (s *Store) DayLabel(day string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.data == nil {
		return ""
	}
	return timeutil.ClassifyDayIn(day, s.data.CurrentDay, s.locale)
}

// Timeline lays out one (already filtered) table's events inside the
// restaurant's operating window.
func (s *Store) Timeline(t model.Table) []model.TimelineEvent {
	events := layout.Table(t, s.OpenMinutes(), s.CloseMinutes())
	orders := 0
	for _, ev := range events {
		if ev.Type == model.EventOrder {
			orders++
		}
	}
	metrics.AddTimelineEvents(string(model.EventOrder), orders)
	metrics.AddTimelineEvents(string(model.EventReservation), len(events)-orders)
	return events
}
