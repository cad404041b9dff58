// Package layout converts a table's orders and reservations into
// positioned timeline events: window-relative minute intervals packed into
// non-overlapping rows for a horizontal schedule grid.
//
// All arithmetic happens in window-relative coordinates, (minuteOfDay -
// openMin + 1440) mod 1440, so an operating window that crosses midnight
// keeps its events contiguous.
package layout

import (
	"sort"
	"strconv"

	"floorline/internal/model"
	"floorline/internal/timeutil"
)

const minutesPerDay = 24 * 60

// Table lays out one table's events inside the operating window given by
// openMin/closeMin (minutes since midnight, close may be before open).
// Events entirely outside the window are dropped; events clipped by the
// window carry a CoverRatio below 1. The result is sorted by start minute
// and every event carries the table's final row count.
func Table(t model.Table, openMin, closeMin int) []model.TimelineEvent {
	duration := timeutil.WindowDuration(openMin, closeMin)

	var events []model.TimelineEvent
	for _, o := range t.Orders {
		ev, ok := place(model.TimelineEvent{
			ID:        o.ID,
			Type:      model.EventOrder,
			Status:    string(o.Status),
			StartTime: o.StartTime,
			EndTime:   o.EndTime,
		}, openMin, duration)
		if ok {
			events = append(events, ev)
		}
	}
	for _, r := range t.Reservations {
		ev, ok := place(model.TimelineEvent{
			ID:          strconv.FormatInt(r.ID, 10),
			Type:        model.EventReservation,
			Status:      string(r.Status),
			StartTime:   r.SeatingTime,
			EndTime:     r.EndTime,
			Name:        r.Name,
			NumPeople:   r.NumPeople,
			PhoneNumber: r.PhoneNumber,
		}, openMin, duration)
		if ok {
			events = append(events, ev)
		}
	}

	if len(events) == 0 {
		return nil
	}

	sort.Slice(events, func(i, j int) bool {
		if events[i].StartMin != events[j].StartMin {
			return events[i].StartMin < events[j].StartMin
		}
		if events[i].EndMin != events[j].EndMin {
			return events[i].EndMin < events[j].EndMin
		}
		return events[i].ID < events[j].ID
	})

	packRows(events)
	return events
}

// place normalizes an event into window-relative minutes, clamps it to
// [0, duration) and computes its cover ratio. It reports false for events
// that end up entirely outside the window or carry unparseable instants.
func place(ev model.TimelineEvent, openMin, duration int) (model.TimelineEvent, bool) {
	startOfDay, err := timeutil.InstantMinuteOfDay(ev.StartTime)
	if err != nil {
		return ev, false
	}
	endOfDay, err := timeutil.InstantMinuteOfDay(ev.EndTime)
	if err != nil {
		return ev, false
	}

	s := mod(startOfDay - openMin)
	e := mod(endOfDay - openMin)

	if s == e {
		// Zero-duration event: representable as a point marker when it
		// falls inside the window, ratio 1.0 by convention.
		if s >= duration {
			return ev, false
		}
		ev.StartMin = s
		ev.EndMin = s
		ev.CoverRatio = 1.0
		return ev, true
	}

	if e > s {
		// No boundary crossing; clip the tail at the window's end.
		if s >= duration {
			return ev, false
		}
		raw := e - s
		end := min(e, duration)
		ev.StartMin = s
		ev.EndMin = end
		ev.CoverRatio = ratio(end-s, raw)
		return ev, true
	}

	// e < s: the event wraps past the window's circular boundary.
	raw := e - s + minutesPerDay
	if s < duration {
		// Starts inside the window, runs past closing.
		ev.StartMin = s
		ev.EndMin = duration
		ev.CoverRatio = ratio(duration-s, raw)
		return ev, true
	}

	// Starts before opening; only the tail may be visible.
	end := min(e, duration)
	if end <= 0 {
		return ev, false
	}
	ev.StartMin = 0
	ev.EndMin = end
	ev.CoverFromMin = raw - end
	ev.CoverRatio = ratio(end, raw)
	return ev, true
}

// packRows assigns events to rows with greedy first-fit interval coloring:
// each event takes the first row whose last event ended at or before the
// event's start, opening a new row otherwise. Given the (start, end, id)
// sort this uses the minimum number of rows and is deterministic. Coincident
// duplicates landing on the same row get ascending offset indices.
func packRows(events []model.TimelineEvent) {
	var rowEnds []int
	type slot struct {
		row, start, end int
	}
	dupes := make(map[slot]int)

	for i := range events {
		ev := &events[i]

		row := -1
		for r, end := range rowEnds {
			if end <= ev.StartMin {
				row = r
				break
			}
		}
		if row == -1 {
			row = len(rowEnds)
			rowEnds = append(rowEnds, 0)
		}
		rowEnds[row] = ev.EndMin
		ev.RowIndex = row

		key := slot{row, ev.StartMin, ev.EndMin}
		ev.OffsetIndex = dupes[key]
		dupes[key]++
	}

	for i := range events {
		events[i].RowCount = len(rowEnds)
	}
}

func ratio(clamped, raw int) float64 {
	if raw <= 0 {
		return 1.0
	}
	return float64(clamped) / float64(raw)
}

func mod(m int) int {
	return ((m % minutesPerDay) + minutesPerDay) % minutesPerDay
}
