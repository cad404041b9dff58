// Package filter narrows a booking snapshot to the currently selected day
// and zones. Filtering is non-destructive: it builds new tables and slices
// and never touches the snapshot.
package filter

import (
	"floorline/internal/model"
	"floorline/internal/timeutil"
)

// Tables returns the tables relevant to the selected day and zones.
//
// An empty zone selection means no zone filter: every zone passes. An empty
// selectedDay passes all orders and reservations through unfiltered;
// otherwise each table keeps only the orders and reservations whose
// calendar date (in the instant's own offset) equals selectedDay. A nil
// snapshot yields an empty result.
func Tables(snap *model.BookingSnapshot, selectedDay string, selectedZones []string) []model.Table {
	if snap == nil {
		return nil
	}

	zones := make(map[string]struct{}, len(selectedZones))
	for _, z := range selectedZones {
		zones[z] = struct{}{}
	}

	var out []model.Table
	for _, t := range snap.Tables {
		if len(zones) > 0 {
			if _, ok := zones[t.Zone]; !ok {
				continue
			}
		}
		out = append(out, filterTable(t, selectedDay))
	}
	return out
}

func filterTable(t model.Table, day string) model.Table {
	ft := t
	if day == "" {
		// Copy the slices anyway so callers can never reach the
		// snapshot's backing arrays through a derived table.
		ft.Orders = append([]model.Order(nil), t.Orders...)
		ft.Reservations = append([]model.Reservation(nil), t.Reservations...)
		return ft
	}

	ft.Orders = nil
	for _, o := range t.Orders {
		if date, err := timeutil.InstantDate(o.StartTime); err == nil && date == day {
			ft.Orders = append(ft.Orders, o)
		}
	}

	ft.Reservations = nil
	for _, r := range t.Reservations {
		if date, err := timeutil.InstantDate(r.SeatingTime); err == nil && date == day {
			ft.Reservations = append(ft.Reservations, r)
		}
	}
	return ft
}

// Zones returns the distinct zones present in the snapshot, in first
// appearance order.
func Zones(snap *model.BookingSnapshot) []string {
	if snap == nil {
		return nil
	}

	seen := make(map[string]struct{})
	var zones []string
	for _, t := range snap.Tables {
		if _, ok := seen[t.Zone]; ok {
			continue
		}
		seen[t.Zone] = struct{}{}
		zones = append(zones, t.Zone)
	}
	return zones
}
