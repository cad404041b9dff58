package model

// EventType discriminates the origin of a timeline event.
type EventType string

const (
	EventOrder       EventType = "order"
	EventReservation EventType = "reservation"
)

// TimelineEvent is a derived, renderable unit representing either an order
// or a reservation, positioned in window-relative minutes. It is never
// persisted; the layout engine recomputes events on every selection change.
type TimelineEvent struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	Status    string    `json:"status"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`

	// Reservation-only details.
	Name        string `json:"name_for_reservation,omitempty"`
	NumPeople   int    `json:"num_people,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`

	// Window-relative placement.
	StartMin int `json:"start_min"`
	EndMin   int `json:"end_min"`

	// RowIndex is the non-overlapping lane within the table; RowIndex is
	// always less than RowCount, the total lanes the table needs.
	RowIndex int `json:"row_index"`
	RowCount int `json:"row_count"`

	// OffsetIndex orders true coincident duplicates sharing a row.
	OffsetIndex int `json:"offset_index"`

	// CoverFromMin marks where visible coverage begins for events clipped
	// at the window start. CoverRatio is the fraction of the event's raw
	// duration that falls inside the operating window, in [0, 1].
	CoverFromMin int     `json:"cover_from_min,omitempty"`
	CoverRatio   float64 `json:"cover_ratio"`
}

// Overlaps reports whether two events' [StartMin, EndMin) intervals
// intersect.
func (e *TimelineEvent) Overlaps(other *TimelineEvent) bool {
	return e.StartMin < other.EndMin && other.StartMin < e.EndMin
}
