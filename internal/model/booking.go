package model

// OrderStatus is the lifecycle state of a dining session.
type OrderStatus string

const (
	OrderNew     OrderStatus = "New"
	OrderBill    OrderStatus = "Bill"
	OrderClosed  OrderStatus = "Closed"
	OrderBanquet OrderStatus = "Banquet"
)

// ReservationStatus is the lifecycle state of a booked-ahead slot.
type ReservationStatus string

const (
	ReservationQueue   ReservationStatus = "queue"
	ReservationNew     ReservationStatus = "new"
	ReservationRequest ReservationStatus = "request"
	ReservationOpen    ReservationStatus = "open"
	ReservationClosed  ReservationStatus = "closed"
)

// Restaurant describes the venue and its daily operating window.
// ClosingTime may be numerically earlier than OpeningTime, meaning the
// window crosses midnight.
type Restaurant struct {
	ID          int64  `json:"id"`
	Timezone    string `json:"timezone"`
	Name        string `json:"restaurant_name"`
	OpeningTime string `json:"opening_time"` // "HH:mm"
	ClosingTime string `json:"closing_time"` // "HH:mm"
}

// Order is a currently-seated or historical dining session at a table.
type Order struct {
	ID        string      `json:"id"`
	Status    OrderStatus `json:"status"`
	StartTime string      `json:"start_time"` // ISO-8601 with offset
	EndTime   string      `json:"end_time"`   // ISO-8601 with offset
}

// Reservation is a booked-ahead slot at a table.
type Reservation struct {
	ID          int64             `json:"id"`
	Name        string            `json:"name_for_reservation"`
	NumPeople   int               `json:"num_people"`
	PhoneNumber string            `json:"phone_number"`
	Status      ReservationStatus `json:"status"`
	SeatingTime string            `json:"seating_time"` // ISO-8601 with offset
	EndTime     string            `json:"end_time"`     // ISO-8601 with offset
}

// Table is a physical table in one zone of the floor plan, owning its
// orders and reservations.
type Table struct {
	ID           string        `json:"id"`
	Capacity     int           `json:"capacity"`
	Number       string        `json:"number"`
	Zone         string        `json:"zone"`
	Orders       []Order       `json:"orders"`
	Reservations []Reservation `json:"reservations"`
}

// BookingSnapshot is the top-level payload returned by the booking API.
// It is immutable once loaded; a new load fully replaces it.
type BookingSnapshot struct {
	AvailableDays []string   `json:"available_days"` // YYYY-MM-DD
	CurrentDay    string     `json:"current_day"`    // YYYY-MM-DD
	Restaurant    Restaurant `json:"restaurant"`
	Tables        []Table    `json:"tables"`
}
