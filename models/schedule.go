package models

import "time"

// WeekDay is one column of the calendar week view.
type WeekDay struct {
	Date         string            `json:"date"`
	Weekday      string            `json:"weekday"`
	Appointments []PlacedBooking   `json:"appointments"`
	Absences     []Absence         `json:"absences"`
	LunchBreak   *LunchBreakWindow `json:"lunchBreak,omitempty"`
	Working      bool              `json:"working"`
}

// PlacedBooking is an appointment with its pixel position on the grid.
type PlacedBooking struct {
	Appointment
	OffsetPx int `json:"offsetPx"`
	HeightPx int `json:"heightPx"`
}

// LunchBreakWindow is the gap between the morning and afternoon blocks.
type LunchBreakWindow struct {
	Start    string `json:"start"`
	End      string `json:"end"`
	OffsetPx int    `json:"offsetPx"`
	HeightPx int    `json:"heightPx"`
}

// WeekView is the full payload of GET /api/schedule/week.
type WeekView struct {
	WeekStart string    `json:"weekStart"`
	Days      []WeekDay `json:"days"`
}

// Drag/drop move states.
const (
	MoveStateDragging  = "dragging"
	MoveStateDropped   = "dropped"
	MoveStateConfirmed = "confirmed"
	MoveStateCancelled = "cancelled"
)

// PendingMove is a dropped-but-unconfirmed appointment move.
type PendingMove struct {
	AppointmentID string    `bson:"appointment_id" json:"appointmentId"`
	DoctorID      string    `bson:"doctor_id" json:"doctorId"`
	FromDate      string    `bson:"from_date" json:"fromDate"`
	FromTime      string    `bson:"from_time" json:"fromTime"`
	ToDate        string    `bson:"to_date" json:"toDate"`
	ToTime        string    `bson:"to_time" json:"toTime"`
	State         string    `bson:"state" json:"state"`
	CreatedAt     time.Time `bson:"created_at" json:"createdAt"`
}

// MoveRequest carries the drop target of a drag ("drop-<dayIndex>-<HH:MM>").
type MoveRequest struct {
	Target    string `json:"target"`
	WeekStart string `json:"weekStart"`
}
