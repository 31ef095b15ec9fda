package models

import "time"

// Doctor is a portal account plus its public-facing profile.
type Doctor struct {
	ID           string `bson:"id" json:"id"`
	Email        string `bson:"email" json:"email"`
	PasswordHash string `bson:"password_hash" json:"-"`
	TokenHash    string `bson:"token_hash,omitempty" json:"-"`

	Account AccountData   `bson:"account" json:"account"`
	Profile PublicProfile `bson:"profile" json:"profile"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// AccountData holds the personal, professional and contact data of the
// account page. Email lives on the Doctor root and is immutable here.
type AccountData struct {
	Name        string `bson:"name" json:"name"`
	Surname     string `bson:"surname" json:"surname"`
	Gender      string `bson:"gender,omitempty" json:"gender,omitempty"`
	Nationality string `bson:"nationality,omitempty" json:"nationality,omitempty"`
	BirthDate   string `bson:"birth_date,omitempty" json:"birthDate,omitempty"`
	IDDocType   string `bson:"id_doc_type,omitempty" json:"idDocType,omitempty"`
	IDDocNumber string `bson:"id_doc_number,omitempty" json:"idDocNumber,omitempty"`
	NIF         string `bson:"nif,omitempty" json:"nif,omitempty"`

	Specialty     string `bson:"specialty,omitempty" json:"specialty,omitempty"`
	LicenseNumber string `bson:"license_number,omitempty" json:"licenseNumber,omitempty"`
	LicenseBody   string `bson:"license_body,omitempty" json:"licenseBody,omitempty"`

	PhoneCountry string `bson:"phone_country,omitempty" json:"phoneCountry,omitempty"`
	PhoneNumber  string `bson:"phone_number,omitempty" json:"phoneNumber,omitempty"`
	Address      string `bson:"address,omitempty" json:"address,omitempty"`
}

// PublicProfile is the doctor's public page content.
type PublicProfile struct {
	PhotoURL       string             `bson:"photo_url,omitempty" json:"photoUrl,omitempty"`
	PhotoStorageID string             `bson:"photo_storage_id,omitempty" json:"-"`
	Biography      string             `bson:"biography,omitempty" json:"biography,omitempty"`
	Languages      []string           `bson:"languages,omitempty" json:"languages"`
	Education      []EducationEntry   `bson:"education,omitempty" json:"education"`
	Experience     []ExperienceEntry  `bson:"experience,omitempty" json:"experience"`
	Phones         []string           `bson:"phones,omitempty" json:"phones"`
	Offices        []Office           `bson:"offices,omitempty" json:"offices"`
	Insurances     []string           `bson:"insurances,omitempty" json:"insurances"`
	ConsultTypes   []ConsultationType `bson:"consult_types,omitempty" json:"consultTypes"`
	FAQs           []FAQ              `bson:"faqs,omitempty" json:"faqs"`
	WorkSchedule   []WorkDay          `bson:"work_schedule,omitempty" json:"workSchedule"`
	SchedulePublic bool               `bson:"schedule_public" json:"schedulePublic"`
}

type EducationEntry struct {
	ID          string `bson:"id" json:"id"`
	Institution string `bson:"institution" json:"institution"`
	Course      string `bson:"course" json:"course"`
	Year        string `bson:"year" json:"year"`
}

type ExperienceEntry struct {
	ID      string `bson:"id" json:"id"`
	Company string `bson:"company" json:"company"`
	Role    string `bson:"role" json:"role"`
	Period  string `bson:"period" json:"period"`
}

type Office struct {
	ID         string `bson:"id" json:"id"`
	Name       string `bson:"name" json:"name"`
	Address    string `bson:"address" json:"address"`
	Directions string `bson:"directions,omitempty" json:"directions,omitempty"`
}

type ConsultationType struct {
	ID    string `bson:"id" json:"id"`
	Type  string `bson:"type" json:"type"`
	Price string `bson:"price" json:"price"`
}

type FAQ struct {
	ID       string `bson:"id" json:"id"`
	Question string `bson:"question" json:"question"`
	Answer   string `bson:"answer" json:"answer"`
}

// Work day kinds for the weekly schedule.
const (
	WorkDayFull      = "full-day"
	WorkDayMorning   = "morning-only"
	WorkDayAfternoon = "afternoon-only"
)

// SlotDurations are the accepted consultation slot lengths in minutes.
var SlotDurations = []int{15, 20, 30, 45, 60}

// WorkDay describes one weekday of the doctor's working hours. Times are
// "15:04". On an active full day the gap between MorningEnd and
// AfternoonStart is the lunch break shown on the calendar grid.
type WorkDay struct {
	ID             string `bson:"id" json:"id"`
	Weekday        string `bson:"weekday" json:"weekday"`
	Kind           string `bson:"kind" json:"kind"`
	MorningStart   string `bson:"morning_start,omitempty" json:"morningStart,omitempty"`
	MorningEnd     string `bson:"morning_end,omitempty" json:"morningEnd,omitempty"`
	AfternoonStart string `bson:"afternoon_start,omitempty" json:"afternoonStart,omitempty"`
	AfternoonEnd   string `bson:"afternoon_end,omitempty" json:"afternoonEnd,omitempty"`
	SlotMinutes    int    `bson:"slot_minutes" json:"slotMinutes"`
	Active         bool   `bson:"active" json:"active"`
}

// UpdatePasswordRequest changes the account password.
type UpdatePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}
