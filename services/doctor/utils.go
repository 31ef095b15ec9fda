package doctor

import (
	"fmt"
	"regexp"

	"medportal/models"
)

// VerifyPasswordComplexity checks that the password meets complexity requirements.
func VerifyPasswordComplexity(pw string) error {
	var (
		hasMinLen = len(pw) >= 8
		hasUpper  = regexp.MustCompile(`[A-Z]`).MatchString(pw)
		hasLower  = regexp.MustCompile(`[a-z]`).MatchString(pw)
		hasNumber = regexp.MustCompile(`[0-9]`).MatchString(pw)
		hasSymbol = regexp.MustCompile(`[\W_]`).MatchString(pw)
	)
	if !hasMinLen {
		return fmt.Errorf("password must be at least 8 characters long")
	}
	if !hasUpper {
		return fmt.Errorf("password must include at least one uppercase letter")
	}
	if !hasLower {
		return fmt.Errorf("password must include at least one lowercase letter")
	}
	if !hasNumber {
		return fmt.Errorf("password must include at least one number")
	}
	if !hasSymbol {
		return fmt.Errorf("password must include at least one symbol")
	}
	return nil
}

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func verifyEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return fmt.Errorf("invalid email address")
	}
	return nil
}

// defaultWorkSchedule is the Monday-to-Friday template new accounts start
// with; the doctor tunes it on the public profile page.
func defaultWorkSchedule() []models.WorkDay {
	weekdays := []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}
	schedule := make([]models.WorkDay, len(weekdays))
	for i, wd := range weekdays {
		schedule[i] = models.WorkDay{
			ID:             fmt.Sprintf("wd-%s", wd),
			Weekday:        wd,
			Kind:           models.WorkDayFull,
			MorningStart:   "09:00",
			MorningEnd:     "13:00",
			AfternoonStart: "14:00",
			AfternoonEnd:   "18:00",
			SlotMinutes:    30,
			Active:         i < 5,
		}
	}
	return schedule
}
