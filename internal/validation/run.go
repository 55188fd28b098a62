package validation

import (
	"strings"
	"time"

	"runtracker/internal/models"
)

const (
	minDescriptionLength = 10

	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

var distanceUnits = map[string]struct{}{
	models.UnitMiles:      {},
	models.UnitKilometers: {},
	models.UnitMeters:     {},
	models.UnitYards:      {},
}

var runTypes = map[string]struct{}{
	models.RunTypeRace:    {},
	models.RunTypeWorkout: {},
}

var privacyLevels = map[string]struct{}{
	models.PrivacyPublic:  {},
	models.PrivacyFriends: {},
	models.PrivacyPrivate: {},
}

// ValidateRun checks every field of a run post before it reaches the store.
// The duration-total and not-in-future rules were client-side only in earlier
// revisions of the app; they are enforced here at the boundary.
func ValidateRun(p *models.Post, now time.Time) error {
	if strings.TrimSpace(p.Title) == "" {
		return models.NewFieldValidationError("title", "title is required")
	}
	if p.DistanceValue <= 0 {
		return models.NewFieldValidationError("distanceValue", "distanceValue must be a positive number")
	}
	if _, ok := distanceUnits[p.DistanceUnit]; !ok {
		return models.NewFieldValidationError("distanceUnit", "distanceUnit must be one of mi, km, m, yd")
	}
	if p.DurationHours < 0 || p.DurationMinutes < 0 || p.DurationSeconds < 0 {
		return models.NewFieldValidationError("duration", "duration components must not be negative")
	}
	if p.DurationHours+p.DurationMinutes+p.DurationSeconds == 0 {
		return models.NewFieldValidationError("duration", "total duration must be greater than zero")
	}
	if p.DurationMinutes > 59 {
		return models.NewFieldValidationError("durationMinutes", "durationMinutes must be at most 59")
	}
	if p.DurationSeconds > 59 {
		return models.NewFieldValidationError("durationSeconds", "durationSeconds must be at most 59")
	}
	if _, ok := runTypes[p.RunType]; !ok {
		return models.NewFieldValidationError("runType", "runType must be either race or workout")
	}

	date, err := time.Parse(dateLayout, p.Date)
	if err != nil {
		return models.NewFieldValidationError("date", "date must be formatted as YYYY-MM-DD")
	}
	clock, err := time.Parse(timeLayout, p.Time)
	if err != nil {
		return models.NewFieldValidationError("time", "time must be formatted as HH:mm (24h)")
	}

	ran := time.Date(date.Year(), date.Month(), date.Day(),
		clock.Hour(), clock.Minute(), 0, 0, now.Location())
	if ran.After(now) {
		return models.NewFieldValidationError("date", "run date and time must not be in the future")
	}

	if len(strings.TrimSpace(p.Description)) < minDescriptionLength {
		return models.NewFieldValidationError("description", "description must be at least 10 characters")
	}
	if p.Privacy != "" {
		if _, ok := privacyLevels[p.Privacy]; !ok {
			return models.NewFieldValidationError("privacy", "privacy must be one of public, friends, private")
		}
	}

	return nil
}
