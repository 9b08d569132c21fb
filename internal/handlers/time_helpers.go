package handlers

import (
	"time"

	"github.com/NomadRelief/stall-scheduler/internal/models"
	"github.com/NomadRelief/stall-scheduler/internal/timezone"
)

// --------------------------------------------------
// Per-company timezone helpers
// --------------------------------------------------

func locationFromCompany(company *models.Company) *time.Location {
	if company != nil {
		return timezone.Location(company.Timezone)
	}
	return timezone.Location("")
}

func nowInCompany(company *models.Company) time.Time {
	return time.Now().In(locationFromCompany(company))
}

func parseDateInCompany(company *models.Company, dateStr string) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02",
		dateStr,
		locationFromCompany(company),
	)
}

func parseDateTimeInCompany(
	company *models.Company,
	dateStr string,
	timeStr string,
) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02 15:04",
		dateStr+" "+timeStr,
		locationFromCompany(company),
	)
}
