package services

import (
	"time"

	"github.com/diteix/hotel-cancun/models"
)

const (
	msgRangeOrder          = "Start date of reservation can't later than the end date."
	msgMaxStay             = "Reservation can't be longer than 3 days."
	msgAdvanceWindow       = "Can't be reserved more than 30 days in advance."
	msgLeadTime            = "All reservations start at least the next day of booking."
	msgOverlap             = "Room already reserverd in the requested dates."
	msgRoomNotFound        = "Room not found"
	msgClientNotFound      = "Client not found"
	msgReservationNotFound = "Reservation not found"
)

const (
	maxStayDays    = 3
	maxAdvanceDays = 30
)

// ValidateReservation checks a candidate reservation against the existing
// reservations and the booking rules. Rules run in priority order and the
// first failing rule wins; a rejection echoes the candidate back as Value.
// All comparisons are calendar-date based.
//
// When existing belongs to the reservation being modified, the caller must
// remove that reservation from the slice before calling; the candidate is
// never excluded here.
func ValidateReservation(existing []models.Reservation, candidate models.Reservation, now time.Time) models.Validation[models.Reservation] {
	from := dateOnly(candidate.From)
	to := dateOnly(candidate.To)
	today := dateOnly(now)

	if to.Before(from) {
		return models.InvalidValue(candidate, msgRangeOrder)
	}

	if to.Sub(from) > maxStayDays*24*time.Hour {
		return models.InvalidValue(candidate, msgMaxStay)
	}

	if from.After(today.AddDate(0, 0, maxAdvanceDays)) {
		return models.InvalidValue(candidate, msgAdvanceWindow)
	}

	if !from.After(today) {
		return models.InvalidValue(candidate, msgLeadTime)
	}

	for _, reservation := range existing {
		if betweenInclusive(from, reservation.From, reservation.To) ||
			betweenInclusive(to, reservation.From, reservation.To) {
			return models.InvalidValue(candidate, msgOverlap)
		}
	}

	return models.Valid[models.Reservation]()
}

// betweenInclusive reports whether day falls within [start, end], boundaries
// included on both ends.
func betweenInclusive(day, start, end time.Time) bool {
	start = dateOnly(start)
	end = dateOnly(end)
	return !day.Before(start) && !day.After(end)
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
