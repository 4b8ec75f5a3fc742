package domain

import "time"

// CollectionAuthorizedUsers is the name of the collection holding one
// document per authorized email.
const CollectionAuthorizedUsers = "authorizedUsers"

// ExpirationDateLayout is the date-only ISO layout expiration dates are
// stored in.
const ExpirationDateLayout = "2006-01-02"

type Status string

const (
	StatusActive  Status = "active"
	StatusExpired Status = "expired"
)

type AuthorizedUserRecord struct {
	Email          string    `json:"email"`
	ExpirationDate string    `json:"expirationDate"`
	Authorized     bool      `json:"authorized"`
	CreatedAt      time.Time `json:"createdAt"`
}

type AuthorizedUserView struct {
	AuthorizedUserRecord
	Status Status `json:"status"`
}

// FormatExpirationDate drops the time of day and keeps the UTC calendar
// date of t. Two instants on the same UTC day format identically.
func FormatExpirationDate(t time.Time) string {
	return t.UTC().Format(ExpirationDateLayout)
}

// DeriveStatus reports whether a grant expiring on expirationDate is still
// active at now. A grant stays active through its expiration day.
// Dates that cannot be parsed are treated as expired.
func DeriveStatus(expirationDate string, now time.Time) Status {
	expires, err := time.Parse(ExpirationDateLayout, expirationDate)
	if err != nil {
		return StatusExpired
	}

	today, _ := time.Parse(ExpirationDateLayout, FormatExpirationDate(now))
	if expires.Before(today) {
		return StatusExpired
	}
	return StatusActive
}

// NewView computes the read-time status of a stored record.
func NewView(record AuthorizedUserRecord, now time.Time) AuthorizedUserView {
	return AuthorizedUserView{
		AuthorizedUserRecord: record,
		Status:               DeriveStatus(record.ExpirationDate, now),
	}
}
