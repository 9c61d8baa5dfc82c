package domain

import (
	"sort"
	"time"
)

// CompanyProfile groups the company-side fields of a registration.
type CompanyProfile struct {
	NPWP         string `json:"npwp"`
	CompanyName  string `json:"companyName"`
	BusinessType string `json:"businessType"`
	Address      string `json:"address"`
	City         string `json:"city"`
	PostalCode   string `json:"postalCode"`
}

// Participant groups the attendee-side fields of a registration.
type Participant struct {
	FullName string `json:"fullName"`
	Position string `json:"position"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

// Registration is a single bimtek registration in its nested form.
//
// All fields are plain text and none are validated here: absent fields stay
// empty and pass through. Timestamp is an ISO-style date-time string used
// only for ordering; it is carried verbatim, never reformatted.
type Registration struct {
	RegistrationID string         `json:"registrationId"`
	Timestamp      string         `json:"timestamp"`
	Company        CompanyProfile `json:"company"`
	Participant    Participant    `json:"participant"`
}

// FlatRegistration is the backend's wire shape: every field at the top
// level, camelCase keys. The spreadsheet script neither knows nor cares
// about the nested grouping.
type FlatRegistration struct {
	RegistrationID string `json:"registrationId,omitempty"`
	Timestamp      string `json:"timestamp,omitempty"`
	NPWP           string `json:"npwp,omitempty"`
	CompanyName    string `json:"companyName,omitempty"`
	BusinessType   string `json:"businessType,omitempty"`
	Address        string `json:"address,omitempty"`
	City           string `json:"city,omitempty"`
	PostalCode     string `json:"postalCode,omitempty"`
	FullName       string `json:"fullName,omitempty"`
	Position       string `json:"position,omitempty"`
	Email          string `json:"email,omitempty"`
	Phone          string `json:"phone,omitempty"`
}

// Nest relocates a flat wire record into the nested Registration shape.
// Pure field-by-field projection; no derived values, no validation.
func Nest(f FlatRegistration) Registration {
	return Registration{
		RegistrationID: f.RegistrationID,
		Timestamp:      f.Timestamp,
		Company: CompanyProfile{
			NPWP:         f.NPWP,
			CompanyName:  f.CompanyName,
			BusinessType: f.BusinessType,
			Address:      f.Address,
			City:         f.City,
			PostalCode:   f.PostalCode,
		},
		Participant: Participant{
			FullName: f.FullName,
			Position: f.Position,
			Email:    f.Email,
			Phone:    f.Phone,
		},
	}
}

// Flatten is the inverse of Nest and produces the wire shape for submission.
func (r Registration) Flatten() FlatRegistration {
	return FlatRegistration{
		RegistrationID: r.RegistrationID,
		Timestamp:      r.Timestamp,
		NPWP:           r.Company.NPWP,
		CompanyName:    r.Company.CompanyName,
		BusinessType:   r.Company.BusinessType,
		Address:        r.Company.Address,
		City:           r.Company.City,
		PostalCode:     r.Company.PostalCode,
		FullName:       r.Participant.FullName,
		Position:       r.Participant.Position,
		Email:          r.Participant.Email,
		Phone:          r.Participant.Phone,
	}
}

// timestampLayouts covers RFC 3339 plus the looser forms the spreadsheet
// backend has been seen to emit.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTimestamp parses a registration timestamp. ok=false means the value
// is missing or unparseable and must be treated as "no timestamp".
func ParseTimestamp(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// SortMostRecentFirst orders registrations descending by parsed timestamp,
// in place. A pair where either side lacks a parseable timestamp compares
// equal; the sort is stable, so such records keep their relative order.
func SortMostRecentFirst(regs []Registration) {
	sort.SliceStable(regs, func(i, j int) bool {
		ti, iok := ParseTimestamp(regs[i].Timestamp)
		tj, jok := ParseTimestamp(regs[j].Timestamp)
		if !iok || !jok {
			return false
		}
		return ti.After(tj)
	})
}

// SubmitReceipt acknowledges a completed submission.
//
// The backend answers submissions in an opaque-response mode: the body is
// never interpreted, so a receipt proves the transport accepted the request,
// not that the server persisted the record.
type SubmitReceipt struct {
	SubmittedAt time.Time
	StatusCode  int
}
