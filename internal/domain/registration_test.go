package domain

import (
	"testing"
	"time"
)

func TestNestRelocatesEveryField(t *testing.T) {
	flat := FlatRegistration{
		RegistrationID: "REG-007",
		Timestamp:      "2024-01-01T00:00:00Z",
		NPWP:           "123",
		CompanyName:    "Acme",
		BusinessType:   "Konstruksi",
		Address:        "Jl. Merdeka 1",
		City:           "Bandung",
		PostalCode:     "40111",
		FullName:       "Jane",
		Position:       "Direktur",
		Email:          "jane@acme.test",
		Phone:          "0812000111",
	}

	got := Nest(flat)

	if got.RegistrationID != "REG-007" || got.Timestamp != "2024-01-01T00:00:00Z" {
		t.Errorf("identity fields not carried: %+v", got)
	}
	if got.Company.NPWP != "123" || got.Company.CompanyName != "Acme" {
		t.Errorf("company fields not relocated: %+v", got.Company)
	}
	if got.Company.BusinessType != "Konstruksi" || got.Company.Address != "Jl. Merdeka 1" ||
		got.Company.City != "Bandung" || got.Company.PostalCode != "40111" {
		t.Errorf("company fields not relocated: %+v", got.Company)
	}
	if got.Participant.FullName != "Jane" || got.Participant.Position != "Direktur" ||
		got.Participant.Email != "jane@acme.test" || got.Participant.Phone != "0812000111" {
		t.Errorf("participant fields not relocated: %+v", got.Participant)
	}
}

func TestNestLeavesAbsentFieldsEmpty(t *testing.T) {
	got := Nest(FlatRegistration{NPWP: "123", CompanyName: "Acme", Timestamp: "2024-01-01T00:00:00Z", FullName: "Jane"})

	if got.Company.NPWP != "123" || got.Company.CompanyName != "Acme" || got.Participant.FullName != "Jane" {
		t.Fatalf("present fields must survive: %+v", got)
	}
	if got.Company.City != "" || got.Participant.Email != "" || got.RegistrationID != "" {
		t.Errorf("absent fields must stay empty: %+v", got)
	}
}

func TestFlattenRoundTrips(t *testing.T) {
	flat := FlatRegistration{
		RegistrationID: "REG-1",
		Timestamp:      "2024-05-05T10:00:00Z",
		NPWP:           "99",
		CompanyName:    "PT Contoh",
		FullName:       "Budi",
		Phone:          "0813",
	}

	if got := Nest(flat).Flatten(); got != flat {
		t.Errorf("Flatten(Nest(x)) = %+v, want %+v", got, flat)
	}
}

func TestParseTimestampLayouts(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"2024-01-01T00:00:00Z", true},
		{"2024-01-01T00:00:00.123Z", true},
		{"2024-01-01T07:00:00+07:00", true},
		{"2024-01-01T00:00:00", true},
		{"2024-01-01 00:00:00", true},
		{"2024-01-01", true},
		{"", false},
		{"kemarin", false},
	}
	for _, c := range cases {
		if _, ok := ParseTimestamp(c.in); ok != c.ok {
			t.Errorf("ParseTimestamp(%q) ok=%v, want %v", c.in, ok, c.ok)
		}
	}
}

func TestSortMostRecentFirst(t *testing.T) {
	regs := []Registration{
		{RegistrationID: "old", Timestamp: "2024-01-01T00:00:00Z"},
		{RegistrationID: "new", Timestamp: "2024-06-01T00:00:00Z"},
		{RegistrationID: "mid", Timestamp: "2024-03-01T00:00:00Z"},
	}

	SortMostRecentFirst(regs)

	want := []string{"new", "mid", "old"}
	for i, id := range want {
		if regs[i].RegistrationID != id {
			t.Fatalf("position %d = %q, want %q (order %+v)", i, regs[i].RegistrationID, id, regs)
		}
	}
}

func TestSortKeepsRelativeOrderForMissingTimestamps(t *testing.T) {
	regs := []Registration{
		{RegistrationID: "a"},
		{RegistrationID: "b", Timestamp: "not-a-date"},
		{RegistrationID: "c", Timestamp: "2024-01-01T00:00:00Z"},
		{RegistrationID: "d"},
	}

	SortMostRecentFirst(regs) // must not panic

	var bare []string
	for _, r := range regs {
		if _, ok := ParseTimestamp(r.Timestamp); !ok {
			bare = append(bare, r.RegistrationID)
		}
	}
	want := []string{"a", "b", "d"}
	if len(bare) != len(want) {
		t.Fatalf("expected %d undated records, got %v", len(want), bare)
	}
	for i := range want {
		if bare[i] != want[i] {
			t.Errorf("undated records reordered: got %v, want %v", bare, want)
		}
	}
}

func TestParseTimestampOrdering(t *testing.T) {
	t1, ok1 := ParseTimestamp("2024-01-01T00:00:00Z")
	t2, ok2 := ParseTimestamp("2024-01-02T00:00:00Z")
	if !ok1 || !ok2 {
		t.Fatal("expected both timestamps to parse")
	}
	if !t2.After(t1) {
		t.Errorf("expected %v after %v", t2, t1)
	}
	if t2.Sub(t1) != 24*time.Hour {
		t.Errorf("unexpected delta %v", t2.Sub(t1))
	}
}
