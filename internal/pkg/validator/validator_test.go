package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2026-10-15"); !ok {
		t.Errorf("IsValidDate(2026-10-15) = false, want true")
	}
	for _, s := range []string{"15.10.2026", "2026-13-01", ""} {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidClock(t *testing.T) {
	valid := []string{"10:00", "09:30", "23:59", " 08:15 "}
	invalid := []string{"24:00", "10", "10:60", "ten", ""}
	for _, s := range valid {
		if _, ok := IsValidClock(s); !ok {
			t.Errorf("IsValidClock(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if _, ok := IsValidClock(s); ok {
			t.Errorf("IsValidClock(%q) = true, want false", s)
		}
	}
}

func TestCoordinates(t *testing.T) {
	if !IsValidLatitude(57.13) || IsValidLatitude(90.1) || IsValidLatitude(-91) {
		t.Error("IsValidLatitude bounds are wrong")
	}
	if !IsValidLongitude(-180) || IsValidLongitude(180.5) {
		t.Error("IsValidLongitude bounds are wrong")
	}
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "name", Message: "name is required"},
		{Field: "action", Message: "action must be one of: arrive, leave"},
	}
	if got := errs.Error(); got != "name: name is required; action: action must be one of: arrive, leave" {
		t.Errorf("Error() = %q", got)
	}
	if m := errs.ToMap(); len(m) != 2 || m["name"] != "name is required" {
		t.Errorf("ToMap() = %v", m)
	}
}

func TestIsInSlice(t *testing.T) {
	if !IsInSlice("arrive", []string{"arrive", "leave"}) {
		t.Error("IsInSlice(arrive) = false, want true")
	}
	if IsInSlice("stay", []string{"arrive", "leave"}) {
		t.Error("IsInSlice(stay) = true, want false")
	}
}
