package utils

import "testing"

func TestIsValidVIN(t *testing.T) {
	valid := []string{
		"WBSJF0C59KB448844",
		"wp0ab2a72jk000001", // case-insensitive
		"12345678901",       // 11 chars, lower bound
	}
	for _, vin := range valid {
		if !IsValidVIN(vin) {
			t.Errorf("%q should be valid", vin)
		}
	}

	invalid := []string{
		"",
		"SHORT",
		"WBSJF0C59KB448844X1", // 19 chars
		"WBSJF0C59KB44884I",   // contains I
		"WBSJF0C59KB4488 4",
	}
	for _, vin := range invalid {
		if IsValidVIN(vin) {
			t.Errorf("%q should be invalid", vin)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	if !IsValidEmail("jane.doe@example.com") {
		t.Error("expected valid email")
	}
	for _, email := range []string{"", "plain", "missing@tld", "@example.com"} {
		if IsValidEmail(email) {
			t.Errorf("%q should be invalid", email)
		}
	}
}

func TestIsValidPhone(t *testing.T) {
	if !IsValidPhone("+1 555 010 9000") {
		t.Error("expected valid phone")
	}
	if IsValidPhone("call me") {
		t.Error("expected invalid phone")
	}
}
