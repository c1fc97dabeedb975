package utils

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if hash == "secret123" {
		t.Error("hash equals plaintext")
	}
	if !CheckPasswordHash("secret123", hash) {
		t.Error("correct password rejected")
	}
	if CheckPasswordHash("wrong-password", hash) {
		t.Error("wrong password accepted")
	}
}

func TestValidateCnicNumber(t *testing.T) {
	valid := []string{
		"12345-1234567-1",
		"00000-0000000-0",
	}
	for _, cnic := range valid {
		if !ValidateCnicNumber(cnic) {
			t.Errorf("%s should be valid", cnic)
		}
	}

	invalid := []string{
		"",
		"1234512345671",
		"12345-123456-1",
		"12345-1234567-12",
		"abcde-1234567-1",
		"12345 1234567 1",
	}
	for _, cnic := range invalid {
		if ValidateCnicNumber(cnic) {
			t.Errorf("%s should be invalid", cnic)
		}
	}
}

func TestLocationValid(t *testing.T) {
	if !LocationValid(true, "") {
		t.Error("remote swap should not need a location")
	}
	if !LocationValid(false, "Lahore") {
		t.Error("in-person swap with location should be valid")
	}
	if LocationValid(false, "") {
		t.Error("in-person swap without location should be invalid")
	}
	if LocationValid(false, "   ") {
		t.Error("whitespace-only location should be invalid")
	}
}

func TestRequestLocation(t *testing.T) {
	if got := RequestLocation(true, "Karachi"); got != "" {
		t.Errorf("remote request stored location %q, want empty", got)
	}
	if got := RequestLocation(false, "Karachi"); got != "Karachi" {
		t.Errorf("in-person request stored %q, want Karachi", got)
	}
	if got := RequestLocation(false, "  Lahore  "); got != "Lahore" {
		t.Errorf("expected trimmed location, got %q", got)
	}
}
