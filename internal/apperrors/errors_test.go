package apperrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindClassification(t *testing.T) {
	if !IsValidation(Validation("bad input")) {
		t.Error("Validation not classified")
	}
	if !IsNotFound(NotFound("vehicle")) {
		t.Error("NotFound not classified")
	}
	if !IsUpload(Upload("upload failed", nil)) {
		t.Error("Upload not classified")
	}
	if !IsDuplicate(DuplicateKey("duplicate vin", nil)) {
		t.Error("DuplicateKey not classified")
	}
	if KindOf(Persistence("db down", nil)) != KindPersistence {
		t.Error("Persistence not classified")
	}
	if KindOf(errors.New("plain")) != "" {
		t.Error("foreign errors must have no kind")
	}
}

func TestNotFoundMessage(t *testing.T) {
	if got := NotFound("vehicle").Error(); got != "vehicle not found" {
		t.Errorf("got %q", got)
	}
}

func TestDuplicateIsStillPersistence(t *testing.T) {
	err := DuplicateKey("duplicate email", nil)
	if err.Kind != KindPersistence {
		t.Errorf("kind %q, want persistence", err.Kind)
	}
	if !err.Duplicate {
		t.Error("duplicate flag not set")
	}
}

func TestWrappedCauseSurvives(t *testing.T) {
	cause := errors.New("connection refused")
	err := Persistence("insert failed", cause)

	if !errors.Is(err, cause) {
		t.Error("cause not reachable through Unwrap")
	}
	if err.Error() != "insert failed: connection refused" {
		t.Errorf("got %q", err.Error())
	}
}

func TestClassificationThroughWrapping(t *testing.T) {
	err := fmt.Errorf("handler: %w", NotFound("customer"))
	if !IsNotFound(err) {
		t.Error("classification must survive fmt.Errorf wrapping")
	}
}
