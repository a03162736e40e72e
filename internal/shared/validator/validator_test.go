package validator

import (
	"testing"

	platformval "calldex_backend/platform/validator"
)

type phoneForm struct {
	PhoneNumber string `validate:"required,phonenum"`
}

type nameForm struct {
	Name string `validate:"required,personname"`
}

func newValidator(t *testing.T) *platformval.Validator {
	t.Helper()
	val := platformval.New()
	if err := Register(val); err != nil {
		t.Fatalf("register rules: %v", err)
	}
	return val
}

func TestPhoneNumberRule(t *testing.T) {
	val := newValidator(t)

	valid := []string{"5551234567", "+31612345678", "555123#4567", "*670001112223334"}
	for _, number := range valid {
		if err := val.Struct(phoneForm{PhoneNumber: number}); err != nil {
			t.Fatalf("expected %q to pass, got %v", number, err)
		}
	}

	invalid := []string{"123456", "1234567890123456", "555-123-4567", "555 1234567", "abc1234567", ""}
	for _, number := range invalid {
		if err := val.Struct(phoneForm{PhoneNumber: number}); err == nil {
			t.Fatalf("expected %q to fail", number)
		}
	}
}

func TestPersonNameRule(t *testing.T) {
	val := newValidator(t)

	valid := []string{"Alice", "Alice Anderson", "De Vries", "O'Neil"}
	for _, name := range valid {
		if err := val.Struct(nameForm{Name: name}); err != nil {
			t.Fatalf("expected %q to pass, got %v", name, err)
		}
	}

	invalid := []string{"Alice2", "Bob@home", "Sp4m", "Boss$"}
	for _, name := range invalid {
		if err := val.Struct(nameForm{Name: name}); err == nil {
			t.Fatalf("expected %q to fail", name)
		}
	}
}

func TestDescribePhoneMessages(t *testing.T) {
	val := newValidator(t)

	err := val.Struct(phoneForm{PhoneNumber: "555-123-4567"})
	fields := Describe(err)
	if len(fields) != 1 {
		t.Fatalf("expected 1 field error, got %d", len(fields))
	}
	if fields[0].Message != msgPhoneChars {
		t.Fatalf("expected character message for dashed number, got %q", fields[0].Message)
	}
	if fields[0].Path != "phoneNumber" {
		t.Fatalf("expected lowerCamel path, got %q", fields[0].Path)
	}

	err = val.Struct(phoneForm{PhoneNumber: "12345"})
	fields = Describe(err)
	if len(fields) != 1 || fields[0].Message != msgPhoneDigits {
		t.Fatalf("expected digit-count message for short number, got %+v", fields)
	}
}

func TestDescribeNonValidatorError(t *testing.T) {
	if fields := Describe(nil); fields != nil {
		t.Fatalf("expected nil for nil error, got %+v", fields)
	}
}
