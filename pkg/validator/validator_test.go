package validator

import (
	"testing"
)

type cpfHolder struct {
	CPF string `validate:"required,cpf"`
}

func TestValidateCPFFormat(t *testing.T) {
	v := NewValidator()

	cases := []struct {
		name  string
		cpf   string
		valid bool
	}{
		{"canonical form", "529.982.247-25", true},
		{"all zeros still matches pattern", "000.000.000-00", true},
		{"digits only", "52998224725", false},
		{"missing dash", "529.982.24725", false},
		{"missing dots", "529982247-25", false},
		{"too short", "529.982.247-2", false},
		{"too long", "529.982.247-255", false},
		{"letters", "abc.def.ghi-jk", false},
		{"empty", "", false},
		{"trailing space", "529.982.247-25 ", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Validate(cpfHolder{CPF: tc.cpf})
			if tc.valid && err != nil {
				t.Errorf("expected %q to be valid, got error: %v", tc.cpf, err)
			}
			if !tc.valid && err == nil {
				t.Errorf("expected %q to be rejected", tc.cpf)
			}
		})
	}
}

type registrationFields struct {
	Username string `validate:"required,min=3,max=150"`
	Email    string `validate:"required,email"`
	Sex      string `validate:"required,oneof=M F O"`
	CPF      string `validate:"required,cpf"`
	Birth    string `validate:"omitempty,datetime=2006-01-02"`
}

func TestFormatValidationErrors(t *testing.T) {
	v := NewValidator()

	err := v.Validate(registrationFields{
		Username: "ab",
		Email:    "not-an-email",
		Sex:      "X",
		CPF:      "12345678901",
		Birth:    "01/02/1990",
	})
	if err == nil {
		t.Fatal("expected validation to fail")
	}

	fields := v.FormatValidationErrors(err)

	expected := map[string]string{
		"Username": "Username must be at least 3 characters",
		"Email":    "Email must be a valid email address",
		"Sex":      "Sex must be one of: M F O",
		"CPF":      "CPF must be in the format 000.000.000-00",
		"Birth":    "Birth must be a valid date in the format 2006-01-02",
	}

	for field, want := range expected {
		got, ok := fields[field]
		if !ok {
			t.Errorf("expected an error message for field %s", field)
			continue
		}
		if got != want {
			t.Errorf("field %s: got %q, want %q", field, got, want)
		}
	}
}

func TestFormatValidationErrorsNonValidationError(t *testing.T) {
	v := NewValidator()

	fields := v.FormatValidationErrors(nil)
	if len(fields) != 0 {
		t.Errorf("expected empty map for nil error, got %v", fields)
	}
}
