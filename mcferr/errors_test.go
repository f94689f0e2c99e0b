package mcferr

import (
	"errors"
	"testing"
)

func TestErrorError(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "without field",
			err:      New(CodeInvalidInput, "malformed load arrays"),
			expected: "[INVALID_INPUT] malformed load arrays",
		},
		{
			name:     "with field",
			err:      NewWithField(CodeNoRoom, "arc id exceeds mmax", "arc"),
			expected: "[NO_ROOM] arc id exceeds mmax (field: arc)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("invariant breach")
	err := Wrap(cause, CodeInternal, "kernel aborted")

	if unwrapped := err.Unwrap(); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}
	if !errors.Is(err, cause) {
		t.Errorf("errors.Is(err, cause) = false, want true")
	}
}

func TestErrorWithDetails(t *testing.T) {
	err := New(CodeUnfeasible, "no feasible flow").WithDetails("cut", []int{1, 2})

	cut, ok := err.Details["cut"].([]int)
	if !ok || len(cut) != 2 {
		t.Fatalf("Details[\"cut\"] = %v, want []int{1,2}", err.Details["cut"])
	}
}

func TestIsAndGetCode(t *testing.T) {
	err := New(CodeUnbounded, "negative cycle reachable")

	if !Is(err, CodeUnbounded) {
		t.Errorf("Is(err, CodeUnbounded) = false, want true")
	}
	if Is(err, CodeInternal) {
		t.Errorf("Is(err, CodeInternal) = true, want false")
	}
	if GetCode(err) != CodeUnbounded {
		t.Errorf("GetCode(err) = %v, want %v", GetCode(err), CodeUnbounded)
	}
	if GetCode(errors.New("plain")) != CodeInternal {
		t.Errorf("GetCode on a non-mcferr error should default to CodeInternal")
	}
}

func TestSeverityString(t *testing.T) {
	cases := map[Severity]string{
		SeverityWarning:  "warning",
		SeverityError:    "error",
		SeverityCritical: "critical",
	}
	for sev, want := range cases {
		if got := sev.String(); got != want {
			t.Errorf("Severity(%d).String() = %q, want %q", sev, got, want)
		}
	}
}
