package validators

import "testing"

func TestCheckOrderNumber(t *testing.T) {
	testCases := []struct {
		Name     string
		Number   string
		Expected bool
	}{
		{Name: "Valid number #1", Number: "123456789", Expected: true},
		{Name: "Empty number #2", Number: "", Expected: false},
		{Name: "Letters #3", Number: "12345a", Expected: false},
		{Name: "Spaces #4", Number: "123 456", Expected: false},
		{Name: "Negative #5", Number: "-123456", Expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			if got := CheckOrderNumber(tc.Number); got != tc.Expected {
				t.Errorf("Expected '%v', got: '%v'", tc.Expected, got)
			}
		})
	}
}
