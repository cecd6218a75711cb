package profile

import "testing"

var (
	requiredFields = []string{"first_name", "last_name", "email"}
	optionalFields = []string{"telephone", "position", "time_zone", "telegram", "whatsapp"}
)

func TestEstimateWorkedExample(t *testing.T) {
	values := map[string]string{
		"first_name": "Jo",
		"last_name":  "Do",
		"email":      "a@b.com",
		"telephone":  "555-0100",
		"position":   "Engineer",
		"time_zone":  "UTC",
	}

	// 40 for all required + round(60 * 3/5) = 76.
	if got := Estimate(values, requiredFields, optionalFields); got != 76 {
		t.Fatalf("expected 76, got %d", got)
	}
}

func TestEstimateBounds(t *testing.T) {
	full := map[string]string{}
	for _, f := range append(append([]string{}, requiredFields...), optionalFields...) {
		full[f] = "x"
	}
	if got := Estimate(full, requiredFields, optionalFields); got != 100 {
		t.Fatalf("all fields filled should be 100, got %d", got)
	}

	if got := Estimate(map[string]string{}, requiredFields, optionalFields); got != 0 {
		t.Fatalf("all fields empty should be 0, got %d", got)
	}
}

func TestEstimateIgnoresWhitespace(t *testing.T) {
	values := map[string]string{
		"first_name": "   ",
		"last_name":  "\t",
		"email":      "a@b.com",
	}
	// 1 of 3 required filled, no optionals: round(40/3) = 13.
	if got := Estimate(values, requiredFields, optionalFields); got != 13 {
		t.Fatalf("expected 13, got %d", got)
	}
}

func TestEstimateNoFields(t *testing.T) {
	if got := Estimate(map[string]string{"x": "y"}, nil, nil); got != 0 {
		t.Fatalf("a form without fields should report 0, got %d", got)
	}
}

func TestEstimateMonotonicOnFill(t *testing.T) {
	values := map[string]string{}
	last := Estimate(values, requiredFields, optionalFields)
	for _, f := range append(append([]string{}, requiredFields...), optionalFields...) {
		values[f] = "filled"
		got := Estimate(values, requiredFields, optionalFields)
		if got < last {
			t.Fatalf("filling %s dropped the score from %d to %d", f, last, got)
		}
		last = got
	}
	if last != 100 {
		t.Fatalf("expected 100 after filling everything, got %d", last)
	}
}
