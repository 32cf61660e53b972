package core

import "testing"

func TestParseLabel(t *testing.T) {
	tests := []struct {
		input    string
		expected Label
		ok       bool
	}{
		{"r", LabelRed, true},
		{"red", LabelRed, true},
		{"RED", LabelRed, true},
		{"Rosso", LabelRed, true},
		{"b", LabelBlue, true},
		{"Blue", LabelBlue, true},
		{"y", LabelYellow, true},
		{"yellow", LabelYellow, true},
		{"w", LabelWhite, true},
		{"White", LabelWhite, true},
		{"  blue  ", LabelBlue, true},
		{"", LabelWhite, false},
		{"   ", LabelWhite, false},
		{"green", LabelWhite, false},
		{"x", LabelWhite, false},
		{"1", LabelWhite, false},
		{"école", LabelWhite, false},
		{"ÿellow", LabelWhite, false},
		{"Ŕed", LabelWhite, false},
		{"\xffred", LabelWhite, false},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got, ok := ParseLabel(tc.input)
			if ok != tc.ok {
				t.Fatalf("ParseLabel(%q) ok = %v, expected %v", tc.input, ok, tc.ok)
			}
			if ok && got != tc.expected {
				t.Errorf("ParseLabel(%q) = %v, expected %v", tc.input, got, tc.expected)
			}
		})
	}
}

func TestLabelString(t *testing.T) {
	names := map[Label]string{
		LabelWhite:  "white",
		LabelRed:    "red",
		LabelBlue:   "blue",
		LabelYellow: "yellow",
		Label(99):   "unknown",
	}
	for l, want := range names {
		if got := l.String(); got != want {
			t.Errorf("Label(%d).String() = %q, expected %q", l, got, want)
		}
	}
}

func TestZeroLabelIsWhite(t *testing.T) {
	var l Label
	if l != LabelWhite {
		t.Errorf("zero Label = %v, expected white", l)
	}
}
