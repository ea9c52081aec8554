package values_test

import (
	"testing"

	"cssv/tokens"
	"cssv/values"
)

func parseLP(t *testing.T, s string) values.LengthPercentage {
	t.Helper()
	c := tokens.NewCursor(s)
	v, err := values.ParseLengthPercentage(c)
	if err != nil {
		t.Fatalf("failed to parse %q: %v", s, err)
	}
	if !c.Done() {
		t.Fatalf("trailing input after parsing %q", s)
	}
	return v
}

func TestPercentageParseAndPrint(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"50%", "50%"},
		{"0%", "0%"},
		{"-25%", "-25%"},
		{"0.5%", ".5%"},
	}

	for _, tc := range cases {
		v := parseLP(t, tc.in)
		if v.Percentage == nil {
			t.Fatalf("%q did not parse as a percentage, got %q", tc.in, v.String())
		}
		if got := v.String(); got != tc.want {
			t.Errorf("%q serialized as %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestPercentageIsRatio(t *testing.T) {
	v := parseLP(t, "50%")
	if v.Percentage.V != 0.5 {
		t.Errorf("50%% stored as %v, want 0.5", v.Percentage.V)
	}
}

func TestPercentagesAlwaysFold(t *testing.T) {
	sum := parseLP(t, "50%").Add(parseLP(t, "25%"))
	if sum.Percentage == nil {
		t.Fatalf("50%% + 25%% should fold, got %q", sum.String())
	}
	if got := sum.String(); got != "75%" {
		t.Errorf("50%% + 25%% = %q, want %q", got, "75%")
	}
}

func TestLengthPlusPercentageStaysSymbolic(t *testing.T) {
	sum := parseLP(t, "10px").Add(parseLP(t, "50%"))
	if sum.Calc == nil || sum.Calc.Sum == nil {
		t.Fatalf("10px + 50%% should be symbolic, got %q", sum.String())
	}
	if got := sum.String(); got != "calc(10px + 50%)" {
		t.Errorf("10px + 50%% = %q, want %q", got, "calc(10px + 50%)")
	}
}

func TestLengthPercentageCalcParsing(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"calc(100% - 20px)", "calc(100% + -20px)"},
		{"calc(50% + 25%)", "75%"},
		{"calc(2 * 50%)", "100%"},
		{"calc(100% - 20px + 5px)", "calc(100% + -15px)"},
	}

	for _, tc := range cases {
		if got := parseLP(t, tc.in).String(); got != tc.want {
			t.Errorf("%s = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestLengthPercentageFoldInsideSum(t *testing.T) {
	mixed := parseLP(t, "calc(100% - 20px)")
	sum := mixed.Add(parseLP(t, "10%"))
	if got := sum.String(); got != "calc(110% + -20px)" {
		t.Errorf("(100%% - 20px) + 10%% = %q, want %q", got, "calc(110% + -20px)")
	}
}

func TestLengthPercentageScale(t *testing.T) {
	if got := parseLP(t, "50%").Scale(0.5).String(); got != "25%" {
		t.Errorf("50%% * 0.5 = %q, want %q", got, "25%")
	}
	if got := parseLP(t, "calc(100% - 20px)").Scale(2).String(); got != "calc(200% + -40px)" {
		t.Errorf("(100%% - 20px) * 2 = %q, want %q", got, "calc(200% + -40px)")
	}
}

func TestZeroPercentIsNotZeroLength(t *testing.T) {
	// 0% is elided as an additive identity but survives on its own
	if got := parseLP(t, "0%").String(); got != "0%" {
		t.Errorf("0%% serialized as %q, want %q", got, "0%")
	}
	sum := parseLP(t, "0%").Add(parseLP(t, "10px"))
	if got := sum.String(); got != "10px" {
		t.Errorf("0%% + 10px = %q, want %q", got, "10px")
	}
}

func TestZeroValueIsZeroLengthPercentage(t *testing.T) {
	var zero values.LengthPercentage

	if !zero.Equals(0) {
		t.Error("zero value should equal 0")
	}
	if got := zero.Add(parseLP(t, "10px")).String(); got != "10px" {
		t.Errorf("zero value + 10px = %q, want %q", got, "10px")
	}
	if got := parseLP(t, "50%").Add(zero).String(); got != "50%" {
		t.Errorf("50%% + zero value = %q, want %q", got, "50%")
	}
}

func TestParseLengthPercentageOrAuto(t *testing.T) {
	cases := []struct {
		in   string
		auto bool
		want string
	}{
		{"auto", true, "auto"},
		{"AUTO", true, "auto"},
		{"10px", false, "10px"},
		{"50%", false, "50%"},
		{"calc(100% - 20px)", false, "calc(100% + -20px)"},
	}

	for _, tc := range cases {
		c := tokens.NewCursor(tc.in)
		v, err := values.ParseLengthPercentageOrAuto(c)
		if err != nil {
			t.Fatalf("failed to parse %q: %v", tc.in, err)
		}
		if v.Auto != tc.auto {
			t.Errorf("%q: auto = %v, want %v", tc.in, v.Auto, tc.auto)
		}
		if got := v.String(); got != tc.want {
			t.Errorf("%q serialized as %q, want %q", tc.in, got, tc.want)
		}
	}

	c := tokens.NewCursor("inherit")
	if _, err := values.ParseLengthPercentageOrAuto(c); err == nil {
		t.Error("expected error for unsupported keyword")
	}
}
