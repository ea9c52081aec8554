package css_test

import (
	"strings"
	"testing"

	"cssv/css"
)

func parseBlock(t *testing.T, src string) *css.Block {
	t.Helper()
	block, err := css.NewParser(nil).ParseDeclarations([]byte(src))
	if err != nil {
		t.Fatalf("failed to parse %q: %v", src, err)
	}
	return block
}

func side(t *testing.T, b *css.Block, property string) string {
	t.Helper()
	d, ok := b.Get(property)
	if !ok {
		t.Fatalf("missing declaration %q", property)
	}
	if !d.Typed {
		t.Fatalf("declaration %q is not typed", property)
	}
	return d.Value.String()
}

func TestShorthandExpansion(t *testing.T) {
	cases := []struct {
		in                       string
		top, right, bottom, left string
	}{
		{"margin: 5px", "5px", "5px", "5px", "5px"},
		{"margin: 5px 10px", "5px", "10px", "5px", "10px"},
		{"margin: 5px 10px 15px", "5px", "10px", "15px", "10px"},
		{"margin: 5px 10px 15px 20px", "5px", "10px", "15px", "20px"},
		{"padding: 1em auto", "1em", "auto", "1em", "auto"},
	}

	for _, tc := range cases {
		block := parseBlock(t, tc.in)
		prefix := strings.SplitN(tc.in, ":", 2)[0]
		if got := side(t, block, prefix+"-top"); got != tc.top {
			t.Errorf("%q top = %q, want %q", tc.in, got, tc.top)
		}
		if got := side(t, block, prefix+"-right"); got != tc.right {
			t.Errorf("%q right = %q, want %q", tc.in, got, tc.right)
		}
		if got := side(t, block, prefix+"-bottom"); got != tc.bottom {
			t.Errorf("%q bottom = %q, want %q", tc.in, got, tc.bottom)
		}
		if got := side(t, block, prefix+"-left"); got != tc.left {
			t.Errorf("%q left = %q, want %q", tc.in, got, tc.left)
		}
	}
}

func TestDimensionalPropertiesAreTyped(t *testing.T) {
	block := parseBlock(t, "width: calc(100% - 20px); font-size: 12pt; color: red")

	if got := side(t, block, "width"); got != "calc(100% + -20px)" {
		t.Errorf("width = %q, want %q", got, "calc(100% + -20px)")
	}
	if got := side(t, block, "font-size"); got != "12pt" {
		t.Errorf("font-size = %q, want %q", got, "12pt")
	}

	d, ok := block.Get("color")
	if !ok || d.Typed || d.Raw != "red" {
		t.Errorf("color should pass through raw, got %+v", d)
	}
}

func TestRejectedDeclarationIsIsolated(t *testing.T) {
	block, err := css.NewParser(nil).ParseDeclarations([]byte("width: 10pxx; height: 5px"))
	if err == nil {
		t.Fatal("expected an aggregated error for the rejected declaration")
	}
	if len(block.Warnings) != 1 || !strings.Contains(block.Warnings[0], "width") {
		t.Fatalf("warnings = %v, want one mentioning width", block.Warnings)
	}
	if _, ok := block.Get("width"); ok {
		t.Error("rejected width should not appear in the block")
	}
	if got := side(t, block, "height"); got != "5px" {
		t.Errorf("height = %q, want %q", got, "5px")
	}
}

func TestShorthandTooManyValuesRejected(t *testing.T) {
	block, err := css.NewParser(nil).ParseDeclarations([]byte("margin: 1px 2px 3px 4px 5px"))
	if err == nil {
		t.Fatal("expected error for a five-value shorthand")
	}
	if len(block.Declarations) != 0 {
		t.Errorf("no declarations expected, got %d", len(block.Declarations))
	}
}

func TestLastDeclarationWins(t *testing.T) {
	block := parseBlock(t, "width: 10px; width: 20px")
	if got := side(t, block, "width"); got != "20px" {
		t.Errorf("width = %q, want %q", got, "20px")
	}
}

func TestCustomPropertyPassThrough(t *testing.T) {
	block := parseBlock(t, "--gap: 5px")
	d, ok := block.Get("--gap")
	if !ok || d.Typed {
		t.Fatalf("custom property should pass through raw, got %+v", d)
	}
	if d.Raw != "5px" {
		t.Errorf("raw value = %q, want %q", d.Raw, "5px")
	}
}

func TestMinifiedOutput(t *testing.T) {
	block := parseBlock(t, "margin-top: 10px; color: red")
	if got := block.String(); got != "margin-top:10px;color:red" {
		t.Errorf("minified output = %q, want %q", got, "margin-top:10px;color:red")
	}

	block = parseBlock(t, "margin: 0 auto")
	want := "margin-top:0;margin-right:auto;margin-bottom:0;margin-left:auto"
	if got := block.String(); got != want {
		t.Errorf("minified output = %q, want %q", got, want)
	}
}

func TestBoxEdgeSums(t *testing.T) {
	block := parseBlock(t, "margin: 10px 2em")
	m := block.Margin()

	if got := m.Horizontal().String(); got != "4em" {
		t.Errorf("horizontal margin = %q, want %q", got, "4em")
	}
	if got := m.Vertical().String(); got != "20px" {
		t.Errorf("vertical margin = %q, want %q", got, "20px")
	}
}

func TestAutoMarginContributesZero(t *testing.T) {
	block := parseBlock(t, "margin: auto")
	if got := block.Margin().Horizontal().String(); got != "0" {
		t.Errorf("auto margins should sum to zero, got %q", got)
	}
}

func TestIncommensurablePaddingStaysSymbolic(t *testing.T) {
	block := parseBlock(t, "padding: 10px 50%")
	if got := block.Padding().Horizontal().String(); got != "100%" {
		t.Errorf("horizontal padding = %q, want %q", got, "100%")
	}
	if got := block.Padding().Vertical().String(); got != "20px" {
		t.Errorf("vertical padding = %q, want %q", got, "20px")
	}

	block = parseBlock(t, "padding: 10px 1em 50% 2px")
	if got := block.Padding().Horizontal().String(); got != "calc(2px + 1em)" {
		t.Errorf("horizontal padding = %q, want %q", got, "calc(2px + 1em)")
	}
}

func TestParseValue(t *testing.T) {
	v, err := css.ParseValue("calc(1px + 1px)")
	if err != nil {
		t.Fatal(err)
	}
	if got := v.String(); got != "2px" {
		t.Errorf("got %q, want %q", got, "2px")
	}

	if _, err := css.ParseValue("1px junk"); err == nil {
		t.Error("trailing tokens should be rejected")
	}
}
