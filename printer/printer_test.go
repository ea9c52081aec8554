package printer_test

import (
	"strings"
	"testing"

	"cssv/printer"
)

type literal string

func (l literal) ToCSS(p *printer.Printer) error {
	return p.WriteString(string(l))
}

func TestPrinterWrites(t *testing.T) {
	var sb strings.Builder
	p := printer.New(&sb)

	if err := p.WriteString("calc("); err != nil {
		t.Fatal(err)
	}
	if err := p.WriteByte(')'); err != nil {
		t.Fatal(err)
	}
	if got := sb.String(); got != "calc()" {
		t.Errorf("got %q, want %q", got, "calc()")
	}
}

func TestString(t *testing.T) {
	if got := printer.String(literal("10px")); got != "10px" {
		t.Errorf("got %q, want %q", got, "10px")
	}
}
