// Package printer provides the output sink all CSS serializers in this
// module write through. It deliberately stays byte/string level: layout and
// minification decisions belong to the callers.
package printer

import (
	"io"
	"strings"
)

// Printer wraps an io.Writer with the character- and string-level
// operations value serializers need.
type Printer struct {
	w io.Writer
}

// New returns a Printer writing to w.
func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

func (p *Printer) WriteByte(b byte) error {
	_, err := p.w.Write([]byte{b})
	return err
}

func (p *Printer) WriteString(s string) error {
	_, err := io.WriteString(p.w, s)
	return err
}

// String renders v into a string, ignoring write errors (a strings.Builder
// never fails).
func String(v interface{ ToCSS(*Printer) error }) string {
	var sb strings.Builder
	v.ToCSS(New(&sb)) //nolint:errcheck
	return sb.String()
}
