package core

import "io"

// Diag is the one-way diagnostic channel sharing the serial TX with the
// protocol's acknowledgment byte. Every line carries the "# " prefix so
// the host can tell it apart from protocol bytes; nothing on the wire
// ever parses these lines back.
type Diag struct {
	w io.Writer
}

// NewDiag creates a diagnostic writer on top of the serial TX.
func NewDiag(w io.Writer) *Diag {
	return &Diag{w: w}
}

// Line writes "# msg" followed by CRLF.
func (d *Diag) Line(msg string) {
	d.print("# " + msg + "\r\n")
}

// Error writes an error line "# ** msg". The firmware keeps running;
// there are no fatal errors in this subsystem.
func (d *Diag) Error(msg string) {
	d.print("# ** " + msg + "\r\n")
}

// Byte echoes a received raw byte as "# label = 'c' = chr(n)".
func (d *Diag) Byte(label string, b byte) {
	d.print("# " + label + " = '" + string(rune(b)) + "' = chr(" + itoa(int(b)) + ")\r\n")
}

func (d *Diag) print(s string) {
	// Diagnostics are fire-and-forget; a failed write must not stall
	// command processing.
	_, _ = io.WriteString(d.w, s)
}
