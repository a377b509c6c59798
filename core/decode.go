package core

// Decoder reads fixed-format argument byte sequences from the serial
// link. Handlers call it after the dispatcher has consumed the opcode
// byte; each read blocks until the peer delivers the next byte.
type Decoder struct {
	src     ByteSource
	diag    *Diag
	numLEDs int
}

// LEDAll is the wildcard argument byte addressing the whole LED bank.
const LEDAll = '@'

// NewDecoder creates a decoder reading from src. numLEDs bounds the
// valid LED code letters ('A' up to 'A'+numLEDs-1).
func NewDecoder(src ByteSource, diag *Diag, numLEDs int) *Decoder {
	return &Decoder{src: src, diag: diag, numLEDs: numLEDs}
}

// FixedDigits reads exactly n argument bytes and decodes them as a
// decimal number, most significant digit first. With signed set, the
// first byte must be '+' or '-' and the remaining n-1 bytes digits;
// otherwise all n bytes must be digits. On a character-class violation
// the full field is still consumed, keeping the byte stream aligned on
// the next opcode, and ErrMalformedArgument is returned.
//
// The raw bytes are echoed on the diagnostic channel whether or not
// they decode.
func (d *Decoder) FixedDigits(n int, signed bool) (int, error) {
	buf := make([]byte, n)
	ok := true
	for k := 0; k < n; k++ {
		b := d.src.ReadByte()
		buf[k] = b
		if signed && k == 0 {
			ok = ok && (b == '+' || b == '-')
		} else {
			ok = ok && b >= '0' && b <= '9'
		}
	}
	d.diag.Line("Argument = " + string(buf))
	if !ok {
		return 0, ErrMalformedArgument
	}

	value := 0
	for k := 0; k < n; k++ {
		if signed && k == 0 {
			continue
		}
		value = value*10 + int(buf[k]-'0')
	}
	if signed && buf[0] == '-' {
		value = -value
	}
	return value, nil
}

// LEDTarget identifies either a single LED or the whole bank.
type LEDTarget struct {
	All   bool
	Index int
}

// LEDCode reads the single argument byte of an LED command: LEDAll for
// the whole bank, or an uppercase letter naming LED byte-'A'. Any other
// byte is ErrLEDOutOfRange.
func (d *Decoder) LEDCode() (LEDTarget, error) {
	b := d.src.ReadByte()
	d.diag.Byte("LED code", b)
	if b == LEDAll {
		return LEDTarget{All: true}, nil
	}
	index := int(b) - 'A'
	if index < 0 || index >= d.numLEDs {
		return LEDTarget{}, ErrLEDOutOfRange
	}
	return LEDTarget{Index: index}, nil
}
