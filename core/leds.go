package core

// Bank tracks the on/off state of every status LED and mirrors each
// change to the shift-register output. The groups slice always reflects
// the last image pushed to hardware.
type Bank struct {
	out    ShiftOutput
	groups []byte
	count  int
}

// NewBank creates a bank of count LEDs, all off, and pushes the cleared
// image so hardware and state agree from the start.
func NewBank(count int, out ShiftOutput) (*Bank, error) {
	b := &Bank{
		out:    out,
		groups: make([]byte, (count+7)/8),
		count:  count,
	}
	if err := b.push(); err != nil {
		return nil, err
	}
	return b, nil
}

// Count returns the number of addressable LEDs.
func (b *Bank) Count() int {
	return b.count
}

// Set switches a single LED and pushes the updated image. The bit
// position inside each group is (index+7) mod 8: bit 7 of a group
// carries that group's first LED, matching the board wiring. All other
// bits are left untouched.
func (b *Bank) Set(index int, on bool) error {
	if index < 0 || index >= b.count {
		return ErrLEDOutOfRange
	}
	group := index / 8
	mask := byte(1) << uint((index+7)%8)
	if on {
		b.groups[group] |= mask
	} else {
		b.groups[group] &^= mask
	}
	return b.push()
}

// SetAll switches every LED in every group and pushes.
func (b *Bank) SetAll(on bool) error {
	fill := byte(0x00)
	if on {
		fill = 0xff
	}
	for i := range b.groups {
		b.groups[i] = fill
	}
	return b.push()
}

// Snapshot returns a copy of the group vector for inspection.
func (b *Bank) Snapshot() []byte {
	out := make([]byte, len(b.groups))
	copy(out, b.groups)
	return out
}

func (b *Bank) push() error {
	return b.out.Push(b.groups)
}
