package core

import (
	"bytes"
	"errors"
	"testing"
)

func TestNewBankStartsClearedAndPushed(t *testing.T) {
	rec := &shiftRecorder{}
	bank, err := NewBank(24, rec)
	if err != nil {
		t.Fatalf("NewBank error: %v", err)
	}

	if len(rec.frames) != 1 {
		t.Fatalf("expected initial push, got %d frames", len(rec.frames))
	}
	if !bytes.Equal(rec.last(), []byte{0, 0, 0}) {
		t.Errorf("initial frame = %v, want all zero", rec.last())
	}
	if bank.Count() != 24 {
		t.Errorf("Count = %d, want 24", bank.Count())
	}
}

func TestSetBitMapping(t *testing.T) {
	// The wiring rotates each group by one position: bit 7 of a group
	// carries that group's first LED.
	cases := []struct {
		index int
		group int
		mask  byte
	}{
		{0, 0, 0x80},
		{1, 0, 0x01},
		{2, 0, 0x02},
		{7, 0, 0x40},
		{8, 1, 0x80},
		{9, 1, 0x01},
		{16, 2, 0x80},
		{23, 2, 0x40},
	}
	for _, c := range cases {
		rec := &shiftRecorder{}
		bank, _ := NewBank(24, rec)
		if err := bank.Set(c.index, true); err != nil {
			t.Fatalf("Set(%d) error: %v", c.index, err)
		}
		want := []byte{0, 0, 0}
		want[c.group] = c.mask
		if !bytes.Equal(rec.last(), want) {
			t.Errorf("Set(%d): frame = %v, want %v", c.index, rec.last(), want)
		}
	}
}

func TestSetTouchesOnlyOneBit(t *testing.T) {
	rec := &shiftRecorder{}
	bank, _ := NewBank(24, rec)

	bank.SetAll(true)
	if err := bank.Set(9, false); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	want := []byte{0xff, 0xfe, 0xff} // LED 9 is bit 0 of group 1
	if !bytes.Equal(rec.last(), want) {
		t.Errorf("frame = %v, want %v", rec.last(), want)
	}
}

func TestSetTogglePairRestoresBank(t *testing.T) {
	rec := &shiftRecorder{}
	bank, _ := NewBank(24, rec)

	bank.Set(3, true)
	bank.Set(17, true)
	before := bank.Snapshot()

	bank.Set(11, true)
	bank.Set(11, false)

	if !bytes.Equal(bank.Snapshot(), before) {
		t.Errorf("toggle pair changed bank: %v -> %v", before, bank.Snapshot())
	}
}

func TestSetAll(t *testing.T) {
	rec := &shiftRecorder{}
	bank, _ := NewBank(24, rec)

	bank.Set(5, true)
	bank.SetAll(true)
	if !bytes.Equal(rec.last(), []byte{0xff, 0xff, 0xff}) {
		t.Errorf("SetAll(on) frame = %v", rec.last())
	}

	bank.SetAll(false)
	if !bytes.Equal(rec.last(), []byte{0, 0, 0}) {
		t.Errorf("SetAll(off) frame = %v", rec.last())
	}
}

func TestEveryMutationPushes(t *testing.T) {
	rec := &shiftRecorder{}
	bank, _ := NewBank(24, rec)

	bank.Set(0, true)
	bank.Set(1, true)
	bank.SetAll(false)

	// Initial push plus one per mutation.
	if len(rec.frames) != 4 {
		t.Errorf("got %d pushes, want 4", len(rec.frames))
	}
}

func TestSetOutOfRange(t *testing.T) {
	rec := &shiftRecorder{}
	bank, _ := NewBank(24, rec)
	pushes := len(rec.frames)

	for _, index := range []int{-1, 24, 100} {
		if err := bank.Set(index, true); !errors.Is(err, ErrLEDOutOfRange) {
			t.Errorf("Set(%d) err = %v, want ErrLEDOutOfRange", index, err)
		}
	}
	if len(rec.frames) != pushes {
		t.Errorf("out-of-range Set pushed to hardware")
	}
}

func TestBankPartialGroup(t *testing.T) {
	// 12 LEDs need two groups.
	rec := &shiftRecorder{}
	bank, err := NewBank(12, rec)
	if err != nil {
		t.Fatalf("NewBank error: %v", err)
	}
	if len(bank.Snapshot()) != 2 {
		t.Fatalf("group count = %d, want 2", len(bank.Snapshot()))
	}
	bank.Set(11, true) // bit (11+7)%8 = 2 of group 1
	if !bytes.Equal(rec.last(), []byte{0x00, 0x04}) {
		t.Errorf("frame = %v, want [0 4]", rec.last())
	}
}
