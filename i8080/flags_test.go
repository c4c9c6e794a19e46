package i8080

import "testing"

func TestParityTable(t *testing.T) {
	tests := []struct {
		got  interface{}
		want interface{}
	}{
		{parityTable[0x00], true},  // zero bits set, even
		{parityTable[0x01], false}, // one bit set, odd
		{parityTable[0x03], true},  // two bits set, even
		{parityTable[0xFF], true},  // eight bits set, even
	}
	for _, test := range tests {
		if test.got != test.want {
			t.Errorf("got %v, want %v", test.got, test.want)
		}
	}
}

func TestPSWRoundTrip(t *testing.T) {
	c := New()
	c.A = 0x42
	c.Flags = Flags{Z: true, S: false, P: true, C: true}

	psw := c.PSW()

	var c2 CPU
	c2.SetPSW(psw)

	tests := []struct {
		got  interface{}
		want interface{}
	}{
		{c2.A, c.A},
		{c2.Flags.Z, c.Flags.Z},
		{c2.Flags.S, c.Flags.S},
		{c2.Flags.P, c.Flags.P},
		{c2.Flags.C, c.Flags.C},
	}
	for _, test := range tests {
		if test.got != test.want {
			t.Errorf("got %v, want %v", test.got, test.want)
		}
	}
}

func TestPSWLayoutFixedBits(t *testing.T) {
	c := New()
	c.Flags = Flags{}
	psw := c.PSW()
	low := byte(psw)

	if low&pswBit1 == 0 {
		t.Errorf("bit 1 of PSW must always read 1, got %#08b", low)
	}
	if low&pswBitAC != 0 {
		t.Errorf("AC is not modelled and must read 0, got %#08b", low)
	}
}
