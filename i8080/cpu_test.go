package i8080

import "testing"

func tick(t *testing.T, c *CPU, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		if _, err := c.Tick(); err != nil {
			t.Fatalf("tick %d: unexpected error: %v", i, err)
		}
	}
}

// MVI A,5; INR A; HLT
func TestScenarioIncrementThenHalt(t *testing.T) {
	c := New()
	c.LoadROM([]byte{0x3E, 0x05, 0x3C, 0x76}, 0x0000)

	tick(t, c, 3)
	if c.State() != Halted {
		t.Fatalf("expected Halted after HLT, got %v", c.State())
	}
	tick(t, c, 1) // one tick while halted must be a no-op

	tests := []struct {
		got  interface{}
		want interface{}
	}{
		{c.A, byte(6)},
		{c.Memory.Pc, uint16(0x0003)},
		{c.Flags.Z, false},
		{c.Flags.S, false},
		{c.Flags.P, true},
	}
	for _, test := range tests {
		if test.got != test.want {
			t.Errorf("got %v, want %v", test.got, test.want)
		}
	}
}

// LXI SP,0x2400; LXI H,0xBEEF; PUSH H; POP B
func TestScenarioPushPopRoundTrip(t *testing.T) {
	c := New()
	c.LoadROM([]byte{0x31, 0x00, 0x24, 0x21, 0xEF, 0xBE, 0xE5, 0xC1}, 0x0000)

	tick(t, c, 4)

	if got := c.BC.Pair(); got != 0xBEEF {
		t.Errorf("got BC=%#04x, want 0xBEEF", got)
	}
	if c.Memory.Sp != 0x2400 {
		t.Errorf("got SP=%#04x, want 0x2400", c.Memory.Sp)
	}
}

// MVI A,0x80; ADD A
func TestScenarioAddSelfOverflow(t *testing.T) {
	c := New()
	c.LoadROM([]byte{0x3E, 0x80, 0x87}, 0x0000)

	tick(t, c, 2)

	tests := []struct {
		got  interface{}
		want interface{}
	}{
		{c.A, byte(0x00)},
		{c.Flags.C, true},
		{c.Flags.Z, true},
		{c.Flags.S, false},
		{c.Flags.P, true},
	}
	for _, test := range tests {
		if test.got != test.want {
			t.Errorf("got %v, want %v", test.got, test.want)
		}
	}
}

// MVI A,0x55; RLC
func TestScenarioRotateLeftCarry(t *testing.T) {
	c := New()
	c.LoadROM([]byte{0x3E, 0x55, 0x07}, 0x0000)

	tick(t, c, 2)

	if c.A != 0xAA {
		t.Errorf("got A=%#02x, want 0xAA", c.A)
	}
	if c.Flags.C {
		t.Errorf("carry should be false, 0x55's top bit is 0")
	}
}

func TestScenarioInterruptInjection(t *testing.T) {
	c := New()
	c.Memory.Sp = 0x2400 // SP resets to 0, where a push underflows
	c.interruptEnable = true
	startPC := c.Memory.Pc

	c.Interrupt(1)
	tick(t, c, 1)

	if c.Memory.Pc != 0x0008 {
		t.Errorf("got PC=%#04x, want 0x0008", c.Memory.Pc)
	}
	if c.interruptEnable {
		t.Errorf("interruptEnable should be cleared after injection")
	}

	stacked, err := c.Memory.PopWord()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stacked != startPC {
		t.Errorf("got stacked PC=%#04x, want %#04x", stacked, startPC)
	}
}

func TestScenarioInterruptIgnoredWhenDisabled(t *testing.T) {
	c := New()
	c.interruptEnable = false
	before := c.Memory.Pc

	c.Interrupt(1)

	if c.Memory.Pc != before {
		t.Errorf("interrupt must be a no-op when disabled")
	}
}

func TestScenarioShiftRegisterIO(t *testing.T) {
	c := New()
	c.A = 0xAA
	c.Shift.Load(c.A) // OUT 0x04, A=0xAA
	c.A = 0xBB
	c.Shift.Load(c.A) // OUT 0x04, A=0xBB
	c.Shift.SetOffset(0x04)

	if got := c.Shift.Read(); got != 0xBA {
		t.Errorf("got %#02x, want 0xBA", got)
	}
}

func TestCMAThenIncrementIsTwosComplementOfA(t *testing.T) {
	c := New()
	c.A = 0x37

	opCMA(c)
	opINR(regA)(c)

	if got := c.A + (0x37); got != 0 {
		t.Errorf("CMA;INR A should produce the two's complement of A, got sum %#02x", got)
	}
}

func TestParityFlagMatchesBitCount(t *testing.T) {
	for b := 0; b < 256; b++ {
		ones := 0
		for v := byte(b); v != 0; v &= v - 1 {
			ones++
		}
		want := ones%2 == 0
		if parityTable[b] != want {
			t.Errorf("byte %#02x: got parity %v, want %v", b, parityTable[b], want)
		}
	}
}
