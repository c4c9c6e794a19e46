package i8080

import "testing"

func TestOpJMP(t *testing.T) {
	c := New()
	c.LoadROM([]byte{0xC3, 0x00, 0x50}, 0x0000) // JMP 0x5000
	tick(t, c, 1)

	if c.Memory.Pc != 0x5000 {
		t.Errorf("got PC=%#04x, want 0x5000", c.Memory.Pc)
	}
}

func TestConditionalJumpNotTakenStillConsumesOperand(t *testing.T) {
	c := New()
	c.Flags.Z = false
	c.LoadROM([]byte{0xCA, 0x00, 0x50, 0x00}, 0x0000) // JZ 0x5000; NOP
	tick(t, c, 1)

	if c.Memory.Pc != 0x0003 {
		t.Errorf("got PC=%#04x, want 0x0003 (operand consumed, jump not taken)", c.Memory.Pc)
	}
}

func TestConditionalJumpTaken(t *testing.T) {
	c := New()
	c.Flags.Z = true
	c.LoadROM([]byte{0xCA, 0x00, 0x50}, 0x0000) // JZ 0x5000
	tick(t, c, 1)

	if c.Memory.Pc != 0x5000 {
		t.Errorf("got PC=%#04x, want 0x5000", c.Memory.Pc)
	}
}

func TestCallAndReturn(t *testing.T) {
	c := New()
	c.Memory.Sp = 0x2400
	c.LoadROM([]byte{0xCD, 0x05, 0x00, 0x00, 0x00, 0xC9}, 0x0000) // CALL 0x0005; NOP; NOP; NOP; RET

	tick(t, c, 1) // CALL
	if c.Memory.Pc != 0x0005 {
		t.Errorf("got PC=%#04x after CALL, want 0x0005", c.Memory.Pc)
	}

	tick(t, c, 1) // RET
	if c.Memory.Pc != 0x0003 {
		t.Errorf("got PC=%#04x after RET, want 0x0003", c.Memory.Pc)
	}
}

func TestConditionalCallNotTakenCosts11Cycles(t *testing.T) {
	c := New()
	c.Flags.C = false
	c.LoadROM([]byte{0xDC, 0x00, 0x50}, 0x0000) // CC 0x5000
	cycles, err := c.Tick()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cycles != 11 {
		t.Errorf("got %d cycles, want 11", cycles)
	}
	if c.Memory.Pc != 0x0003 {
		t.Errorf("got PC=%#04x, want 0x0003", c.Memory.Pc)
	}
}

func TestRST(t *testing.T) {
	c := New()
	c.Memory.Sp = 0x2400
	c.LoadROM([]byte{0xCF}, 0x0000) // RST 1
	tick(t, c, 1)

	if c.Memory.Pc != 0x0008 {
		t.Errorf("got PC=%#04x, want 0x0008", c.Memory.Pc)
	}
}

func TestPCHL(t *testing.T) {
	c := New()
	c.HL.SetPair(0x6000)
	c.LoadROM([]byte{0xE9}, 0x0000) // PCHL
	tick(t, c, 1)

	if c.Memory.Pc != 0x6000 {
		t.Errorf("got PC=%#04x, want 0x6000", c.Memory.Pc)
	}
}
