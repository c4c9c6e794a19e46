package i8080

import "testing"

func TestOpRLCWrapsTopBitToBottom(t *testing.T) {
	c := New()
	c.A = 0x80
	opRLC(c)

	if c.A != 0x01 {
		t.Errorf("got A=%#02x, want 0x01", c.A)
	}
	if !c.Flags.C {
		t.Errorf("expected carry set from bit 7")
	}
}

func TestOpRRCWrapsBottomBitToTop(t *testing.T) {
	c := New()
	c.A = 0x01
	opRRC(c)

	if c.A != 0x80 {
		t.Errorf("got A=%#02x, want 0x80", c.A)
	}
	if !c.Flags.C {
		t.Errorf("expected carry set from bit 0")
	}
}

func TestOpRALRotatesThroughCarry(t *testing.T) {
	c := New()
	c.A = 0x80
	c.Flags.C = true
	opRAL(c)

	if c.A != 0x01 {
		t.Errorf("got A=%#02x, want 0x01 (old carry shifted into bit 0)", c.A)
	}
	if !c.Flags.C {
		t.Errorf("expected new carry from old bit 7")
	}
}

func TestOpRARRotatesThroughCarry(t *testing.T) {
	c := New()
	c.A = 0x01
	c.Flags.C = true
	opRAR(c)

	if c.A != 0x80 {
		t.Errorf("got A=%#02x, want 0x80 (old carry shifted into bit 7)", c.A)
	}
	if !c.Flags.C {
		t.Errorf("expected new carry from old bit 0")
	}
}

func TestOpCMA(t *testing.T) {
	c := New()
	c.A = 0x0F
	opCMA(c)

	if c.A != 0xF0 {
		t.Errorf("got A=%#02x, want 0xF0", c.A)
	}
}

func TestOpSTCAndCMC(t *testing.T) {
	c := New()
	opSTC(c)
	if !c.Flags.C {
		t.Errorf("STC must set carry")
	}
	opCMC(c)
	if c.Flags.C {
		t.Errorf("CMC must clear a set carry")
	}
	opCMC(c)
	if !c.Flags.C {
		t.Errorf("CMC must set a clear carry")
	}
}
