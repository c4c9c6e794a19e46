package i8080

import "testing"

func TestMemoryReadWriteWord(t *testing.T) {
	var m Memory
	m.WriteWord(0x2000, 0xBEEF)

	tests := []struct {
		got  interface{}
		want interface{}
	}{
		{m.Ram[0x2000], byte(0xEF)}, // low byte first
		{m.Ram[0x2001], byte(0xBE)},
	}
	for _, test := range tests {
		if test.got != test.want {
			t.Errorf("got %v, want %v", test.got, test.want)
		}
	}

	got, err := m.ReadWord(0x2000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 0xBEEF {
		t.Errorf("got %#04x, want %#04x", got, 0xBEEF)
	}
}

func TestMemoryWordAtTopOfAddressSpace(t *testing.T) {
	var m Memory
	if _, err := m.ReadWord(0xFFFF); err == nil {
		t.Errorf("expected IndexError reading word at 0xFFFF")
	}
	if err := m.WriteWord(0xFFFF, 0x1234); err == nil {
		t.Errorf("expected IndexError writing word at 0xFFFF")
	}
}

func TestMemoryFetchAdvancesPC(t *testing.T) {
	var m Memory
	m.Ram[0x0000] = 0x11
	m.Ram[0x0001] = 0x22
	m.Pc = 0x0000

	b, err := m.FetchByte()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b != 0x11 || m.Pc != 1 {
		t.Errorf("got byte %#02x pc %#04x, want 0x11 pc 1", b, m.Pc)
	}
}

func TestMemoryProgramCounterOverflow(t *testing.T) {
	var m Memory
	m.Pc = 0xFFFF
	if _, err := m.FetchByte(); err == nil {
		t.Errorf("expected ProgramCounterOverflow at 0xFFFF")
	}
}

func TestMemoryStackRoundTrip(t *testing.T) {
	var m Memory
	m.Sp = 0x2400

	if err := m.PushWord(0xCAFE); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Sp != 0x23FE {
		t.Errorf("got sp %#04x, want 0x23FE", m.Sp)
	}

	got, err := m.PopWord()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 0xCAFE || m.Sp != 0x2400 {
		t.Errorf("got %#04x sp %#04x, want 0xCAFE sp 0x2400", got, m.Sp)
	}
}

func TestMemoryStackPointerOverflow(t *testing.T) {
	var m Memory
	m.Sp = 1
	if err := m.PushWord(0x0000); err == nil {
		t.Errorf("expected StackPointerOverflow pushing with sp=1")
	}
}

func TestMemoryLoadROM(t *testing.T) {
	var m Memory
	rom := []byte{0x3E, 0x05, 0x76}
	if err := m.LoadROM(rom, 0x0000); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Pc != 0 {
		t.Errorf("got pc %#04x, want 0", m.Pc)
	}
	for i, b := range rom {
		if m.Ram[i] != b {
			t.Errorf("ram[%d] = %#02x, want %#02x", i, m.Ram[i], b)
		}
	}
}

func TestMemoryLoadROMTooLarge(t *testing.T) {
	var m Memory
	rom := make([]byte, maxRomSize+1)
	if err := m.LoadROM(rom, 0x0000); err == nil {
		t.Errorf("expected RomSizeError for oversized ROM")
	}
}
