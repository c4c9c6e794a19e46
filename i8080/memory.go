package i8080

const (
	memSize    = 0x10000 // 64 KiB flat address space.
	maxRomSize = 0x2000  // 8 KiB: the largest ROM the Space Invaders sockets accept.
)

// Memory is the 8080's 64 KiB flat byte-addressed RAM, together with
// the two cursors (PC, SP) that walk it. The Space Invaders board
// does not write-protect its ROM region; the core mirrors that and
// leaves enforcement, if any, to the host.
type Memory struct {
	Ram [memSize]byte
	Pc  uint16
	Sp  uint16
}

// ReadByte reads a single byte at addr.
func (m *Memory) ReadByte(addr uint16) (byte, error) {
	return m.Ram[addr], nil
}

// WriteByte writes a single byte at addr.
func (m *Memory) WriteByte(addr uint16, val byte) error {
	m.Ram[addr] = val
	return nil
}

// ReadWord reads a little-endian 16-bit word at addr and addr+1.
// addr+1 must itself be a valid address; at addr == 0xFFFF that would
// run off the end of the 64 KiB space, so this reports IndexError
// rather than silently wrapping to 0x0000.
func (m *Memory) ReadWord(addr uint16) (uint16, error) {
	if addr == 0xFFFF {
		return 0, &IndexError{Addr: uint32(addr) + 1}
	}
	lo := m.Ram[addr]
	hi := m.Ram[addr+1]
	return (uint16(hi) << 8) | uint16(lo), nil
}

// WriteWord writes w as a little-endian 16-bit word at addr and addr+1.
func (m *Memory) WriteWord(addr uint16, w uint16) error {
	if addr == 0xFFFF {
		return &IndexError{Addr: uint32(addr) + 1}
	}
	m.Ram[addr] = byte(w)
	m.Ram[addr+1] = byte(w >> 8)
	return nil
}

// FetchByte reads the byte at PC and advances PC by one.
func (m *Memory) FetchByte() (byte, error) {
	b := m.Ram[m.Pc]
	if m.Pc == 0xFFFF {
		return 0, &ProgramCounterOverflow{}
	}
	m.Pc++
	return b, nil
}

// FetchWord reads the low byte at PC, the high byte at PC+1, advances
// PC by two, and assembles (high<<8)|low. This is the fix for the
// `(high<<8) & low` bug flagged in spec.md §9 — composition is always
// bitwise OR.
func (m *Memory) FetchWord() (uint16, error) {
	lo, err := m.FetchByte()
	if err != nil {
		return 0, err
	}
	hi, err := m.FetchByte()
	if err != nil {
		return 0, err
	}
	return (uint16(hi) << 8) | uint16(lo), nil
}

// PushWord decrements SP by two, then stores w's low byte at SP and
// high byte at SP+1 — the hardware stack grows downward.
func (m *Memory) PushWord(w uint16) error {
	if m.Sp < 2 {
		return &StackPointerOverflow{}
	}
	m.Sp -= 2
	return m.WriteWord(m.Sp, w)
}

// PopWord reads the word at SP, then increments SP by two.
func (m *Memory) PopWord() (uint16, error) {
	if m.Sp > 0xFFFD {
		return 0, &StackPointerOverflow{}
	}
	w, err := m.ReadWord(m.Sp)
	if err != nil {
		return 0, err
	}
	m.Sp += 2
	return w, nil
}

// LoadROM copies up to 8 KiB of machine code into RAM starting at
// base and points PC at base. Space Invaders always loads at 0x0000.
func (m *Memory) LoadROM(rom []byte, base uint16) error {
	if len(rom) > maxRomSize {
		return &RomSizeError{Size: len(rom)}
	}
	copy(m.Ram[base:], rom)
	m.Pc = base
	return nil
}
