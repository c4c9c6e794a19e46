package i8080

import "fmt"

// RomSizeError is returned by LoadROM when the supplied image is larger
// than the 8 KiB the Space Invaders board's ROM sockets can hold.
type RomSizeError struct {
	Size int
}

func (e *RomSizeError) Error() string {
	return fmt.Sprintf("i8080: ROM too large: %d bytes (max %d)", e.Size, maxRomSize)
}

// IndexError is returned whenever a memory access falls outside the
// 64 KiB address space.
type IndexError struct {
	Addr uint32
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("i8080: address out of range: %#06x", e.Addr)
}

// ProgramCounterOverflow is returned when advancing PC would carry it
// past 0xFFFF.
type ProgramCounterOverflow struct{}

func (e *ProgramCounterOverflow) Error() string {
	return "i8080: program counter overflow"
}

// StackPointerOverflow is returned when a push or pop would carry SP
// past the 16-bit boundary in either direction.
type StackPointerOverflow struct{}

func (e *StackPointerOverflow) Error() string {
	return "i8080: stack pointer overflow"
}

// OpcodeError is returned by Tick for any of the 12 byte
// values that do not correspond to a documented 8080 instruction.
type OpcodeError struct {
	Opcode byte
}

func (e *OpcodeError) Error() string {
	return fmt.Sprintf("i8080: undefined opcode: %#02x", e.Opcode)
}
