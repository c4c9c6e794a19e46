package i8080

// reg8 identifies one operand of the 8080's regular 3-bit register
// field: B, C, D, E, H, L, M (memory at HL), A — the same (group, src,
// dst) decomposition spec.md §9 notes the opcode map supports, used
// here to keep the MOV/ALU/INR/DCR families from spec.md §4.4 from
// needing one hand-written case per opcode.
type reg8 int

const (
	regB reg8 = iota
	regC
	regD
	regE
	regH
	regL
	regM
	regA
)

// getReg8 reads the value named by code.
func (c *CPU) getReg8(code reg8) byte {
	switch code {
	case regB:
		return c.BC.High
	case regC:
		return c.BC.Low
	case regD:
		return c.DE.High
	case regE:
		return c.DE.Low
	case regH:
		return c.HL.High
	case regL:
		return c.HL.Low
	case regM:
		b, _ := c.Memory.ReadByte(c.HL.Pair())
		return b
	default: // regA
		return c.A
	}
}

// setReg8 writes val to the register named by code.
func (c *CPU) setReg8(code reg8, val byte) {
	switch code {
	case regB:
		c.BC.High = val
	case regC:
		c.BC.Low = val
	case regD:
		c.DE.High = val
	case regE:
		c.DE.Low = val
	case regH:
		c.HL.High = val
	case regL:
		c.HL.Low = val
	case regM:
		_ = c.Memory.WriteByte(c.HL.Pair(), val)
	default: // regA
		c.A = val
	}
}
