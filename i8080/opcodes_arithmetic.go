package i8080

// aluOp identifies one of the eight accumulator ALU operations shared
// by the register/memory form (0x80-0xBF) and the immediate form
// (ADI/ACI/SUI/SBI/ANI/XRI/ORI/CPI).
type aluOp int

const (
	aluADD aluOp = iota
	aluADC
	aluSUB
	aluSBB
	aluANA
	aluXRA
	aluORA
	aluCMP
)

// applyALU performs op against operand and updates A and the flags,
// per spec.md §4.4's arithmetic/logic group semantics.
func (c *CPU) applyALU(op aluOp, operand byte) {
	switch op {
	case aluADD, aluADC:
		carryIn := uint16(0)
		if op == aluADC && c.Flags.C {
			carryIn = 1
		}
		result := uint16(c.A) + uint16(operand) + carryIn
		c.Flags.C = result > 0xFF
		c.A = byte(result)
		c.setZSP(c.A)
	case aluSUB, aluSBB:
		borrowIn := uint16(0)
		if op == aluSBB && c.Flags.C {
			borrowIn = 1
		}
		result := uint16(c.A) - uint16(operand) - borrowIn
		c.Flags.C = result > 0xFF // unsigned underflow wrapped into the top byte of a uint16
		c.A = byte(result)
		c.setZSP(c.A)
	case aluANA:
		c.A &= operand
		c.Flags.C = false
		c.setZSP(c.A)
	case aluXRA:
		c.A ^= operand
		c.Flags.C = false
		c.setZSP(c.A)
	case aluORA:
		c.A |= operand
		c.Flags.C = false
		c.setZSP(c.A)
	case aluCMP:
		result := uint16(c.A) - uint16(operand)
		c.Flags.C = result > 0xFF
		c.setZSP(byte(result))
	}
}

func opALU(op aluOp, src reg8) opFn {
	return func(c *CPU) (byte, error) {
		c.applyALU(op, c.getReg8(src))
		if src == regM {
			return 7, nil
		}
		return 4, nil
	}
}

func opALUImm(op aluOp) opFn {
	return func(c *CPU) (byte, error) {
		d8, err := c.Memory.FetchByte()
		if err != nil {
			return 0, err
		}
		c.applyALU(op, d8)
		return 7, nil
	}
}

// opINR increments a byte register or M. Only Z, S, P are touched; C
// is left exactly as it was.
func opINR(dst reg8) opFn {
	return func(c *CPU) (byte, error) {
		v := c.getReg8(dst) + 1
		c.setReg8(dst, v)
		c.setZSP(v)
		if dst == regM {
			return 10, nil
		}
		return 5, nil
	}
}

// opDCR decrements a byte register or M. Only Z, S, P are touched; C
// is left exactly as it was.
func opDCR(dst reg8) opFn {
	return func(c *CPU) (byte, error) {
		v := c.getReg8(dst) - 1
		c.setReg8(dst, v)
		c.setZSP(v)
		if dst == regM {
			return 10, nil
		}
		return 5, nil
	}
}

func opINX(rp *RegisterPair) opFn {
	return func(c *CPU) (byte, error) {
		rp.SetPair(rp.Pair() + 1)
		return 5, nil
	}
}

func opINXSP(c *CPU) (byte, error) {
	c.Memory.Sp++
	return 5, nil
}

func opDCX(rp *RegisterPair) opFn {
	return func(c *CPU) (byte, error) {
		rp.SetPair(rp.Pair() - 1)
		return 5, nil
	}
}

func opDCXSP(c *CPU) (byte, error) {
	c.Memory.Sp--
	return 5, nil
}

// opDAD adds rp into HL as 16-bit unsigned arithmetic, touching only C.
func opDAD(rp *RegisterPair) opFn {
	return func(c *CPU) (byte, error) {
		result := uint32(c.HL.Pair()) + uint32(rp.Pair())
		c.Flags.C = result > 0xFFFF
		c.HL.SetPair(uint16(result))
		return 10, nil
	}
}

func opDADSP(c *CPU) (byte, error) {
	result := uint32(c.HL.Pair()) + uint32(c.Memory.Sp)
	c.Flags.C = result > 0xFFFF
	c.HL.SetPair(uint16(result))
	return 10, nil
}

// opDAA performs binary-coded-decimal adjustment of the accumulator,
// updating all four flags.
func opDAA(c *CPU) (byte, error) {
	lo := c.A & 0x0F
	hi := c.A >> 4
	carry := c.Flags.C

	if lo > 9 {
		lo += 6
	}
	if lo > 0x0F {
		hi += lo >> 4
	}
	if hi > 9 || c.Flags.C {
		hi += 6
		if hi > 0x0F {
			carry = true
		}
	}

	c.A = (hi << 4) | (lo & 0x0F)
	c.Flags.C = carry
	c.setZSP(c.A)
	return 4, nil
}
