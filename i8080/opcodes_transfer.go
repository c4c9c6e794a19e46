package i8080

// Data transfer group (spec.md §4.4). None of these instructions
// touch any flag.

func opMVI(dst reg8) opFn {
	return func(c *CPU) (byte, error) {
		d8, err := c.Memory.FetchByte()
		if err != nil {
			return 0, err
		}
		c.setReg8(dst, d8)
		return cyclesNotTaken[0x06|(byte(dst)<<3)], nil
	}
}

func opLXI(rp *RegisterPair) opFn {
	return func(c *CPU) (byte, error) {
		d16, err := c.Memory.FetchWord()
		if err != nil {
			return 0, err
		}
		rp.SetPair(d16)
		return 10, nil
	}
}

func opLXISP(c *CPU) (byte, error) {
	d16, err := c.Memory.FetchWord()
	if err != nil {
		return 0, err
	}
	c.Memory.Sp = d16
	return 10, nil
}

func opMOV(dst, src reg8) opFn {
	return func(c *CPU) (byte, error) {
		c.setReg8(dst, c.getReg8(src))
		if dst == regM || src == regM {
			return 7, nil
		}
		return 5, nil
	}
}

func opLDA(c *CPU) (byte, error) {
	addr, err := c.Memory.FetchWord()
	if err != nil {
		return 0, err
	}
	c.A, _ = c.Memory.ReadByte(addr)
	return 13, nil
}

func opSTA(c *CPU) (byte, error) {
	addr, err := c.Memory.FetchWord()
	if err != nil {
		return 0, err
	}
	_ = c.Memory.WriteByte(addr, c.A)
	return 13, nil
}

func opLHLD(c *CPU) (byte, error) {
	addr, err := c.Memory.FetchWord()
	if err != nil {
		return 0, err
	}
	w, err := c.Memory.ReadWord(addr)
	if err != nil {
		return 0, err
	}
	c.HL.SetPair(w)
	return 16, nil
}

func opSHLD(c *CPU) (byte, error) {
	addr, err := c.Memory.FetchWord()
	if err != nil {
		return 0, err
	}
	if err := c.Memory.WriteWord(addr, c.HL.Pair()); err != nil {
		return 0, err
	}
	return 16, nil
}

func opLDAX(rp *RegisterPair) opFn {
	return func(c *CPU) (byte, error) {
		c.A, _ = c.Memory.ReadByte(rp.Pair())
		return 7, nil
	}
}

func opSTAX(rp *RegisterPair) opFn {
	return func(c *CPU) (byte, error) {
		_ = c.Memory.WriteByte(rp.Pair(), c.A)
		return 7, nil
	}
}

func opXCHG(c *CPU) (byte, error) {
	c.DE, c.HL = c.HL, c.DE
	return 5, nil
}
