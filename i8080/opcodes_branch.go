package i8080

// Branch group (spec.md §4.4). Conditional jumps and calls must still
// consume their two-byte address operand when the condition is false.

func opJMP(c *CPU) (byte, error) {
	addr, err := c.Memory.FetchWord()
	if err != nil {
		return 0, err
	}
	c.Memory.Pc = addr
	return 10, nil
}

func opJcc(cond func(*CPU) bool) opFn {
	return func(c *CPU) (byte, error) {
		addr, err := c.Memory.FetchWord()
		if err != nil {
			return 0, err
		}
		if cond(c) {
			c.Memory.Pc = addr
		}
		return 10, nil
	}
}

func opCALL(c *CPU) (byte, error) {
	addr, err := c.Memory.FetchWord()
	if err != nil {
		return 0, err
	}
	if err := c.Memory.PushWord(c.Memory.Pc); err != nil {
		return 0, err
	}
	c.Memory.Pc = addr
	return 17, nil
}

func opCcc(cond func(*CPU) bool) opFn {
	return func(c *CPU) (byte, error) {
		addr, err := c.Memory.FetchWord()
		if err != nil {
			return 0, err
		}
		if !cond(c) {
			return 11, nil
		}
		if err := c.Memory.PushWord(c.Memory.Pc); err != nil {
			return 0, err
		}
		c.Memory.Pc = addr
		return 17, nil
	}
}

func opRET(c *CPU) (byte, error) {
	addr, err := c.Memory.PopWord()
	if err != nil {
		return 0, err
	}
	c.Memory.Pc = addr
	return 10, nil
}

func opRcc(cond func(*CPU) bool) opFn {
	return func(c *CPU) (byte, error) {
		if !cond(c) {
			return 5, nil
		}
		addr, err := c.Memory.PopWord()
		if err != nil {
			return 0, err
		}
		c.Memory.Pc = addr
		return 11, nil
	}
}

// opRST pushes PC and jumps to 8*n, n in 0..7.
func opRST(n byte) opFn {
	target := uint16(n) * 8
	return func(c *CPU) (byte, error) {
		if err := c.Memory.PushWord(c.Memory.Pc); err != nil {
			return 0, err
		}
		c.Memory.Pc = target
		return 11, nil
	}
}

func opPCHL(c *CPU) (byte, error) {
	c.Memory.Pc = c.HL.Pair()
	return 5, nil
}
