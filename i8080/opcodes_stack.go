package i8080

// Stack, I/O, and machine-control group (spec.md §4.4).

func opNOP(c *CPU) (byte, error) {
	return 4, nil
}

// opHLT parks the processor: Tick will do nothing further until
// Interrupt injects a vector. PC is wound back onto the HLT opcode
// (FetchByte advanced it before dispatch), so PC does not advance past
// HLT; the injected RST pushes the HLT's own address.
func opHLT(c *CPU) (byte, error) {
	c.state = Halted
	c.Memory.Pc--
	return 7, nil
}

func opPUSH(rp *RegisterPair) opFn {
	return func(c *CPU) (byte, error) {
		if err := c.Memory.PushWord(rp.Pair()); err != nil {
			return 0, err
		}
		return 11, nil
	}
}

func opPOP(rp *RegisterPair) opFn {
	return func(c *CPU) (byte, error) {
		w, err := c.Memory.PopWord()
		if err != nil {
			return 0, err
		}
		rp.SetPair(w)
		return 10, nil
	}
}

func opPUSHPSW(c *CPU) (byte, error) {
	if err := c.Memory.PushWord(c.PSW()); err != nil {
		return 0, err
	}
	return 11, nil
}

func opPOPPSW(c *CPU) (byte, error) {
	w, err := c.Memory.PopWord()
	if err != nil {
		return 0, err
	}
	c.SetPSW(w)
	return 10, nil
}

// opXTHL swaps HL with the word on top of the stack, without moving SP.
func opXTHL(c *CPU) (byte, error) {
	top, err := c.Memory.ReadWord(c.Memory.Sp)
	if err != nil {
		return 0, err
	}
	if err := c.Memory.WriteWord(c.Memory.Sp, c.HL.Pair()); err != nil {
		return 0, err
	}
	c.HL.SetPair(top)
	return 18, nil
}

func opSPHL(c *CPU) (byte, error) {
	c.Memory.Sp = c.HL.Pair()
	return 5, nil
}

// Space Invaders I/O ports (spec.md §6):
//
//	IN  0x01 -> port1 (player 1 panel)
//	IN  0x02 -> port2 (player 2 panel + DIP switches)
//	IN  0x03 -> shift register read
//	OUT 0x02 -> shift register offset
//	OUT 0x04 -> shift register load
//	OUT 0x03, 0x05 -> audio triggers, accepted but ignored by the core
//	OUT 0x06 -> watchdog reset, ignored
const (
	portPlayer1    = 0x01
	portPlayer2    = 0x02
	portShiftRead  = 0x03
	portShiftOff   = 0x02
	portShiftLoad  = 0x04
	portAudio1     = 0x03
	portAudio2     = 0x05
	portWatchdog   = 0x06
)

func opIN(c *CPU) (byte, error) {
	port, err := c.Memory.FetchByte()
	if err != nil {
		return 0, err
	}
	switch port {
	case portPlayer1:
		c.A = c.Ports.Port1
	case portPlayer2:
		c.A = c.Ports.Port2
	case portShiftRead:
		c.A = c.Shift.Read()
	default:
		c.A = 0x00
	}
	return 10, nil
}

func opOUT(c *CPU) (byte, error) {
	port, err := c.Memory.FetchByte()
	if err != nil {
		return 0, err
	}
	switch port {
	case portShiftOff:
		c.Shift.SetOffset(c.A)
	case portShiftLoad:
		c.Shift.Load(c.A)
	case portAudio1, portAudio2:
		if c.AudioHook != nil {
			c.AudioHook(port, c.A)
		}
	case portWatchdog:
		// Ignored; no watchdog is modelled.
	}
	return 10, nil
}

func opDI(c *CPU) (byte, error) {
	c.interruptEnable = false
	return 4, nil
}

func opEI(c *CPU) (byte, error) {
	c.interruptEnable = true
	return 4, nil
}
