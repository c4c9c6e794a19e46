package i8080

import "fmt"

// opLen gives the instruction length in bytes (opcode plus operand) for
// each of the 256 possible opcode values, including the 12 undefined
// ones, which disassemble as a single DB byte.
var opLen [256]byte

// opName gives the mnemonic template for each opcode. "%02X" and
// "%04X" placeholders are filled from the operand bytes by Disassemble.
var opName [256]string

func init() {
	for i := range opLen {
		opLen[i] = 1
	}
	for i := range opName {
		opName[i] = "???"
	}

	regNames := [8]string{"B", "C", "D", "E", "H", "L", "M", "A"}

	for dst := 0; dst < 8; dst++ {
		for src := 0; src < 8; src++ {
			opcode := 0x40 | (dst << 3) | src
			if opcode == 0x76 {
				continue
			}
			opName[opcode] = fmt.Sprintf("MOV %s,%s", regNames[dst], regNames[src])
		}
		opName[0x06|(dst<<3)] = fmt.Sprintf("MVI %s,$%%02X", regNames[dst])
		opLen[0x06|(dst<<3)] = 2
		opName[0x04|(dst<<3)] = fmt.Sprintf("INR %s", regNames[dst])
		opName[0x05|(dst<<3)] = fmt.Sprintf("DCR %s", regNames[dst])
	}

	aluNames := [8]string{"ADD", "ADC", "SUB", "SBB", "ANA", "XRA", "ORA", "CMP"}
	aluImm := [8]string{"ADI", "ACI", "SUI", "SBI", "ANI", "XRI", "ORI", "CPI"}
	immOpcodes := [8]byte{0xC6, 0xCE, 0xD6, 0xDE, 0xE6, 0xEE, 0xF6, 0xFE}
	for i, name := range aluNames {
		for src := 0; src < 8; src++ {
			opName[0x80+i*8+src] = fmt.Sprintf("%s %s", name, regNames[src])
		}
		opName[immOpcodes[i]] = fmt.Sprintf("%s $%%02X", aluImm[i])
		opLen[immOpcodes[i]] = 2
	}

	for n := byte(0); n < 8; n++ {
		opName[0xC7|(n<<3)] = fmt.Sprintf("RST %d", n)
	}

	rpNames := [4]string{"B", "D", "H", "SP"}
	lxi := [4]byte{0x01, 0x11, 0x21, 0x31}
	inx := [4]byte{0x03, 0x13, 0x23, 0x33}
	dcx := [4]byte{0x0B, 0x1B, 0x2B, 0x3B}
	dad := [4]byte{0x09, 0x19, 0x29, 0x39}
	for i, rp := range rpNames {
		opName[lxi[i]] = fmt.Sprintf("LXI %s,$%%04X", rp)
		opLen[lxi[i]] = 3
		opName[inx[i]] = fmt.Sprintf("INX %s", rp)
		opName[dcx[i]] = fmt.Sprintf("DCX %s", rp)
		opName[dad[i]] = fmt.Sprintf("DAD %s", rp)
	}

	type entry struct {
		op   byte
		name string
		len  byte
	}
	for _, e := range []entry{
		{0x00, "NOP", 1}, {0x76, "HLT", 1},
		{0x02, "STAX B", 1}, {0x12, "STAX D", 1},
		{0x0A, "LDAX B", 1}, {0x1A, "LDAX D", 1},
		{0x22, "SHLD $%04X", 3}, {0x2A, "LHLD $%04X", 3},
		{0x32, "STA $%04X", 3}, {0x3A, "LDA $%04X", 3},
		{0x07, "RLC", 1}, {0x0F, "RRC", 1}, {0x17, "RAL", 1}, {0x1F, "RAR", 1},
		{0x27, "DAA", 1}, {0x2F, "CMA", 1}, {0x37, "STC", 1}, {0x3F, "CMC", 1},
		{0xC1, "POP B", 1}, {0xD1, "POP D", 1}, {0xE1, "POP H", 1}, {0xF1, "POP PSW", 1},
		{0xC5, "PUSH B", 1}, {0xD5, "PUSH D", 1}, {0xE5, "PUSH H", 1}, {0xF5, "PUSH PSW", 1},
		{0xC3, "JMP $%04X", 3}, {0xCD, "CALL $%04X", 3}, {0xC9, "RET", 1},
		{0xC2, "JNZ $%04X", 3}, {0xCA, "JZ $%04X", 3}, {0xD2, "JNC $%04X", 3}, {0xDA, "JC $%04X", 3},
		{0xE2, "JPO $%04X", 3}, {0xEA, "JPE $%04X", 3}, {0xF2, "JP $%04X", 3}, {0xFA, "JM $%04X", 3},
		{0xC4, "CNZ $%04X", 3}, {0xCC, "CZ $%04X", 3}, {0xD4, "CNC $%04X", 3}, {0xDC, "CC $%04X", 3},
		{0xE4, "CPO $%04X", 3}, {0xEC, "CPE $%04X", 3}, {0xF4, "CP $%04X", 3}, {0xFC, "CM $%04X", 3},
		{0xC0, "RNZ", 1}, {0xC8, "RZ", 1}, {0xD0, "RNC", 1}, {0xD8, "RC", 1},
		{0xE0, "RPO", 1}, {0xE8, "RPE", 1}, {0xF0, "RP", 1}, {0xF8, "RM", 1},
		{0xE9, "PCHL", 1}, {0xE3, "XTHL", 1}, {0xF9, "SPHL", 1}, {0xEB, "XCHG", 1},
		{0xD3, "OUT $%02X", 2}, {0xDB, "IN $%02X", 2},
		{0xF3, "DI", 1}, {0xFB, "EI", 1},
	} {
		opName[e.op] = e.name
		opLen[e.op] = e.len
	}

	for op := range undefinedOpcodes {
		opName[op] = fmt.Sprintf("DB $%02X", op)
	}
}

// Disassemble renders every instruction between start and stop
// (inclusive) into a map keyed by the address its opcode byte lives at,
// in the same shape as the teacher's own Cpu6502.Disassemble.
func (c *CPU) Disassemble(start, stop uint16) map[uint16]string {
	out := make(map[uint16]string)
	addr := uint32(start)
	for addr <= uint32(stop) {
		lineAddr := uint16(addr)
		opcode := c.Ram[lineAddr]
		n := opLen[opcode]

		var text string
		switch n {
		case 1:
			text = opName[opcode]
		case 2:
			operand := c.Ram[(lineAddr+1)&0xFFFF]
			text = fmt.Sprintf(opName[opcode], operand)
		case 3:
			lo := c.Ram[(lineAddr+1)&0xFFFF]
			hi := c.Ram[(lineAddr+2)&0xFFFF]
			text = fmt.Sprintf(opName[opcode], (uint16(hi)<<8)|uint16(lo))
		}

		out[lineAddr] = fmt.Sprintf("$%04X: %s", lineAddr, text)
		addr += uint32(n)
	}
	return out
}
