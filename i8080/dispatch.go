package i8080

// buildOpcodeTable wires every documented opcode to its opFn. The MOV
// and ALU families are regular enough (spec.md §9: "the 8080 opcode
// map is highly regular ... expressible as (group, src, dst) tuples")
// that they are generated by loops over reg8 codes rather than written
// out 64 times each; everything else is one line per opcode, in the
// same flat-table style as the teacher's InstLookup.
func (c *CPU) buildOpcodeTable() {
	t := &c.opcodes

	// Data transfer group.
	t[0x01] = opLXI(&c.BC)
	t[0x11] = opLXI(&c.DE)
	t[0x21] = opLXI(&c.HL)
	t[0x31] = opLXISP
	t[0x0A] = opLDAX(&c.BC)
	t[0x1A] = opLDAX(&c.DE)
	t[0x02] = opSTAX(&c.BC)
	t[0x12] = opSTAX(&c.DE)
	t[0x2A] = opLHLD
	t[0x22] = opSHLD
	t[0x3A] = opLDA
	t[0x32] = opSTA
	t[0xEB] = opXCHG

	for code := reg8(0); code <= regA; code++ {
		t[0x06|(byte(code)<<3)] = opMVI(code)
	}

	for dst := reg8(0); dst <= regA; dst++ {
		for src := reg8(0); src <= regA; src++ {
			opcode := 0x40 | (byte(dst) << 3) | byte(src)
			if opcode == 0x76 { // MOV M,M is repurposed as HLT.
				continue
			}
			t[opcode] = opMOV(dst, src)
		}
	}

	// Arithmetic group.
	for code := reg8(0); code <= regA; code++ {
		t[0x80|byte(code)] = opALU(aluADD, code)
		t[0x88|byte(code)] = opALU(aluADC, code)
		t[0x90|byte(code)] = opALU(aluSUB, code)
		t[0x98|byte(code)] = opALU(aluSBB, code)
		t[0xA0|byte(code)] = opALU(aluANA, code)
		t[0xA8|byte(code)] = opALU(aluXRA, code)
		t[0xB0|byte(code)] = opALU(aluORA, code)
		t[0xB8|byte(code)] = opALU(aluCMP, code)
		t[0x04|(byte(code)<<3)] = opINR(code)
		t[0x05|(byte(code)<<3)] = opDCR(code)
	}
	t[0xC6] = opALUImm(aluADD)
	t[0xCE] = opALUImm(aluADC)
	t[0xD6] = opALUImm(aluSUB)
	t[0xDE] = opALUImm(aluSBB)
	t[0xE6] = opALUImm(aluANA)
	t[0xEE] = opALUImm(aluXRA)
	t[0xF6] = opALUImm(aluORA)
	t[0xFE] = opALUImm(aluCMP)

	t[0x03] = opINX(&c.BC)
	t[0x13] = opINX(&c.DE)
	t[0x23] = opINX(&c.HL)
	t[0x33] = opINXSP
	t[0x0B] = opDCX(&c.BC)
	t[0x1B] = opDCX(&c.DE)
	t[0x2B] = opDCX(&c.HL)
	t[0x3B] = opDCXSP
	t[0x09] = opDAD(&c.BC)
	t[0x19] = opDAD(&c.DE)
	t[0x29] = opDAD(&c.HL)
	t[0x39] = opDADSP
	t[0x27] = opDAA

	// Logic group.
	t[0x07] = opRLC
	t[0x0F] = opRRC
	t[0x17] = opRAL
	t[0x1F] = opRAR
	t[0x2F] = opCMA
	t[0x37] = opSTC
	t[0x3F] = opCMC

	// Branch group.
	t[0xC3] = opJMP
	t[0xC2] = opJcc(func(c *CPU) bool { return !c.Flags.Z })
	t[0xCA] = opJcc(func(c *CPU) bool { return c.Flags.Z })
	t[0xD2] = opJcc(func(c *CPU) bool { return !c.Flags.C })
	t[0xDA] = opJcc(func(c *CPU) bool { return c.Flags.C })
	t[0xE2] = opJcc(func(c *CPU) bool { return !c.Flags.P })
	t[0xEA] = opJcc(func(c *CPU) bool { return c.Flags.P })
	t[0xF2] = opJcc(func(c *CPU) bool { return !c.Flags.S })
	t[0xFA] = opJcc(func(c *CPU) bool { return c.Flags.S })

	t[0xCD] = opCALL
	t[0xC4] = opCcc(func(c *CPU) bool { return !c.Flags.Z })
	t[0xCC] = opCcc(func(c *CPU) bool { return c.Flags.Z })
	t[0xD4] = opCcc(func(c *CPU) bool { return !c.Flags.C })
	t[0xDC] = opCcc(func(c *CPU) bool { return c.Flags.C })
	t[0xE4] = opCcc(func(c *CPU) bool { return !c.Flags.P })
	t[0xEC] = opCcc(func(c *CPU) bool { return c.Flags.P })
	t[0xF4] = opCcc(func(c *CPU) bool { return !c.Flags.S })
	t[0xFC] = opCcc(func(c *CPU) bool { return c.Flags.S })

	t[0xC9] = opRET
	t[0xC0] = opRcc(func(c *CPU) bool { return !c.Flags.Z })
	t[0xC8] = opRcc(func(c *CPU) bool { return c.Flags.Z })
	t[0xD0] = opRcc(func(c *CPU) bool { return !c.Flags.C })
	t[0xD8] = opRcc(func(c *CPU) bool { return c.Flags.C })
	t[0xE0] = opRcc(func(c *CPU) bool { return !c.Flags.P })
	t[0xE8] = opRcc(func(c *CPU) bool { return c.Flags.P })
	t[0xF0] = opRcc(func(c *CPU) bool { return !c.Flags.S })
	t[0xF8] = opRcc(func(c *CPU) bool { return c.Flags.S })

	for n := byte(0); n < 8; n++ {
		t[0xC7|(n<<3)] = opRST(n)
	}
	t[0xE9] = opPCHL

	// Stack, I/O, and machine-control group.
	t[0x00] = opNOP
	t[0x76] = opHLT
	t[0xC1] = opPOP(&c.BC)
	t[0xD1] = opPOP(&c.DE)
	t[0xE1] = opPOP(&c.HL)
	t[0xF1] = opPOPPSW
	t[0xC5] = opPUSH(&c.BC)
	t[0xD5] = opPUSH(&c.DE)
	t[0xE5] = opPUSH(&c.HL)
	t[0xF5] = opPUSHPSW
	t[0xE3] = opXTHL
	t[0xF9] = opSPHL
	t[0xD3] = opOUT
	t[0xDB] = opIN
	t[0xF3] = opDI
	t[0xFB] = opEI
}
