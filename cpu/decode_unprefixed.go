package cpu

// Unprefixed is the 256-entry decode table for unprefixed opcodes. Array,
// not map: the domain is exactly [0,255], so a direct index beats a hash
// lookup and makes "is this opcode defined" a nil check. Entries the real
// hardware leaves undefined (D3, DB, DD, E3, E4, EB, EC, ED, F4, FC) stay
// nil; so does FD, which this core repurposes as the end-of-program
// sentinel and never reaches the table at all (Tick checks for it first).
var Unprefixed [256]*Instruction

func init() {
	// 0x00-0x3F: irregular block of NOP, 16-bit immediate loads, register
	// INC/DEC, relative jumps and the four single-register rotates.
	entries := map[byte]*Instruction{
		0x00: {OpCode: OpCode{Mnemonic: NOP}, Length: 1, Cycles: 4, Flags: noFlags},
		0x01: {OpCode: OpCode{Mnemonic: LD16, Dst: BC, Src: D16}, Length: 3, Cycles: 12, Flags: noFlags},
		0x02: {OpCode: OpCode{Mnemonic: LD8, Dst: BC, Src: A}, Length: 1, Cycles: 8, Flags: noFlags},
		0x03: {OpCode: OpCode{Mnemonic: INC16, Dst: BC}, Length: 1, Cycles: 8, Flags: noFlags},
		0x04: {OpCode: OpCode{Mnemonic: INC, Dst: B}, Length: 1, Cycles: 4, Flags: incFlags},
		0x05: {OpCode: OpCode{Mnemonic: DEC, Dst: B}, Length: 1, Cycles: 4, Flags: decFlags},
		0x06: {OpCode: OpCode{Mnemonic: LD8, Dst: B, Src: D8}, Length: 2, Cycles: 8, Flags: noFlags},
		0x07: {OpCode: OpCode{Mnemonic: RLCA}, Length: 1, Cycles: 4, Flags: rotateAFlags},

		0x08: {OpCode: OpCode{Mnemonic: LDA16SP}, Length: 3, Cycles: 20, Flags: noFlags},
		0x09: {OpCode: OpCode{Mnemonic: ADDHL, Src: BC}, Length: 1, Cycles: 8, Flags: add16Flags},
		0x0A: {OpCode: OpCode{Mnemonic: LD8, Dst: A, Src: BC}, Length: 1, Cycles: 8, Flags: noFlags},
		0x0B: {OpCode: OpCode{Mnemonic: DEC16, Dst: BC}, Length: 1, Cycles: 8, Flags: noFlags},
		0x0C: {OpCode: OpCode{Mnemonic: INC, Dst: C}, Length: 1, Cycles: 4, Flags: incFlags},
		0x0D: {OpCode: OpCode{Mnemonic: DEC, Dst: C}, Length: 1, Cycles: 4, Flags: decFlags},
		0x0E: {OpCode: OpCode{Mnemonic: LD8, Dst: C, Src: D8}, Length: 2, Cycles: 8, Flags: noFlags},
		0x0F: {OpCode: OpCode{Mnemonic: RRCA}, Length: 1, Cycles: 4, Flags: rotateAFlags},

		0x10: {OpCode: OpCode{Mnemonic: STOP}, Length: 2, Cycles: 4, Flags: noFlags},
		0x11: {OpCode: OpCode{Mnemonic: LD16, Dst: DE, Src: D16}, Length: 3, Cycles: 12, Flags: noFlags},
		0x12: {OpCode: OpCode{Mnemonic: LD8, Dst: DE, Src: A}, Length: 1, Cycles: 8, Flags: noFlags},
		0x13: {OpCode: OpCode{Mnemonic: INC16, Dst: DE}, Length: 1, Cycles: 8, Flags: noFlags},
		0x14: {OpCode: OpCode{Mnemonic: INC, Dst: D}, Length: 1, Cycles: 4, Flags: incFlags},
		0x15: {OpCode: OpCode{Mnemonic: DEC, Dst: D}, Length: 1, Cycles: 4, Flags: decFlags},
		0x16: {OpCode: OpCode{Mnemonic: LD8, Dst: D, Src: D8}, Length: 2, Cycles: 8, Flags: noFlags},
		0x17: {OpCode: OpCode{Mnemonic: RLA}, Length: 1, Cycles: 4, Flags: rotateAFlags},

		0x18: {OpCode: OpCode{Mnemonic: JR}, Length: 2, Cycles: 12, Flags: noFlags},
		0x19: {OpCode: OpCode{Mnemonic: ADDHL, Src: DE}, Length: 1, Cycles: 8, Flags: add16Flags},
		0x1A: {OpCode: OpCode{Mnemonic: LD8, Dst: A, Src: DE}, Length: 1, Cycles: 8, Flags: noFlags},
		0x1B: {OpCode: OpCode{Mnemonic: DEC16, Dst: DE}, Length: 1, Cycles: 8, Flags: noFlags},
		0x1C: {OpCode: OpCode{Mnemonic: INC, Dst: E}, Length: 1, Cycles: 4, Flags: incFlags},
		0x1D: {OpCode: OpCode{Mnemonic: DEC, Dst: E}, Length: 1, Cycles: 4, Flags: decFlags},
		0x1E: {OpCode: OpCode{Mnemonic: LD8, Dst: E, Src: D8}, Length: 2, Cycles: 8, Flags: noFlags},
		0x1F: {OpCode: OpCode{Mnemonic: RRA}, Length: 1, Cycles: 4, Flags: rotateAFlags},

		0x20: {OpCode: OpCode{Mnemonic: JR, Conditional: true, Condition: NotZero}, Length: 2, Cycles: 12, OptionalCycles: 8, Flags: noFlags},
		0x21: {OpCode: OpCode{Mnemonic: LD16, Dst: HL, Src: D16}, Length: 3, Cycles: 12, Flags: noFlags},
		0x22: {OpCode: OpCode{Mnemonic: LD8, Dst: HLP, Src: A}, Length: 1, Cycles: 8, Flags: noFlags},
		0x23: {OpCode: OpCode{Mnemonic: INC16, Dst: HL}, Length: 1, Cycles: 8, Flags: noFlags},
		0x24: {OpCode: OpCode{Mnemonic: INC, Dst: H}, Length: 1, Cycles: 4, Flags: incFlags},
		0x25: {OpCode: OpCode{Mnemonic: DEC, Dst: H}, Length: 1, Cycles: 4, Flags: decFlags},
		0x26: {OpCode: OpCode{Mnemonic: LD8, Dst: H, Src: D8}, Length: 2, Cycles: 8, Flags: noFlags},
		0x27: {OpCode: OpCode{Mnemonic: DAA}, Length: 1, Cycles: 4, Flags: daaFlags},

		0x28: {OpCode: OpCode{Mnemonic: JR, Conditional: true, Condition: ZeroFlag}, Length: 2, Cycles: 12, OptionalCycles: 8, Flags: noFlags},
		0x29: {OpCode: OpCode{Mnemonic: ADDHL, Src: HL}, Length: 1, Cycles: 8, Flags: add16Flags},
		0x2A: {OpCode: OpCode{Mnemonic: LD8, Dst: A, Src: HLP}, Length: 1, Cycles: 8, Flags: noFlags},
		0x2B: {OpCode: OpCode{Mnemonic: DEC16, Dst: HL}, Length: 1, Cycles: 8, Flags: noFlags},
		0x2C: {OpCode: OpCode{Mnemonic: INC, Dst: L}, Length: 1, Cycles: 4, Flags: incFlags},
		0x2D: {OpCode: OpCode{Mnemonic: DEC, Dst: L}, Length: 1, Cycles: 4, Flags: decFlags},
		0x2E: {OpCode: OpCode{Mnemonic: LD8, Dst: L, Src: D8}, Length: 2, Cycles: 8, Flags: noFlags},
		0x2F: {OpCode: OpCode{Mnemonic: CPL}, Length: 1, Cycles: 4, Flags: cplFlags},

		0x30: {OpCode: OpCode{Mnemonic: JR, Conditional: true, Condition: NotCarry}, Length: 2, Cycles: 12, OptionalCycles: 8, Flags: noFlags},
		0x31: {OpCode: OpCode{Mnemonic: LD16, Dst: SP, Src: D16}, Length: 3, Cycles: 12, Flags: noFlags},
		0x32: {OpCode: OpCode{Mnemonic: LD8, Dst: HLM, Src: A}, Length: 1, Cycles: 8, Flags: noFlags},
		0x33: {OpCode: OpCode{Mnemonic: INC16, Dst: SP}, Length: 1, Cycles: 8, Flags: noFlags},
		0x34: {OpCode: OpCode{Mnemonic: INC, Dst: HL}, Length: 1, Cycles: 12, Flags: incFlags},
		0x35: {OpCode: OpCode{Mnemonic: DEC, Dst: HL}, Length: 1, Cycles: 12, Flags: decFlags},
		0x36: {OpCode: OpCode{Mnemonic: LD8, Dst: HL, Src: D8}, Length: 2, Cycles: 12, Flags: noFlags},
		0x37: {OpCode: OpCode{Mnemonic: SCF}, Length: 1, Cycles: 4, Flags: scfFlags},

		0x38: {OpCode: OpCode{Mnemonic: JR, Conditional: true, Condition: CarryFlag}, Length: 2, Cycles: 12, OptionalCycles: 8, Flags: noFlags},
		0x39: {OpCode: OpCode{Mnemonic: ADDHL, Src: SP}, Length: 1, Cycles: 8, Flags: add16Flags},
		0x3A: {OpCode: OpCode{Mnemonic: LD8, Dst: A, Src: HLM}, Length: 1, Cycles: 8, Flags: noFlags},
		0x3B: {OpCode: OpCode{Mnemonic: DEC16, Dst: SP}, Length: 1, Cycles: 8, Flags: noFlags},
		0x3C: {OpCode: OpCode{Mnemonic: INC, Dst: A}, Length: 1, Cycles: 4, Flags: incFlags},
		0x3D: {OpCode: OpCode{Mnemonic: DEC, Dst: A}, Length: 1, Cycles: 4, Flags: decFlags},
		0x3E: {OpCode: OpCode{Mnemonic: LD8, Dst: A, Src: D8}, Length: 2, Cycles: 8, Flags: noFlags},
		0x3F: {OpCode: OpCode{Mnemonic: CCF}, Length: 1, Cycles: 4, Flags: ccfFlags},

		// 0xC0-0xFF: stack/control transfer, RST, the remaining
		// immediate ALU forms, and the scattered LD addressing modes
		// that don't fit the 0x40-0xBF grids.
		0xC0: {OpCode: OpCode{Mnemonic: RET, Conditional: true, Condition: NotZero}, Length: 1, Cycles: 20, OptionalCycles: 8, Flags: noFlags},
		0xC1: {OpCode: OpCode{Mnemonic: POP, Dst: BC}, Length: 1, Cycles: 12, Flags: noFlags},
		0xC2: {OpCode: OpCode{Mnemonic: JP, Conditional: true, Condition: NotZero}, Length: 3, Cycles: 16, OptionalCycles: 12, Flags: noFlags},
		0xC3: {OpCode: OpCode{Mnemonic: JP}, Length: 3, Cycles: 16, Flags: noFlags},
		0xC4: {OpCode: OpCode{Mnemonic: CALL, Conditional: true, Condition: NotZero}, Length: 3, Cycles: 24, OptionalCycles: 12, Flags: noFlags},
		0xC5: {OpCode: OpCode{Mnemonic: PUSH, Dst: BC}, Length: 1, Cycles: 16, Flags: noFlags},
		0xC6: {OpCode: OpCode{Mnemonic: ADD, Src: D8}, Length: 2, Cycles: 8, Flags: aluFlags},
		0xC7: {OpCode: OpCode{Mnemonic: RST, Vector: 0x00}, Length: 1, Cycles: 16, Flags: noFlags},
		0xC8: {OpCode: OpCode{Mnemonic: RET, Conditional: true, Condition: ZeroFlag}, Length: 1, Cycles: 20, OptionalCycles: 8, Flags: noFlags},
		0xC9: {OpCode: OpCode{Mnemonic: RET}, Length: 1, Cycles: 16, Flags: noFlags},
		0xCA: {OpCode: OpCode{Mnemonic: JP, Conditional: true, Condition: ZeroFlag}, Length: 3, Cycles: 16, OptionalCycles: 12, Flags: noFlags},
		0xCB: {OpCode: OpCode{Mnemonic: CB}, Length: 1, Cycles: 4, Flags: noFlags},
		0xCC: {OpCode: OpCode{Mnemonic: CALL, Conditional: true, Condition: ZeroFlag}, Length: 3, Cycles: 24, OptionalCycles: 12, Flags: noFlags},
		0xCD: {OpCode: OpCode{Mnemonic: CALL}, Length: 3, Cycles: 24, Flags: noFlags},
		0xCE: {OpCode: OpCode{Mnemonic: ADC, Src: D8}, Length: 2, Cycles: 8, Flags: aluFlags},
		0xCF: {OpCode: OpCode{Mnemonic: RST, Vector: 0x08}, Length: 1, Cycles: 16, Flags: noFlags},

		0xD0: {OpCode: OpCode{Mnemonic: RET, Conditional: true, Condition: NotCarry}, Length: 1, Cycles: 20, OptionalCycles: 8, Flags: noFlags},
		0xD1: {OpCode: OpCode{Mnemonic: POP, Dst: DE}, Length: 1, Cycles: 12, Flags: noFlags},
		0xD2: {OpCode: OpCode{Mnemonic: JP, Conditional: true, Condition: NotCarry}, Length: 3, Cycles: 16, OptionalCycles: 12, Flags: noFlags},
		0xD4: {OpCode: OpCode{Mnemonic: CALL, Conditional: true, Condition: NotCarry}, Length: 3, Cycles: 24, OptionalCycles: 12, Flags: noFlags},
		0xD5: {OpCode: OpCode{Mnemonic: PUSH, Dst: DE}, Length: 1, Cycles: 16, Flags: noFlags},
		0xD6: {OpCode: OpCode{Mnemonic: SUB, Src: D8}, Length: 2, Cycles: 8, Flags: subFlags},
		0xD7: {OpCode: OpCode{Mnemonic: RST, Vector: 0x10}, Length: 1, Cycles: 16, Flags: noFlags},
		0xD8: {OpCode: OpCode{Mnemonic: RET, Conditional: true, Condition: CarryFlag}, Length: 1, Cycles: 20, OptionalCycles: 8, Flags: noFlags},
		0xD9: {OpCode: OpCode{Mnemonic: RETI}, Length: 1, Cycles: 16, Flags: noFlags},
		0xDA: {OpCode: OpCode{Mnemonic: JP, Conditional: true, Condition: CarryFlag}, Length: 3, Cycles: 16, OptionalCycles: 12, Flags: noFlags},
		0xDC: {OpCode: OpCode{Mnemonic: CALL, Conditional: true, Condition: CarryFlag}, Length: 3, Cycles: 24, OptionalCycles: 12, Flags: noFlags},
		0xDE: {OpCode: OpCode{Mnemonic: SBC, Src: D8}, Length: 2, Cycles: 8, Flags: subFlags},
		0xDF: {OpCode: OpCode{Mnemonic: RST, Vector: 0x18}, Length: 1, Cycles: 16, Flags: noFlags},

		0xE0: {OpCode: OpCode{Mnemonic: LDH, Dst: A8, Src: A}, Length: 2, Cycles: 12, Flags: noFlags},
		0xE1: {OpCode: OpCode{Mnemonic: POP, Dst: HL}, Length: 1, Cycles: 12, Flags: noFlags},
		0xE2: {OpCode: OpCode{Mnemonic: LDH, Dst: C, Src: A}, Length: 1, Cycles: 8, Flags: noFlags},
		0xE5: {OpCode: OpCode{Mnemonic: PUSH, Dst: HL}, Length: 1, Cycles: 16, Flags: noFlags},
		0xE6: {OpCode: OpCode{Mnemonic: AND, Src: D8}, Length: 2, Cycles: 8, Flags: andFlags},
		0xE7: {OpCode: OpCode{Mnemonic: RST, Vector: 0x20}, Length: 1, Cycles: 16, Flags: noFlags},
		0xE8: {OpCode: OpCode{Mnemonic: ADDSP}, Length: 2, Cycles: 16, Flags: addSPFlags},
		0xE9: {OpCode: OpCode{Mnemonic: JPHL}, Length: 1, Cycles: 4, Flags: noFlags},
		0xEA: {OpCode: OpCode{Mnemonic: LD8, Dst: A16, Src: A}, Length: 3, Cycles: 16, Flags: noFlags},
		0xEE: {OpCode: OpCode{Mnemonic: XOR, Src: D8}, Length: 2, Cycles: 8, Flags: orFlags},
		0xEF: {OpCode: OpCode{Mnemonic: RST, Vector: 0x28}, Length: 1, Cycles: 16, Flags: noFlags},

		0xF0: {OpCode: OpCode{Mnemonic: LDH, Dst: A, Src: A8}, Length: 2, Cycles: 12, Flags: noFlags},
		0xF1: {OpCode: OpCode{Mnemonic: POP, Dst: AF}, Length: 1, Cycles: 12, Flags: noFlags},
		0xF2: {OpCode: OpCode{Mnemonic: LDH, Dst: A, Src: C}, Length: 1, Cycles: 8, Flags: noFlags},
		0xF3: {OpCode: OpCode{Mnemonic: DI}, Length: 1, Cycles: 4, Flags: noFlags},
		0xF5: {OpCode: OpCode{Mnemonic: PUSH, Dst: AF}, Length: 1, Cycles: 16, Flags: noFlags},
		0xF6: {OpCode: OpCode{Mnemonic: OR, Src: D8}, Length: 2, Cycles: 8, Flags: orFlags},
		0xF7: {OpCode: OpCode{Mnemonic: RST, Vector: 0x30}, Length: 1, Cycles: 16, Flags: noFlags},
		0xF8: {OpCode: OpCode{Mnemonic: LDHLSP}, Length: 2, Cycles: 12, Flags: addSPFlags},
		0xF9: {OpCode: OpCode{Mnemonic: LDSPHL}, Length: 1, Cycles: 8, Flags: noFlags},
		0xFA: {OpCode: OpCode{Mnemonic: LD8, Dst: A, Src: A16}, Length: 3, Cycles: 16, Flags: noFlags},
		0xFB: {OpCode: OpCode{Mnemonic: EI}, Length: 1, Cycles: 4, Flags: noFlags},
		0xFE: {OpCode: OpCode{Mnemonic: CP, Src: D8}, Length: 2, Cycles: 8, Flags: subFlags},
		0xFF: {OpCode: OpCode{Mnemonic: RST, Vector: 0x38}, Length: 1, Cycles: 16, Flags: noFlags},
	}
	for b, inst := range entries {
		Unprefixed[b] = inst
	}

	// 0x40-0x7F: LD r,r' for every (dst,src) pair in the 8-register
	// column order B,C,D,E,H,L,(HL),A. 0x76 (dst=src=(HL)) is HALT, not
	// LD (HL),(HL).
	for dstIdx, dst := range cbColumns {
		for srcIdx, src := range cbColumns {
			b := byte(0x40 + dstIdx*8 + srcIdx)
			if b == 0x76 {
				Unprefixed[b] = &Instruction{OpCode: OpCode{Mnemonic: HALT}, Length: 1, Cycles: 4, Flags: noFlags}
				continue
			}
			cycles := byte(4)
			if dst == HL || src == HL {
				cycles = 8
			}
			Unprefixed[b] = &Instruction{
				OpCode: OpCode{Mnemonic: LD8, Dst: dst, Src: src},
				Length: 1,
				Cycles: cycles,
				Flags:  noFlags,
			}
		}
	}

	// 0x80-0xBF: ALU A,r for every 8-register column, one row per
	// operation in hardware encoding order.
	aluOps := [8]struct {
		mnemonic Mnemonic
		flags    FlagEffects
	}{
		{ADD, aluFlags},
		{ADC, aluFlags},
		{SUB, subFlags},
		{SBC, subFlags},
		{AND, andFlags},
		{XOR, orFlags},
		{OR, orFlags},
		{CP, subFlags},
	}
	for row, op := range aluOps {
		for col, src := range cbColumns {
			cycles := byte(4)
			if src == HL {
				cycles = 8
			}
			Unprefixed[0x80+row*8+col] = &Instruction{
				OpCode: OpCode{Mnemonic: op.mnemonic, Src: src},
				Length: 1,
				Cycles: cycles,
				Flags:  op.flags,
			}
		}
	}
}
