package cpu

// Prefixed is the 256-entry decode table for CB-prefixed opcodes. Unlike
// Unprefixed, every row of this table follows one of three uniform
// shapes (rotate/shift, BIT, RES/SET), each varying only by the 8-register
// column and, for BIT/RES/SET, the bit index — so the table is built with
// three small loops rather than 256 hand-written literals.
var Prefixed [256]*Instruction

// cbColumns is the register selected by the low 3 bits of a CB opcode.
var cbColumns = [8]Target{B, C, D, E, H, L, HL, A}

func init() {
	rotateShift := [8]Mnemonic{RLC, RRC, RL, RR, SLA, SRA, SWAP, SRL}
	for row, m := range rotateShift {
		for col, t := range cbColumns {
			flags := rotateFlags
			if m == SWAP {
				flags = swapFlags
			}
			cycles := byte(8)
			if t == HL {
				cycles = 16
			}
			Prefixed[row<<3|col] = &Instruction{
				OpCode: OpCode{Mnemonic: m, Dst: t},
				Length: 2,
				Cycles: cycles,
				Flags:  flags,
			}
		}
	}

	for bit := 0; bit < 8; bit++ {
		for col, t := range cbColumns {
			cycles := byte(8)
			if t == HL {
				cycles = 12
			}
			Prefixed[0x40+bit*8+col] = &Instruction{
				OpCode: OpCode{Mnemonic: BIT, Dst: t, Bit: uint8(bit)},
				Length: 2,
				Cycles: cycles,
				Flags:  bitFlags,
			}
		}
	}

	for bit := 0; bit < 8; bit++ {
		for col, t := range cbColumns {
			cycles := byte(8)
			if t == HL {
				cycles = 16
			}
			Prefixed[0x80+bit*8+col] = &Instruction{
				OpCode: OpCode{Mnemonic: RES, Dst: t, Bit: uint8(bit)},
				Length: 2,
				Cycles: cycles,
				Flags:  noFlags,
			}
			Prefixed[0xC0+bit*8+col] = &Instruction{
				OpCode: OpCode{Mnemonic: SET, Dst: t, Bit: uint8(bit)},
				Length: 2,
				Cycles: cycles,
				Flags:  noFlags,
			}
		}
	}
}
