package cpu

// flagInputs carries the computed boolean results an instruction's flag
// effects may need. Sub is never "Affected" by any instruction in this
// set (it is always forced Set/Reset/NotAffected), so it has no input
// slot here.
type flagInputs struct {
	zero, halfCarry, carry bool
}

// applyFlags is the single place F is mutated from an instruction's
// declared effects: a flag is forced to 0 or 1, left untouched, or set
// from the corresponding computed input.
func (c *CPU) applyFlags(fx FlagEffects, in flagInputs) {
	switch fx.Zero {
	case Reset:
		c.Registers.SetFlag(ZeroFlag, false)
	case Set:
		c.Registers.SetFlag(ZeroFlag, true)
	case Affected:
		c.Registers.SetFlag(ZeroFlag, in.zero)
	}
	switch fx.Sub {
	case Reset:
		c.Registers.SetFlag(SubFlag, false)
	case Set:
		c.Registers.SetFlag(SubFlag, true)
	}
	switch fx.HalfCarry {
	case Reset:
		c.Registers.SetFlag(HalfCarryFlag, false)
	case Set:
		c.Registers.SetFlag(HalfCarryFlag, true)
	case Affected:
		c.Registers.SetFlag(HalfCarryFlag, in.halfCarry)
	}
	switch fx.Carry {
	case Reset:
		c.Registers.SetFlag(CarryFlag, false)
	case Set:
		c.Registers.SetFlag(CarryFlag, true)
	case Affected:
		c.Registers.SetFlag(CarryFlag, in.carry)
	}
}
