package cpu

// Shared flag-effect tuples, named after the instruction family they
// belong to. Declaring them once keeps the decode tables' literals short
// and keeps the flag semantics in one place per family.
var (
	noFlags = FlagEffects{}

	aluFlags = FlagEffects{Zero: Affected, Sub: Reset, HalfCarry: Affected, Carry: Affected}
	subFlags = FlagEffects{Zero: Affected, Sub: Set, HalfCarry: Affected, Carry: Affected}
	andFlags = FlagEffects{Zero: Affected, Sub: Reset, HalfCarry: Set, Carry: Reset}
	orFlags  = FlagEffects{Zero: Affected, Sub: Reset, HalfCarry: Reset, Carry: Reset}

	incFlags = FlagEffects{Zero: Affected, Sub: Reset, HalfCarry: Affected, Carry: NotAffected}
	decFlags = FlagEffects{Zero: Affected, Sub: Set, HalfCarry: Affected, Carry: NotAffected}

	add16Flags = FlagEffects{Zero: NotAffected, Sub: Reset, HalfCarry: Affected, Carry: Affected}
	addSPFlags = FlagEffects{Zero: Reset, Sub: Reset, HalfCarry: Affected, Carry: Affected}

	rotateAFlags = FlagEffects{Zero: Reset, Sub: Reset, HalfCarry: Reset, Carry: Affected}
	rotateFlags  = FlagEffects{Zero: Affected, Sub: Reset, HalfCarry: Reset, Carry: Affected}
	swapFlags    = FlagEffects{Zero: Affected, Sub: Reset, HalfCarry: Reset, Carry: Reset}

	bitFlags = FlagEffects{Zero: Affected, Sub: Reset, HalfCarry: Set, Carry: NotAffected}

	daaFlags = FlagEffects{Zero: Affected, Sub: NotAffected, HalfCarry: Reset, Carry: Affected}
	cplFlags = FlagEffects{Zero: NotAffected, Sub: Set, HalfCarry: Set, Carry: NotAffected}
	ccfFlags = FlagEffects{Zero: NotAffected, Sub: Reset, HalfCarry: Reset, Carry: Affected}
	scfFlags = FlagEffects{Zero: NotAffected, Sub: Reset, HalfCarry: Reset, Carry: Set}
)
