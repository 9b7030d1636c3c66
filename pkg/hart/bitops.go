package hart

// bsl shifts xs[a] left by the low 32 bits of xs[b] (the whole
// register - there's nothing narrower to take "low 32 bits" of). A
// shift amount of 32 or more yields zero rather than an undefined
// result. The incoming carry flag is OR'd into bit 0 of the shifted
// value before it is written back - a rotate-through-carry quirk the
// source intentionally preserves. Carry is only updated when the
// shift amount is exactly 1, to the outgoing bit 31 of the original
// value; any other shift amount leaves C cleared.
func (h *Hart) bsl(a, b int) {
	orig := h.xs[a]
	n := h.xs[b]

	var shifted uint32
	if n < 32 {
		shifted = orig << n
	}
	carryIn := h.flagBit(flagC)
	result := shifted
	if carryIn {
		result |= 1
	}

	h.clearFlags(flagZ, flagC, flagN, flagP)
	h.setFlag(flagZ, result == 0)
	h.setFlag(flagN, result&0x80000000 != 0)
	h.setFlag(flagP, result&1 != 0)
	if n == 1 {
		h.setFlag(flagC, orig&0x80000000 != 0)
	}

	h.xs[a] = result
}

// bsr is the mirror of bsl: shift right, carry OR'd into bit 0, carry
// flag only updated on a shift amount of exactly 1, from the outgoing
// bit 0 of the original value.
func (h *Hart) bsr(a, b int) {
	orig := h.xs[a]
	n := h.xs[b]

	var shifted uint32
	if n < 32 {
		shifted = orig >> n
	}
	carryIn := h.flagBit(flagC)
	result := shifted
	if carryIn {
		result |= 1
	}

	h.clearFlags(flagZ, flagC, flagN, flagP)
	h.setFlag(flagZ, result == 0)
	h.setFlag(flagN, result&0x80000000 != 0)
	h.setFlag(flagP, result&1 != 0)
	if n == 1 {
		h.setFlag(flagC, orig&1 != 0)
	}

	h.xs[a] = result
}
