package hart

// iadd computes xs[a] := xs[a] + xs[b] + C in 64-bit width and updates
// Z, V, C, N, P from the result. Both operands are read before xs[a]
// is written, so iadd(a, a) is well defined.
func (h *Hart) iadd(a, b int) {
	origA := h.xs[a]
	origB := h.xs[b]

	var carryIn uint64
	if h.flagBit(flagC) {
		carryIn = 1
	}
	sum := uint64(origA) + uint64(origB) + carryIn
	result := uint32(sum)

	h.clearFlags(flagZ, flagV, flagC, flagN, flagP)
	h.setFlag(flagZ, result == 0)
	h.setFlag(flagN, result&0x80000000 != 0)
	h.setFlag(flagC, sum&0x100000000 != 0)
	h.setFlag(flagV, origA&0x80000000 == origB&0x80000000 && origA&0x80000000 != result&0x80000000)
	h.setFlag(flagP, result&1 != 0)

	h.xs[a] = result
}

// isub computes xs[a] := xs[a] + ^xs[b] + C by complementing xs[b],
// delegating to iadd, and restoring xs[b]. With C=0 this yields
// a + ^b = a - b - 1; with C=1 it yields a - b.
func (h *Hart) isub(a, b int) {
	h.xs[b] = ^h.xs[b]
	h.iadd(a, b)
	h.xs[b] = ^h.xs[b]
}

// updateIntFlags clears and resets Z, N, P from the current value of
// integer register r. Every integer ALU/move/transmute op except
// iadd/isub and the bsl/bsr shifts funnels its flag update through here.
func (h *Hart) updateIntFlags(r int) {
	v := h.xs[r]
	h.clearFlags(flagZ, flagN, flagP)
	h.setFlag(flagZ, v == 0)
	h.setFlag(flagN, v&0x80000000 != 0)
	h.setFlag(flagP, v&1 != 0)
}

// imul computes xs[a] := xs[a] * xs[b], wrapping modulo 2^32.
func (h *Hart) imul(a, b int) {
	h.xs[a] *= h.xs[b]
	h.updateIntFlags(a)
}

// idiv computes xs[a] := xs[a] / xs[b] as an unsigned division.
func (h *Hart) idiv(a, b int) error {
	if h.xs[b] == 0 {
		return ErrDivideByZero
	}
	h.xs[a] /= h.xs[b]
	h.updateIntFlags(a)
	return nil
}

// imod computes xs[a] := xs[a] % xs[b] as an unsigned remainder.
func (h *Hart) imod(a, b int) error {
	if h.xs[b] == 0 {
		return ErrDivideByZero
	}
	h.xs[a] %= h.xs[b]
	h.updateIntFlags(a)
	return nil
}

// iand, ior, ixor implement the bitwise logic ops. All three update
// Z, N, P from the result.
func (h *Hart) iand(a, b int) {
	h.xs[a] &= h.xs[b]
	h.updateIntFlags(a)
}

func (h *Hart) ior(a, b int) {
	h.xs[a] |= h.xs[b]
	h.updateIntFlags(a)
}

func (h *Hart) ixor(a, b int) {
	h.xs[a] ^= h.xs[b]
	h.updateIntFlags(a)
}
