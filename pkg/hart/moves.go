package hart

import "math"

// movII copies an integer register and updates the destination's int
// flag group.
func (h *Hart) movII(a, b int) {
	h.xs[a] = h.xs[b]
	h.updateIntFlags(a)
}

// movFF copies a float register and updates the destination's float
// flag group.
func (h *Hart) movFF(a, b int) {
	h.fs[a] = h.fs[b]
	h.updateFloatFlags(a)
}

// movIF converts integer register b to float register a with
// value-preserving rounding to nearest (the xs[b] bit pattern is
// treated as unsigned, matching the rest of this ISA's unsigned
// arithmetic).
func (h *Hart) movIF(a, b int) {
	h.fs[a] = float32(h.xs[b])
	h.updateFloatFlags(a)
}

// movFI converts float register b to integer register a by
// truncation toward zero. Values outside the representable range of
// uint32 (including negatives and NaN) follow Go's native
// float-to-integer conversion semantics by way of int64, which is the
// platform choice this implementation documents for the
// otherwise-unspecified out-of-range case.
func (h *Hart) movFI(a, b int) {
	h.xs[a] = uint32(int64(h.fs[b]))
	h.updateIntFlags(a)
}

// transmuteIF reinterprets the bits of float register b as an
// integer, written to xs[a].
func (h *Hart) transmuteIF(a, b int) {
	h.xs[a] = math.Float32bits(h.fs[b])
	h.updateIntFlags(a)
}

// transmuteFI reinterprets the bits of integer register b as a float,
// written to fs[a].
func (h *Hart) transmuteFI(a, b int) {
	h.fs[a] = math.Float32frombits(h.xs[b])
	h.updateFloatFlags(a)
}
