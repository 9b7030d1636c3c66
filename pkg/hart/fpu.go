package hart

import "math"

// updateFloatFlags clears and resets Z, N, A, F from the current
// value of float register r.
func (h *Hart) updateFloatFlags(r int) {
	v := h.fs[r]
	h.clearFlags(flagZ, flagN, flagA, flagF)
	h.setFlag(flagZ, v == 0)
	h.setFlag(flagN, math.Signbit(float64(v)))
	h.setFlag(flagA, v != v) // NaN != NaN
	h.setFlag(flagF, math.IsInf(float64(v), 0))
}

// fadd, fsub, fmul, fdiv are plain IEEE-754 single-precision ops with
// default rounding. NaN and infinite results never fault - they set
// the A/F flags via updateFloatFlags.
func (h *Hart) fadd(a, b int) {
	h.fs[a] += h.fs[b]
	h.updateFloatFlags(a)
}

func (h *Hart) fsub(a, b int) {
	h.fs[a] -= h.fs[b]
	h.updateFloatFlags(a)
}

func (h *Hart) fmul(a, b int) {
	h.fs[a] *= h.fs[b]
	h.updateFloatFlags(a)
}

func (h *Hart) fdiv(a, b int) {
	h.fs[a] /= h.fs[b]
	h.updateFloatFlags(a)
}
