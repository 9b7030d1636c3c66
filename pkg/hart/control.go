package hart

// branchPredicate describes a BRT_<flag>/BRF_<flag> no-operand
// instruction: take the branch when the named flag bit equals want.
type branchPredicate struct {
	bit  uint
	want bool
}

// branchTable maps every BRT_/BRF_ no-operand sub-opcode to the flag
// bit and polarity it tests. Every entry here still consumes its
// trailing 32-bit target immediate regardless of whether the branch
// is taken, so the instruction stream stays in sync either way.
var branchTable = map[byte]branchPredicate{
	opBrtZ: {flagZ, true}, opBrfZ: {flagZ, false},
	opBrtV: {flagV, true}, opBrfV: {flagV, false},
	opBrtC: {flagC, true}, opBrfC: {flagC, false},
	opBrtN: {flagN, true}, opBrfN: {flagN, false},
	opBrtP: {flagP, true}, opBrfP: {flagP, false},
	opBrtA: {flagA, true}, opBrfA: {flagA, false},
	opBrtF: {flagF, true}, opBrfF: {flagF, false},
	opBrtM: {flagM, true}, opBrfM: {flagM, false},
}

// branch reads the 32-bit target immediate unconditionally, then
// updates PC to it only if the named flag bit matches want.
func (h *Hart) branch(pred branchPredicate) error {
	target, err := h.fetchExecImm32()
	if err != nil {
		return err
	}
	if h.flagBit(pred.bit) == pred.want {
		h.xs[RegPC] = target
	}
	return nil
}

// call pushes the current BASE, then the post-immediate return
// address (the PC value left after fetching CALL's own 32-bit
// target), each four bytes little-endian, SP decrementing by one byte
// per push. It then makes BASE the new frame pointer and jumps PC to
// target.
func (h *Hart) call(target uint32) error {
	returnPC := h.xs[RegPC]

	if err := h.pushWord(h.xs[RegBase]); err != nil {
		return err
	}
	if err := h.pushWord(returnPC); err != nil {
		return err
	}

	h.xs[RegBase] = h.xs[RegSP]
	h.xs[RegPC] = target
	return nil
}

// pushWord writes v as four bytes LSB-first: the LSB lands at the
// current SP (the highest address of the four), each subsequent,
// more-significant byte at the next lower address, with SP
// decrementing by one after each byte. This leaves the MSB at the
// lowest address of the block, which is exactly the byte ret's
// BASE-incrementing, MSB-first accumulate expects to read first.
func (h *Hart) pushWord(v uint32) error {
	for i := 0; i < 4; i++ {
		shift := uint(8 * i)
		if err := h.writeByteAt(h.xs[RegSP], byte(v>>shift), PermWrite); err != nil {
			return err
		}
		h.xs[RegSP]--
	}
	return nil
}

// ret reverses call by using the BASE register itself as the moving
// read pointer: increment BASE, read a byte, four times, accumulating
// MSB-first, to recover the return PC; then repeat the same protocol
// into a scratch accumulator to recover the caller's BASE. Finally SP
// becomes the now-advanced BASE, and BASE becomes the recovered value.
func (h *Hart) ret() error {
	returnPC, err := h.popWordViaBase()
	if err != nil {
		return err
	}
	callerBase, err := h.popWordViaBase()
	if err != nil {
		return err
	}

	h.xs[RegSP] = h.xs[RegBase]
	h.xs[RegBase] = callerBase
	h.xs[RegPC] = returnPC
	return nil
}

// popWordViaBase increments BASE then reads a byte, four times,
// folding each new byte into the low end of a big-endian accumulator.
func (h *Hart) popWordViaBase() (uint32, error) {
	var acc uint32
	for i := 0; i < 4; i++ {
		h.xs[RegBase]++
		b, err := h.readByteAt(h.xs[RegBase], PermRead)
		if err != nil {
			return 0, err
		}
		acc = acc<<8 | uint32(b)
	}
	return acc, nil
}
