package hart

import "math"

// Instructions are encoded as a one-byte opcode whose top two bits
// select one of three forms:
//
//	00xxxxxx  no-operand       flag/ring toggles, CALL, RET, conditional branches
//	01xxxxxx  one-register     vvrrrr + a 32-bit immediate (literal/absolute loads)
//	10xxxxxx  two-register     xxxxxx, followed by one more EXEC-fetched
//	                           byte packing register A in its high nibble
//	                           and register B in its low nibble
//	11xxxxxx  one-register     vvrrrr + a 32-bit immediate (absolute stores)
const (
	formMask        = 0xc0
	formNoOperand   = 0x00
	formOneRegLoad  = 0x40
	formTwoReg      = 0x80
	formOneRegStore = 0xc0
)

// No-operand sub-opcodes (low 6 bits of the opcode byte).
const (
	opClearC byte = iota
	opSetC
	opClearM
	opSetM
	opClearR
	opSetR
	opCall
	opRet

	opBrtZ
	opBrfZ
	opBrtV
	opBrfV
	opBrtC
	opBrfC
	opBrtN
	opBrfN
	opBrtP
	opBrfP
	opBrtA
	opBrfA
	opBrtF
	opBrfF
	opBrtM
	opBrfM
)

// One-register-load variant selector: bits 4-5 of the opcode byte,
// register index in bits 0-3.
const (
	loadLitInt byte = iota
	loadLitFloat
	loadAbsInt
	loadAbsFloat
)

// One-register-store variant selector: bits 4-5 of the opcode byte,
// register index in bits 0-3.
const (
	storeAbsInt byte = iota
	storeAbsShort
	storeAbsByte
	storeAbsFloat
)

// Two-register sub-opcodes: low 6 bits of the opcode byte.
const (
	opIADD byte = iota
	opISUB
	opIMUL
	opIDIV
	opIMOD
	opIAND
	opIOR
	opIXOR
	opBSL
	opBSR
	opFADD
	opFSUB
	opFMUL
	opFDIV
	opMovII
	opMovFF
	opMovIF
	opMovFI
	opTransmuteIF
	opTransmuteFI
	opLoadIndInt
	opLoadIndFloat
	opStoreIndInt
	opStoreIndShort
	opStoreIndByte
	opStoreIndFloat
)

// Step decodes and executes exactly one instruction at the current
// PC, leaving PC advanced past it (except where a branch, CALL, or
// RET overwrites it outright). It returns the first fault the
// instruction raises; on a fault the instruction's remaining effects
// are abandoned in place, exactly as executed so far.
func (h *Hart) Step() error {
	opcode, err := h.fetchExecByte()
	if err != nil {
		return err
	}

	switch opcode & formMask {
	case formNoOperand:
		return h.execNoOperand(opcode &^ formMask)
	case formOneRegLoad:
		return h.execOneRegLoad(opcode)
	case formTwoReg:
		return h.execTwoReg(opcode &^ formMask)
	case formOneRegStore:
		return h.execOneRegStore(opcode)
	}
	return nil
}

func (h *Hart) execNoOperand(sub byte) error {
	if pred, ok := branchTable[sub]; ok {
		return h.branch(pred)
	}

	switch sub {
	case opClearC:
		h.clearFlags(flagC)
	case opSetC:
		h.setFlag(flagC, true)
	case opClearM:
		if h.userRing() {
			return ErrPrivilegeFault
		}
		h.clearFlags(flagM)
	case opSetM:
		if h.userRing() {
			return ErrPrivilegeFault
		}
		h.setFlag(flagM, true)
	case opClearR:
		if h.userRing() {
			return ErrPrivilegeFault
		}
		// R is already 0 in system ring; this is a no-op.
	case opSetR:
		if h.userRing() {
			return ErrPrivilegeFault
		}
		h.setFlag(flagR, true)
	case opCall:
		target, err := h.fetchExecImm32()
		if err != nil {
			return err
		}
		return h.call(target)
	case opRet:
		return h.ret()
	default:
		// Unassigned sub-opcodes are no-ops, not faults.
	}
	return nil
}

func (h *Hart) execOneRegLoad(opcode byte) error {
	reg := int(opcode & 0x0f)
	variant := (opcode >> 4) & 0x03

	imm, err := h.fetchExecImm32()
	if err != nil {
		return err
	}

	switch variant {
	case loadLitInt:
		h.xs[reg] = imm
		h.updateIntFlags(reg)
	case loadLitFloat:
		h.fs[reg] = math.Float32frombits(imm)
		h.updateFloatFlags(reg)
	case loadAbsInt:
		v, err := h.readLE32(imm, PermRead)
		if err != nil {
			return err
		}
		h.xs[reg] = v
		h.updateIntFlags(reg)
	case loadAbsFloat:
		v, err := h.readLE32(imm, PermRead)
		if err != nil {
			return err
		}
		h.fs[reg] = math.Float32frombits(v)
		h.updateFloatFlags(reg)
	}
	return nil
}

func (h *Hart) execOneRegStore(opcode byte) error {
	reg := int(opcode & 0x0f)
	variant := (opcode >> 4) & 0x03

	addr, err := h.fetchExecImm32()
	if err != nil {
		return err
	}

	switch variant {
	case storeAbsInt:
		return h.writeLE32(addr, h.xs[reg], PermWrite)
	case storeAbsShort:
		return h.writeLE16(addr, uint16(h.xs[reg]), PermWrite)
	case storeAbsByte:
		return h.writeByteAt(addr, byte(h.xs[reg]), PermWrite)
	case storeAbsFloat:
		return h.writeLE32(addr, math.Float32bits(h.fs[reg]), PermWrite)
	}
	return nil
}

func (h *Hart) execTwoReg(sub byte) error {
	d, err := h.fetchExecByte()
	if err != nil {
		return err
	}
	ra := int(d >> 4)
	rb := int(d & 0x0f)

	switch sub {
	case opIADD:
		h.iadd(ra, rb)
	case opISUB:
		h.isub(ra, rb)
	case opIMUL:
		h.imul(ra, rb)
	case opIDIV:
		return h.idiv(ra, rb)
	case opIMOD:
		return h.imod(ra, rb)
	case opIAND:
		h.iand(ra, rb)
	case opIOR:
		h.ior(ra, rb)
	case opIXOR:
		h.ixor(ra, rb)
	case opBSL:
		h.bsl(ra, rb)
	case opBSR:
		h.bsr(ra, rb)
	case opFADD:
		h.fadd(ra, rb)
	case opFSUB:
		h.fsub(ra, rb)
	case opFMUL:
		h.fmul(ra, rb)
	case opFDIV:
		h.fdiv(ra, rb)
	case opMovII:
		h.movII(ra, rb)
	case opMovFF:
		h.movFF(ra, rb)
	case opMovIF:
		h.movIF(ra, rb)
	case opMovFI:
		h.movFI(ra, rb)
	case opTransmuteIF:
		h.transmuteIF(ra, rb)
	case opTransmuteFI:
		h.transmuteFI(ra, rb)
	case opLoadIndInt:
		v, err := h.readLE32(h.xs[rb], PermRead)
		if err != nil {
			return err
		}
		h.xs[ra] = v
		h.updateIntFlags(ra)
	case opLoadIndFloat:
		v, err := h.readLE32(h.xs[rb], PermRead)
		if err != nil {
			return err
		}
		h.fs[ra] = math.Float32frombits(v)
		h.updateFloatFlags(ra)
	case opStoreIndInt:
		return h.writeLE32(h.xs[rb], h.xs[ra], PermWrite)
	case opStoreIndShort:
		return h.writeLE16(h.xs[rb], uint16(h.xs[ra]), PermWrite)
	case opStoreIndByte:
		return h.writeByteAt(h.xs[rb], byte(h.xs[ra]), PermWrite)
	case opStoreIndFloat:
		return h.writeLE32(h.xs[rb], math.Float32bits(h.fs[ra]), PermWrite)
	default:
		// Unassigned two-register sub-opcodes are no-ops, not faults.
	}
	return nil
}

