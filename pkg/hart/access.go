package hart

// This file holds the byte/word accessors that the dispatcher, the
// load/store unit, and the control-flow unit all funnel through: every
// one of them is a translate-then-touch-the-backend pair, so faults
// surface uniformly regardless of which unit triggered them.

func (h *Hart) readByteAt(vaddr uint32, perm Permission) (byte, error) {
	paddr, err := h.translate(vaddr, perm)
	if err != nil {
		return 0, err
	}
	return h.backend.ReadByte(paddr), nil
}

func (h *Hart) writeByteAt(vaddr uint32, v byte, perm Permission) error {
	paddr, err := h.translate(vaddr, perm)
	if err != nil {
		return err
	}
	h.backend.WriteByte(paddr, v)
	return nil
}

// readLE32 reads a little-endian 32-bit value, one translated byte at
// a time so that a value straddling a page boundary is checked
// per-page.
func (h *Hart) readLE32(vaddr uint32, perm Permission) (uint32, error) {
	var out uint32
	for i := uint32(0); i < 4; i++ {
		b, err := h.readByteAt(vaddr+i, perm)
		if err != nil {
			return 0, err
		}
		out |= uint32(b) << (8 * i)
	}
	return out, nil
}

func (h *Hart) writeLE32(vaddr uint32, v uint32, perm Permission) error {
	for i := uint32(0); i < 4; i++ {
		if err := h.writeByteAt(vaddr+i, byte(v>>(8*i)), perm); err != nil {
			return err
		}
	}
	return nil
}

func (h *Hart) writeLE16(vaddr uint32, v uint16, perm Permission) error {
	for i := uint32(0); i < 2; i++ {
		if err := h.writeByteAt(vaddr+i, byte(v>>(8*i)), perm); err != nil {
			return err
		}
	}
	return nil
}

// fetchExecByte fetches the byte at PC under EXEC permission and
// advances PC. PC advances even when the fault is about to be
// returned for a later byte in the same instruction - only the byte
// that actually failed to translate leaves PC unmoved.
func (h *Hart) fetchExecByte() (byte, error) {
	b, err := h.readByteAt(h.xs[RegPC], PermExec)
	if err != nil {
		return 0, err
	}
	h.xs[RegPC]++
	return b, nil
}

// fetchExecImm32 fetches a little-endian 32-bit immediate four bytes
// at a time via fetchExecByte.
func (h *Hart) fetchExecImm32() (uint32, error) {
	var out uint32
	for i := uint(0); i < 4; i++ {
		b, err := h.fetchExecByte()
		if err != nil {
			return 0, err
		}
		out |= uint32(b) << (8 * i)
	}
	return out, nil
}
