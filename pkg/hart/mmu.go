package hart

import "fmt"

// Permission is a request made of the MMU: one or more of READ,
// WRITE, EXEC or'd together.
type Permission uint32

// The three permission bits a translation request can carry. Values
// match the top nibble of a page-table entry: bit 2 is R, bit 1 is W,
// bit 0 is X.
const (
	PermExec  Permission = 0b001
	PermWrite Permission = 0b010
	PermRead  Permission = 0b100
)

// translate converts a virtual address to a physical one, enforcing
// perm if the M flag is set. When M is clear, translation is the
// identity and never faults.
//
// The walk is a deliberately preserved quirk of the source design: the
// top-level index is used as a byte offset into the table rather than
// being scaled by entry size (4). See DESIGN.md.
func (h *Hart) translate(vaddr uint32, perm Permission) (uint32, error) {
	if !h.flagBit(flagM) {
		return vaddr, nil
	}

	top := vaddr >> 24
	t2 := h.readPhysicalLE32(h.memmap + top)
	if t2 == 0 {
		return 0, fmt.Errorf("%w: top-level entry at %#x", ErrUsedFreePage, h.memmap+top)
	}

	idx2 := (vaddr >> 16) & 0xff
	entry := h.readPhysicalLE32(t2 + idx2)
	p := (entry >> 28) & 0xf
	if p&0x8 == 0 {
		return 0, fmt.Errorf("%w: second-level entry at %#x", ErrUsedFreePage, t2+idx2)
	}
	if uint32(perm)&p != uint32(perm) {
		return 0, &PermissionFault{PagePerms: p, Requested: perm}
	}

	frame := entry & 0x0fffffff
	return frame + (vaddr & 0xffff), nil
}

// readPhysicalLE32 reads a little-endian 32-bit value directly from
// the backend, bypassing translation. Page-table entries live at
// physical addresses.
func (h *Hart) readPhysicalLE32(paddr uint32) uint32 {
	b0 := h.backend.ReadByte(paddr)
	b1 := h.backend.ReadByte(paddr + 1)
	b2 := h.backend.ReadByte(paddr + 2)
	b3 := h.backend.ReadByte(paddr + 3)
	return uint32(b0) | uint32(b1)<<8 | uint32(b2)<<16 | uint32(b3)<<24
}
