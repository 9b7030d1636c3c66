// Package hart implements a single-hart interpreter for a 32-bit
// RISC-style instruction set.
//
// Instruction format
//
// Every instruction starts with one opcode byte. The top two bits of
// the opcode select one of three forms:
//
//	00 oooooo            no-operand form: flag/ring toggles, call, ret,
//	                     and the sixteen flag-branches. Several of these
//	                     (the branches and call) still consume a
//	                     following 32-bit little-endian immediate.
//	01 vv rrrr           one-register + 32-bit immediate form: loads and
//	                     the literal variants thereof.
//	10 oooooo <d>        two-register form: a further byte d carries the
//	                     register pair (high nibble, low nibble).
//	11 vv rrrr           one-register + 32-bit immediate, store variant.
//
// All multi-byte values - immediates, addresses, and loaded/stored
// words - are little-endian.
//
// Registers
//
// xs[0..15] are the integer registers; xs[13] is PC, xs[14] is BASE
// (the frame pointer), xs[15] is SP. fs[0..15] are the float registers.
// flags is a 32-bit word; bits 0..10 are reserved for a collaborator's
// interrupt-controller use and are never interpreted by this package.
//
// Memory
//
// The hart never touches memory directly: every fetch, load, and store
// goes through the Backend interface, optionally translated by the MMU
// when the M flag bit is set (see mmu.go).
package hart

import "fmt"

// Register indices with architectural meaning. 0..12 are free for the
// programmer.
const (
	RegPC   = 13
	RegBase = 14
	RegSP   = 15
)

// Hart is one instance of the CPU state: registers, flags, and the
// page-table base register. A Hart owns its Backend by value (by
// reference, really, but it is never swapped after construction) and
// is not safe for concurrent use - callers that multiplex harts own
// their own synchronization.
type Hart struct {
	xs     [16]uint32
	fs     [16]float32
	flags  uint32
	memmap uint32

	backend Backend
}

// New constructs a Hart around the given memory backend. All
// registers and flags start zeroed, floats start at +0.0, and memmap
// starts at zero.
func New(backend Backend) *Hart {
	return &Hart{backend: backend}
}

// GPR returns the value of integer register i.
func (h *Hart) GPR(i int) uint32 { return h.xs[i] }

// SetGPR sets integer register i.
func (h *Hart) SetGPR(i int, v uint32) { h.xs[i] = v }

// FPR returns the value of float register i.
func (h *Hart) FPR(i int) float32 { return h.fs[i] }

// SetFPR sets float register i.
func (h *Hart) SetFPR(i int, v float32) { h.fs[i] = v }

// Flags returns the raw flags word.
func (h *Hart) Flags() uint32 { return h.flags }

// SetFlags overwrites the raw flags word. Intended for test setup and
// host introspection; it bypasses the privilege checks that opcodes
// enforce.
func (h *Hart) SetFlags(v uint32) { h.flags = v }

// Memmap returns the physical base address of the top-level page table.
func (h *Hart) Memmap() uint32 { return h.memmap }

// SetMemmap sets the physical base address of the top-level page
// table. Intended for test setup and host introspection; it performs
// no ring check, and no opcode in this package writes memmap.
func (h *Hart) SetMemmap(v uint32) { h.memmap = v }

// PC returns the current program counter.
func (h *Hart) PC() uint32 { return h.xs[RegPC] }

// SetPC sets the program counter.
func (h *Hart) SetPC(v uint32) { h.xs[RegPC] = v }

// String renders the hart's register and flag state for diagnostics.
func (h *Hart) String() string {
	return fmt.Sprintf(
		"{PC:%#x BASE:%#x SP:%#x flags:%#032b xs:%+v fs:%+v}",
		h.xs[RegPC], h.xs[RegBase], h.xs[RegSP], h.flags, h.xs, h.fs,
	)
}

// userRing reports whether the hart is currently executing in user
// ring (flag bit R set).
func (h *Hart) userRing() bool {
	return h.flagBit(flagR)
}
