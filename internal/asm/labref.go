package asm

// labref.go implements the one-pass label-fixup protocol (spec §4.3, §9): forward references are
// threaded as a linked list through the very memory cells that will eventually hold the resolved
// address, using the label vector only to remember each label's chain head (or its resolved,
// negated address once defined).

import "github.com/smoynes/intcode/internal/vm"

// labRef records a reference to label n at address a: a's pre-existing content (normally 0, left
// by the directive or instruction that emitted it) is added to either the label's already-known
// address, or the previous chain head, whichever applies.
func (a *Assembler) labRef(n int, addr vm.Word) {
	slot := a.Mem.LabelSlot(n)

	if slot < 0 {
		resolved := -slot
		a.Mem.SetWord(addr, a.Mem.Word(addr).Add(resolved))

		return
	}

	k := slot
	a.Mem.SetLabelSlot(n, addr)
	a.Mem.SetWord(addr, a.Mem.Word(addr).Add(k))
}

// defineLabel defines label n at the current load pointer, walking and patching its pending
// reference chain. Redefining an already-defined label is an error.
func (a *Assembler) defineLabel(n int) error {
	slot := a.Mem.LabelSlot(n)
	if slot < 0 {
		return &DuplicateLabelError{Label: n}
	}

	addr := a.Mem.LoMem

	k := slot
	for k != 0 {
		next := a.Mem.Word(k)
		a.Mem.SetWord(k, addr)
		k = next
	}

	a.Mem.SetLabelSlot(n, addr.Neg())

	return nil
}

// checkLabels verifies every label slot is <= 0 (spec's Z-directive invariant: no label was
// referenced but left undefined) and returns the first offender.
func (a *Assembler) checkLabels() error {
	for n := 0; n < vm.LabVCount; n++ {
		if a.Mem.LabelSlot(n) > 0 {
			return &UnsetLabelError{Label: n}
		}
	}

	return nil
}
