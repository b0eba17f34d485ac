/*
Package vm implements the INTCODE virtual machine: the fixed-size word memory, the stream
registry and character I/O primitives, and the fetch/decode/execute loop that drives the two
working registers A and B through a program's instructions.

INTCODE is the compact stack-machine intermediate representation historically emitted by BCPL
front ends. A machine has a flat, word-addressed memory of WordCount 16-bit signed words; the
low ProgStart words are a "global vector" used for shared state and small system-call constants,
the bytes above that hold assembled code and heap, a free area above that serves as the runtime
stack, and the final LabVCount words are a scratch area the assembler uses to thread
forward-reference chains while it resolves labels.

The interpreter itself is unremarkable: each instruction names a 3-bit function code and an
operand addressing mode (immediate, indirect, stack-relative). Calls either transfer to
user-assembled code or dispatch to one of a small set of system calls providing character I/O,
formatted numeric output, dynamic allocation and non-local control transfer.

# Bugs

The allocation primitive (APTOVEC) is a bump-style "get a vector" whose "freeing" is unreliable
by design: there is no garbage collector, matching the original machine.
*/
package vm
