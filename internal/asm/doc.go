/*
Package asm assembles textual INTCODE source into an interpreter's memory image.

Assembly is single-pass: source characters are consumed from a stream as they arrive and
instructions, directives and data words are emitted immediately at a monotonically rising load
pointer. Forward references to not-yet-defined labels are resolved without a second pass by
threading a linked list through the very memory cells that will eventually hold the resolved
address: each referencing instruction's operand word temporarily stores the previous reference in
the chain, and defining the label walks the chain once, patching every pending cell in turn.

The grammar is small: `$`, space and line feed separate tokens; `/` begins a comment extending to
the next run of line feeds; a bare decimal number at top level defines a label; the directives
`C`, `D`, `DL`, `G` and `Z` emit bytes, words and global-vector initialisers; the letters
`L S A J T F K X` begin an instruction mnemonic followed by addressing modifiers and an operand;
any other character is rejected as a bad character.
*/
package asm
