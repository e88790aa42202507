// Package engine implements the BF++ execution engine.
//
// The engine is a byte tape machine. In addition to the classic tape
// instructions, it has a marked address register, subroutine tags with a
// bounded return stack, and a boolean flip of the current cell.
//
//	<  move left, wrapping to the end of the tape
//	>  move right, growing the tape or wrapping to the start
//	+  increment the current cell
//	-  decrement the current cell
//	.  write the current cell
//	,  read into the current cell (0 at end of input)
//	[  skip to the matching ']' if the current cell is zero
//	]  repeat from the matching '[' if the current cell is not zero
//	:  return from a subroutine, or define a tag
//	;  call the tag numbered by the current cell
//	=  mark the current address
//	_  recall the marked address
//	~  move to address 0
//	/  return from a subroutine
//	?  flip the current cell between zero and one
//
// Any other character is ignored.
//
// Jumps are resolved through two marker lists built when the engine is reset:
// one of the bracket positions, and one of the tag positions. A jump whose
// target cannot be found is ignored.
package engine
