// Package marker indexes the positions of focus characters in a BF++ program.
//
// The execution engine builds two marker lists per program: one for the loop
// brackets '[' and ']', and one for the subroutine tags ':'. Jumps are then
// resolved by walking the list instead of rescanning the program text.
//
// Lists grow from INITIAL_CAPACITY by Grow(). An Indexer with a Limit refuses
// to grow past it, in which case the partial list is dropped and a nil List
// is returned. A nil List behaves as a list with no markers.
package marker
