// Package io provides the byte stream I/O of the BF++ engine.
//
// A Stream adapts an io.Reader and io.Writer to the io.ByteReader and
// io.ByteWriter used by the engine, and tracks the end of input.
package io
