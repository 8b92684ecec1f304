// Package info encodes and decodes firmware information records: a fixed
// header immediately followed by a null-terminated UCS-2 name.
//
// # Record Format
//
//	[Header (HeaderSize bytes)][pad to 2][Name code units ... NUL16]
//
// The header keeps its own natural Go layout, which matches the C layout of
// the firmware structures on 64-bit little-endian targets. The name starts at
// the header size rounded up to the alignment of a UCS-2 unit; for every
// header defined here that padding is empty.
//
// # Encoding
//
// Construct writes a header and name in place inside caller-supplied
// storage and returns a view over exactly the bytes it wrote:
//
//	buf := info.AlignedBuffer(256, info.Alignment[info.FileInfoHeader]())
//	rec, err := info.Construct(buf, header, name)
//
// The buffer must be aligned to Alignment[H](); a misaligned buffer is a
// programming error and panics. Storage that is too small fails with a
// *StorageError reporting the number of bytes required, so the caller can
// retry with a larger buffer.
//
// # Decoding
//
// Decode reconstructs a view over a byte slice and never reads past its end.
// Reconstruct takes a raw pointer handed over by firmware and scans forward
// to the name terminator; it is only sound when the pointer addresses a
// record of exactly that header type with a reachable terminator.
//
// # Headers
//
// A header type must be plain data: no pointers, slices, strings, maps,
// channels, functions or interfaces, since the codec stores it in untyped
// byte memory. Construct, Decode and Reconstruct panic on any other type.
// Header types that firmware dispatch selects by GUID implement
// guid.Identified.
//
// # Concurrency
//
// The codec keeps no state. Concurrent calls on disjoint buffers are safe;
// a record view must not be written while another goroutine reads it.
package info
