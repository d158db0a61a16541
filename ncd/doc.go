// Package ncd computes normalized compression distances between sequences.
//
// 🚀 What is NCD?
//
// The normalized compression distance approximates the (uncomputable)
// information distance between two objects with a real compressor: if
// concatenating y to x barely grows the compressed size, the two share
// structure. With C a size function,
//
//	NCD(x, y) = (C(x·y) - min(C(x), C(y))) / max(C(x), C(y))
//
// where C(x·y) takes the cheaper of the two concatenation orders.
//
// ✨ Three size functions
//
//   - NCD: any real codec behind the Compressor interface. Flate and
//     Snappy adapters ship in the package; anything that can report a
//     compressed byte size plugs in.
//   - ArithNCD: exact arithmetic coding under a static model fitted to
//     the pair, computed with math/big rationals. No codec, no buffers,
//     fully deterministic.
//   - EntropyNCD: the Shannon entropy of the element distribution as an
//     idealized coded size (plus a constant 1 so the denominator never
//     vanishes).
//
// ⚙️ Conventions
//
// Sequences are generic; element identity is the only requirement. For
// the codec path, elements are serialized as varint ranks over the
// pair's joint alphabet (rank order canonical in the element's %v form,
// so the distance stays symmetric). Equal sequences short-circuit to
// exactly 0 before any codec runs; real compressors carry constant
// overhead that would otherwise leak into the degenerate case. Scores
// are usually in [0,1] but small inputs can exceed 1; none of the three
// is a true metric.
package ncd
