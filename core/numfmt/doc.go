// Package numfmt implements the printf-style numeric rendering engine
// shared by the utilities: parsing conversion specifiers, scanning raw
// argument strings, and rendering them under C-library formatting
// semantics (sign handling, radix prefixes, rounding at arbitrary
// precision, field width and justification, NaN/Infinity).
//
// The pipeline is pure text analysis over digit strings, never native
// float arithmetic, so inputs wider than a float64 round exactly. All
// stages are stateless and reentrant; the only mutable state is the
// positional ArgCursor owned by the caller's formatting loop.
package numfmt
