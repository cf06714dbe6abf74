// Package param provides the tools for dealing with parameterized header
// values. These include the Content-type and Content-disposition headers.
//
// Parse breaks a header value into its primary value and an ordered list of
// RawParameter, decoding quoted-strings and RFC 8187 extended values along the
// way. NewTable then folds those parameters into a lookup table that resolves
// repeated and extended parameters. The parser never backtracks: the time spent
// is proportional to the length of the header, no matter how much whitespace or
// how many parameters it holds.
//
// Value goes the other way and formats a primary value and its parameters back
// into header text.
package param
