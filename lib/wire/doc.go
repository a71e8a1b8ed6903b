// Package wire implements the protobuf binary primitives shared by the USP Msg and
// Record codecs.
//
// Encoding is append-based: every schema type computes its exact size first and then
// appends its fields in ascending tag order into a caller supplied buffer. Scalar
// fields equal to their zero value are omitted, which means a present-but-default
// field and an absent field are indistinguishable on the wire.
//
// Decoding walks (tag, wire type) pairs with Decode. Unknown field numbers must be
// skipped with Decoder.Skip. A known field number that arrives with another wire type
// is unknown as well: the accessors skip its value and leave the field as it was.
// Truncated input, bad lengths and invalid UTF-8 abort the decode of the whole
// structure.
//
// The varint and length-delimited handling is delegated to
// google.golang.org/protobuf/encoding/protowire.
package wire
