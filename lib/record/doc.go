// Package record implements the USP Record, the envelope that carries an encoded
// Msg between two endpoints, together with its binary encoding.
//
// A Record holds exactly one of seven kinds. NoSessionContextRecord carries a
// whole Msg. SessionContextRecord carries one or more fragments of a Msg and the
// sequence numbers used by the session layer; see package sar for splitting and
// reassembly. The remaining kinds are connection management and carry no payload.
package record
