// Package usp ties the msg, record and sar packages together: it decodes and
// encodes Msgs and Records, wraps a Msg into a Record and extracts it again.
//
// The package level functions use the default configuration. A Codec built with
// NewCodec applies a custom configuration and reassembles segmented payloads
// received in SessionContextRecords.
package usp
