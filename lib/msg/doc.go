// Package msg implements the USP application message schema (usp-msg-1-3) and its
// protobuf binary codec.
//
// A Msg is a Header plus a Body. The Body is a tagged union over Request, Response
// and Error; Request and Response are themselves unions over the eleven USP
// operations. Every union is a sealed interface whose nil value means "unset". Setting
// a union field replaces whatever variant was there before.
//
// Nested sub-messages that share a name in the protocol schema (there are five
// different OperationStatus messages, for instance) are prefixed with the name of the
// message that owns them: AddRespOperationStatus, SetRespOperationStatus and so on.
//
// Every type implements Size, AppendTo, MarshalBinary and UnmarshalBinary. Decoding
// skips unknown fields and, when several branches of the same union appear in one
// buffer, keeps the last one.
package msg
