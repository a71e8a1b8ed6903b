package usp

import (
	"github.com/go-usp/go-usp/lib/config"
	"github.com/go-usp/go-usp/lib/msg"
	"github.com/go-usp/go-usp/lib/record"
)

var std = &Codec{cfg: config.DefaultCodecConfig()}

// DecodeMsg decodes an encoded Msg.
func DecodeMsg(data []byte) (*msg.Msg, error) { return std.DecodeMsg(data) }

// DecodeRecord decodes an encoded Record.
func DecodeRecord(data []byte) (*record.Record, error) { return std.DecodeRecord(data) }

// EncodeMsg encodes m.
func EncodeMsg(m *msg.Msg) ([]byte, error) { return std.EncodeMsg(m) }

// EncodeRecord encodes rec.
func EncodeRecord(rec *record.Record) ([]byte, error) { return std.EncodeRecord(rec) }

// WrapMsg encodes m into a NoSessionContextRecord addressed like tmpl.
func WrapMsg(tmpl *record.Record, m *msg.Msg) (*record.Record, error) { return std.WrapMsg(tmpl, m) }

// ExtractMsg decodes the Msg carried by rec.
func ExtractMsg(rec *record.Record) (*msg.Msg, error) { return std.ExtractMsg(rec) }
