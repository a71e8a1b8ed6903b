package record

import (
	"strconv"
	"strings"

	"github.com/samber/oops"
)

// PayloadSecurity is how the payload of a Record is protected.
type PayloadSecurity int32

const (
	PlainText PayloadSecurity = 0
	TLS12     PayloadSecurity = 1
)

func (s PayloadSecurity) String() string {
	switch s {
	case PlainText:
		return "PLAINTEXT"
	case TLS12:
		return "TLS12"
	}
	return strconv.Itoa(int(s))
}

// SARState is the segmentation and reassembly state of a SessionContextRecord.
type SARState int32

const (
	SARNone      SARState = 0
	SARBegin     SARState = 1
	SARInProcess SARState = 2
	SARComplete  SARState = 3
)

func (s SARState) String() string {
	switch s {
	case SARNone:
		return "NONE"
	case SARBegin:
		return "BEGIN"
	case SARInProcess:
		return "INPROCESS"
	case SARComplete:
		return "COMPLETE"
	}
	return strconv.Itoa(int(s))
}

type MQTTVersion int32

const (
	MQTTv311 MQTTVersion = 0
	MQTTv5   MQTTVersion = 1
)

func (v MQTTVersion) String() string {
	switch v {
	case MQTTv311:
		return "V3_1_1"
	case MQTTv5:
		return "V5"
	}
	return strconv.Itoa(int(v))
}

type STOMPVersion int32

const STOMPv12 STOMPVersion = 0

func (v STOMPVersion) String() string {
	if v == STOMPv12 {
		return "V1_2"
	}
	return strconv.Itoa(int(v))
}

// ParsePayloadSecurity accepts the names returned by PayloadSecurity.String, in
// any case.
func ParsePayloadSecurity(s string) (PayloadSecurity, error) {
	switch strings.ToUpper(s) {
	case "PLAINTEXT", "":
		return PlainText, nil
	case "TLS12":
		return TLS12, nil
	}
	return PlainText, oops.Errorf("unknown payload security %q", s)
}
