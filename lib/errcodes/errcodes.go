// Package errcodes holds the USP error code table and the default texts reported
// when a caller supplies a code but no message.
package errcodes

// Message error codes, reported in Error and in per-path results.
const (
	MessageFailed                uint32 = 7000
	MessageNotSupported          uint32 = 7001
	RequestDenied                uint32 = 7002
	InternalError                uint32 = 7003
	InvalidArguments             uint32 = 7004
	ResourcesExceeded            uint32 = 7005
	PermissionDenied             uint32 = 7006
	InvalidConfiguration         uint32 = 7007
	InvalidPathSyntax            uint32 = 7008
	ParameterActionFailed        uint32 = 7009
	UnsupportedParameter         uint32 = 7010
	InvalidType                  uint32 = 7011
	InvalidValue                 uint32 = 7012
	ParamReadOnly                uint32 = 7013
	ValueConflict                uint32 = 7014
	OperationError               uint32 = 7015
	ObjectDoesNotExist           uint32 = 7016
	ObjectNotCreated             uint32 = 7017
	ObjectNotTable               uint32 = 7018
	ObjectNotCreatable           uint32 = 7019
	ObjectNotUpdated             uint32 = 7020
	RequiredParamFailed          uint32 = 7021
	CommandFailure               uint32 = 7022
	CommandCanceled              uint32 = 7023
	DeleteFailure                uint32 = 7024
	ObjectExistsWithDuplicateKey uint32 = 7025
	InvalidPath                  uint32 = 7026
	InvalidCommandArgs           uint32 = 7027
	RegisterFailure              uint32 = 7028
	AlreadyInUse                 uint32 = 7029
	DeregisterFailure            uint32 = 7030
	PathAlreadyRegistered        uint32 = 7031
)

// Record error codes, reported in DisconnectRecord.
const (
	RecordNotParsed           uint32 = 7100
	SecureSessionRequired     uint32 = 7101
	SecureSessionNotSupported uint32 = 7102
	SegmentationNotSupported  uint32 = 7103
	InvalidRecordValue        uint32 = 7104
	SessionContextTerminated  uint32 = 7105
	SessionContextNotAllowed  uint32 = 7106
)

const (
	Min       uint32 = 7000
	Max       uint32 = 7999
	VendorMin uint32 = 7800
)

var messages = map[uint32]string{
	MessageFailed:                "Message failed",
	MessageNotSupported:          "Message not supported",
	RequestDenied:                "Request denied",
	InternalError:                "Internal error",
	InvalidArguments:             "Invalid arguments",
	ResourcesExceeded:            "Resources exceeded",
	PermissionDenied:             "Permission denied",
	InvalidConfiguration:         "Invalid configuration",
	InvalidPathSyntax:            "Invalid path syntax",
	ParameterActionFailed:        "Parameter action failed",
	UnsupportedParameter:         "Unsupported parameter",
	InvalidType:                  "Invalid type",
	InvalidValue:                 "Invalid value",
	ParamReadOnly:                "Attempt to update non-writeable parameter",
	ValueConflict:                "Value conflict",
	OperationError:               "Operation error",
	ObjectDoesNotExist:           "Object does not exist",
	ObjectNotCreated:             "Object could not be created",
	ObjectNotTable:               "Object is not a table",
	ObjectNotCreatable:           "Attempt to create non-creatable object",
	ObjectNotUpdated:             "Object could not be updated",
	RequiredParamFailed:          "Required parameter failed",
	CommandFailure:               "Command failure",
	CommandCanceled:              "Command canceled",
	DeleteFailure:                "Delete failure",
	ObjectExistsWithDuplicateKey: "Object exists with duplicate key",
	InvalidPath:                  "Invalid path",
	InvalidCommandArgs:           "Invalid Command Arguments",
	RegisterFailure:              "Register failure",
	AlreadyInUse:                 "Already in use",
	DeregisterFailure:            "Deregister failure",
	PathAlreadyRegistered:        "Path already registered",

	RecordNotParsed:           "Record could not be parsed",
	SecureSessionRequired:     "Secure session required",
	SecureSessionNotSupported: "Secure session not supported",
	SegmentationNotSupported:  "Segmentation and reassembly not supported",
	InvalidRecordValue:        "Invalid Record value",
	SessionContextTerminated:  "Session Context terminated",
	SessionContextNotAllowed:  "Session Context not allowed",
}

// Message returns the default text for code.
func Message(code uint32) string {
	if m, ok := messages[code]; ok {
		return m
	}
	if IsVendor(code) {
		return "Vendor defined error"
	}
	return "Unknown error"
}

// IsVendor reports whether code is in the vendor specific range 7800-7999.
func IsVendor(code uint32) bool {
	return code >= VendorMin && code <= Max
}

// IsValid reports whether code may appear in a USP error field.
func IsValid(code uint32) bool {
	return code >= Min && code <= Max
}
