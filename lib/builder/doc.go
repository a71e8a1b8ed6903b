// Package builder assembles validated USP messages and records with fluent setters.
//
// Builders never touch the wire. Build checks that every mandatory field was set
// and that a variant was chosen for every oneof, validates error codes against the
// USP range and fills empty error messages from package errcodes. The result is
// handed to the codec unchanged.
//
//	get, err := builder.NewGetBuilder().
//		AddParamPath("Device.DeviceInfo.").
//		WithMaxDepth(1).
//		Build()
//	...
//	m, err := builder.NewMsgBuilder().WithRandomMsgID().WithRequest(get).Build()
package builder
