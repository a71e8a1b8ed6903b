package config

import (
	"strings"
	"time"

	"github.com/go-i2p/logger"
)

// ConfigDefaults contains the default value of every setting.
type ConfigDefaults struct {
	Record RecordDefaults
	Codec  CodecDefaults
	SAR    SARDefaults
}

// RecordDefaults contains default envelope values for new Records.
type RecordDefaults struct {
	// Version is the USP protocol version advertised in Records.
	// Default: 1.3
	Version string

	// PayloadSecurity is PLAINTEXT or TLS12.
	// Default: PLAINTEXT
	PayloadSecurity string
}

// CodecDefaults contains default decoder limits.
type CodecDefaults struct {
	// MaxRecordSize is the largest encoded Record the decoder accepts.
	// Default: 4 MiB
	MaxRecordSize int
}

// SARDefaults contains default segmentation and reassembly settings.
type SARDefaults struct {
	// MaxFragmentSize is the largest payload chunk put in one SessionContextRecord.
	// Default: 64 KiB
	MaxFragmentSize int

	// MaxBufferedBytes caps the bytes buffered for one session.
	// Default: 4 MiB
	MaxBufferedBytes int

	// MaxSessions caps the number of sessions with a pending buffer.
	// Default: 1024
	MaxSessions int

	// FragmentTTL is how long an incomplete buffer survives without new fragments.
	// Default: 2 minutes
	FragmentTTL time.Duration

	// Store is memory or redis.
	// Default: memory
	Store string

	Redis RedisDefaults
}

// RedisDefaults contains the connection settings of the redis store.
type RedisDefaults struct {
	// Default: localhost:6379
	Addr string
	// Default: 0
	DB int
	// Default: usp:sar:
	KeyPrefix string
}

// Defaults returns the built in configuration.
func Defaults() ConfigDefaults {
	return ConfigDefaults{
		Record: RecordDefaults{
			Version:         "1.3",
			PayloadSecurity: "PLAINTEXT",
		},
		Codec: CodecDefaults{
			MaxRecordSize: 4 << 20,
		},
		SAR: SARDefaults{
			MaxFragmentSize:  64 << 10,
			MaxBufferedBytes: 4 << 20,
			MaxSessions:      1024,
			FragmentTTL:      2 * time.Minute,
			Store:            StoreMemory,
			Redis: RedisDefaults{
				Addr:      "localhost:6379",
				KeyPrefix: "usp:sar:",
			},
		},
	}
}

// Validate checks a CodecConfig for values the codec cannot work with.
func Validate(cfg *CodecConfig) error {
	log.WithFields(logger.Fields{
		"at":     "config.Validate",
		"reason": "verification_requested",
	}).Debug("validating codec configuration")

	if cfg == nil {
		return newValidationError("codec configuration is nil")
	}
	validators := []func() error{
		func() error { return validateRecord(cfg.Record) },
		func() error { return validateCodec(cfg) },
		func() error { return validateSAR(cfg.SAR) },
	}
	for _, validator := range validators {
		if err := validator(); err != nil {
			log.WithError(err).Error("configuration validation failed")
			return err
		}
	}
	return nil
}

func validateRecord(r RecordConfig) error {
	if r.Version == "" {
		return newValidationError("record.version must not be empty")
	}
	switch strings.ToUpper(r.PayloadSecurity) {
	case "PLAINTEXT", "TLS12":
	default:
		return newValidationError("record.payload_security must be PLAINTEXT or TLS12, got " + r.PayloadSecurity)
	}
	return nil
}

func validateCodec(cfg *CodecConfig) error {
	if cfg.MaxRecordSize < 1 {
		return newValidationError("codec.max_record_size must be at least 1")
	}
	if cfg.SAR.MaxFragmentSize > cfg.MaxRecordSize {
		return newValidationError("sar.max_fragment_size must not exceed codec.max_record_size")
	}
	return nil
}

func validateSAR(s SARConfig) error {
	if s.MaxFragmentSize < 1 {
		return newValidationError("sar.max_fragment_size must be at least 1")
	}
	if s.MaxBufferedBytes < s.MaxFragmentSize {
		return newValidationError("sar.max_buffered_bytes must be at least sar.max_fragment_size")
	}
	if s.MaxSessions < 1 {
		return newValidationError("sar.max_sessions must be at least 1")
	}
	if s.FragmentTTL < time.Second {
		return newValidationError("sar.fragment_ttl must be at least 1 second")
	}
	switch s.Store {
	case StoreMemory:
	case StoreRedis:
		if s.Redis.Addr == "" {
			return newValidationError("sar.redis.addr is required when sar.store is redis")
		}
	default:
		return newValidationError("sar.store must be memory or redis, got " + s.Store)
	}
	return nil
}

type validationError struct {
	message string
}

func newValidationError(message string) error {
	return &validationError{message: message}
}

func (e *validationError) Error() string {
	return "configuration validation failed: " + e.message
}
