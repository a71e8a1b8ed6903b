package config

import "time"

// CodecConfig is the runtime configuration shared by the builder, sar and usp
// packages.
type CodecConfig struct {
	Record RecordConfig
	// MaxRecordSize bounds the encoded size of a Record accepted by the decoder.
	MaxRecordSize int
	SAR           SARConfig
}

// RecordConfig holds the envelope fields filled in when the caller leaves them empty.
type RecordConfig struct {
	Version         string
	PayloadSecurity string
}

// SARConfig bounds segmentation and reassembly.
type SARConfig struct {
	MaxFragmentSize  int
	MaxBufferedBytes int
	MaxSessions      int
	FragmentTTL      time.Duration
	// Store selects the pending buffer backend, StoreMemory or StoreRedis.
	Store string
	Redis RedisConfig
}

// RedisConfig is used when SARConfig.Store is StoreRedis.
type RedisConfig struct {
	Addr      string
	Password  string
	DB        int
	KeyPrefix string
}

const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
)

// DefaultCodecConfig returns a CodecConfig populated from Defaults.
func DefaultCodecConfig() *CodecConfig {
	d := Defaults()
	return &CodecConfig{
		Record: RecordConfig{
			Version:         d.Record.Version,
			PayloadSecurity: d.Record.PayloadSecurity,
		},
		MaxRecordSize: d.Codec.MaxRecordSize,
		SAR: SARConfig{
			MaxFragmentSize:  d.SAR.MaxFragmentSize,
			MaxBufferedBytes: d.SAR.MaxBufferedBytes,
			MaxSessions:      d.SAR.MaxSessions,
			FragmentTTL:      d.SAR.FragmentTTL,
			Store:            d.SAR.Store,
			Redis: RedisConfig{
				Addr:      d.SAR.Redis.Addr,
				DB:        d.SAR.Redis.DB,
				KeyPrefix: d.SAR.Redis.KeyPrefix,
			},
		},
	}
}
