// Package config loads the codec and reassembly settings from viper.
//
// Settings come from, in order of precedence, values set on viper by the caller,
// the YAML file named by CfgFile (or $HOME/.go-usp/config.yaml) and the built in
// defaults returned by Defaults. Components take a *CodecConfig rather than
// reading viper directly; NewCodecConfigFromViper builds one from the current
// viper state and DefaultCodecConfig builds one without touching viper at all.
//
// The keys are:
//
//	record.version           protocol version written into new Records
//	record.payload_security  PLAINTEXT or TLS12
//	codec.max_record_size    largest encoded Record accepted for decoding
//	sar.max_fragment_size    largest payload fragment emitted by the segmenter
//	sar.max_buffered_bytes   per session cap on buffered fragments
//	sar.max_sessions         cap on sessions with a pending buffer
//	sar.fragment_ttl         idle time after which a pending buffer is dropped
//	sar.store                memory or redis
//	sar.redis.addr, sar.redis.password, sar.redis.db, sar.redis.key_prefix
package config
