package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/go-i2p/logger"
	"github.com/go-usp/go-usp/lib/util"
	"github.com/samber/oops"
	"github.com/spf13/viper"
)

var (
	CfgFile string
	log     = logger.GetGoI2PLogger()
)

const GOUSP_BASE_DIR = ".go-usp"

// InitConfig points viper at the config file, applies defaults and reads the file.
// A missing default config file is created from the defaults; a missing file named
// by CfgFile is an error.
func InitConfig() error {
	if CfgFile != "" {
		viper.SetConfigFile(CfgFile)
	} else {
		viper.AddConfigPath(BuildDirPath())
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}
	setDefaults()
	return handleConfigFile()
}

func setDefaults() {
	d := Defaults()

	viper.SetDefault("record.version", d.Record.Version)
	viper.SetDefault("record.payload_security", d.Record.PayloadSecurity)

	viper.SetDefault("codec.max_record_size", d.Codec.MaxRecordSize)

	viper.SetDefault("sar.max_fragment_size", d.SAR.MaxFragmentSize)
	viper.SetDefault("sar.max_buffered_bytes", d.SAR.MaxBufferedBytes)
	viper.SetDefault("sar.max_sessions", d.SAR.MaxSessions)
	viper.SetDefault("sar.fragment_ttl", d.SAR.FragmentTTL)
	viper.SetDefault("sar.store", d.SAR.Store)
	viper.SetDefault("sar.redis.addr", d.SAR.Redis.Addr)
	viper.SetDefault("sar.redis.password", "")
	viper.SetDefault("sar.redis.db", d.SAR.Redis.DB)
	viper.SetDefault("sar.redis.key_prefix", d.SAR.Redis.KeyPrefix)
}

// NewCodecConfigFromViper creates a CodecConfig from the current viper settings.
func NewCodecConfigFromViper() *CodecConfig {
	return &CodecConfig{
		Record: RecordConfig{
			Version:         viper.GetString("record.version"),
			PayloadSecurity: viper.GetString("record.payload_security"),
		},
		MaxRecordSize: viper.GetInt("codec.max_record_size"),
		SAR: SARConfig{
			MaxFragmentSize:  viper.GetInt("sar.max_fragment_size"),
			MaxBufferedBytes: viper.GetInt("sar.max_buffered_bytes"),
			MaxSessions:      viper.GetInt("sar.max_sessions"),
			FragmentTTL:      viper.GetDuration("sar.fragment_ttl"),
			Store:            viper.GetString("sar.store"),
			Redis: RedisConfig{
				Addr:      viper.GetString("sar.redis.addr"),
				Password:  viper.GetString("sar.redis.password"),
				DB:        viper.GetInt("sar.redis.db"),
				KeyPrefix: viper.GetString("sar.redis.key_prefix"),
			},
		},
	}
}

func createDefaultConfig(dir string) error {
	file := filepath.Join(dir, "config.yaml")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return oops.Wrapf(err, "could not create config directory %s", dir)
	}
	if err := viper.SafeWriteConfigAs(file); err != nil {
		return oops.Wrapf(err, "could not write default config file %s", file)
	}
	log.WithField("path", file).Debug("created default configuration")
	return nil
}

func handleConfigFile() error {
	err := viper.ReadInConfig()
	if err == nil {
		log.WithField("path", viper.ConfigFileUsed()).Debug("using config file")
		return nil
	}
	var notFound viper.ConfigFileNotFoundError
	switch {
	case CfgFile != "" && !util.CheckFileExists(CfgFile):
		return oops.Wrapf(err, "config file %s not found", CfgFile)
	case errors.As(err, &notFound):
		return createDefaultConfig(BuildDirPath())
	default:
		return oops.Wrapf(err, "error reading config file")
	}
}

// BuildDirPath returns $HOME/.go-usp.
func BuildDirPath() string {
	return filepath.Join(util.UserHome(), GOUSP_BASE_DIR)
}
