package webpkit

import (
	"github.com/gobeaver/beaver-kit/config"
)

// Config holds environment-driven defaults for tools built on webpkit, such
// as the cmd/webpkit CLI. The library itself never reads the environment:
// Validate and Validator behave the same regardless of these settings unless
// a caller explicitly applies them via Config.Constraints.
type Config struct {
	// Validation limits (0 disables the corresponding check)
	MaxFileSize int64 `env:"WEBPKIT_MAX_FILE_SIZE,default:0"`
	MinFileSize int64 `env:"WEBPKIT_MIN_FILE_SIZE,default:0"`
	MaxWidth    int64 `env:"WEBPKIT_MAX_WIDTH,default:0"`
	MaxHeight   int64 `env:"WEBPKIT_MAX_HEIGHT,default:0"`
	MaxPixels   int64 `env:"WEBPKIT_MAX_PIXELS,default:0"`
	MaxFrames   int64 `env:"WEBPKIT_MAX_FRAMES,default:0"`

	// Checksum reporting
	ChecksumAlgorithm string `env:"WEBPKIT_CHECKSUM_ALGORITHM,default:xxhash"`
}

// GetConfig returns config loaded from environment
func GetConfig() (*Config, error) {
	cfg := &Config{}
	if err := config.Load(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Constraints converts the configured limits into validation constraints
func (c *Config) Constraints() Constraints {
	return Constraints{
		MaxFileSize: c.MaxFileSize,
		MinFileSize: c.MinFileSize,
		MaxWidth:    uint32(c.MaxWidth),
		MaxHeight:   uint32(c.MaxHeight),
		MaxPixels:   uint64(c.MaxPixels),
		MaxFrames:   uint32(c.MaxFrames),
	}
}
