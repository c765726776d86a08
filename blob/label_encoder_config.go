package blob

import (
	"fmt"

	"github.com/arloliu/labelarray/endian"
	"github.com/arloliu/labelarray/format"
	"github.com/arloliu/labelarray/internal/options"
	"github.com/arloliu/labelarray/section"
)

// LabelEncoderConfig holds the header flag and byte order of a LabelEncoder.
type LabelEncoderConfig struct {
	flag   section.LabelFlag
	engine endian.EndianEngine
}

func newLabelEncoderConfig() *LabelEncoderConfig {
	return &LabelEncoderConfig{
		flag:   section.NewLabelFlag(),
		engine: endian.GetLittleEndianEngine(),
	}
}

func (c *LabelEncoderConfig) setCodeEncoding(enc format.EncodingType) error {
	if !enc.IsValid() {
		return fmt.Errorf("invalid code encoding: %v", enc)
	}
	c.flag.SetCodeEncoding(enc)

	return nil
}

func (c *LabelEncoderConfig) setCompression(comp format.CompressionType) error {
	if !comp.IsValid() {
		return fmt.Errorf("invalid payload compression: %v", comp)
	}
	c.flag.SetCompression(comp)

	return nil
}

func (c *LabelEncoderConfig) setBigEndian(big bool) {
	if big {
		c.flag.WithBigEndian()
		c.engine = endian.GetBigEndianEngine()
	} else {
		c.flag.WithLittleEndian()
		c.engine = endian.GetLittleEndianEngine()
	}
}

// LabelEncoderOption is a functional option for configuring LabelEncoder.
type LabelEncoderOption = options.Option[*LabelEncoderConfig]

// WithCodeEncoding selects how codes are stored.
// Valid values are format.TypeRaw and format.TypeVarint. Default is format.TypeVarint.
func WithCodeEncoding(enc format.EncodingType) LabelEncoderOption {
	return options.New(func(cfg *LabelEncoderConfig) error {
		return cfg.setCodeEncoding(enc)
	})
}

// WithCompression selects the payload codec. Default is format.CompressionZstd.
func WithCompression(comp format.CompressionType) LabelEncoderOption {
	return options.New(func(cfg *LabelEncoderConfig) error {
		return cfg.setCompression(comp)
	})
}

// WithLittleEndian writes multi-byte fields little-endian. This is the default.
func WithLittleEndian() LabelEncoderOption {
	return options.NoError(func(cfg *LabelEncoderConfig) {
		cfg.setBigEndian(false)
	})
}

// WithBigEndian writes multi-byte fields big-endian.
func WithBigEndian() LabelEncoderOption {
	return options.NoError(func(cfg *LabelEncoderConfig) {
		cfg.setBigEndian(true)
	})
}
