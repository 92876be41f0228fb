// Package models contain needed models
package models

// MinLSBDepth and MaxLSBDepth bound how many low-order bits of each
// 16-bit sample may carry hidden data.
const (
	MinLSBDepth = 1
	MaxLSBDepth = 16
)

// StegoConfig holds the frozen parameters for one steganography
// operation. Build it through ConfigBuilder; a value obtained from
// Build never changes afterwards.
type StegoConfig struct {
	lsbDepth int
	password string
}

func (c *StegoConfig) LSBDepth() int {
	return c.lsbDepth
}

func (c *StegoConfig) Password() string {
	return c.password
}

// ConfigBuilder validates operation parameters before freezing them
// into a StegoConfig. The zero depth defaults to MinLSBDepth.
type ConfigBuilder struct {
	lsbDepth int
	password string
	err      error
}

func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{lsbDepth: MinLSBDepth}
}

func (b *ConfigBuilder) LSBDepth(depth int) *ConfigBuilder {
	if depth < MinLSBDepth || depth > MaxLSBDepth {
		b.setErr(&ValidationError{Reason: "lsb_depth must be between 1 and 16"})
		return b
	}
	b.lsbDepth = depth
	return b
}

func (b *ConfigBuilder) Password(password string) *ConfigBuilder {
	if password == "" {
		b.setErr(&ValidationError{Reason: "password cannot be empty"})
		return b
	}
	b.password = password
	return b
}

func (b *ConfigBuilder) Build() (*StegoConfig, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.password == "" {
		return nil, &ValidationError{Reason: "password cannot be empty"}
	}
	return &StegoConfig{lsbDepth: b.lsbDepth, password: b.password}, nil
}

// setErr keeps the first validation failure
func (b *ConfigBuilder) setErr(err error) {
	if b.err == nil {
		b.err = err
	}
}

// AudioMetadata represents metadata about a parsed audio file
type AudioMetadata struct {
	SampleRate   int
	Channels     int
	BitDepth     int
	Duration     float64
	TotalSamples int
}

// StegoResponse represents the failure response of a hide or clear
// operation; success streams the WAV bytes directly.
type StegoResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ExtractResponse represents the failure response of an extraction;
// success returns the recovered message as plain text.
type ExtractResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
