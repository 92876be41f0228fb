// Package stego to implement LSB substitution over 16-bit samples
package stego

import (
	"encoding/binary"
	"errors"

	"stegowave-backend/models"
)

// Embedded payload layout: 4-byte ASCII marker, big-endian uint32 message
// length, message bytes. The whole payload is walked MSB-first and written
// in groups of lsbDepth bits, one group per selected sample.
const (
	headerMarker = "STEG"
	markerBytes  = 4
	lengthBytes  = 4
	headerBytes  = markerBytes + lengthBytes
	bitsInByte   = 8
)

type LSBCodec struct {
	config *models.StegoConfig
}

func NewLSBCodec(config *models.StegoConfig) *LSBCodec {
	return &LSBCodec{config: config}
}

// CapacityBytes returns the largest message that fits in sampleCount
// samples at the configured depth, after the fixed header overhead.
func (c *LSBCodec) CapacityBytes(sampleCount int) int {
	totalBytes := sampleCount * c.config.LSBDepth() / bitsInByte
	if totalBytes < headerBytes {
		return 0
	}
	return totalBytes - headerBytes
}

// HideMessage embeds message into a copy of samples and returns it. The
// input slice is never modified, so a capacity failure leaves no partial
// write behind.
func (c *LSBCodec) HideMessage(samples []int16, message []byte) ([]int16, error) {
	payload := buildPayload(message)
	payloadBits := bytesToBits(payload)

	depth := c.config.LSBDepth()
	required := groupCount(len(payloadBits), depth)
	indices, err := GenerateIndices(c.config.Password(), len(samples), required)
	if err != nil {
		return nil, err
	}

	stego := make([]int16, len(samples))
	copy(stego, samples)

	mask := uint16((1 << depth) - 1)
	for i, pos := range indices {
		var group uint16
		for b := 0; b < depth; b++ {
			group <<= 1
			// zero-pad past the end of the payload
			if bit := i*depth + b; bit < len(payloadBits) {
				group |= uint16(payloadBits[bit])
			}
		}
		stego[pos] = int16(uint16(stego[pos])&^mask | group)
	}

	return stego, nil
}

// ExtractMessage reads the payload back in two phases: the fixed-size
// header first, then the message once its length is known.
func (c *LSBCodec) ExtractMessage(samples []int16) ([]byte, error) {
	messageLen, headerGroups, headerBits, err := c.readHeader(samples)
	if err != nil {
		return nil, err
	}

	depth := c.config.LSBDepth()
	totalBits := (headerBytes + messageLen) * bitsInByte
	required := groupCount(totalBits, depth)
	if required > len(samples) {
		return nil, ErrCorrupted
	}

	// The regenerated sequence starts with the header indices, so only
	// the continuation is read here.
	indices, err := GenerateIndices(c.config.Password(), len(samples), required)
	if err != nil {
		return nil, err
	}
	bits := append(headerBits, c.readBits(samples, indices[headerGroups:])...)

	return bitsToBytes(bits[headerBytes*bitsInByte : totalBits]), nil
}

// ClearMessage zeroes the low bits of every sample that carries payload
// data and returns the cleaned copy. Fails with ErrNotFound when no valid
// header is present.
func (c *LSBCodec) ClearMessage(samples []int16) ([]int16, error) {
	messageLen, _, _, err := c.readHeader(samples)
	if errors.Is(err, ErrHeaderMismatch) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	depth := c.config.LSBDepth()
	totalBits := (headerBytes + messageLen) * bitsInByte
	required := groupCount(totalBits, depth)
	if required > len(samples) {
		return nil, ErrCorrupted
	}

	indices, err := GenerateIndices(c.config.Password(), len(samples), required)
	if err != nil {
		return nil, err
	}

	cleaned := make([]int16, len(samples))
	copy(cleaned, samples)

	mask := uint16((1 << depth) - 1)
	for _, pos := range indices {
		cleaned[pos] = int16(uint16(cleaned[pos]) &^ mask)
	}

	return cleaned, nil
}

// readHeader decodes the marker and length fields. It returns the message
// byte length, the number of samples the header occupied and the raw bits
// read so far; the tail of those bits past the header already belongs to
// the message when the depth does not divide 64 evenly.
func (c *LSBCodec) readHeader(samples []int16) (int, int, []byte, error) {
	depth := c.config.LSBDepth()
	headerGroups := groupCount(headerBytes*bitsInByte, depth)

	indices, err := GenerateIndices(c.config.Password(), len(samples), headerGroups)
	if err != nil {
		return 0, 0, nil, err
	}

	bits := c.readBits(samples, indices)
	header := bitsToBytes(bits[:headerBytes*bitsInByte])
	if string(header[:markerBytes]) != headerMarker {
		return 0, 0, nil, ErrHeaderMismatch
	}

	messageLen := int(binary.BigEndian.Uint32(header[markerBytes:headerBytes]))
	return messageLen, headerGroups, bits, nil
}

func (c *LSBCodec) readBits(samples []int16, indices []int) []byte {
	depth := c.config.LSBDepth()
	mask := uint16((1 << depth) - 1)

	bits := make([]byte, 0, len(indices)*depth)
	for _, pos := range indices {
		group := uint16(samples[pos]) & mask
		for shift := depth - 1; shift >= 0; shift-- {
			bits = append(bits, byte((group>>shift)&1))
		}
	}
	return bits
}

func buildPayload(message []byte) []byte {
	payload := make([]byte, 0, headerBytes+len(message))
	payload = append(payload, headerMarker...)

	length := make([]byte, lengthBytes)
	binary.BigEndian.PutUint32(length, uint32(len(message)))
	payload = append(payload, length...)

	return append(payload, message...)
}

func groupCount(bits, depth int) int {
	return (bits + depth - 1) / depth
}

func bytesToBits(data []byte) []byte {
	bits := make([]byte, 0, len(data)*bitsInByte)
	for _, b := range data {
		for i := 7; i >= 0; i-- {
			bits = append(bits, (b>>i)&1)
		}
	}
	return bits
}

func bitsToBytes(bits []byte) []byte {
	out := make([]byte, 0, len(bits)/bitsInByte)
	for i := 0; i+bitsInByte <= len(bits); i += bitsInByte {
		var b byte
		for j := range bitsInByte {
			b = (b << 1) | (bits[i+j] & 1)
		}
		out = append(out, b)
	}
	return out
}
