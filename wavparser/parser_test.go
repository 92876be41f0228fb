package wavparser

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"stegowave-backend/models"
)

func testMetadata(sampleCount int) *models.AudioMetadata {
	return &models.AudioMetadata{
		SampleRate:   44100,
		Channels:     1,
		BitDepth:     16,
		TotalSamples: sampleCount,
	}
}

// buildRawWAV writes a minimal canonical 44-byte header in front of data so
// malformed variants can be produced without going through Serialize.
func buildRawWAV(audioFormat, channels, bitsPerSample uint16, data []byte) []byte {
	var buf bytes.Buffer
	sampleRate := uint32(8000)
	blockAlign := channels * bitsPerSample / 8

	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, uint32(36+len(data)))
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(16))
	binary.Write(&buf, binary.LittleEndian, audioFormat)
	binary.Write(&buf, binary.LittleEndian, channels)
	binary.Write(&buf, binary.LittleEndian, sampleRate)
	binary.Write(&buf, binary.LittleEndian, sampleRate*uint32(blockAlign))
	binary.Write(&buf, binary.LittleEndian, blockAlign)
	binary.Write(&buf, binary.LittleEndian, bitsPerSample)
	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, uint32(len(data)))
	buf.Write(data)
	return buf.Bytes()
}

func TestSerializeParseRoundTrip(t *testing.T) {
	samples := []int16{0, 1, -1, 32767, -32768, 8, 1000, -1000}
	wavData, err := Serialize(testMetadata(len(samples)), samples)
	if err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	metadata, parsed, err := Parse(wavData)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if metadata.SampleRate != 44100 || metadata.Channels != 1 || metadata.BitDepth != 16 {
		t.Errorf("unexpected metadata: %+v", metadata)
	}
	if metadata.TotalSamples != len(samples) {
		t.Errorf("TotalSamples = %d, want %d", metadata.TotalSamples, len(samples))
	}
	if len(parsed) != len(samples) {
		t.Fatalf("sample count = %d, want %d", len(parsed), len(samples))
	}
	for i := range samples {
		if parsed[i] != samples[i] {
			t.Fatalf("sample %d = %d, want %d", i, parsed[i], samples[i])
		}
	}
}

func TestSerializeStereoRoundTrip(t *testing.T) {
	metadata := &models.AudioMetadata{SampleRate: 48000, Channels: 2, BitDepth: 16}
	samples := make([]int16, 200)
	for i := range samples {
		samples[i] = int16(i - 100)
	}

	wavData, err := Serialize(metadata, samples)
	if err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	parsedMeta, parsed, err := Parse(wavData)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if parsedMeta.Channels != 2 || parsedMeta.SampleRate != 48000 {
		t.Errorf("unexpected metadata: %+v", parsedMeta)
	}
	for i := range samples {
		if parsed[i] != samples[i] {
			t.Fatalf("sample %d = %d, want %d", i, parsed[i], samples[i])
		}
	}
}

func TestParseRejectsMalformedContainers(t *testing.T) {
	var formatErr *FormatError

	tests := []struct {
		name string
		data []byte
	}{
		{"empty", []byte{}},
		{"garbage", []byte("this is definitely not audio")},
		{"truncated header", []byte("RIFF\x00\x00")},
		{"eight bit pcm", buildRawWAV(1, 1, 8, bytes.Repeat([]byte{0x80}, 64))},
		{"ieee float", buildRawWAV(3, 1, 16, make([]byte, 64))},
	}

	for _, tt := range tests {
		_, _, err := Parse(tt.data)
		if err == nil {
			t.Errorf("%s: Parse succeeded, want FormatError", tt.name)
			continue
		}
		if !errors.As(err, &formatErr) {
			t.Errorf("%s: got %v, want FormatError", tt.name, err)
		}
	}
}
