// Package wavparser reads and writes 16-bit PCM WAV containers
package wavparser

import (
	"bytes"
	"fmt"
	"io"

	"stegowave-backend/models"

	"github.com/aler9/writerseeker"
	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const (
	pcmFormat     = 1
	requiredDepth = 16
)

// FormatError reports a container that is not a usable 16-bit PCM WAV file.
type FormatError struct {
	Reason string
}

func (e *FormatError) Error() string {
	return "invalid WAV file: " + e.Reason
}

// Parse validates the RIFF/WAVE container and returns its metadata together
// with the interleaved 16-bit samples from the data chunk.
func Parse(data []byte) (*models.AudioMetadata, []int16, error) {
	decoder := wav.NewDecoder(bytes.NewReader(data))
	if !decoder.IsValidFile() {
		return nil, nil, &FormatError{Reason: "not a RIFF/WAVE container"}
	}
	if decoder.WavAudioFormat != pcmFormat {
		return nil, nil, &FormatError{Reason: fmt.Sprintf("unsupported audio format %d, only PCM is supported", decoder.WavAudioFormat)}
	}
	if decoder.BitDepth != requiredDepth {
		return nil, nil, &FormatError{Reason: fmt.Sprintf("unsupported bit depth %d, only 16-bit samples are supported", decoder.BitDepth)}
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, nil, &FormatError{Reason: fmt.Sprintf("failed to read samples: %v", err)}
	}

	samples := make([]int16, len(buf.Data))
	for i, s := range buf.Data {
		samples[i] = int16(s)
	}

	metadata := &models.AudioMetadata{
		SampleRate:   buf.Format.SampleRate,
		Channels:     buf.Format.NumChannels,
		BitDepth:     requiredDepth,
		TotalSamples: len(samples),
	}
	if metadata.SampleRate > 0 && metadata.Channels > 0 {
		metadata.Duration = float64(len(samples)) / float64(metadata.Channels) / float64(metadata.SampleRate)
	}

	return metadata, samples, nil
}

// Serialize re-emits the samples as a 16-bit PCM WAV byte stream using the
// original container metadata. The input slice is not retained.
func Serialize(metadata *models.AudioMetadata, samples []int16) ([]byte, error) {
	data := make([]int, len(samples))
	for i, s := range samples {
		data[i] = int(s)
	}

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: metadata.Channels,
			SampleRate:  metadata.SampleRate,
		},
		Data:           data,
		SourceBitDepth: requiredDepth,
	}

	ws := &writerseeker.WriterSeeker{}
	encoder := wav.NewEncoder(ws, metadata.SampleRate, requiredDepth, metadata.Channels, pcmFormat)

	if err := encoder.Write(buf); err != nil {
		return nil, fmt.Errorf("failed to encode WAV: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("failed to close WAV encoder: %w", err)
	}

	out, err := io.ReadAll(ws.Reader())
	if err != nil {
		return nil, fmt.Errorf("failed to read encoded WAV: %w", err)
	}
	return out, nil
}
