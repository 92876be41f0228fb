// Package handlers is made to handle requests
package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"stegowave-backend/audio"
	"stegowave-backend/models"
	"stegowave-backend/stego"
	"stegowave-backend/wavparser"

	"github.com/gin-gonic/gin"
)

const maxUploadBytes = 32 << 20 // 32MB limit

// failureBody builds the JSON error payload for one endpoint family: the
// hide/clear endpoints answer with StegoResponse, extraction with
// ExtractResponse.
type failureBody func(message string) any

func stegoFailure(message string) any {
	return models.StegoResponse{Success: false, Message: message}
}

func extractFailure(message string) any {
	return models.ExtractResponse{Success: false, Message: message}
}

type StegoHandler struct{}

func NewStegoHandler() *StegoHandler {
	return &StegoHandler{}
}

func (h *StegoHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "WAV steganography API is running",
		"version": "1.0.0",
	})
}

// HideMessage embeds the submitted message into the uploaded WAV file and
// streams the stego file back.
func (h *StegoHandler) HideMessage(c *gin.Context) {
	config, ok := h.configFromForm(c, stegoFailure)
	if !ok {
		return
	}

	wavData, filename, ok := h.readAudioFile(c, stegoFailure)
	if !ok {
		return
	}

	message := c.PostForm("message")
	if message == "" {
		c.JSON(http.StatusBadRequest, stegoFailure("Message is required"))
		return
	}

	metadata, samples, err := wavparser.Parse(wavData)
	if err != nil {
		h.fail(c, err, "Failed to parse WAV file", stegoFailure)
		return
	}

	codec := stego.NewLSBCodec(config)
	stegoSamples, err := codec.HideMessage(samples, []byte(message))
	if err != nil {
		h.fail(c, err, "Failed to embed message", stegoFailure)
		return
	}

	output, err := wavparser.Serialize(metadata, stegoSamples)
	if err != nil {
		h.fail(c, err, "Failed to encode WAV file", stegoFailure)
		return
	}

	psnr := audio.CalculatePSNR(samples, stegoSamples)
	c.Header("X-Stego-Method", "WAV 16-bit LSB")
	c.Header("X-Stego-PSNR", fmt.Sprintf("%.2f", psnr))
	c.Header("X-Stego-Capacity", fmt.Sprintf("%d", codec.CapacityBytes(len(samples))))
	c.Header("X-Stego-Duration", fmt.Sprintf("%.2f", metadata.Duration))

	baseFilename := strings.TrimSuffix(filename, filepath.Ext(filename))
	h.sendWAV(c, fmt.Sprintf("%s_stego.wav", baseFilename), output)
}

// ExtractMessage recovers the hidden message from the uploaded WAV file and
// returns it as plain text.
func (h *StegoHandler) ExtractMessage(c *gin.Context) {
	config, ok := h.configFromForm(c, extractFailure)
	if !ok {
		return
	}

	wavData, _, ok := h.readAudioFile(c, extractFailure)
	if !ok {
		return
	}

	_, samples, err := wavparser.Parse(wavData)
	if err != nil {
		h.fail(c, err, "Failed to parse WAV file", extractFailure)
		return
	}

	secret, err := stego.NewLSBCodec(config).ExtractMessage(samples)
	if err != nil {
		h.fail(c, err, "Failed to extract message", extractFailure)
		return
	}

	c.Data(http.StatusOK, "text/plain; charset=utf-8", secret)
}

// ClearMessage erases the hidden message from the uploaded WAV file and
// streams the cleaned file back.
func (h *StegoHandler) ClearMessage(c *gin.Context) {
	config, ok := h.configFromForm(c, stegoFailure)
	if !ok {
		return
	}

	wavData, filename, ok := h.readAudioFile(c, stegoFailure)
	if !ok {
		return
	}

	metadata, samples, err := wavparser.Parse(wavData)
	if err != nil {
		h.fail(c, err, "Failed to parse WAV file", stegoFailure)
		return
	}

	cleaned, err := stego.NewLSBCodec(config).ClearMessage(samples)
	if err != nil {
		h.fail(c, err, "Failed to clear message", stegoFailure)
		return
	}

	output, err := wavparser.Serialize(metadata, cleaned)
	if err != nil {
		h.fail(c, err, "Failed to encode WAV file", stegoFailure)
		return
	}

	baseFilename := strings.TrimSuffix(filename, filepath.Ext(filename))
	h.sendWAV(c, fmt.Sprintf("%s_clean.wav", baseFilename), output)
}

func (h *StegoHandler) configFromForm(c *gin.Context, failure failureBody) (*models.StegoConfig, bool) {
	if err := c.Request.ParseMultipartForm(maxUploadBytes); err != nil {
		c.JSON(http.StatusBadRequest, failure(fmt.Sprintf("Failed to parse form: %v", err)))
		return nil, false
	}

	builder := models.NewConfigBuilder().Password(c.PostForm("password"))

	if depthStr := c.PostForm("lsb_depth"); depthStr != "" {
		depth, err := strconv.Atoi(depthStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, failure("LSB depth must be an integer between 1 and 16"))
			return nil, false
		}
		builder.LSBDepth(depth)
	}

	config, err := builder.Build()
	if err != nil {
		c.JSON(http.StatusBadRequest, failure(fmt.Sprintf("Invalid parameters: %v", err)))
		return nil, false
	}
	return config, true
}

func (h *StegoHandler) readAudioFile(c *gin.Context, failure failureBody) ([]byte, string, bool) {
	audioFile, audioHeader, err := c.Request.FormFile("audio_file")
	if err != nil {
		c.JSON(http.StatusBadRequest, failure("Audio file is required"))
		return nil, "", false
	}
	defer audioFile.Close()

	if !isValidWAVFile(audioHeader.Filename) {
		c.JSON(http.StatusBadRequest, failure("Invalid audio file format. Only WAV files are supported"))
		return nil, "", false
	}

	wavData, err := io.ReadAll(audioFile)
	if err != nil {
		c.JSON(http.StatusInternalServerError, failure(fmt.Sprintf("Failed to read audio file: %v", err)))
		return nil, "", false
	}

	return wavData, audioHeader.Filename, true
}

func (h *StegoHandler) sendWAV(c *gin.Context, filename string, data []byte) {
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Transfer-Encoding", "binary")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "audio/wav", data)
}

func (h *StegoHandler) fail(c *gin.Context, err error, context string, failure failureBody) {
	c.JSON(statusForError(err), failure(fmt.Sprintf("%s: %v", context, err)))
}

// statusForError maps codec and parser failures to client errors; anything
// unexpected stays a 500.
func statusForError(err error) int {
	var formatErr *wavparser.FormatError
	var validationErr *models.ValidationError
	var capacityErr *stego.CapacityError

	switch {
	case errors.As(err, &formatErr),
		errors.As(err, &validationErr),
		errors.As(err, &capacityErr),
		errors.Is(err, stego.ErrHeaderMismatch),
		errors.Is(err, stego.ErrCorrupted):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func isValidWAVFile(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return ext == ".wav"
}
