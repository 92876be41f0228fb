package stego

import (
	"crypto/md5"
	"encoding/binary"
	"math/rand"
)

func generateSeed(password string) int64 {
	hash := md5.Sum([]byte(password))
	return int64(binary.BigEndian.Uint64(hash[:8]))
}

// GenerateIndices derives requiredCount distinct sample indices in
// [0, sampleCount) from the password. The sequence is fully determined by
// (password, sampleCount): the stream is drawn from a generator seeded with
// the first 8 bytes of MD5(password), rejecting repeats, so the first k
// indices are identical no matter how many are requested. Hide, extract and
// clear all rely on regenerating the same sequence.
func GenerateIndices(password string, sampleCount, requiredCount int) ([]int, error) {
	if requiredCount > sampleCount {
		return nil, &CapacityError{RequiredSamples: requiredCount, AvailableSamples: sampleCount}
	}

	rng := rand.New(rand.NewSource(generateSeed(password)))
	used := make(map[int]bool, requiredCount)
	indices := make([]int, 0, requiredCount)

	for len(indices) < requiredCount {
		pos := rng.Intn(sampleCount)
		if !used[pos] {
			used[pos] = true
			indices = append(indices, pos)
		}
	}

	return indices, nil
}
