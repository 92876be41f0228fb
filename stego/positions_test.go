package stego

import (
	"errors"
	"reflect"
	"testing"
)

func TestGenerateIndicesDeterministic(t *testing.T) {
	first, err := GenerateIndices("qwerty1234", 1000, 100)
	if err != nil {
		t.Fatalf("GenerateIndices failed: %v", err)
	}
	second, err := GenerateIndices("qwerty1234", 1000, 100)
	if err != nil {
		t.Fatalf("GenerateIndices failed: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("identical inputs produced different index sequences")
	}
}

func TestGenerateIndicesPrefixStable(t *testing.T) {
	short, err := GenerateIndices("key", 5000, 10)
	if err != nil {
		t.Fatalf("GenerateIndices failed: %v", err)
	}
	long, err := GenerateIndices("key", 5000, 500)
	if err != nil {
		t.Fatalf("GenerateIndices failed: %v", err)
	}
	if !reflect.DeepEqual(short, long[:len(short)]) {
		t.Error("shorter sequence is not a prefix of the longer one")
	}
}

func TestGenerateIndicesUniqueAndInRange(t *testing.T) {
	indices, err := GenerateIndices("key", 200, 200)
	if err != nil {
		t.Fatalf("GenerateIndices failed: %v", err)
	}
	seen := make(map[int]bool, len(indices))
	for _, pos := range indices {
		if pos < 0 || pos >= 200 {
			t.Fatalf("index %d out of range [0, 200)", pos)
		}
		if seen[pos] {
			t.Fatalf("index %d generated twice", pos)
		}
		seen[pos] = true
	}
}

func TestGenerateIndicesCapacity(t *testing.T) {
	_, err := GenerateIndices("key", 100, 101)
	var capacityErr *CapacityError
	if !errors.As(err, &capacityErr) {
		t.Fatalf("got %v, want CapacityError", err)
	}
	if capacityErr.RequiredSamples != 101 || capacityErr.AvailableSamples != 100 {
		t.Errorf("unexpected error detail: %+v", capacityErr)
	}
}

func TestGenerateIndicesPasswordSensitive(t *testing.T) {
	a, err := GenerateIndices("password_a", 10000, 64)
	if err != nil {
		t.Fatalf("GenerateIndices failed: %v", err)
	}
	b, err := GenerateIndices("password_b", 10000, 64)
	if err != nil {
		t.Fatalf("GenerateIndices failed: %v", err)
	}
	if reflect.DeepEqual(a, b) {
		t.Error("different passwords produced the same index sequence")
	}
}
