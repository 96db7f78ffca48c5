package digest

import (
	"encoding/hex"
	"encoding/json"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// TestVector is a single known-answer test case.
type TestVector struct {
	Name      string `json:"name"`
	Algorithm string `json:"algorithm"`
	Input     string `json:"input"`
	InputHex  string `json:"input_hex,omitempty"` // Alternative hex-encoded input
	Repeat    int    `json:"repeat,omitempty"`    // Input is repeated this many times
	Expected  string `json:"expected"`            // Hex-encoded expected output
}

// TestVectorSuite is a set of vectors with metadata about their source.
type TestVectorSuite struct {
	Version     string       `json:"version"`
	Description string       `json:"description"`
	Source      string       `json:"source,omitempty"`
	Vectors     []TestVector `json:"vectors"`
}

// LoadTestVectors loads test vectors from a JSON file.
func LoadTestVectors(path string) (*TestVectorSuite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "digest: read test vectors")
	}

	var suite TestVectorSuite
	if err := json.Unmarshal(data, &suite); err != nil {
		return nil, errors.Wrap(err, "digest: parse test vectors")
	}

	return &suite, nil
}

// GetInput returns the decoded input bytes. InputHex takes precedence over
// Input, and the result is repeated Repeat times when Repeat > 1.
func (tv *TestVector) GetInput() ([]byte, error) {
	input := []byte(tv.Input)
	if tv.InputHex != "" {
		var err error
		input, err = hex.DecodeString(tv.InputHex)
		if err != nil {
			return nil, errors.Wrap(err, "digest: invalid input hex")
		}
	}
	if tv.Repeat > 1 {
		input = []byte(strings.Repeat(string(input), tv.Repeat))
	}
	return input, nil
}

// GetExpected returns the decoded expected output.
func (tv *TestVector) GetExpected() ([]byte, error) {
	expected, err := hex.DecodeString(tv.Expected)
	if err != nil {
		return nil, errors.Wrap(err, "digest: invalid expected output")
	}
	if len(expected) == 0 {
		return nil, errors.Errorf("digest: vector %q has no expected output", tv.Name)
	}
	return expected, nil
}
