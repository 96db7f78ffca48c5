package chunkgen

import (
	"bytes"
	"testing"
)

func TestGeneratorIsDeterministic(t *testing.T) {
	a := New([]byte("seed"))
	b := New([]byte("seed"))
	if !bytes.Equal(a.Bytes(200), b.Bytes(200)) {
		t.Fatal("generators with the same seed diverged")
	}

	c := New([]byte("other seed"))
	if bytes.Equal(New([]byte("seed")).Bytes(64), c.Bytes(64)) {
		t.Fatal("generators with different seeds produced the same bytes")
	}
}

func TestSplitPreservesData(t *testing.T) {
	g := New([]byte("split"))
	data := g.Bytes(1000)

	for _, maxChunk := range []int{1, 7, 64, 300} {
		chunks := g.Split(data, maxChunk)
		var joined []byte
		for _, c := range chunks {
			if len(c) > maxChunk {
				t.Fatalf("chunk of %d bytes exceeds max %d", len(c), maxChunk)
			}
			joined = append(joined, c...)
		}
		if !bytes.Equal(joined, data) {
			t.Fatalf("maxChunk=%d: joined chunks differ from input", maxChunk)
		}
	}
}

func TestIntnPanicsOnZero(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Intn(0) should panic")
		}
	}()
	New(nil).Intn(0)
}
