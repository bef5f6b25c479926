package bytecompress

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func allCodecs() map[string]Codec {
	return map[string]Codec{
		"lz4":  NewLZ4(),
		"zstd": NewZstd(),
		"s2":   NewS2(),
		"noop": NewNoOp(),
	}
}

func TestCodecs_RoundTrip(t *testing.T) {
	payloads := [][]byte{
		nil,
		[]byte("x"),
		bytes.Repeat([]byte{0x42}, 10_000),
		randomBytes(4096),
	}

	for name, c := range allCodecs() {
		for _, p := range payloads {
			compressed, err := c.Compress(p)
			require.NoError(t, err, "%s compress", name)

			got, err := c.Decompress(compressed)
			require.NoError(t, err, "%s decompress", name)
			require.True(t, bytes.Equal(p, got), "%s roundtrip: want %v got %v", name, p, got)
		}
	}
}

func randomBytes(n int) []byte {
	b := make([]byte, n)
	r := rand.New(rand.NewSource(1)) //nolint:gosec
	r.Read(b)
	return b
}
