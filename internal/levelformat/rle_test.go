package levelformat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecompressRLE_RepeatRun(t *testing.T) {
	// marker=5, byte=0xAB -> five 0xAB bytes
	src := []byte{5, 0xAB}
	out, err := DecompressRLE(src, 5)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xAB, 0xAB, 0xAB, 0xAB, 0xAB}, out)
}

func TestDecompressRLE_LiteralRun(t *testing.T) {
	// marker=-3 (0xFD) -> copy next 3 bytes verbatim
	src := []byte{byte(int8(-3)), 0x01, 0x02, 0x03}
	out, err := DecompressRLE(src, 3)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x02, 0x03}, out)
}

func TestDecompressRLE_MixedStream(t *testing.T) {
	src := []byte{
		byte(int8(-2)), 0x10, 0x11,
		4, 0x22,
	}
	out, err := DecompressRLE(src, 6)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x10, 0x11, 0x22, 0x22, 0x22, 0x22}, out)
}

func TestDecompressRLE_TruncatedStreamIsMalformed(t *testing.T) {
	src := []byte{5} // repeat marker with no following byte
	_, err := DecompressRLE(src, 5)
	assert.Error(t, err)
}

func TestCompressDecompressRoundTrip(t *testing.T) {
	original := []byte{
		0, 0, 0, 0, 0, 0, // long repeat
		1, 2, 3, 4, // literals
		9, 9, 9, // short repeat
		5,
	}
	compressed := CompressRLE(original)
	out, err := DecompressRLE(compressed, len(original))
	require.NoError(t, err)
	assert.Equal(t, original, out)
}
