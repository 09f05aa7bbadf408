package levelformat

import "github.com/shadowledge/ledgerun/internal/engineerr"

// DecompressRLE expands a run-length-encoded blob into exactly outLen
// bytes. Each marker byte is a signed int8: a positive marker n is
// followed by one byte repeated n times; a negative marker n is followed
// by -n literal bytes copied verbatim. Decoding stops once outLen bytes
// have been produced, matching the bounded-size variant the masked-tile
// extra-bits section uses (spec §4.1 step 4), grounded on
// rle_compression.hpp's decompressRle with a known output size.
func DecompressRLE(src []byte, outLen int) ([]byte, error) {
	out := make([]byte, 0, outLen)
	pos := 0

	for len(out) < outLen {
		if pos >= len(src) {
			return nil, engineerr.New(engineerr.MalformedResource, "levelformat",
				"RLE stream exhausted before producing the expected output size")
		}
		marker := int8(src[pos])
		pos++

		if marker > 0 {
			if pos >= len(src) {
				return nil, engineerr.New(engineerr.MalformedResource, "levelformat",
					"RLE stream truncated: missing repeat byte")
			}
			b := src[pos]
			pos++
			n := int(marker)
			if len(out)+n > outLen {
				n = outLen - len(out)
			}
			for i := 0; i < n; i++ {
				out = append(out, b)
			}
		} else if marker < 0 {
			n := int(-marker)
			if pos+n > len(src) {
				return nil, engineerr.New(engineerr.MalformedResource, "levelformat",
					"RLE stream truncated: missing literal run")
			}
			if len(out)+n > outLen {
				n = outLen - len(out)
			}
			out = append(out, src[pos:pos+n]...)
			pos += n
		}
		// marker == 0 is the terminator in the unbounded variant; the
		// bounded variant used here simply stops once outLen is reached,
		// so a zero marker before that point is treated as a zero-length
		// no-op step and the loop continues reading the next marker.
	}

	return out, nil
}

// CompressRLE encodes src using the same marker scheme DecompressRLE
// reads, greedily preferring a repeat run whenever 3 or more identical
// bytes occur in a row (runs of 1-2 cost more compressed bytes and are
// left as literal copies). Used by the level-tooling round-trip and by
// tests that verify CompressRLE/DecompressRLE agree.
func CompressRLE(src []byte) []byte {
	var out []byte
	i := 0
	for i < len(src) {
		runLen := 1
		for i+runLen < len(src) && src[i+runLen] == src[i] && runLen < 127 {
			runLen++
		}
		if runLen >= 3 {
			out = append(out, byte(int8(runLen)), src[i])
			i += runLen
			continue
		}

		litStart := i
		litLen := 0
		for i < len(src) && litLen < 127 {
			// Stop the literal run as soon as a repeat run of >= 3 begins.
			next := 1
			for i+next < len(src) && src[i+next] == src[i] && next < 127 {
				next++
			}
			if next >= 3 {
				break
			}
			i++
			litLen++
		}
		out = append(out, byte(int8(-litLen)))
		out = append(out, src[litStart:litStart+litLen]...)
	}
	return out
}
