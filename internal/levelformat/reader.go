package levelformat

import "github.com/shadowledge/ledgerun/internal/engineerr"

// leReader is a small little-endian cursor over a byte slice, in the spirit
// of the original loader's LeStreamReader but scoped to exactly what the
// level format needs.
type leReader struct {
	data []byte
	pos  int
}

func newLeReader(data []byte) *leReader {
	return &leReader{data: data}
}

func (r *leReader) require(n int) error {
	if r.pos+n > len(r.data) {
		return engineerr.New(engineerr.MalformedResource, "levelformat",
			"unexpected end of level data")
	}
	return nil
}

func (r *leReader) readU8() (uint8, error) {
	if err := r.require(1); err != nil {
		return 0, err
	}
	v := r.data[r.pos]
	r.pos++
	return v, nil
}

func (r *leReader) readU16() (uint16, error) {
	if err := r.require(2); err != nil {
		return 0, err
	}
	v := uint16(r.data[r.pos]) | uint16(r.data[r.pos+1])<<8
	r.pos += 2
	return v, nil
}

func (r *leReader) readFixedString(n int) (string, error) {
	if err := r.require(n); err != nil {
		return "", err
	}
	raw := r.data[r.pos : r.pos+n]
	r.pos += n
	end := n
	for end > 0 && (raw[end-1] == 0 || raw[end-1] == ' ') {
		end--
	}
	return string(raw[:end]), nil
}

func (r *leReader) skip(n int) error {
	if err := r.require(n); err != nil {
		return err
	}
	r.pos += n
	return nil
}

func (r *leReader) bytes(n int) ([]byte, error) {
	if err := r.require(n); err != nil {
		return nil, err
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}
