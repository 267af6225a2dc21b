package wld

import (
	"encoding/binary"
	"math"
	"os"
)

// ByteCursor is a buffered read/write view over an in-memory byte vector
// with a movable position, modeling the source's filestream_t plus the
// PARSE/WRITE macro family (parseutil.h) as methods instead of macros.
// Every multi-byte access is little-endian regardless of host byte order,
// via encoding/binary rather than the source's raw pointer casts.
type ByteCursor struct {
	buf []byte
	pos int
}

// OpenCursor slurps path into memory, mirroring filestream_open.
func OpenCursor(path string) (*ByteCursor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, newErr(IoError, "OpenCursor", err)
	}
	return &ByteCursor{buf: data}, nil
}

// NewReadCursor wraps an already-loaded buffer for reading.
func NewReadCursor(data []byte) *ByteCursor {
	return &ByteCursor{buf: data}
}

// NewWriteCursor returns an empty cursor ready to accumulate writes.
func NewWriteCursor() *ByteCursor {
	return &ByteCursor{buf: make([]byte, 0, 4096)}
}

// Bytes returns the cursor's underlying buffer.
func (c *ByteCursor) Bytes() []byte { return c.buf }

// Len is the total buffer length.
func (c *ByteCursor) Len() int { return len(c.buf) }

// Pos returns the current read/write position.
func (c *ByteCursor) Pos() int { return c.pos }

// Seek moves the cursor to an absolute position (filestream_seek).
func (c *ByteCursor) Seek(pos int) { c.pos = pos }

// Remaining is the number of unread bytes from the current position.
func (c *ByteCursor) Remaining() int {
	if c.pos >= len(c.buf) {
		return 0
	}
	return len(c.buf) - c.pos
}

// PeekByte returns the byte at the current position without advancing it.
func (c *ByteCursor) PeekByte() (byte, error) {
	if c.pos >= len(c.buf) {
		return 0, newErr(UnexpectedEof, "PeekByte", nil)
	}
	return c.buf[c.pos], nil
}

func (c *ByteCursor) need(n int) error {
	if c.pos+n > len(c.buf) {
		return newErr(UnexpectedEof, "ByteCursor.read", nil)
	}
	return nil
}

// --- typed readers ---

func (c *ByteCursor) ReadU8() (uint8, error) {
	if err := c.need(1); err != nil {
		return 0, err
	}
	v := c.buf[c.pos]
	c.pos++
	return v, nil
}

func (c *ByteCursor) ReadI8() (int8, error) {
	v, err := c.ReadU8()
	return int8(v), err
}

func (c *ByteCursor) ReadU16() (uint16, error) {
	if err := c.need(2); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint16(c.buf[c.pos:])
	c.pos += 2
	return v, nil
}

func (c *ByteCursor) ReadI16() (int16, error) {
	v, err := c.ReadU16()
	return int16(v), err
}

func (c *ByteCursor) ReadU32() (uint32, error) {
	if err := c.need(4); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint32(c.buf[c.pos:])
	c.pos += 4
	return v, nil
}

func (c *ByteCursor) ReadI32() (int32, error) {
	v, err := c.ReadU32()
	return int32(v), err
}

func (c *ByteCursor) ReadU64() (uint64, error) {
	if err := c.need(8); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint64(c.buf[c.pos:])
	c.pos += 8
	return v, nil
}

func (c *ByteCursor) ReadI64() (int64, error) {
	v, err := c.ReadU64()
	return int64(v), err
}

func (c *ByteCursor) ReadF32() (float32, error) {
	v, err := c.ReadU32()
	return math.Float32frombits(v), err
}

func (c *ByteCursor) ReadF64() (float64, error) {
	v, err := c.ReadU64()
	return math.Float64frombits(v), err
}

// ReadBytes reads n raw bytes.
func (c *ByteCursor) ReadBytes(n int) ([]byte, error) {
	if err := c.need(n); err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, c.buf[c.pos:c.pos+n])
	c.pos += n
	return out, nil
}

// ReadI32Array reads n consecutive little-endian int32 values.
func (c *ByteCursor) ReadI32Array(n int) ([]int32, error) {
	out := make([]int32, n)
	for i := range out {
		v, err := c.ReadI32()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// --- typed writers ---

func (c *ByteCursor) grow(n int) {
	need := len(c.buf) + n
	if cap(c.buf) < need {
		nc := make([]byte, len(c.buf), need*2)
		copy(nc, c.buf)
		c.buf = nc
	}
}

func (c *ByteCursor) WriteU8(v uint8) {
	c.grow(1)
	c.buf = append(c.buf, v)
}

func (c *ByteCursor) WriteI8(v int8) { c.WriteU8(uint8(v)) }

func (c *ByteCursor) WriteU16(v uint16) {
	var tmp [2]byte
	binary.LittleEndian.PutUint16(tmp[:], v)
	c.buf = append(c.buf, tmp[:]...)
}

func (c *ByteCursor) WriteI16(v int16) { c.WriteU16(uint16(v)) }

func (c *ByteCursor) WriteU32(v uint32) {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], v)
	c.buf = append(c.buf, tmp[:]...)
}

func (c *ByteCursor) WriteI32(v int32) { c.WriteU32(uint32(v)) }

func (c *ByteCursor) WriteU64(v uint64) {
	var tmp [8]byte
	binary.LittleEndian.PutUint64(tmp[:], v)
	c.buf = append(c.buf, tmp[:]...)
}

func (c *ByteCursor) WriteI64(v int64) { c.WriteU64(uint64(v)) }

func (c *ByteCursor) WriteF32(v float32) { c.WriteU32(math.Float32bits(v)) }

func (c *ByteCursor) WriteF64(v float64) { c.WriteU64(math.Float64bits(v)) }

// WriteBytes appends raw bytes as-is.
func (c *ByteCursor) WriteBytes(b []byte) {
	c.buf = append(c.buf, b...)
}

// WriteI32Array appends n little-endian int32 values.
func (c *ByteCursor) WriteI32Array(vs []int32) {
	for _, v := range vs {
		c.WriteI32(v)
	}
}
