package rom

import (
	"bytes"
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestLoad(t *testing.T) {
	data := []byte{0x00, 0xE0, 0x12, 0x00}

	r, err := Load(bytes.NewReader(data), "pong.ch8")
	assert.NoError(t, err)
	assert.Equal(t, "pong.ch8", r.Filename())
	assert.Equal(t, 4, r.Size())
	assert.True(t, bytes.Equal(data, r.Bytes()))
}

func TestLoadEmpty(t *testing.T) {
	r, err := Load(bytes.NewReader(nil), "empty.ch8")
	assert.NoError(t, err)
	assert.Equal(t, 0, r.Size())
}

func TestLoadTruncatesOversizedInput(t *testing.T) {
	data := make([]byte, MaxSize+100)

	r, err := Load(bytes.NewReader(data), "big.ch8")
	assert.NoError(t, err)
	assert.Equal(t, MaxSize, r.Size())
}

func TestLoadMaximumSize(t *testing.T) {
	data := make([]byte, MaxSize)

	r, err := Load(bytes.NewReader(data), "max.ch8")
	assert.NoError(t, err)
	assert.Equal(t, MaxSize, r.Size())
}

func TestLoadReadError(t *testing.T) {
	_, err := Load(failingReader{}, "broken.ch8")
	assert.ErrorContains(t, err, "reading ROM data")
}

func TestString(t *testing.T) {
	r, err := Load(bytes.NewReader([]byte{0x00, 0xE0}), "pong.ch8")
	assert.NoError(t, err)
	assert.Equal(t, "CHIP-8 ROM (pong.ch8): 2 bytes", r.String())
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("disk error")
}
