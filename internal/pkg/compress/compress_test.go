package compress

import (
	"bytes"
	"net/http"
	"testing"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const payload = `{"openai":["gpt-4o","gpt-4-turbo"],"google":["gemini-1.5-pro"]}`

func gzipped(t *testing.T) []byte {
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	_, err := w.Write([]byte(payload))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func TestDecode_ByHeader(t *testing.T) {
	var br bytes.Buffer
	bw := brotli.NewWriter(&br)
	_, _ = bw.Write([]byte(payload))
	require.NoError(t, bw.Close())

	out, err := DecodeResponse(br.Bytes(), http.Header{"Content-Encoding": {"br"}})
	require.NoError(t, err)
	assert.Equal(t, payload, string(out))

	out, err = DecodeResponse(gzipped(t), http.Header{"Content-Encoding": {"gzip"}})
	require.NoError(t, err)
	assert.Equal(t, payload, string(out))
}

func TestDecode_SniffsMagic(t *testing.T) {
	out, err := Decode(gzipped(t), "")
	require.NoError(t, err)
	assert.Equal(t, payload, string(out))

	enc, err := zstd.NewWriter(nil)
	require.NoError(t, err)
	z := enc.EncodeAll([]byte(payload), nil)
	require.NoError(t, enc.Close())

	out, err = Decode(z, "")
	require.NoError(t, err)
	assert.Equal(t, payload, string(out))
}

func TestDecode_PlainPassthrough(t *testing.T) {
	out, err := Decode([]byte(payload), "identity")
	require.NoError(t, err)
	assert.Equal(t, payload, string(out))
}

func TestDecode_CorruptGzip(t *testing.T) {
	_, err := Decode([]byte("not gzip"), "gzip")
	assert.Error(t, err)
}

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "約會…", TruncateRunes("約會模擬", 2))
	assert.Equal(t, "abc", TruncateRunes("abc", 5))
	assert.Equal(t, "", TruncateRunes("abc", 0))
}
