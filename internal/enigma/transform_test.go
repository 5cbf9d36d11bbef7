package enigma

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/transform"
)

func TestTransformer_StreamConversion(t *testing.T) {
	m := newTestMachine(t, 5, 3, []string{"B", "Beta", "I", "II", "III"}, "AAAA", "", "")

	r := transform.NewReader(strings.NewReader("HELLO WORLD\n"), NewTransformer(m))
	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "GUCNIDJZQG\n", string(got))
}

func TestTransformer_DropsBlanksKeepsLineBreaks(t *testing.T) {
	m := newTestMachine(t, 5, 3, []string{"B", "Beta", "I", "II", "III"}, "AAAA", "", "")

	r := transform.NewReader(strings.NewReader("HE L\tLO\r\nWORLD"), NewTransformer(m))
	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "GUCNI\r\nDJZQG", string(got))
}

func TestTransformer_UnknownByteFails(t *testing.T) {
	m := newTestMachine(t, 5, 3, []string{"B", "Beta", "I", "II", "III"}, "AAAA", "", "")

	r := transform.NewReader(strings.NewReader("HELLO?"), NewTransformer(m))
	_, err := io.ReadAll(r)
	require.Error(t, err)
	assert.True(t, IsConversion(err))
}

func TestTransformer_StateCarriesAcrossCalls(t *testing.T) {
	m := newTestMachine(t, 5, 3, []string{"B", "Beta", "I", "II", "III"}, "AAAA", "", "")
	tr := NewTransformer(m)

	dst := make([]byte, 16)
	nDst, nSrc, err := tr.Transform(dst, []byte("HELLO"), false)
	require.NoError(t, err)
	assert.Equal(t, 5, nSrc)
	assert.Equal(t, "GUCNI", string(dst[:nDst]))

	nDst, nSrc, err = tr.Transform(dst, []byte("WORLD"), true)
	require.NoError(t, err)
	assert.Equal(t, 5, nSrc)
	assert.Equal(t, "DJZQG", string(dst[:nDst]))
}
