package graphfile_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathsearch/graphfile"
)

func TestCompact_SmallerThanJSON(t *testing.T) {
	f, err := os.Open(romania)
	require.NoError(t, err)
	defer f.Close()
	ds, err := graphfile.Decode(f)
	require.NoError(t, err)

	var js, mpz bytes.Buffer
	require.NoError(t, graphfile.Encode(&js, ds))
	require.NoError(t, graphfile.EncodeCompact(&mpz, ds))
	assert.Less(t, mpz.Len(), js.Len())

	back, err := graphfile.DecodeCompact(&mpz)
	require.NoError(t, err)
	assert.Equal(t, ds, back)
}

func TestDecodeCompact_Truncated(t *testing.T) {
	f, err := os.Open(romania)
	require.NoError(t, err)
	defer f.Close()
	ds, err := graphfile.Decode(f)
	require.NoError(t, err)

	var mpz bytes.Buffer
	require.NoError(t, graphfile.EncodeCompact(&mpz, ds))
	cut := mpz.Bytes()[:mpz.Len()/2]

	_, err = graphfile.DecodeCompact(bytes.NewReader(cut))
	assert.ErrorIs(t, err, graphfile.ErrBadFormat)
}
