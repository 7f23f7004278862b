/*
File    : lim/serialize/ast_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package serialize

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/lim/eval"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	root, err := eval.Parse(`let add; add = fn(a, b) { a + b }; add(3, 4)`)
	require.NoError(t, err)

	data, err := Encode(root)
	require.NoError(t, err)

	decoded, err := Decode(data)
	require.NoError(t, err)

	result, err := eval.EvaluateProgram(decoded, nil)
	require.NoError(t, err)
	require.Equal(t, "7", result.ToString())
}

func TestDecodeRejectsBadMagic(t *testing.T) {
	_, err := Decode([]byte("not a lim program"))
	require.Error(t, err)
}

func TestDecodeRejectsUnknownVersion(t *testing.T) {
	root, err := eval.Parse(`1`)
	require.NoError(t, err)
	data, err := Encode(root)
	require.NoError(t, err)
	data[4] = 0xFF
	_, err = Decode(data)
	require.Error(t, err)
}

func TestDecodeRejectsShortInput(t *testing.T) {
	_, err := Decode([]byte{1, 2})
	require.Error(t, err)
}
