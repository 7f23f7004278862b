/*
File    : lim/builtin/registry_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package builtin

import (
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/lim/env"
	"github.com/akashmaji946/lim/value"
)

func TestDefaultRegistryBindsBothBuiltins(t *testing.T) {
	reg := Default()
	root := env.NewRoot()
	reg.BindAll(root)

	printfVal, err := root.Get("printf")
	require.NoError(t, err)
	require.Equal(t, value.HoleType, printfVal.Type())

	timestampVal, err := root.Get("timestamp")
	require.NoError(t, err)
	require.Equal(t, value.HoleType, timestampVal.Type())
}

func TestUnregisterRemovesBuiltin(t *testing.T) {
	reg := Default()
	reg.Unregister(TimestampID)

	root := env.NewRoot()
	reg.BindAll(root)

	_, err := root.Get("timestamp")
	require.Error(t, err)

	_, err = reg.Call(TimestampID, nil)
	require.Error(t, err)
}

func TestPrintfSubstitutesPlaceholders(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	stdout := os.Stdout
	os.Stdout = w
	result, err := printfBuiltin([]value.Value{value.String("{} plus {} is {}"), value.Number(2), value.Number(3), value.Number(5)})
	os.Stdout = stdout
	require.NoError(t, w.Close())
	require.NoError(t, err)
	require.Equal(t, value.Nothing{}, result)

	out, err := io.ReadAll(r)
	require.NoError(t, err)
	require.Equal(t, "2 plus 3 is 5", string(out))
}

func TestPrintfTooFewArgsIsError(t *testing.T) {
	_, err := printfBuiltin([]value.Value{value.String("{} {}"), value.Number(1)})
	require.Error(t, err)
}

func TestPrintfTooManyArgsIsError(t *testing.T) {
	_, err := printfBuiltin([]value.Value{value.String("{}"), value.Number(1), value.Number(2)})
	require.Error(t, err)
}

func TestTimestampRejectsArguments(t *testing.T) {
	_, err := timestampBuiltin([]value.Value{value.Number(1)})
	require.Error(t, err)
}
