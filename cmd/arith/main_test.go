package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunEncode(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runEncode(strings.NewReader("3\nabacaba\n"), &out))
	require.Equal(t, "4 2 1\n0110100101\n", out.String())
}

func TestRunDecode(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runDecode(strings.NewReader("3\n4 2 1\n0110100101\n"), &out))
	require.Equal(t, "abacaba\n", out.String())

	out.Reset()
	require.NoError(t, runDecode(strings.NewReader("2\n0 3\n0\n"), &out))
	require.Equal(t, "bbb\n", out.String())
}

func TestRunDecode_Errors(t *testing.T) {
	var out bytes.Buffer
	require.Error(t, runDecode(strings.NewReader("3\n4 2\n"), &out))
	require.Error(t, runDecode(strings.NewReader("x\n"), &out))
	require.Error(t, runDecode(strings.NewReader("3\n4 2 1\n012\n"), &out))
}

func TestRunPackUnpack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "msg.arith")
	*packOut = path
	*packCompression = "zstd"
	t.Cleanup(func() {
		*packOut = ""
		*packCompression = "none"
	})

	require.NoError(t, runPack(strings.NewReader("5\neddcbaaaa\n")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	*unpackFile = path
	var out bytes.Buffer
	require.NoError(t, runUnpack(&out))
	require.Equal(t, "eddcbaaaa\n", out.String())
}
