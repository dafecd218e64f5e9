package toyrsa

import (
	"bytes"
	"log"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLog(t *testing.T, on, dumps bool) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	log.SetOutput(&buf)
	SetDebug(on, dumps)
	t.Cleanup(func() {
		log.SetOutput(os.Stderr)
		SetDebug(false, false)
	})
	return &buf
}

func TestDebugOff(t *testing.T) {
	buf := captureLog(t, false, false)
	_, err := Params{Exponent: 7}.KeyPairFromPrimes(nil, 11, 13)
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}

func TestDebugKeysAndDump(t *testing.T) {
	buf := captureLog(t, true, false)
	kp, err := Params{Exponent: 7}.KeyPairFromPrimes(nil, 11, 13)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "[keypair "+kp.Id.String()+"]")
	assert.Contains(t, buf.String(), "generated e=7 n=143")
	assert.NotContains(t, buf.String(), "DUMP")

	buf.Reset()
	SetDebug(true, true)
	_, err = Params{Exponent: 7}.KeyPairFromPrimes(nil, 11, 13)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "DUMP")
	assert.Contains(t, buf.String(), "KeyPair")
}

func TestDebugMalformedToken(t *testing.T) {
	buf := captureLog(t, true, false)
	_, priv := smallKeys()
	got, err := DecryptText("19,x1,118,", priv)
	require.NoError(t, err)
	assert.Equal(t, "Hi", got)
	assert.Contains(t, buf.String(), `skipping malformed token 1 "x1"`)
}
