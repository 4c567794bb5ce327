package log

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogger_SeparatesStreams(t *testing.T) {
	var out, errOut bytes.Buffer
	l := New(&out, &errOut)

	l.Println("1b7852b855")
	l.Errorf("missing %s", "argument")

	assert.Equal(t, "1b7852b855\n", out.String())
	assert.Equal(t, "missing argument\n", errOut.String())
}

func TestLogger_ErrorfKeepsSingleNewline(t *testing.T) {
	var errOut bytes.Buffer
	l := New(nil, &errOut)

	l.Errorf("already terminated\n")

	assert.Equal(t, "already terminated\n", errOut.String())
}

func TestNew_DefaultsWriters(t *testing.T) {
	l := New(nil, nil)

	assert.NotNil(t, l.out)
	assert.NotNil(t, l.err)
}

func TestGlobalErrorf(t *testing.T) {
	var out, errOut bytes.Buffer
	Init(New(&out, &errOut))
	defer Init(nil)

	Errorf("invalid configuration: %s", "tail length")

	assert.Empty(t, out.String())
	assert.Equal(t, "invalid configuration: tail length\n", errOut.String())
}
