package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, exitCode(nil))
	assert.Equal(t, 1, exitCode(errors.New("plain error")))
	assert.Equal(t, 1, exitCode(argErr(errors.New("bad arg"))))
	assert.Equal(t, 2, exitCode(ioErr(errors.New("bad io"))))
}
