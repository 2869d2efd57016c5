package tun

import (
	"errors"
	"fmt"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetCategory(t *testing.T) {
	assert.Equal(t, OK, GetCategory(nil))
	assert.Equal(t, Unknown, GetCategory(errors.New("boom")))

	err := Acquisition.New("ioctl TUNSETIFF", syscall.EBUSY)
	assert.Equal(t, Acquisition, GetCategory(err))
	assert.Equal(t, Acquisition, GetCategory(fmt.Errorf("opening: %w", err)))
	assert.ErrorIs(t, err, syscall.EBUSY)
	assert.Equal(t, "ioctl TUNSETIFF: "+syscall.EBUSY.Error(), err.Error())

	var errno syscall.Errno
	assert.True(t, errors.As(fmt.Errorf("opening: %w", err), &errno))
	assert.Equal(t, syscall.EBUSY, errno)
}

func TestCategory_New(t *testing.T) {
	assert.NoError(t, Validation.New("x", nil))

	err := Validation.New("parse hint", "bad hint")
	assert.Equal(t, "parse hint: bad hint", err.Error())

	err = Validation.New("", 42)
	assert.Equal(t, "42", err.Error())

	err = Unsupported.Newf("open", "no tun on %s", "plan9")
	assert.Equal(t, Unsupported, GetCategory(err))
	assert.Equal(t, "open: no tun on plan9", err.Error())
}

func TestCategory_String(t *testing.T) {
	assert.Equal(t, "validation", Validation.String())
	assert.Equal(t, "acquisition", Acquisition.String())
	assert.Equal(t, "unknown", Category(99).String())
}
