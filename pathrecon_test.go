package pathrecon_test

import (
	"errors"
	"testing"

	"github.com/Unsaif/pathrecon"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := pathrecon.Errorf(pathrecon.ENOTFOUND, "analysis %q not found", "test")

	assert.Equal(t, pathrecon.ENOTFOUND, pathrecon.ErrorCode(err))
	assert.Equal(t, "analysis \"test\" not found", pathrecon.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, pathrecon.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, pathrecon.ErrorMessage(nil))
}

func TestErrorMessage_NonAppError(t *testing.T) {
	t.Parallel()

	err := errors.New("disk full")

	assert.Equal(t, pathrecon.EINTERNAL, pathrecon.ErrorCode(err))
	assert.Equal(t, "Internal error.", pathrecon.ErrorMessage(err))
}
