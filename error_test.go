package webdoc_test

import (
	"errors"
	"testing"

	"github.com/akraszewski/webdoc"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := webdoc.Errorf(webdoc.ENOTFOUND, "collection %q not found", "test")

	assert.Equal(t, webdoc.ENOTFOUND, webdoc.ErrorCode(err))
	assert.Equal(t, "collection \"test\" not found", webdoc.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, webdoc.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, webdoc.EINTERNAL, webdoc.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, webdoc.ErrorMessage(nil))
}

func TestErrorMessage_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Internal error.", webdoc.ErrorMessage(errors.New("boom")))
}
