package pagemeta_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jwiater/pagemeta"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := pagemeta.Errorf(pagemeta.EINVALID, "invalid URL %q", "not a url")

	assert.Equal(t, pagemeta.EINVALID, pagemeta.ErrorCode(err))
	assert.Equal(t, "invalid URL \"not a url\"", pagemeta.ErrorMessage(err))
}

func TestStatusErrorf(t *testing.T) {
	t.Parallel()

	err := pagemeta.StatusErrorf(404, "HTTP 404 Not Found")

	assert.Equal(t, pagemeta.EUPSTREAM, pagemeta.ErrorCode(err))
	assert.Equal(t, 404, pagemeta.ErrorStatus(err))
	assert.Equal(t, "HTTP 404 Not Found", pagemeta.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, pagemeta.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, pagemeta.EINTERNAL, pagemeta.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, pagemeta.ErrorMessage(nil))
}

func TestErrorStatus_NonUpstreamError(t *testing.T) {
	t.Parallel()

	assert.Zero(t, pagemeta.ErrorStatus(pagemeta.Errorf(pagemeta.ETIMEOUT, "timed out")))
}
