package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/arthur-debert/dview/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{"not_found", errors.ErrNotFound, "file not found", "[NOT_FOUND] file not found"},
		{"loader_no_show", errors.ErrLoaderNoShow, "env cannot show", "[LOADER_NO_SHOW] env cannot show"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.NotNil(t, err.Details)
			assert.Equal(t, tt.wantStr, err.Error())
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrLoaderNotFound, "loader %q is not registered", "parquet")
	assert.Equal(t, `loader "parquet" is not registered`, err.Message)
}

func TestWrap(t *testing.T) {
	t.Run("wraps cause", func(t *testing.T) {
		cause := stderrors.New("permission denied")
		err := errors.Wrap(cause, errors.ErrSourceOpen, "cannot open data.csv")

		require.Error(t, err)
		assert.Equal(t, "[SOURCE_OPEN] cannot open data.csv: permission denied", err.Error())
		assert.ErrorIs(t, err, cause)
		assert.True(t, errors.IsErrorCode(err, errors.ErrSourceOpen))
	})

	t.Run("nil cause stays nil", func(t *testing.T) {
		assert.NoError(t, errors.Wrap(nil, errors.ErrSourceOpen, "unused"))
		assert.NoError(t, errors.Wrapf(nil, errors.ErrSourceOpen, "unused %d", 1))
	})
}

func TestIsMatchesByCode(t *testing.T) {
	err := fmt.Errorf("outer: %w", errors.New(errors.ErrFrozen, "registry is frozen"))
	assert.ErrorIs(t, err, errors.New(errors.ErrFrozen, "any message"))
	assert.NotErrorIs(t, err, errors.New(errors.ErrNotFound, "any message"))
}

func TestGetErrorCodeAndDetails(t *testing.T) {
	err := errors.New(errors.ErrInstanceNotFound, "no such instance").WithDetail("id", "7")

	assert.Equal(t, errors.ErrInstanceNotFound, errors.GetErrorCode(err))
	assert.Equal(t, "7", errors.GetErrorDetails(err)["id"])

	plain := stderrors.New("plain")
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(plain))
	assert.Nil(t, errors.GetErrorDetails(plain))
}
