package errors

import (
	"fmt"
	"io/fs"
	"testing"

	stderrors "errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *ProcessError
		want string
	}{
		{
			name: "without cause",
			err:  New(CodeParseError, "missing required column"),
			want: "missing required column",
		},
		{
			name: "with cause",
			err:  Wrap(CodeFileNotFound, "report file not found", fs.ErrNotExist),
			want: "report file not found: file does not exist",
		},
		{
			name: "formatted",
			err:  Newf(CodeParseError, "bad timestamp %q", "oops"),
			want: `bad timestamp "oops"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestCodeOf(t *testing.T) {
	err := Wrap(CodeParseError, "malformed report", fs.ErrInvalid)

	assert.Equal(t, CodeParseError, CodeOf(err))
	assert.True(t, IsCode(err, CodeParseError))
	assert.False(t, IsCode(err, CodeFileNotFound))

	// Classification survives further wrapping.
	wrapped := fmt.Errorf("processing failed: %w", err)
	assert.Equal(t, CodeParseError, CodeOf(wrapped))

	// Unclassified errors have no code.
	assert.Equal(t, Code(""), CodeOf(fs.ErrPermission))
	assert.Equal(t, Code(""), CodeOf(nil))
}

func TestUnwrap(t *testing.T) {
	cause := fs.ErrNotExist
	err := Wrap(CodeFileNotFound, "report file not found", cause)

	require.True(t, stderrors.Is(err, fs.ErrNotExist))
	assert.Equal(t, cause, err.Unwrap())
}
