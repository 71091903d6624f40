package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodedError(t *testing.T) {
	e := Errorc(MalformedRegistryError, "registry is not a JSON object")
	assert.Equal(t, MalformedRegistryError, CodeOf(e))
	assert.True(t, MalformedRegistryError.Equals(e))
}

func TestWrapKeepsCode(t *testing.T) {
	e := Errorc(ValidationFailError, "2 violations")
	e2 := Wrap(e, "validating registry")
	assert.Equal(t, ValidationFailError, CodeOf(e2))

	e3 := WithCode(e, UnknownTargetError)
	assert.Equal(t, UnknownTargetError, CodeOf(e3))
}

func TestWithCode(t *testing.T) {
	codes := []Code{
		MalformedRegistryError, ValidationFailError, UnknownTargetError, IOError,
	}
	tests := []struct {
		name string
		err  error
	}{
		{"Errorc", Errorc(UnsupportedError, "Unsupported")},
		{"WithStack", WithStack(Errorc(UnsupportedError, "Unsupported"))},
		{"WithCode", WithCode(Errorc(UnsupportedError, "Unsupported"), IllegalArgumentError)},
		{"NewBase", NewBase(UnsupportedError, "Unsupported")},
		{"Plain", New("plain error")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, c := range codes {
				e2 := WithCode(tt.err, c)
				assert.Equal(t, c, CodeOf(e2))
			}
		})
	}
}

func TestCodeOfNil(t *testing.T) {
	assert.Equal(t, Success, CodeOf(nil))
	assert.Nil(t, WithCode(nil, IOError))
}

func TestFormat(t *testing.T) {
	e := Errorc(UnknownTargetError, "no such target")
	t.Logf("%+v", e)

	e2 := Wrapc(e, IOError, "writing artifact")
	t.Logf("%+v", e2)
	assert.Equal(t, IOError, CodeOf(e2))

	coder, ok := CoderOf(Wrap(e, "outer"))
	assert.True(t, ok)
	assert.Equal(t, UnknownTargetError, coder.ErrorCode())
}
