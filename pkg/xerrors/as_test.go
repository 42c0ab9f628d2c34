package xerrors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/mlev-art/radixart/pkg/xerrors"
)

type CustomError struct {
	message string
}

func (e CustomError) Error() string {
	return e.message
}

type AnotherError struct {
	code int
	msg  string
}

func (e *AnotherError) Error() string {
	return e.msg
}

func TestAsADirect(t *testing.T) {
	err := CustomError{message: "test error"}
	e, ok := AsA[CustomError](err)
	assert.True(t, ok)
	assert.Equal(t, err, e)

	aerr := &AnotherError{code: 1, msg: "another error"}
	pe, ok := AsA[*AnotherError](aerr)
	assert.True(t, ok)
	assert.Equal(t, aerr, pe)
}

func TestAsAWrapped(t *testing.T) {
	err := CustomError{message: "test error"}
	wrapped := fmt.Errorf("wrapped: %w", err)
	e, ok := AsA[CustomError](wrapped)
	assert.True(t, ok)
	assert.Equal(t, err, e)

	aerr := &AnotherError{code: 1, msg: "another error"}
	err1 := fmt.Errorf("first: %w", aerr)
	err2 := fmt.Errorf("custom: %w", err1)
	pe, ok := AsA[*AnotherError](err2)
	assert.True(t, ok)
	assert.Equal(t, aerr, pe)
}

func TestAsANonMatchingType(t *testing.T) {
	aerr := &AnotherError{code: 1, msg: "another error"}
	_, ok := AsA[CustomError](aerr)
	assert.False(t, ok)
}
