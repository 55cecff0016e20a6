package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type replyInput struct {
	ReplyText string `json:"replyText" validate:"required,max=10"`
	Provider  string `json:"provider" validate:"omitempty,oneof=google youtube"`
}

func TestEchoValidator(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&replyInput{ReplyText: "thanks"}))

	err := v.Validate(&replyInput{Provider: "facebook"})
	require.Error(t, err)
	assert.Equal(t, map[string]string{
		"replyText": "required",
		"provider":  "oneof=google youtube",
	}, FieldErrors(err))
}

func TestFieldErrors_NonValidationError(t *testing.T) {
	assert.Nil(t, FieldErrors(assert.AnError))
}
