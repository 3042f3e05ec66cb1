package client

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromptMFA(t *testing.T) {
	var prompt bytes.Buffer
	provider := PromptMFA(strings.NewReader(" 123456 \n654321\n"), &prompt)
	ctx := context.Background()

	code, err := provider(ctx, "sms")
	require.NoError(t, err)
	assert.Equal(t, "123456", code)
	assert.Equal(t, "Enter sms code: ", prompt.String())

	code, err = provider(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "654321", code)

	_, err = provider(ctx, "sms")
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestPromptMFA_EmptyLine(t *testing.T) {
	provider := PromptMFA(strings.NewReader("\n"), io.Discard)

	_, err := provider(context.Background(), "app")
	assert.Error(t, err)
}

func TestPromptMFA_CancelledContext(t *testing.T) {
	provider := PromptMFA(strings.NewReader("123456\n"), io.Discard)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := provider(ctx, "sms")
	assert.ErrorIs(t, err, context.Canceled)
}
