package client

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-robinhood/internal/service"
)

// PromptMFA returns an MFA provider that asks for the one-time code on out
// and reads one line from in.
func PromptMFA(in io.Reader, out io.Writer) service.MFAProvider {
	scanner := bufio.NewScanner(in)
	return func(ctx context.Context, mfaType string) (string, error) {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		if mfaType == "" {
			mfaType = "mfa"
		}
		fmt.Fprintf(out, "Enter %s code: ", mfaType)

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return "", fmt.Errorf("read mfa code: %w", err)
			}
			return "", io.ErrUnexpectedEOF
		}
		code := strings.TrimSpace(scanner.Text())
		if code == "" {
			return "", errors.New("empty mfa code")
		}
		return code, nil
	}
}
