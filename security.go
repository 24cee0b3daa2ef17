package shegerpay

import (
	"context"
	"strings"

	"github.com/shegerpay/shegerpay-go/types"
)

// Setup2FA starts TOTP enrollment and returns the secret and QR code.
func (c *Client) Setup2FA(ctx context.Context) (types.Object, error) {
	return c.postJSON(ctx, "two_factor.setup", pathTwoFactorSetup, nil)
}

// Verify2FA confirms enrollment with a code from the authenticator app.
func (c *Client) Verify2FA(ctx context.Context, code string) (types.Object, error) {
	code, err := requireCode(code)
	if err != nil {
		return nil, err
	}
	return c.postJSON(ctx, "two_factor.verify", pathTwoFactorVerify, map[string]any{"code": code})
}

func (c *Client) Get2FAStatus(ctx context.Context) (types.Object, error) {
	return c.getObject(ctx, "two_factor.status", pathTwoFactorStatus, nil)
}

func (c *Client) Disable2FA(ctx context.Context, code string) (types.Object, error) {
	code, err := requireCode(code)
	if err != nil {
		return nil, err
	}
	return c.postJSON(ctx, "two_factor.disable", pathTwoFactorDisable, map[string]any{"code": code})
}

// ListPasskeys lists registered WebAuthn credentials.
func (c *Client) ListPasskeys(ctx context.Context) (any, error) {
	return c.getValue(ctx, "passkeys.list", pathPasskeys, nil)
}

func (c *Client) DeletePasskey(ctx context.Context, passkeyID string) (types.Object, error) {
	id, err := pathID("passkey id", passkeyID)
	if err != nil {
		return nil, err
	}
	return c.delete(ctx, "passkeys.delete", pathPasskeys+"/"+id)
}

func requireCode(code string) (string, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return "", types.NewError(types.KindValidation, "2FA code is required")
	}
	return code, nil
}
