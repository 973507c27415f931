package api

import "context"

// tokenResponse is the shape every login endpoint answers with.
type tokenResponse struct {
	Token string `json:"token"`
}

// LoginUser exchanges user credentials for a session token.
func (c *Client) LoginUser(ctx context.Context, email, password string) (string, error) {
	var out tokenResponse
	body := map[string]string{"email": email, "password": password}
	if err := c.postJSON(ctx, "/auth/login", body, &out); err != nil {
		return "", err
	}
	return out.Token, nil
}

// LoginAdmin exchanges admin credentials for a session token.
func (c *Client) LoginAdmin(ctx context.Context, email, password string) (string, error) {
	var out tokenResponse
	body := map[string]string{"email": email, "password": password}
	if err := c.postJSON(ctx, "/auth/admin", body, &out); err != nil {
		return "", err
	}
	return out.Token, nil
}

// SendRegisterOTP starts user registration by mailing a one-time code.
func (c *Client) SendRegisterOTP(ctx context.Context, name, email, password string) error {
	body := map[string]string{"name": name, "email": email, "password": password}
	return c.postJSON(ctx, "/auth/send-register-otp", body, nil)
}

// VerifyRegister completes registration with the mailed one-time code.
func (c *Client) VerifyRegister(ctx context.Context, name, email, password, otp string) error {
	body := map[string]string{"name": name, "email": email, "password": password, "otp": otp}
	return c.postJSON(ctx, "/auth/verify-register", body, nil)
}

// SendAdminResetOTP starts admin password recovery by mailing a one-time
// code.
func (c *Client) SendAdminResetOTP(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	return c.postJSON(ctx, "/auth/admin-send-reset-otp", body, nil)
}

// ResetAdminPassword completes admin password recovery.
func (c *Client) ResetAdminPassword(ctx context.Context, email, otp, newPassword string) error {
	body := map[string]string{"email": email, "otp": otp, "newPassword": newPassword}
	return c.postJSON(ctx, "/auth/admin-reset-password", body, nil)
}
