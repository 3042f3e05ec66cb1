package models

// LoginResponse is the body returned by the token endpoint.
//
// When the account has multi-factor authentication enabled the first
// credential round-trip answers with MFARequired set and no Token; the caller
// must resubmit with a one-time code.
type LoginResponse struct {
	Token       string `json:"token,omitempty"`
	MFARequired bool   `json:"mfa_required,omitempty"`
	MFAType     string `json:"mfa_type,omitempty"`
	BackupCode  string `json:"backup_code,omitempty"`
}
