package models

import (
	"time"
)

// AuthCodeTimeLayout is the wire layout of AuthCode.ValidUntil, in server local time
const AuthCodeTimeLayout = "2006-01-02 15:04:05"

// AuthCode represents a one-time login code as carried in the token_info session parameter.
// Code is empty when the code is held server-side.
type AuthCode struct {
	Code       string `json:"auth_code,omitempty"`
	ValidUntil string `json:"valid_until"`
}

// NewAuthCode builds an AuthCode expiring ttl after now
func NewAuthCode(code string, now time.Time, ttl time.Duration) *AuthCode {
	return &AuthCode{
		Code:       code,
		ValidUntil: now.Add(ttl).Format(AuthCodeTimeLayout),
	}
}

// ExpiresAt parses ValidUntil in the local time zone
func (a *AuthCode) ExpiresAt() (time.Time, error) {
	return time.ParseInLocation(AuthCodeTimeLayout, a.ValidUntil, time.Local)
}

// Expired reports whether now is past the expiry. An unreadable expiry counts as expired.
func (a *AuthCode) Expired(now time.Time) bool {
	expiresAt, err := a.ExpiresAt()
	if err != nil {
		return true
	}
	return now.After(expiresAt)
}
