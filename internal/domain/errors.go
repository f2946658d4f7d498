package domain

import "errors"

var (
	ErrChatConfigNotFound = errors.New("chat config not found")
	ErrSessionNotFound    = errors.New("session not found")
	ErrSettingsRejected   = errors.New("settings rejected by policy")
)

// SettingsRejectedError carries the policy reason for a rejected setting.
type SettingsRejectedError struct {
	Reason string
}

func (e *SettingsRejectedError) Error() string {
	if e.Reason == "" {
		return ErrSettingsRejected.Error()
	}
	return ErrSettingsRejected.Error() + ": " + e.Reason
}

// Is reports ErrSettingsRejected as a match.
func (e *SettingsRejectedError) Is(target error) bool {
	return target == ErrSettingsRejected
}
