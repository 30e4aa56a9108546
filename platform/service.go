// Package platform talks to the host messaging app: it initializes the mini-app
// SDK, reads the user's profile and shares scores through the share target picker.
package platform

import (
	"context"
	"errors"
)

// ShareTargetPicker is the API name checked before sharing.
const ShareTargetPicker = "shareTargetPicker"

var (
	// ErrUnavailable is returned when the host SDK or one of its APIs is missing.
	ErrUnavailable = errors.New("platform: not available")
	// ErrNotInitialized is returned when an API is used before Init succeeded.
	ErrNotInitialized = errors.New("platform: not initialized")
)

// Config is passed to the SDK at startup.
type Config struct {
	AppID string
}

// Profile is the signed-in user as reported by the host app.
type Profile struct {
	UserID        string
	DisplayName   string
	PictureURL    string
	StatusMessage string
}

// Service is the host SDK surface the game depends on.
type Service interface {
	Init(ctx context.Context, cfg Config) error
	Profile(ctx context.Context) (Profile, error)
	ShareAvailable(target string) bool
	// Share opens the share picker. It returns false without error when the user
	// closes the picker without sending.
	Share(ctx context.Context, messages []Message) (bool, error)
}
