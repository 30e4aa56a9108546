package platform

import (
	"context"
	"fmt"
)

// Outcome is the result of a share attempt as shown to the player.
type Outcome int

const (
	OutcomeUnavailable Outcome = iota
	OutcomeShared
	OutcomeCancelled
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeShared:
		return "shared"
	case OutcomeCancelled:
		return "cancelled"
	case OutcomeFailed:
		return "failed"
	default:
		return "unavailable"
	}
}

// Message returns the notice displayed after a share attempt.
func (o Outcome) Message() string {
	switch o {
	case OutcomeShared:
		return "Shared!"
	case OutcomeCancelled:
		return "Share cancelled."
	case OutcomeFailed:
		return "Something went wrong while sharing."
	default:
		return "Sharing is not available here."
	}
}

// ShareScore sends the score card through svc. A closed picker is reported as
// OutcomeCancelled with a nil error; SDK failures are OutcomeFailed with the error.
func ShareScore(ctx context.Context, svc Service, appID string, score int) (Outcome, error) {
	if !svc.ShareAvailable(ShareTargetPicker) {
		return OutcomeUnavailable, nil
	}

	sent, err := svc.Share(ctx, []Message{ScoreMessage(appID, score)})
	if err != nil {
		return OutcomeFailed, fmt.Errorf("share score %d: %w", score, err)
	}
	if !sent {
		return OutcomeCancelled, nil
	}
	return OutcomeShared, nil
}

// Greeting returns the welcome line for the signed-in user.
func Greeting(ctx context.Context, svc Service) (string, error) {
	profile, err := svc.Profile(ctx)
	if err != nil {
		return "", fmt.Errorf("get profile: %w", err)
	}
	if profile.DisplayName == "" {
		return "Hello!", nil
	}
	return fmt.Sprintf("Hello, %s!", profile.DisplayName), nil
}
