package platform

import "context"

// Offline is the Service used outside the host app. It greets a fixed name and
// never offers sharing.
type Offline struct {
	Name string
}

// Init always succeeds; there is no SDK to load.
func (o Offline) Init(context.Context, Config) error {
	return nil
}

// Profile returns a profile carrying only Name.
func (o Offline) Profile(context.Context) (Profile, error) {
	return Profile{DisplayName: o.Name}, nil
}

// ShareAvailable reports false for every target.
func (o Offline) ShareAvailable(string) bool {
	return false
}

// Share always fails with ErrUnavailable.
func (o Offline) Share(context.Context, []Message) (bool, error) {
	return false, ErrUnavailable
}
