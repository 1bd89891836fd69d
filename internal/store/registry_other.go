//go:build !windows

package store

// NewSystemStore reports that no machine store binding exists on this
// platform. Tests exercise the switch procedure through MemStore instead.
func NewSystemStore() (Store, error) {
	return nil, ErrUnsupportedPlatform
}
