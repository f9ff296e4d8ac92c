package out

import "context"

// Launcher starts playback of one audio URL in an external player. The
// module owns state and notification, not audio output. Play returns a
// channel that receives the process outcome when playback ends.
type Launcher interface {
	Play(ctx context.Context, url string) (<-chan error, error)
	Stop(ctx context.Context) error
}
