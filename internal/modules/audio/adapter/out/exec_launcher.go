package out

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"sync"

	audioout "wird/internal/modules/audio/port/out"
)

// ExecLauncher plays audio through an external player process. mpv is
// preferred when installed; otherwise the platform opener takes over and
// playback end cannot be observed.
type ExecLauncher struct {
	mu  sync.Mutex
	cmd *exec.Cmd
}

func NewExecLauncher() audioout.Launcher {
	return &ExecLauncher{}
}

func (l *ExecLauncher) Play(ctx context.Context, url string) (<-chan error, error) {
	name, args, waitable, err := playerCommand(url)
	if err != nil {
		return nil, err
	}
	cmd := exec.CommandContext(ctx, name, args...)
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start audio player: %w", err)
	}

	l.mu.Lock()
	l.cmd = cmd
	l.mu.Unlock()

	done := make(chan error, 1)
	if !waitable {
		// Opener-style commands return immediately; report ended right away.
		go func() { _ = cmd.Wait(); done <- nil }()
		return done, nil
	}
	go func() {
		err := cmd.Wait()
		l.mu.Lock()
		if l.cmd == cmd {
			l.cmd = nil
			done <- err
		} else {
			// Superseded or stopped; exit status is not an error.
			done <- nil
		}
		l.mu.Unlock()
	}()
	return done, nil
}

func (l *ExecLauncher) Stop(context.Context) error {
	l.mu.Lock()
	cmd := l.cmd
	l.cmd = nil
	l.mu.Unlock()
	if cmd == nil || cmd.Process == nil {
		return nil
	}
	if err := cmd.Process.Kill(); err != nil {
		return fmt.Errorf("stop audio player: %w", err)
	}
	return nil
}

func playerCommand(url string) (string, []string, bool, error) {
	if path, err := exec.LookPath("mpv"); err == nil {
		return path, []string{"--no-video", "--really-quiet", url}, true, nil
	}
	switch runtime.GOOS {
	case "darwin":
		if path, err := exec.LookPath("afplay"); err == nil {
			return path, []string{url}, true, nil
		}
		return "open", []string{url}, false, nil
	case "linux":
		if path, err := exec.LookPath("ffplay"); err == nil {
			return path, []string{"-nodisp", "-autoexit", "-loglevel", "quiet", url}, true, nil
		}
		return "xdg-open", []string{url}, false, nil
	default:
		return "", nil, false, fmt.Errorf("audio playback is not supported on %s", runtime.GOOS)
	}
}
