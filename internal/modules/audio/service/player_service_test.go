package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	hclog "github.com/hashicorp/go-hclog"

	"wird/internal/modules/audio/domain"
	"wird/internal/modules/audio/service"
	apperrors "wird/internal/platform/errors"
)

type fakeLauncher struct {
	mu      sync.Mutex
	done    chan error
	playErr error
	plays   int
	stops   int
}

func (f *fakeLauncher) Play(context.Context, string) (<-chan error, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.playErr != nil {
		return nil, f.playErr
	}
	f.plays++
	f.done = make(chan error, 1)
	return f.done, nil
}

func (f *fakeLauncher) Stop(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stops++
	return nil
}

func (f *fakeLauncher) finish(err error) {
	f.mu.Lock()
	done := f.done
	f.mu.Unlock()
	done <- err
}

type eventRecorder struct {
	mu     sync.Mutex
	events []domain.Event
}

func (r *eventRecorder) record(event domain.Event) {
	r.mu.Lock()
	r.events = append(r.events, event)
	r.mu.Unlock()
}

func (r *eventRecorder) kinds() []domain.EventKind {
	r.mu.Lock()
	defer r.mu.Unlock()
	kinds := make([]domain.EventKind, 0, len(r.events))
	for _, e := range r.events {
		kinds = append(kinds, e.Kind)
	}
	return kinds
}

func (r *eventRecorder) waitFor(t *testing.T, kind domain.EventKind) domain.Event {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		r.mu.Lock()
		for _, e := range r.events {
			if e.Kind == kind {
				r.mu.Unlock()
				return e
			}
		}
		r.mu.Unlock()
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("event %s never arrived, saw %v", kind, r.kinds())
	return domain.Event{}
}

var track = domain.Track{VerseID: 1, Surah: 1, Ayah: 1, URL: "https://cdn.example/1.mp3"}

func TestPlayEmitsLoadingThenPlayAndEndedOnExit(t *testing.T) {
	t.Parallel()
	launcher := &fakeLauncher{}
	player := service.NewPlayerService(launcher, hclog.NewNullLogger())
	rec := &eventRecorder{}
	player.Subscribe(rec.record)

	if err := player.PlayVerse(context.Background(), track); err != nil {
		t.Fatalf("play verse: %v", err)
	}
	if got := player.State(); got != domain.StatePlaying {
		t.Fatalf("expected playing state, got %s", got)
	}
	kinds := rec.kinds()
	if len(kinds) < 2 || kinds[0] != domain.EventLoading || kinds[1] != domain.EventPlay {
		t.Fatalf("expected loading then play, got %v", kinds)
	}

	launcher.finish(nil)
	ended := rec.waitFor(t, domain.EventEnded)
	if ended.Track.VerseID != 1 {
		t.Fatalf("ended event must carry the track, got %+v", ended)
	}
	if got := player.State(); got != domain.StateIdle {
		t.Fatalf("expected idle after end, got %s", got)
	}
}

func TestPlayErrorEmitsErrorEvent(t *testing.T) {
	t.Parallel()
	launcher := &fakeLauncher{playErr: errors.New("no player installed")}
	player := service.NewPlayerService(launcher, hclog.NewNullLogger())
	rec := &eventRecorder{}
	player.Subscribe(rec.record)

	if err := player.PlayVerse(context.Background(), track); err == nil {
		t.Fatal("expected play error")
	}
	evt := rec.waitFor(t, domain.EventError)
	if evt.Err == nil {
		t.Fatal("error event must carry the cause")
	}
	if got := player.State(); got != domain.StateIdle {
		t.Fatalf("expected idle after failure, got %s", got)
	}
}

func TestPlayRejectsEmptyURL(t *testing.T) {
	t.Parallel()
	player := service.NewPlayerService(&fakeLauncher{}, hclog.NewNullLogger())
	if err := player.PlayVerse(context.Background(), domain.Track{VerseID: 1}); err != apperrors.ErrInvalidInput {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestPauseAndResumeRestartPlayback(t *testing.T) {
	t.Parallel()
	launcher := &fakeLauncher{}
	player := service.NewPlayerService(launcher, hclog.NewNullLogger())
	rec := &eventRecorder{}
	player.Subscribe(rec.record)
	ctx := context.Background()

	if err := player.PlayVerse(ctx, track); err != nil {
		t.Fatalf("play verse: %v", err)
	}
	if err := player.Pause(ctx); err != nil {
		t.Fatalf("pause: %v", err)
	}
	if launcher.stops != 1 || player.State() != domain.StatePaused {
		t.Fatalf("pause must stop the external player, stops=%d state=%s", launcher.stops, player.State())
	}
	rec.waitFor(t, domain.EventPause)

	if err := player.Resume(ctx); err != nil {
		t.Fatalf("resume: %v", err)
	}
	if launcher.plays != 2 || player.State() != domain.StatePlaying {
		t.Fatalf("resume must restart playback, plays=%d state=%s", launcher.plays, player.State())
	}
	if err := player.Resume(ctx); err != nil || launcher.plays != 2 {
		t.Fatalf("resume while playing must be a no-op, plays=%d err=%v", launcher.plays, err)
	}
}

func TestStaleExitIsIgnoredAfterNewPlayback(t *testing.T) {
	t.Parallel()
	launcher := &fakeLauncher{}
	player := service.NewPlayerService(launcher, hclog.NewNullLogger())
	rec := &eventRecorder{}
	player.Subscribe(rec.record)
	ctx := context.Background()

	if err := player.PlayVerse(ctx, track); err != nil {
		t.Fatalf("first play: %v", err)
	}
	firstDone := launcher.done
	next := domain.Track{VerseID: 2, Surah: 1, Ayah: 2, URL: "https://cdn.example/2.mp3"}
	if err := player.PlayVerse(ctx, next); err != nil {
		t.Fatalf("second play: %v", err)
	}

	firstDone <- nil
	time.Sleep(20 * time.Millisecond)
	if got := player.State(); got != domain.StatePlaying {
		t.Fatalf("stale exit must not change state, got %s", got)
	}
	for _, k := range rec.kinds() {
		if k == domain.EventEnded {
			t.Fatal("stale exit must not emit ended")
		}
	}
}

func TestVolumeClampsAndSeekEmitsTimeUpdate(t *testing.T) {
	t.Parallel()
	player := service.NewPlayerService(&fakeLauncher{}, hclog.NewNullLogger())
	rec := &eventRecorder{}
	player.Subscribe(rec.record)

	player.SetVolume(1.8)
	if got := player.Volume(); got != 1 {
		t.Fatalf("volume must clamp to 1, got %f", got)
	}
	player.SetVolume(-0.2)
	if got := player.Volume(); got != 0 {
		t.Fatalf("volume must clamp to 0, got %f", got)
	}

	player.Seek(-5)
	evt := rec.waitFor(t, domain.EventTimeUpdate)
	if evt.Position != 0 {
		t.Fatalf("negative seek must clamp to 0, got %f", evt.Position)
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	t.Parallel()
	launcher := &fakeLauncher{}
	player := service.NewPlayerService(launcher, hclog.NewNullLogger())
	rec := &eventRecorder{}
	unsubscribe := player.Subscribe(rec.record)
	unsubscribe()

	if err := player.PlayVerse(context.Background(), track); err != nil {
		t.Fatalf("play verse: %v", err)
	}
	if len(rec.kinds()) != 0 {
		t.Fatalf("unsubscribed listener must see nothing, got %v", rec.kinds())
	}
}
