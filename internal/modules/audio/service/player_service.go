package service

import (
	"context"
	"sync"

	hclog "github.com/hashicorp/go-hclog"

	"wird/internal/modules/audio/domain"
	audioout "wird/internal/modules/audio/port/out"
	apperrors "wird/internal/platform/errors"
)

// Listener receives player events. Callbacks run on the caller's goroutine.
type Listener func(event domain.Event)

// PlayerService is the playback state machine. It tracks one current track,
// clamps volume and position, and fans typed events out to subscribers.
// Pausing stops the external player and remembers the track; resuming
// restarts it.
type PlayerService struct {
	launcher audioout.Launcher
	logger   hclog.Logger

	mu        sync.Mutex
	state     domain.State
	track     domain.Track
	hasTrack  bool
	volume    float64
	position  float64
	duration  float64
	playGen   int
	listeners map[int]Listener
	nextID    int
}

func NewPlayerService(launcher audioout.Launcher, logger hclog.Logger) *PlayerService {
	return &PlayerService{
		launcher:  launcher,
		logger:    logger,
		state:     domain.StateIdle,
		volume:    1,
		listeners: map[int]Listener{},
	}
}

func (s *PlayerService) PlayVerse(ctx context.Context, track domain.Track) error {
	if track.URL == "" {
		return apperrors.ErrInvalidInput
	}
	s.mu.Lock()
	s.track = track
	s.hasTrack = true
	s.position = 0
	s.state = domain.StateLoading
	s.playGen++
	gen := s.playGen
	s.mu.Unlock()
	s.emit(domain.Event{Kind: domain.EventLoading, Track: track})

	return s.start(ctx, track, gen)
}

func (s *PlayerService) Pause(ctx context.Context) error {
	s.mu.Lock()
	if s.state != domain.StatePlaying {
		s.mu.Unlock()
		return nil
	}
	s.state = domain.StatePaused
	s.playGen++
	track := s.track
	s.mu.Unlock()

	if err := s.launcher.Stop(ctx); err != nil {
		s.logger.Warn("stop external player failed", "error", err)
	}
	s.emit(domain.Event{Kind: domain.EventPause, Track: track})
	return nil
}

func (s *PlayerService) Resume(ctx context.Context) error {
	s.mu.Lock()
	if s.state != domain.StatePaused || !s.hasTrack {
		s.mu.Unlock()
		return nil
	}
	track := s.track
	s.playGen++
	gen := s.playGen
	s.mu.Unlock()
	return s.start(ctx, track, gen)
}

func (s *PlayerService) Stop(ctx context.Context) error {
	s.mu.Lock()
	wasActive := s.state == domain.StatePlaying || s.state == domain.StateLoading
	s.state = domain.StateIdle
	s.position = 0
	s.playGen++
	s.mu.Unlock()

	if !wasActive {
		return nil
	}
	if err := s.launcher.Stop(ctx); err != nil {
		s.logger.Warn("stop external player failed", "error", err)
		return err
	}
	return nil
}

func (s *PlayerService) SetVolume(volume float64) {
	s.mu.Lock()
	s.volume = domain.ClampVolume(volume)
	s.mu.Unlock()
}

func (s *PlayerService) Volume() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.volume
}

// Seek records the position and notifies listeners. The external player is
// not repositioned; position tracking serves the UI.
func (s *PlayerService) Seek(position float64) {
	s.mu.Lock()
	if position < 0 {
		position = 0
	}
	if s.duration > 0 && position > s.duration {
		position = s.duration
	}
	s.position = position
	track := s.track
	duration := s.duration
	s.mu.Unlock()
	s.emit(domain.Event{Kind: domain.EventTimeUpdate, Track: track, Position: position, Duration: duration})
}

func (s *PlayerService) State() domain.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *PlayerService) CurrentTrack() (domain.Track, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.track, s.hasTrack
}

func (s *PlayerService) Subscribe(listener Listener) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = listener
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

func (s *PlayerService) start(ctx context.Context, track domain.Track, gen int) error {
	done, err := s.launcher.Play(ctx, track.URL)
	if err != nil {
		s.mu.Lock()
		if s.playGen == gen {
			s.state = domain.StateIdle
		}
		s.mu.Unlock()
		s.emit(domain.Event{Kind: domain.EventError, Track: track, Err: err})
		return err
	}

	s.mu.Lock()
	if s.playGen == gen {
		s.state = domain.StatePlaying
	}
	s.mu.Unlock()
	s.emit(domain.Event{Kind: domain.EventPlay, Track: track})

	go s.watch(track, gen, done)
	return nil
}

// watch waits for the external player to exit. Outcomes from superseded
// playbacks are dropped.
func (s *PlayerService) watch(track domain.Track, gen int, done <-chan error) {
	err := <-done
	s.mu.Lock()
	if s.playGen != gen {
		s.mu.Unlock()
		return
	}
	s.state = domain.StateIdle
	s.position = 0
	s.mu.Unlock()

	if err != nil {
		s.emit(domain.Event{Kind: domain.EventError, Track: track, Err: err})
		return
	}
	s.emit(domain.Event{Kind: domain.EventEnded, Track: track})
}

func (s *PlayerService) emit(event domain.Event) {
	s.mu.Lock()
	listeners := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.mu.Unlock()
	for _, l := range listeners {
		l(event)
	}
}
