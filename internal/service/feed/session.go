package feed

import (
	"context"
	stderrors "errors"
	"sync"

	"zentube/internal/domain"
	"zentube/internal/service"
	"zentube/pkg/errors"
	"zentube/pkg/logger"
)

// State is the lifecycle of a feed session
type State string

const (
	StateIdle        State = "idle"
	StateLoading     State = "loading"
	StateLoaded      State = "loaded"
	StateLoadingMore State = "loading_more"
	StateErrored     State = "errored"
)

// ErrSuperseded is returned when a newer request replaced the one that just
// resolved. Its result was discarded.
var ErrSuperseded = stderrors.New("feed request superseded")

// Snapshot is a point-in-time copy of a session
type Snapshot struct {
	State   State
	Request domain.FeedRequest
	Page    domain.FeedPage
	Err     error
}

// Session keeps the currently displayed feed. The latest request always wins;
// results of superseded requests are dropped when they arrive. Network calls
// run outside the lock.
type Session struct {
	feed   service.FeedService
	logger *logger.Logger

	mu    sync.Mutex
	seq   uint64
	state State
	req   domain.FeedRequest
	page  domain.FeedPage
	err   error
}

// NewSession creates an idle session
func NewSession(feed service.FeedService, logger *logger.Logger) *Session {
	return &Session{feed: feed, logger: logger, state: StateIdle}
}

// Load fetches req and replaces the displayed items. On failure the previous
// items stay visible alongside the error.
func (s *Session) Load(ctx context.Context, req domain.FeedRequest) error {
	s.mu.Lock()
	s.seq++
	seq := s.seq
	s.state = StateLoading
	s.req = req
	s.err = nil
	s.mu.Unlock()

	page, err := s.feed.Fetch(ctx, req)

	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.seq {
		s.logger.WithField("mode", string(req.Mode)).Debug("Discarding superseded feed result")
		return ErrSuperseded
	}
	if err != nil {
		s.state = StateErrored
		s.err = err
		return err
	}

	s.page = domain.Merge(s.page, *page, domain.MergeReplace)
	s.state = StateLoaded
	return nil
}

// LoadMore fetches the next page and appends it. It returns false without
// fetching while another fetch is pending, when there is no next page, or
// when nothing has loaded yet.
func (s *Session) LoadMore(ctx context.Context) (bool, error) {
	s.mu.Lock()
	if s.state != StateLoaded || s.page.NextCursor == "" {
		s.mu.Unlock()
		return false, nil
	}
	s.seq++
	seq := s.seq
	s.state = StateLoadingMore
	req := s.req.WithCursor(s.page.NextCursor)
	s.mu.Unlock()

	page, err := s.feed.Fetch(ctx, req)

	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.seq {
		return true, ErrSuperseded
	}
	if err != nil {
		// items loaded so far stay visible
		s.state = StateErrored
		s.err = err
		return true, err
	}

	s.page = domain.Merge(s.page, *page, domain.MergeAppend)
	s.state = StateLoaded
	return true, nil
}

// Retry re-issues the last request with replace semantics
func (s *Session) Retry(ctx context.Context) error {
	s.mu.Lock()
	state, req := s.state, s.req
	s.mu.Unlock()

	if state == StateIdle {
		return errors.NewValidationError("nothing to retry", nil)
	}
	return s.Load(ctx, req)
}

// Snapshot returns a copy of the session state
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Snapshot{
		State:   s.state,
		Request: s.req,
		Page:    domain.Merge(domain.FeedPage{}, s.page, domain.MergeReplace),
		Err:     s.err,
	}
}
