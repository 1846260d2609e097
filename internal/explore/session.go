// Package explore holds the client-side state for the job exploration screen:
// the current candidate list, the job preview under inspection, independent
// busy flags for the two fetch kinds, and the last error.
//
// Each screen constructs its own Session; there is no shared singleton. State
// is not persisted — a new screen gets a fresh, empty Session.
package explore

import (
	"context"
	"sync"

	"github.com/jonathan/pathway-onboarding/internal/types"
)

// JobExplorer is the slice of the protocol client the session depends on.
type JobExplorer interface {
	ExploreJobs(ctx context.Context, req types.ExploreRequest) (*types.ExploreResult, error)
	PreviewJob(ctx context.Context, req types.PreviewRequest) (*types.JobPreview, error)
}

// Session tracks exploration and preview state for one screen. List fetches
// and preview fetches are independent concurrency domains: each has its own
// busy flag, and a failure in one never touches the other's slots.
//
// Duplicate in-flight fetches of the same kind are not fenced: both run, and
// whichever resolves last wins the final state. Callers that re-trigger
// rapidly accept that inconsistency.
type Session struct {
	client JobExplorer

	mu          sync.Mutex
	jobs        []types.JobExploreItem // nil until the first successful fetch
	totalJobs   int
	preview     *types.JobPreview
	listBusy    bool
	previewBusy bool
	lastErr     *types.OnboardingError
}

// NewSession creates an empty session backed by the given protocol client.
func NewSession(client JobExplorer) *Session {
	return &Session{client: client}
}

// FetchList replaces the candidate list and total count with the result of an
// explore call. The previous error is cleared before the call starts. On
// failure the error is recorded for the screen to render and also returned,
// so a caller chaining on the call observes it directly. The replacement is
// total: results of an earlier, broader fetch never survive a narrower one.
func (s *Session) FetchList(ctx context.Context, req types.ExploreRequest) error {
	s.mu.Lock()
	s.listBusy = true
	s.lastErr = nil
	s.mu.Unlock()

	result, err := s.client.ExploreJobs(ctx, req)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.listBusy = false
	if err != nil {
		s.lastErr = types.AsOnboardingError(err)
		return err
	}
	s.jobs = result.Jobs
	if s.jobs == nil {
		s.jobs = []types.JobExploreItem{} // fetched-but-empty, distinct from never-fetched
	}
	s.totalJobs = result.TotalJobs
	return nil
}

// FetchPreview replaces the live preview with the result of a preview call.
// Only one preview is live at a time; fetching a new job discards the
// previous preview. List state is never touched, success or failure.
func (s *Session) FetchPreview(ctx context.Context, req types.PreviewRequest) error {
	s.mu.Lock()
	s.previewBusy = true
	s.lastErr = nil
	s.mu.Unlock()

	preview, err := s.client.PreviewJob(ctx, req)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.previewBusy = false
	if err != nil {
		s.lastErr = types.AsOnboardingError(err)
		return err
	}
	s.preview = preview
	return nil
}

// ClearPreview resets the preview slot. Idempotent, no other side effects.
func (s *Session) ClearPreview() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.preview = nil
}

// ClearError resets the error slot. Idempotent, no other side effects.
func (s *Session) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastErr = nil
}

// Jobs returns the current candidate list. Nil means no fetch has succeeded
// yet; an empty non-nil slice means a fetch returned zero candidates.
func (s *Session) Jobs() []types.JobExploreItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.jobs
}

// TotalJobs returns the total candidate count from the last successful fetch.
func (s *Session) TotalJobs() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalJobs
}

// Preview returns the live preview, or nil when none is loaded.
func (s *Session) Preview() *types.JobPreview {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.preview
}

// ListBusy reports whether a list fetch is in flight.
func (s *Session) ListBusy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listBusy
}

// PreviewBusy reports whether a preview fetch is in flight.
func (s *Session) PreviewBusy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.previewBusy
}

// LastError returns the most recent fetch failure, or nil.
func (s *Session) LastError() *types.OnboardingError {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}
