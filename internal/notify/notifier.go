package notify

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/ticketflow/ticketflow/internal/domain"
)

// DefaultTTL is how long a notice stays visible when no TTL is configured.
const DefaultTTL = 3 * time.Second

// Notifier is the single-slot notice channel. It is either idle or showing
// one notice until its expiry. Showing a new notice cancels the pending
// clear of the previous one.
type Notifier struct {
	clock  Clock
	ttl    time.Duration
	logger *zap.Logger

	mu         sync.Mutex
	current    *domain.Notice
	timer      Timer
	generation uint64
}

// NewNotifier builds an idle notifier.
func NewNotifier(clock Clock, ttl time.Duration, logger *zap.Logger) *Notifier {
	if clock == nil {
		clock = RealClock{}
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Notifier{clock: clock, ttl: ttl, logger: logger.Named("notify")}
}

// Show replaces any visible notice with text.
func (n *Notifier) Show(text string, kind domain.NoticeKind) domain.Notice {
	if kind == "" {
		kind = domain.NoticeInfo
	}
	n.mu.Lock()
	defer n.mu.Unlock()

	n.stopTimerLocked()
	n.generation++
	gen := n.generation
	notice := domain.Notice{Text: text, Kind: kind, ExpiresAt: n.clock.Now().Add(n.ttl)}
	n.current = &notice
	n.timer = n.clock.AfterFunc(n.ttl, func() { n.expire(gen) })

	n.logger.Debug("notice shown", zap.String("kind", string(kind)), zap.String("text", text))
	return notice
}

// Dismiss clears the visible notice immediately.
func (n *Notifier) Dismiss() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.stopTimerLocked()
	n.generation++
	n.current = nil
}

// Current returns the visible notice, if any.
func (n *Notifier) Current() (domain.Notice, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.current == nil {
		return domain.Notice{}, false
	}
	if !n.clock.Now().Before(n.current.ExpiresAt) {
		n.current = nil
		return domain.Notice{}, false
	}
	return *n.current, true
}

func (n *Notifier) expire(gen uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()
	// a newer Show or Dismiss owns the slot now
	if gen != n.generation {
		return
	}
	n.current = nil
	n.timer = nil
}

func (n *Notifier) stopTimerLocked() {
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
}
