package service

import (
	"context"
	"testing"

	"github.com/ticketflow/ticketflow/internal/auth"
	"github.com/ticketflow/ticketflow/internal/domain"
	"github.com/ticketflow/ticketflow/internal/events"
	"github.com/ticketflow/ticketflow/internal/navigation"
	"github.com/ticketflow/ticketflow/internal/persistence"
	"github.com/ticketflow/ticketflow/internal/session"
	"github.com/ticketflow/ticketflow/internal/state"
)

type recordingNotifier struct {
	shown []domain.Notice
}

func (r *recordingNotifier) Show(text string, kind domain.NoticeKind) domain.Notice {
	n := domain.Notice{Text: text, Kind: kind}
	r.shown = append(r.shown, n)
	return n
}

func (r *recordingNotifier) last() domain.Notice {
	if len(r.shown) == 0 {
		return domain.Notice{}
	}
	return r.shown[len(r.shown)-1]
}

type harness struct {
	storage  *persistence.Memory
	sessions *session.Store
	store    *state.Store
	notes    *recordingNotifier
	auth     *AuthService
	tickets  *TicketService
	events   events.Dispatcher
}

func newHarness(t *testing.T, storage *persistence.Memory) *harness {
	t.Helper()
	if storage == nil {
		storage = persistence.NewMemory()
	}
	dispatcher := events.NewInMemoryDispatcher(nil)
	store := state.NewStore(state.Initial(false), state.StoreDependencies{Dispatcher: dispatcher})
	notes := &recordingNotifier{}
	sessions := session.NewStore(storage, nil)
	guard := navigation.NewGuard(store, notes, nil)

	seq := 0
	h := &harness{
		storage:  storage,
		sessions: sessions,
		store:    store,
		notes:    notes,
		events:   dispatcher,
		auth: NewAuthService(AuthDependencies{
			Sessions:     sessions,
			Guard:        guard,
			Store:        store,
			Notifier:     notes,
			TokenManager: auth.NewTokenManager("test-secret", "ticketflow"),
		}),
		tickets: NewTicketService(TicketDependencies{
			Store:    store,
			Notifier: notes,
			NewID: func() string {
				seq++
				return "t-" + string(rune('a'+seq-1))
			},
		}),
	}
	h.auth.Boot(context.Background())
	return h
}
