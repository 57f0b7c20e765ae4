package usecase

import (
	"context"
	"errors"
	"sync"

	"engetrack/internal/domain/entities"
	"engetrack/internal/infrastructure/stream"
)

var ErrStatusNaoMonitorado = errors.New("status not tracked for notifications")

// TrackedStatuses are the department inboxes that carry an unseen-work badge.
var TrackedStatuses = []entities.ServicoStatus{
	entities.StatusEngenharia,
	entities.StatusAguardandoVisita,
	entities.StatusDigitacao,
	entities.StatusMedicina,
	entities.StatusFinanceiro,
}

// INotificacaoUseCase exposes the live "unseen work" counters.
//
// A counter is the number of services sitting in a status that the viewer has
// not yet seen. Marking a department screen as viewed zeroes its counter and
// keeps absorbing arrivals while the screen stays open; leaving the screen
// stops absorbing, so later arrivals count again.
type INotificacaoUseCase interface {
	Counts() map[entities.ServicoStatus]int
	MarkViewing(status entities.ServicoStatus) error
	StopViewing(status entities.ServicoStatus) error
}

type NotificacaoUseCase struct {
	mu      sync.Mutex
	current map[entities.ServicoStatus]map[string]struct{}
	seen    map[entities.ServicoStatus]map[string]struct{}
	viewing map[entities.ServicoStatus]bool

	subs []*stream.Subscription
	wg   sync.WaitGroup
}

var _ INotificacaoUseCase = (*NotificacaoUseCase)(nil)

func NewNotificacaoUseCase() *NotificacaoUseCase {
	n := &NotificacaoUseCase{
		current: make(map[entities.ServicoStatus]map[string]struct{}),
		seen:    make(map[entities.ServicoStatus]map[string]struct{}),
		viewing: make(map[entities.ServicoStatus]bool),
	}
	for _, st := range TrackedStatuses {
		n.current[st] = map[string]struct{}{}
		n.seen[st] = map[string]struct{}{}
	}
	return n
}

// Start opens one hub subscription per tracked status and consumes snapshots
// until Close is called.
func (n *NotificacaoUseCase) Start(ctx context.Context, hub *stream.Hub) {
	for _, st := range TrackedStatuses {
		sub := hub.Subscribe(ctx, stream.Query{Status: st})
		n.subs = append(n.subs, sub)

		n.wg.Add(1)
		go func(status entities.ServicoStatus, sub *stream.Subscription) {
			defer n.wg.Done()
			for snap := range sub.C {
				n.apply(status, snap)
			}
		}(st, sub)
	}
}

// Close unsubscribes everything and waits for the consumers to drain.
func (n *NotificacaoUseCase) Close() {
	for _, sub := range n.subs {
		sub.Unsubscribe()
	}
	n.wg.Wait()
}

func (n *NotificacaoUseCase) apply(status entities.ServicoStatus, snap stream.Snapshot) {
	ids := make(map[string]struct{}, len(snap))
	for _, s := range snap {
		ids[s.ID] = struct{}{}
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	n.current[status] = ids
	if n.viewing[status] {
		n.seen[status] = copyIDs(ids)
	}
}

func (n *NotificacaoUseCase) Counts() map[entities.ServicoStatus]int {
	n.mu.Lock()
	defer n.mu.Unlock()

	counts := make(map[entities.ServicoStatus]int, len(TrackedStatuses))
	for _, st := range TrackedStatuses {
		unseen := 0
		for id := range n.current[st] {
			if _, ok := n.seen[st][id]; !ok {
				unseen++
			}
		}
		counts[st] = unseen
	}
	return counts
}

func (n *NotificacaoUseCase) MarkViewing(status entities.ServicoStatus) error {
	if !tracked(status) {
		return ErrStatusNaoMonitorado
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	n.viewing[status] = true
	n.seen[status] = copyIDs(n.current[status])
	return nil
}

func (n *NotificacaoUseCase) StopViewing(status entities.ServicoStatus) error {
	if !tracked(status) {
		return ErrStatusNaoMonitorado
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	n.viewing[status] = false
	return nil
}

func tracked(status entities.ServicoStatus) bool {
	for _, st := range TrackedStatuses {
		if st == status {
			return true
		}
	}
	return false
}

func copyIDs(ids map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{}, len(ids))
	for id := range ids {
		out[id] = struct{}{}
	}
	return out
}
