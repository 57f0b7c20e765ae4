package stream

import (
	"context"
	"log"
	"sync"

	"engetrack/internal/domain/entities"
)

// Query selects the services a subscription watches.
type Query struct {
	Status entities.ServicoStatus
}

// Snapshot is the full result set of a query at one point in time.
type Snapshot []entities.Servico

// Lister re-evaluates a query against the store.
type Lister interface {
	ListByStatus(ctx context.Context, status entities.ServicoStatus) ([]entities.Servico, error)
}

// Subscription is an explicit handle on a live query. Snapshots arrive on C;
// only the latest unconsumed snapshot is kept (a slow consumer never blocks a
// writer). Owners must call Unsubscribe on teardown, after which C is closed.
type Subscription struct {
	C <-chan Snapshot

	ch      chan Snapshot
	query   Query
	lastIDs map[string]struct{}
	hub     *Hub
	id      uint64
	once    sync.Once
}

func (s *Subscription) Unsubscribe() {
	s.once.Do(func() {
		s.hub.remove(s.id)
	})
}

// Hub fans out store changes to live query subscriptions. Mutating code pokes
// NotifyServicos after a successful write; the hub re-runs each subscriber's
// query and pushes a fresh snapshot when the result-set membership changed.
type Hub struct {
	lister Lister

	mu   sync.Mutex
	subs map[uint64]*Subscription
	next uint64
}

func NewHub(lister Lister) *Hub {
	return &Hub{lister: lister, subs: make(map[uint64]*Subscription)}
}

// Subscribe registers a query and immediately delivers its current snapshot.
func (h *Hub) Subscribe(ctx context.Context, q Query) *Subscription {
	sub := &Subscription{
		ch:    make(chan Snapshot, 1),
		query: q,
		hub:   h,
	}
	sub.C = sub.ch

	h.mu.Lock()
	sub.id = h.next
	h.next++
	h.subs[sub.id] = sub
	h.mu.Unlock()

	snap, err := h.lister.ListByStatus(ctx, q.Status)
	if err != nil {
		log.Printf("[stream] initial snapshot failed status=%s err=%v", q.Status, err)
		return sub
	}
	h.mu.Lock()
	if _, ok := h.subs[sub.id]; ok {
		sub.lastIDs = idSet(snap)
		push(sub, snap)
	}
	h.mu.Unlock()
	return sub
}

// NotifyServicos implements interfaces.IChangeNotifier.
func (h *Hub) NotifyServicos(ctx context.Context) {
	h.mu.Lock()
	subs := make([]*Subscription, 0, len(h.subs))
	for _, s := range h.subs {
		subs = append(subs, s)
	}
	h.mu.Unlock()

	for _, sub := range subs {
		snap, err := h.lister.ListByStatus(ctx, sub.query.Status)
		if err != nil {
			log.Printf("[stream] refresh failed status=%s err=%v", sub.query.Status, err)
			continue
		}
		ids := idSet(snap)

		h.mu.Lock()
		if _, ok := h.subs[sub.id]; ok && !sameSet(sub.lastIDs, ids) {
			sub.lastIDs = ids
			push(sub, snap)
		}
		h.mu.Unlock()
	}
}

// Close tears down every remaining subscription.
func (h *Hub) Close() {
	h.mu.Lock()
	for id, sub := range h.subs {
		delete(h.subs, id)
		close(sub.ch)
	}
	h.mu.Unlock()
}

func (h *Hub) remove(id uint64) {
	h.mu.Lock()
	sub, ok := h.subs[id]
	if ok {
		delete(h.subs, id)
		close(sub.ch)
	}
	h.mu.Unlock()
}

// push delivers latest-wins without blocking: a pending stale snapshot is
// dropped in favor of the new one. Caller holds h.mu.
func push(sub *Subscription, snap Snapshot) {
	select {
	case sub.ch <- snap:
	default:
		select {
		case <-sub.ch:
		default:
		}
		select {
		case sub.ch <- snap:
		default:
		}
	}
}

func idSet(snap Snapshot) map[string]struct{} {
	ids := make(map[string]struct{}, len(snap))
	for _, s := range snap {
		ids[s.ID] = struct{}{}
	}
	return ids
}

func sameSet(a, b map[string]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for id := range a {
		if _, ok := b[id]; !ok {
			return false
		}
	}
	return true
}
