// Package cartsession owns the live cart controller for the HTTP host. Closing the cart
// tears the controller down and starts a fresh one over the last loaded items.
package cartsession

import (
	"context"
	"sync"

	"github.com/angelmondragon/cartstore/internal/cartlist"
	"github.com/angelmondragon/cartstore/internal/orders"
	"github.com/angelmondragon/cartstore/pkg/logger"
	"github.com/angelmondragon/cartstore/pkg/metrics"
	"github.com/angelmondragon/cartstore/pkg/types"
)

type Session struct {
	ctx     context.Context
	orders  orders.Submitter
	logg    *logger.Logger
	metrics *metrics.StoreMetrics

	mu      sync.RWMutex
	current *cartlist.Store
	items   []types.CartItem
	closed  bool
}

func New(ctx context.Context, items []types.CartItem, submitter orders.Submitter, logg *logger.Logger, m *metrics.StoreMetrics) (*Session, error) {
	if logg == nil {
		logg = logger.Nop()
	}
	s := &Session{
		ctx:     ctx,
		orders:  submitter,
		logg:    logg,
		metrics: m,
		items:   append([]types.CartItem(nil), items...),
	}
	st, err := s.newStore()
	if err != nil {
		return nil, err
	}
	s.current = st
	return s, nil
}

func (s *Session) newStore() (*cartlist.Store, error) {
	return cartlist.NewStore(s.ctx, s.items, cartlist.Deps{
		Orders:  s.orders,
		Dismiss: s.reset,
		Logger:  s.logg,
		Metrics: s.metrics,
	})
}

// Send forwards action to the live controller. Loaded items are remembered so a reset cart
// comes back with them.
func (s *Session) Send(action cartlist.Action) {
	s.mu.Lock()
	if loaded, ok := action.(cartlist.ItemsLoaded); ok {
		s.items = append([]types.CartItem(nil), loaded.Items...)
	}
	st := s.current
	s.mu.Unlock()

	st.Send(action)
}

func (s *Session) State() cartlist.State {
	s.mu.RLock()
	st := s.current
	s.mu.RUnlock()
	return st.State()
}

// Wait blocks until the live controller's in-flight tasks settle.
func (s *Session) Wait() {
	s.mu.RLock()
	st := s.current
	s.mu.RUnlock()
	st.Wait()
}

// reset runs as the controller's dismiss hook, outside the controller's lock.
func (s *Session) reset() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	next, err := s.newStore()
	if err != nil {
		s.mu.Unlock()
		s.logg.Error(s.ctx, "cartsession.reset_failed", err)
		return
	}
	prev := s.current
	s.current = next
	s.mu.Unlock()

	prev.Close()
	s.logg.Info(s.ctx, "cartsession.reset")
}

// Close stops the live controller and abandons any in-flight order.
func (s *Session) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	st := s.current
	s.mu.Unlock()

	st.Close()
}
