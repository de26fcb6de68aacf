package backend

import (
	"context"
	"sync"

	"git.sr.ht/~whereswaldon/hue-wheel/picker"
)

// RWBox guards a value of type T with a read-write lock.
type RWBox[T any] struct {
	t    T
	lock sync.RWMutex
}

func (r *RWBox[T]) Read(f func(*T)) {
	r.lock.RLock()
	defer r.lock.RUnlock()
	f(&r.t)
}

func (r *RWBox[T]) Write(f func(*T)) {
	r.lock.Lock()
	defer r.lock.Unlock()
	f(&r.t)
}

type subscriber struct {
	ch chan picker.ViewModel
	fn func(picker.ViewModel)
}

// deliver hands vm to the subscriber. Channel subscribers hold at most one
// pending snapshot, and a newer snapshot replaces one that was never read.
func (s *subscriber) deliver(vm picker.ViewModel) {
	if s.fn != nil {
		s.fn(vm)
		return
	}
	select {
	case s.ch <- vm:
		return
	default:
	}
	select {
	case <-s.ch:
	default:
	}
	s.ch <- vm
}

type storeState struct {
	state picker.State
	view  picker.ViewModel
	subs  map[*subscriber]struct{}
}

// Store owns the current picker state. Accept is its only writer; everything
// else observes immutable snapshots.
type Store struct {
	box RWBox[storeState]
}

func NewStore(initial picker.State) *Store {
	s := &Store{}
	s.box.Write(func(st *storeState) {
		st.state = initial
		st.view = picker.Project(initial)
		st.subs = make(map[*subscriber]struct{})
	})
	return s
}

// Accept applies ev and notifies every subscriber of the result. Concurrent
// callers are serialized, and each event is reduced against the state left
// by the one before it.
func (s *Store) Accept(ev picker.Event) {
	s.box.Write(func(st *storeState) {
		st.state = picker.Reduce(st.state, ev)
		st.view = picker.Project(st.state)
		for sub := range st.subs {
			sub.deliver(st.view)
		}
	})
}

// State returns the current state.
func (s *Store) State() (state picker.State) {
	s.box.Read(func(st *storeState) {
		state = st.state
	})
	return state
}

// Current returns the view model for the current state.
func (s *Store) Current() (vm picker.ViewModel) {
	s.box.Read(func(st *storeState) {
		vm = st.view
	})
	return vm
}

// Stream returns a channel that immediately holds the current view model and
// then receives each newer one. A reader that falls behind skips straight to
// the latest snapshot. The channel is closed once ctx is done.
func (s *Store) Stream(ctx context.Context) <-chan picker.ViewModel {
	sub := &subscriber{ch: make(chan picker.ViewModel, 1)}
	s.box.Write(func(st *storeState) {
		sub.ch <- st.view
		st.subs[sub] = struct{}{}
	})
	go func() {
		<-ctx.Done()
		s.box.Write(func(st *storeState) {
			delete(st.subs, sub)
			close(sub.ch)
		})
	}()
	return sub.ch
}

// Subscribe invokes fn with the current view model and again after every
// accepted event, until the returned cancel function is called. fn runs
// while the store is locked and must not call back into it.
func (s *Store) Subscribe(fn func(picker.ViewModel)) (cancel func()) {
	sub := &subscriber{fn: fn}
	s.box.Write(func(st *storeState) {
		fn(st.view)
		st.subs[sub] = struct{}{}
	})
	var once sync.Once
	return func() {
		once.Do(func() {
			s.box.Write(func(st *storeState) {
				delete(st.subs, sub)
			})
		})
	}
}
