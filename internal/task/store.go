// Package task implements the task list itself: an ordered in-memory
// sequence of tasks mirrored to a key-value store after every
// mutation.
package task

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"taskline/internal/kv"
	"taskline/internal/model"
)

// DefaultKey is the slot the snapshot is written under when no key is
// configured. Namespaced so it stays out of the way of other users of
// the same backend.
const DefaultKey = "taskline.tasks"

// Store holds the in-memory task sequence and its persistence binding.
// It is not safe for concurrent use; callers own exactly one goroutine
// touching it.
type Store struct {
	kv    kv.Store
	key   string
	newID func() string
	now   func() time.Time
	log   *zap.SugaredLogger

	tasks []model.Task
}

// Option tunes a Store at construction time.
type Option func(*Store)

// WithKey overrides the persistence key, e.g. to isolate tests.
func WithKey(key string) Option {
	return func(s *Store) { s.key = key }
}

// WithIDFunc overrides the id generator (default: uuid.NewString).
func WithIDFunc(fn func() string) Option {
	return func(s *Store) { s.newID = fn }
}

// WithClock overrides the creation-time source (default: time.Now).
func WithClock(fn func() time.Time) Option {
	return func(s *Store) { s.now = fn }
}

// WithLogger routes recoverable persistence errors to log. The default
// is a nop logger.
func WithLogger(log *zap.SugaredLogger) Option {
	return func(s *Store) { s.log = log }
}

// New returns an empty Store bound to backend. Call Load to pick up a
// previously persisted snapshot.
func New(backend kv.Store, opts ...Option) *Store {
	s := &Store{
		kv:    backend,
		key:   DefaultKey,
		newID: uuid.NewString,
		now:   time.Now,
		log:   zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load replaces the in-memory sequence with the persisted snapshot and
// returns a copy of it. An absent snapshot means an empty list; a
// malformed one resets the list to empty and is logged, never fatal.
func (s *Store) Load() []model.Task {
	s.tasks = nil
	raw, ok := s.kv.Get(s.key)
	if !ok {
		return s.copyTasks()
	}
	var tasks []model.Task
	if err := json.Unmarshal([]byte(raw), &tasks); err != nil {
		s.log.Warnw("discarding malformed task snapshot", "key", s.key, "error", err)
		return s.copyTasks()
	}
	s.tasks = tasks
	return s.copyTasks()
}

// Save writes the current sequence to the backend. On failure the
// in-memory state is left untouched, the error is logged, and false is
// returned.
func (s *Store) Save() bool {
	b, err := json.Marshal(s.snapshot())
	if err != nil {
		s.log.Errorw("marshal task snapshot", "error", err)
		return false
	}
	if err := s.kv.Set(s.key, string(b)); err != nil {
		s.log.Errorw("persist task snapshot", "key", s.key, "error", err)
		return false
	}
	return true
}

// Add appends a task with the trimmed text. Empty or whitespace-only
// text is rejected: no task, no mutation, no save.
func (s *Store) Add(text string) (model.Task, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return model.Task{}, false
	}
	t := model.Task{
		ID:        s.newID(),
		Text:      text,
		Completed: false,
		CreatedAt: s.now().Format(time.RFC3339),
	}
	s.tasks = append(s.tasks, t)
	s.Save()
	return t, true
}

// Delete removes the task with the given id. It reports whether
// anything was removed; nothing is persisted otherwise.
func (s *Store) Delete(id string) bool {
	kept := s.tasks[:0]
	for _, t := range s.tasks {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	removed := len(kept) < len(s.tasks)
	s.tasks = kept
	if removed {
		s.Save()
	}
	return removed
}

// Toggle flips the completed flag of the task with the given id,
// leaving every other field and its position unchanged.
func (s *Store) Toggle(id string) (model.Task, bool) {
	for i, t := range s.tasks {
		if t.ID == id {
			t.Completed = !t.Completed
			s.tasks[i] = t
			s.Save()
			return t, true
		}
	}
	return model.Task{}, false
}

// Tasks returns a copy of the current sequence in insertion order.
func (s *Store) Tasks() []model.Task {
	return s.copyTasks()
}

// Counts tallies the list in a single pass.
func (s *Store) Counts() model.Counts {
	c := model.Counts{Total: len(s.tasks)}
	for _, t := range s.tasks {
		if t.Completed {
			c.Completed++
		}
	}
	c.Pending = c.Total - c.Completed
	return c
}

// ClearCompleted removes every completed task, preserving the order of
// the rest, and returns how many were removed. Persists only when the
// count is positive.
func (s *Store) ClearCompleted() int {
	kept := s.tasks[:0]
	for _, t := range s.tasks {
		if !t.Completed {
			kept = append(kept, t)
		}
	}
	removed := len(s.tasks) - len(kept)
	s.tasks = kept
	if removed > 0 {
		s.Save()
	}
	return removed
}

// snapshot is the serialized shape: never nil, so an empty store
// round-trips as [] rather than null.
func (s *Store) snapshot() []model.Task {
	if s.tasks == nil {
		return []model.Task{}
	}
	return s.tasks
}

func (s *Store) copyTasks() []model.Task {
	out := make([]model.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}
