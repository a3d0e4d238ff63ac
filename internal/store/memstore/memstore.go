package memstore

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/Makepad-fr/itemlist/internal/model"
	"github.com/Makepad-fr/itemlist/internal/store"
)

// In-memory storage. Insertion order is the display order.
// No locking: a Store is owned by a single goroutine (the TUI loop or the runner).

// DefaultItems is what a session starts with when no seed file is given.
func DefaultItems() []model.Item {
	return []model.Item{
		{ID: 1, Title: "First Item"},
		{ID: 2, Title: "Second Item"},
		{ID: 3, Title: "Third Item"},
	}
}

// Store is the item collection plus the last-looked-up slot.
type Store struct {
	items    []model.Item
	specific model.Item
	maxID    int
	log      *zap.SugaredLogger
}

// New builds a store holding seed in order. Seeds go through Insert, so an
// empty title or a repeated id fails the whole construction.
func New(log *zap.SugaredLogger, seed ...model.Item) (*Store, error) {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	s := &Store{
		items: make([]model.Item, 0, len(seed)),
		log:   log,
	}
	for _, it := range seed {
		if err := s.Insert(it); err != nil {
			return nil, fmt.Errorf("seed %v: %w", it, err)
		}
	}
	return s, nil
}

// NewDefault returns a store seeded with DefaultItems.
func NewDefault(log *zap.SugaredLogger) *Store {
	s, err := New(log, DefaultItems()...)
	if err != nil {
		// DefaultItems is static and valid.
		panic(err)
	}
	return s
}

func validTitle(title string) bool { return strings.TrimSpace(title) != "" }

func (s *Store) indexOf(id int) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}

// Insert appends it to the end of the collection.
func (s *Store) Insert(it model.Item) error {
	if !validTitle(it.Title) {
		s.log.Warnw("insert rejected", "id", it.ID, "reason", "empty title")
		return fmt.Errorf("insert %d: %w: empty title", it.ID, store.ErrInvalidInput)
	}
	if s.indexOf(it.ID) >= 0 {
		s.log.Warnw("insert rejected", "id", it.ID, "reason", "duplicate id")
		return fmt.Errorf("insert %d: %w", it.ID, store.ErrDuplicateID)
	}
	s.items = append(s.items, it)
	if it.ID > s.maxID {
		s.maxID = it.ID
	}
	s.log.Debugw("item inserted", "id", it.ID, "title", it.Title)
	return nil
}

// Create inserts a new item under the next free id and returns it.
// Ids only grow, so an id freed by Delete is never handed out again.
func (s *Store) Create(title string) (model.Item, error) {
	it := model.Item{ID: s.maxID + 1, Title: title}
	if err := s.Insert(it); err != nil {
		return model.Item{}, err
	}
	return it, nil
}

// UpdateTitle replaces the title of the item with the given id.
func (s *Store) UpdateTitle(id int, title string) error {
	if !validTitle(title) {
		s.log.Warnw("update rejected", "id", id, "reason", "empty title")
		return fmt.Errorf("update %d: %w: empty title", id, store.ErrInvalidInput)
	}
	i := s.indexOf(id)
	if i < 0 {
		s.log.Warnw("update on missing item", "id", id)
		return fmt.Errorf("update %d: %w", id, store.ErrNotFound)
	}
	s.items[i].Title = title
	s.log.Debugw("item updated", "id", id, "title", title)
	return nil
}

// FindByID looks the item up by id and stages a copy of it in the
// last-looked-up slot. On ErrNotFound the slot keeps its previous value.
func (s *Store) FindByID(id int) (model.Item, error) {
	i := s.indexOf(id)
	if i < 0 {
		s.log.Warnw("lookup of missing item", "id", id)
		return model.Item{}, fmt.Errorf("find %d: %w", id, store.ErrNotFound)
	}
	s.specific = s.items[i]
	return s.specific, nil
}

// Specific returns the item staged by the last successful FindByID.
func (s *Store) Specific() model.Item { return s.specific }

// Filter returns the items whose title contains sub (case-sensitive).
// The empty string matches every title.
func (s *Store) Filter(sub string) []model.Item {
	out := make([]model.Item, 0, len(s.items))
	for _, it := range s.items {
		if strings.Contains(it.Title, sub) {
			out = append(out, it)
		}
	}
	return out
}

// Delete removes the item carrying it.ID; the title is not compared.
func (s *Store) Delete(it model.Item) error {
	i := s.indexOf(it.ID)
	if i < 0 {
		s.log.Warnw("delete of missing item", "id", it.ID)
		return fmt.Errorf("delete %d: %w", it.ID, store.ErrNotFound)
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	s.log.Debugw("item deleted", "id", it.ID)
	return nil
}

// All returns a copy of the collection in insertion order.
func (s *Store) All() []model.Item {
	out := make([]model.Item, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store) Len() int { return len(s.items) }

var _ store.Items = (*Store)(nil)
