package store

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"git.sr.ht/~jakintosh/todo-server/internal/domain"
)

// InMemoryStore keeps lists and todos in process memory. It orders results
// the same way the SQLite store does and can be told to fail, which makes it
// the store of choice for handler tests.
type InMemoryStore struct {
	mu     sync.RWMutex
	lists  []domain.List
	todos  []domain.Todo
	nextID int64
	err    error
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		lists: []domain.List{},
		todos: []domain.Todo{},
	}
}

// AddList stores a list under the next free id.
func (s *InMemoryStore) AddList(name string) domain.List {
	s.mu.Lock()
	defer s.mu.Unlock()
	l := domain.List{ID: s.allocID(), Name: name}
	s.lists = append(s.lists, l)
	return l
}

// PutList stores l under its own id, replacing any list with the same id.
func (s *InMemoryStore) PutList(l domain.List) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lists = slices.DeleteFunc(s.lists, func(x domain.List) bool { return x.ID == l.ID })
	s.lists = append(s.lists, l)
	s.nextID = max(s.nextID, l.ID)
}

// PutTodo stores t under its own id, replacing any todo with the same id.
// Like the schema, it does not accept todos for unknown lists.
func (s *InMemoryStore) PutTodo(t domain.Todo) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !slices.ContainsFunc(s.lists, func(l domain.List) bool { return l.ID == t.ListID }) {
		return false
	}
	s.todos = slices.DeleteFunc(s.todos, func(x domain.Todo) bool { return x.ID == t.ID })
	s.todos = append(s.todos, t)
	s.nextID = max(s.nextID, t.ID)
	return true
}

// Fail makes every subsequent read return err wrapped as a connection
// failure. Passing nil restores normal behaviour.
func (s *InMemoryStore) Fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

func (s *InMemoryStore) allocID() int64 {
	s.nextID++
	return s.nextID
}

func (s *InMemoryStore) GetLists(ctx context.Context) ([]domain.List, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.err != nil {
		return nil, &Error{Kind: KindConnection, Op: "get lists", Err: s.err}
	}

	lists := slices.Clone(s.lists)
	slices.SortFunc(lists, func(a, b domain.List) int { return cmp.Compare(a.ID, b.ID) })
	return lists, nil
}

func (s *InMemoryStore) GetTodos(ctx context.Context, listID int64) ([]domain.Todo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.err != nil {
		return nil, &Error{Kind: KindConnection, Op: "get todos", Err: s.err}
	}

	todos := []domain.Todo{}
	for _, t := range s.todos {
		if t.ListID == listID {
			todos = append(todos, t)
		}
	}
	slices.SortFunc(todos, func(a, b domain.Todo) int { return cmp.Compare(a.ID, b.ID) })
	return todos, nil
}
