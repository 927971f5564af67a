package domain

import "context"

// Store is the read side of the lists/todos schema. Both queries order by id
// ascending and return an empty, non-nil slice when nothing matches.
type Store interface {
	GetLists(ctx context.Context) ([]List, error)
	GetTodos(ctx context.Context, listID int64) ([]Todo, error)
}
