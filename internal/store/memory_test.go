package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.sr.ht/~jakintosh/todo-server/internal/domain"
)

func TestInMemoryStoreOrdering(t *testing.T) {
	s := NewInMemoryStore()
	s.PutList(domain.List{ID: 3, Name: "c"})
	s.PutList(domain.List{ID: 1, Name: "a"})
	added := s.AddList("d")
	assert.Equal(t, int64(4), added.ID)

	require.True(t, s.PutTodo(domain.Todo{ID: 9, Text: "x", ListID: 1}))
	require.True(t, s.PutTodo(domain.Todo{ID: 2, Text: "y", ListID: 1}))
	require.False(t, s.PutTodo(domain.Todo{ID: 7, Text: "z", ListID: 2}))

	lists, err := s.GetLists(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 3, 4}, []int64{lists[0].ID, lists[1].ID, lists[2].ID})

	todos, err := s.GetTodos(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, todos, 2)
	assert.Equal(t, int64(2), todos[0].ID)
	assert.Equal(t, int64(9), todos[1].ID)
}

func TestInMemoryStoreFail(t *testing.T) {
	s := NewInMemoryStore()
	s.Fail(errors.New("disk on fire"))

	_, err := s.GetLists(context.Background())
	var storeErr *Error
	require.True(t, errors.As(err, &storeErr))
	assert.Equal(t, KindConnection, storeErr.Kind)
	assert.Contains(t, err.Error(), "disk on fire")

	s.Fail(nil)
	todos, err := s.GetTodos(context.Background(), 1)
	require.NoError(t, err)
	assert.NotNil(t, todos)
}
