package mystore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

type session struct {
	UID   string
	Step  int
	Items []string
}

var (
	checkoutSession = session{UID: "123", Step: 2, Items: []string{"tennis racket", "tennis balls"}}
)

func TestStore(t *testing.T) {
	c := context.TODO()
	store, cleanup, err := NewInMemoryStore[session](c)
	assert.NoError(t, err)
	defer cleanup()

	t.Run("Get not found", func(t *testing.T) {
		_, found, err := store.Get(c, checkoutSession.UID)
		assert.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("Put", func(t *testing.T) {
		err = store.Put(c, checkoutSession.UID, checkoutSession)
		assert.NoError(t, err)
	})

	t.Run("Get found", func(t *testing.T) {
		s, found, err := store.Get(c, checkoutSession.UID)
		assert.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, checkoutSession, s)
	})

	t.Run("List", func(t *testing.T) {
		all, err := store.List(c)
		assert.NoError(t, err)
		assert.Equal(t, []session{checkoutSession}, all)
	})

	t.Run("Delete", func(t *testing.T) {
		err := store.Delete(c, checkoutSession.UID)
		assert.NoError(t, err)

		_, found, err := store.Get(c, checkoutSession.UID)
		assert.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("Transactional put and get", func(t *testing.T) {
		err := store.RunInTransaction(c, func(c context.Context) error {
			err := store.Put(c, checkoutSession.UID, checkoutSession)
			assert.NoError(t, err)

			s, found, err := store.Get(c, checkoutSession.UID)
			assert.NoError(t, err)
			assert.True(t, found)
			assert.Equal(t, checkoutSession, s)

			return nil
		})
		assert.NoError(t, err)
	})
}
