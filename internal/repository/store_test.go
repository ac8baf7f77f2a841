package repository

import (
	"errors"
	"testing"

	"prayer-roster-backend/internal/database/models"
	"prayer-roster-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreTransaction_RollsBackOnError(t *testing.T) {
	db := testutils.NewSQLiteDB(t)
	store := NewStore(db)
	f := testutils.NewFactorySet()

	boom := errors.New("boom")
	err := store.Transaction(func(tx Store) error {
		if err := tx.People().Create(f.Person.WithName("Inside")); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	people, err := store.People().List(PersonFilter{Active: true})
	require.NoError(t, err)
	assert.Empty(t, people)
}

func TestStoreTransaction_Commits(t *testing.T) {
	db := testutils.NewSQLiteDB(t)
	store := NewStore(db)
	f := testutils.NewFactorySet()

	err := store.Transaction(func(tx Store) error {
		slots := []models.Slot{*f.Slot.Tuesday(2025, 3, 4), *f.Slot.Wednesday(2025, 3, 5)}
		return tx.Slots().CreateBatch(slots)
	})
	require.NoError(t, err)

	count, err := store.Slots().Count()
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
	assert.Same(t, db, store.DB())
}
