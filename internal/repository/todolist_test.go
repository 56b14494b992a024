package repository

import (
	"testing"

	"todo-vault/internal/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTodoListRepository_CreateAndGet_RoundTrip(t *testing.T) {
	db := newTestDB(t)
	owner := newTestUser(t, db, "a@b.com")
	repo := NewTodoListRepository(db)

	created, err := repo.Create(owner.ID, "groceries", []ItemInput{
		{Text: "milk"},
		{Text: "bread"},
		{Text: "eggs"},
	})
	require.NoError(t, err)

	got, err := repo.Get(created.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, "groceries", got.Title)
	require.Len(t, got.Items, 3)
	for i, text := range []string{"milk", "bread", "eggs"} {
		assert.Equal(t, text, got.Items[i].Text)
		assert.False(t, got.Items[i].IsCompleted)
		assert.Equal(t, i, got.Items[i].Position)
	}
}

func TestTodoListRepository_Create_AllowsEmptyTitle(t *testing.T) {
	db := newTestDB(t)
	owner := newTestUser(t, db, "a@b.com")
	repo := NewTodoListRepository(db)

	// creation is permissive; only later mutation rejects empties
	list, err := repo.Create(owner.ID, "", nil)
	require.NoError(t, err)
	assert.Empty(t, list.Title)
	assert.Empty(t, list.Items)
}

func TestTodoListRepository_OwnershipEnforcedEverywhere(t *testing.T) {
	db := newTestDB(t)
	owner := newTestUser(t, db, "a@b.com")
	intruder := newTestUser(t, db, "x@y.com")
	repo := NewTodoListRepository(db)

	list, err := repo.Create(owner.ID, "mine", []ItemInput{{Text: "one"}})
	require.NoError(t, err)
	itemID := list.Items[0].ID
	title := "stolen"

	ops := map[string]func() error{
		"get": func() error {
			_, err := repo.Get(list.ID, intruder.ID)
			return err
		},
		"add item": func() error {
			_, err := repo.AddItem(list.ID, intruder.ID, "theirs")
			return err
		},
		"update fields": func() error {
			_, err := repo.UpdateFields(list.ID, intruder.ID, ListPatch{Title: &title})
			return err
		},
		"update item": func() error {
			_, err := repo.UpdateItem(list.ID, intruder.ID, itemID, ItemInput{Text: "theirs"})
			return err
		},
		"remove item": func() error {
			_, err := repo.RemoveItem(list.ID, intruder.ID, ItemSelector{ID: itemID})
			return err
		},
		"delete": func() error {
			return repo.Delete(list.ID, intruder.ID)
		},
	}
	for name, op := range ops {
		assert.ErrorIs(t, op(), apperr.ErrForbidden, "operation %q", name)
	}

	// nothing leaked through
	got, err := repo.Get(list.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, "mine", got.Title)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "one", got.Items[0].Text)
}

func TestTodoListRepository_Get_Unknown(t *testing.T) {
	db := newTestDB(t)
	owner := newTestUser(t, db, "a@b.com")
	repo := NewTodoListRepository(db)

	_, err := repo.Get("00000000-0000-0000-0000-000000000000", owner.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestTodoListRepository_AddItem(t *testing.T) {
	db := newTestDB(t)
	owner := newTestUser(t, db, "a@b.com")
	repo := NewTodoListRepository(db)

	list, err := repo.Create(owner.ID, "l", []ItemInput{{Text: "first"}})
	require.NoError(t, err)

	updated, err := repo.AddItem(list.ID, owner.ID, "second")
	require.NoError(t, err)
	require.Len(t, updated.Items, 2)
	assert.Equal(t, "second", updated.Items[1].Text)
	assert.False(t, updated.Items[1].IsCompleted)
	assert.Equal(t, 1, updated.Items[1].Position)
}

func TestTodoListRepository_AddItem_EmptyText(t *testing.T) {
	db := newTestDB(t)
	owner := newTestUser(t, db, "a@b.com")
	repo := NewTodoListRepository(db)

	list, err := repo.Create(owner.ID, "l", []ItemInput{{Text: "first"}})
	require.NoError(t, err)

	_, err = repo.AddItem(list.ID, owner.ID, "")
	assert.ErrorIs(t, err, apperr.ErrEmptyField)

	// sequence length unchanged
	got, err := repo.Get(list.ID, owner.ID)
	require.NoError(t, err)
	assert.Len(t, got.Items, 1)
}

func TestTodoListRepository_WhitespaceIsNotEmpty(t *testing.T) {
	db := newTestDB(t)
	owner := newTestUser(t, db, "a@b.com")
	repo := NewTodoListRepository(db)

	list, err := repo.Create(owner.ID, "l", []ItemInput{{Text: "one"}})
	require.NoError(t, err)

	// only zero-length strings are rejected; " " is valid text
	updated, err := repo.AddItem(list.ID, owner.ID, " ")
	require.NoError(t, err)
	require.Len(t, updated.Items, 2)
	assert.Equal(t, " ", updated.Items[1].Text)

	updated, err = repo.UpdateItem(list.ID, owner.ID, updated.Items[0].ID, ItemInput{Text: "  "})
	require.NoError(t, err)
	assert.Equal(t, "  ", updated.Items[0].Text)

	title := " "
	updated, err = repo.UpdateFields(list.ID, owner.ID, ListPatch{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, " ", updated.Title)
}

func TestTodoListRepository_UpdateFields(t *testing.T) {
	db := newTestDB(t)
	owner := newTestUser(t, db, "a@b.com")
	repo := NewTodoListRepository(db)

	list, err := repo.Create(owner.ID, "old", nil)
	require.NoError(t, err)

	title := "new"
	updated, err := repo.UpdateFields(list.ID, owner.ID, ListPatch{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "new", updated.Title)

	empty := ""
	_, err = repo.UpdateFields(list.ID, owner.ID, ListPatch{Title: &empty})
	assert.ErrorIs(t, err, apperr.ErrEmptyField)

	// omitted title leaves the list untouched
	unchanged, err := repo.UpdateFields(list.ID, owner.ID, ListPatch{})
	require.NoError(t, err)
	assert.Equal(t, "new", unchanged.Title)
}

func TestTodoListRepository_UpdateItem(t *testing.T) {
	db := newTestDB(t)
	owner := newTestUser(t, db, "a@b.com")
	repo := NewTodoListRepository(db)

	list, err := repo.Create(owner.ID, "l", []ItemInput{
		{Text: "one"}, {Text: "two"}, {Text: "three"},
	})
	require.NoError(t, err)
	target := list.Items[1].ID

	updated, err := repo.UpdateItem(list.ID, owner.ID, target, ItemInput{Text: "TWO", IsCompleted: true})
	require.NoError(t, err)
	require.Len(t, updated.Items, 3)
	assert.Equal(t, "TWO", updated.Items[1].Text)
	assert.True(t, updated.Items[1].IsCompleted)
	assert.Equal(t, 1, updated.Items[1].Position) // position preserved

	_, err = repo.UpdateItem(list.ID, owner.ID, target, ItemInput{Text: ""})
	assert.ErrorIs(t, err, apperr.ErrEmptyField)

	_, err = repo.UpdateItem(list.ID, owner.ID, "no-such-item", ItemInput{Text: "x"})
	assert.ErrorIs(t, err, apperr.ErrItemNotFound)
}

func TestTodoListRepository_RemoveItem_ByID(t *testing.T) {
	db := newTestDB(t)
	owner := newTestUser(t, db, "a@b.com")
	repo := NewTodoListRepository(db)

	list, err := repo.Create(owner.ID, "l", []ItemInput{
		{Text: "one"}, {Text: "two"}, {Text: "three"},
	})
	require.NoError(t, err)

	updated, err := repo.RemoveItem(list.ID, owner.ID, ItemSelector{ID: list.Items[1].ID})
	require.NoError(t, err)
	require.Len(t, updated.Items, 2)
	assert.Equal(t, "one", updated.Items[0].Text)
	assert.Equal(t, "three", updated.Items[1].Text)

	// positions closed up in storage as well
	got, err := repo.Get(list.ID, owner.ID)
	require.NoError(t, err)
	require.Len(t, got.Items, 2)
	assert.Equal(t, 0, got.Items[0].Position)
	assert.Equal(t, 1, got.Items[1].Position)
}

func TestTodoListRepository_RemoveItem_ByPosition(t *testing.T) {
	db := newTestDB(t)
	owner := newTestUser(t, db, "a@b.com")
	repo := NewTodoListRepository(db)

	list, err := repo.Create(owner.ID, "l", []ItemInput{
		{Text: "one"}, {Text: "two"},
	})
	require.NoError(t, err)

	pos := 0
	updated, err := repo.RemoveItem(list.ID, owner.ID, ItemSelector{Position: &pos})
	require.NoError(t, err)
	require.Len(t, updated.Items, 1)
	assert.Equal(t, "two", updated.Items[0].Text)
}

func TestTodoListRepository_RemoveItem_NoMatchIsNoOp(t *testing.T) {
	db := newTestDB(t)
	owner := newTestUser(t, db, "a@b.com")
	repo := NewTodoListRepository(db)

	list, err := repo.Create(owner.ID, "l", []ItemInput{{Text: "one"}})
	require.NoError(t, err)

	updated, err := repo.RemoveItem(list.ID, owner.ID, ItemSelector{ID: "no-such-item"})
	require.NoError(t, err)
	assert.Len(t, updated.Items, 1)

	outOfRange := 5
	updated, err = repo.RemoveItem(list.ID, owner.ID, ItemSelector{Position: &outOfRange})
	require.NoError(t, err)
	assert.Len(t, updated.Items, 1)
}

func TestTodoListRepository_Delete(t *testing.T) {
	db := newTestDB(t)
	owner := newTestUser(t, db, "a@b.com")
	repo := NewTodoListRepository(db)

	list, err := repo.Create(owner.ID, "l", []ItemInput{{Text: "one"}})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(list.ID, owner.ID))

	_, err = repo.Get(list.ID, owner.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestTodoListRepository_ListAll_ScopedToOwner(t *testing.T) {
	db := newTestDB(t)
	owner := newTestUser(t, db, "a@b.com")
	other := newTestUser(t, db, "c@d.com")
	repo := NewTodoListRepository(db)

	_, err := repo.Create(owner.ID, "one", nil)
	require.NoError(t, err)
	_, err = repo.Create(owner.ID, "two", nil)
	require.NoError(t, err)
	_, err = repo.Create(other.ID, "theirs", nil)
	require.NoError(t, err)

	lists, err := repo.ListAll(owner.ID)
	require.NoError(t, err)
	require.Len(t, lists, 2)
	for _, l := range lists {
		assert.Equal(t, owner.ID, l.UserID)
	}
}
