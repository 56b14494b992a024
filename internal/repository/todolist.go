package repository

import (
	"errors"

	"todo-vault/internal/apperr"
	"todo-vault/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ItemInput carries the mutable fields of a todo item.
type ItemInput struct {
	Text        string
	IsCompleted bool
}

// ListPatch is a partial update of a list's own scalar fields.
// Nil means "leave unchanged".
type ListPatch struct {
	Title *string
}

// ItemSelector picks one item either by identifier or by position.
// Exactly one side is expected to be set; ID wins when both are.
type ItemSelector struct {
	ID       string
	Position *int
}

// TodoListRepository owns CRUD and item-level mutation for todo lists.
// Every operation on an existing list resolves it first and checks that
// the caller is its owner before touching anything.
type TodoListRepository struct {
	DB *gorm.DB
}

func NewTodoListRepository(db *gorm.DB) *TodoListRepository {
	return &TodoListRepository{DB: db}
}

func orderedItems(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

// findOwned resolves a list by id and enforces the ownership invariant.
func (r *TodoListRepository) findOwned(id, callerID string) (*models.TodoList, error) {
	var list models.TodoList
	if err := r.DB.Preload("Items", orderedItems).First(&list, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, apperr.ErrStorage
	}
	if list.UserID != callerID {
		return nil, apperr.ErrForbidden
	}
	return &list, nil
}

// ListAll returns every list owned by the caller; the query is
// pre-scoped so no per-row ownership check is needed.
func (r *TodoListRepository) ListAll(ownerID string) ([]models.TodoList, error) {
	var lists []models.TodoList
	if err := r.DB.Preload("Items", orderedItems).
		Where("user_id = ?", ownerID).
		Order("created_at ASC").
		Find(&lists).Error; err != nil {
		return nil, apperr.ErrStorage
	}
	return lists, nil
}

func (r *TodoListRepository) Get(id, callerID string) (*models.TodoList, error) {
	return r.findOwned(id, callerID)
}

// Create stores a new list. Title and item texts are not validated
// here; creation is deliberately permissive while later mutation is
// not.
func (r *TodoListRepository) Create(ownerID, title string, items []ItemInput) (*models.TodoList, error) {
	list := models.TodoList{
		ID:     uuid.NewString(),
		UserID: ownerID,
		Title:  title,
	}
	for i, item := range items {
		list.Items = append(list.Items, models.TodoItem{
			ID:          uuid.NewString(),
			Text:        item.Text,
			IsCompleted: item.IsCompleted,
			Position:    i,
		})
	}
	if err := r.DB.Create(&list).Error; err != nil {
		return nil, apperr.ErrStorage
	}
	return &list, nil
}

// AddItem appends a new, uncompleted item to the end of the list.
func (r *TodoListRepository) AddItem(id, callerID, text string) (*models.TodoList, error) {
	list, err := r.findOwned(id, callerID)
	if err != nil {
		return nil, err
	}
	// zero-length only; whitespace counts as text
	if text == "" {
		return nil, apperr.ErrEmptyField
	}

	item := models.TodoItem{
		ID:          uuid.NewString(),
		ListID:      list.ID,
		Text:        text,
		IsCompleted: false,
		Position:    len(list.Items),
	}
	if err := r.DB.Create(&item).Error; err != nil {
		return nil, apperr.ErrStorage
	}

	list.Items = append(list.Items, item)
	return list, nil
}

// UpdateFields merges the supplied scalar fields into the list.
// An explicitly supplied empty title is rejected.
func (r *TodoListRepository) UpdateFields(id, callerID string, patch ListPatch) (*models.TodoList, error) {
	list, err := r.findOwned(id, callerID)
	if err != nil {
		return nil, err
	}

	if patch.Title == nil {
		return list, nil
	}
	if *patch.Title == "" {
		return nil, apperr.ErrEmptyField
	}

	if err := r.DB.Model(list).Update("title", *patch.Title).Error; err != nil {
		return nil, apperr.ErrStorage
	}
	list.Title = *patch.Title
	return list, nil
}

// UpdateItem replaces the item identified by itemID in place,
// preserving its position in the ordered sequence.
func (r *TodoListRepository) UpdateItem(id, callerID, itemID string, in ItemInput) (*models.TodoList, error) {
	list, err := r.findOwned(id, callerID)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range list.Items {
		if list.Items[i].ID == itemID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, apperr.ErrItemNotFound
	}
	if in.Text == "" {
		return nil, apperr.ErrEmptyField
	}

	item := &list.Items[idx]
	item.Text = in.Text
	item.IsCompleted = in.IsCompleted
	if err := r.DB.Model(item).Updates(map[string]interface{}{
		"text":         in.Text,
		"is_completed": in.IsCompleted,
	}).Error; err != nil {
		return nil, apperr.ErrStorage
	}
	return list, nil
}

// RemoveItem deletes the first item matching the selector. A selector
// that matches nothing leaves the list unchanged and reports success.
func (r *TodoListRepository) RemoveItem(id, callerID string, sel ItemSelector) (*models.TodoList, error) {
	list, err := r.findOwned(id, callerID)
	if err != nil {
		return nil, err
	}

	idx := -1
	switch {
	case sel.ID != "":
		for i := range list.Items {
			if list.Items[i].ID == sel.ID {
				idx = i
				break
			}
		}
	case sel.Position != nil:
		if *sel.Position >= 0 && *sel.Position < len(list.Items) {
			idx = *sel.Position
		}
	}
	if idx < 0 {
		return list, nil
	}

	removed := list.Items[idx]
	if err := r.DB.Delete(&models.TodoItem{}, "id = ?", removed.ID).Error; err != nil {
		return nil, apperr.ErrStorage
	}
	// close the gap in the order
	if err := r.DB.Model(&models.TodoItem{}).
		Where("list_id = ? AND position > ?", list.ID, removed.Position).
		UpdateColumn("position", gorm.Expr("position - 1")).Error; err != nil {
		return nil, apperr.ErrStorage
	}

	list.Items = append(list.Items[:idx], list.Items[idx+1:]...)
	for i := range list.Items {
		list.Items[i].Position = i
	}
	return list, nil
}

// Delete removes the whole list; items go with it via cascade.
func (r *TodoListRepository) Delete(id, callerID string) error {
	list, err := r.findOwned(id, callerID)
	if err != nil {
		return err
	}
	if err := r.DB.Select("Items").Delete(list).Error; err != nil {
		return apperr.ErrStorage
	}
	return nil
}
