package handler

import (
	"net/http"

	"todo-vault/internal/apperr"
	"todo-vault/internal/middleware"
	"todo-vault/internal/models"
	"todo-vault/internal/repository"
	"todo-vault/internal/token"
	"todo-vault/internal/util"

	"github.com/gin-gonic/gin"
)

// TodoListHandler exposes the todo-list resource.
type TodoListHandler struct {
	Repo *repository.TodoListRepository
}

func NewTodoListHandler(repo *repository.TodoListRepository) *TodoListHandler {
	return &TodoListHandler{Repo: repo}
}

// ---------- wire formats ----------

type itemResp struct {
	ID          string `json:"_id"`
	Text        string `json:"text"`
	IsCompleted bool   `json:"isCompleted"`
}

type listResp struct {
	ID    string     `json:"_id"`
	Title string     `json:"title"`
	Todos []itemResp `json:"todos"`
}

func toListResp(l *models.TodoList) listResp {
	todos := make([]itemResp, 0, len(l.Items))
	for _, item := range l.Items {
		todos = append(todos, itemResp{
			ID:          item.ID,
			Text:        item.Text,
			IsCompleted: item.IsCompleted,
		})
	}
	return listResp{ID: l.ID, Title: l.Title, Todos: todos}
}

type itemInput struct {
	Text        string `json:"text"`
	IsCompleted bool   `json:"isCompleted"`
}

type createListReq struct {
	Title string      `json:"title"`
	Todos []itemInput `json:"todos"`
}

type patchListReq struct {
	Title *string `json:"title"`
}

type addItemReq struct {
	Text string `json:"text"`
}

type updateItemReq struct {
	Todo struct {
		ID          string `json:"_id"`
		Text        string `json:"text"`
		IsCompleted bool   `json:"isCompleted"`
	} `json:"todo"`
}

// removeItemReq selects the item to remove either by identifier or by
// position; which variant applies follows from which field is present.
type removeItemReq struct {
	Todo *struct {
		ID string `json:"_id"`
	} `json:"todo"`
	Position *int `json:"position"`
}

func caller(c *gin.Context) (*token.Identity, bool) {
	id, ok := middleware.CurrentIdentity(c)
	if !ok {
		util.RespondError(c, apperr.ErrUnauthorized)
	}
	return id, ok
}

// ---------- handlers ----------

// List handles GET /api/todolists.
func (h *TodoListHandler) List(c *gin.Context) {
	id, ok := caller(c)
	if !ok {
		return
	}

	lists, err := h.Repo.ListAll(id.UserID)
	if err != nil {
		util.RespondError(c, err)
		return
	}

	resp := make([]listResp, 0, len(lists))
	for i := range lists {
		resp = append(resp, toListResp(&lists[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// Get handles GET /api/todolists/:id.
func (h *TodoListHandler) Get(c *gin.Context) {
	id, ok := caller(c)
	if !ok {
		return
	}

	list, err := h.Repo.Get(c.Param("id"), id.UserID)
	if err != nil {
		util.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toListResp(list))
}

// Create handles POST /api/todolists.
func (h *TodoListHandler) Create(c *gin.Context) {
	id, ok := caller(c)
	if !ok {
		return
	}

	var req createListReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondError(c, err)
		return
	}

	items := make([]repository.ItemInput, 0, len(req.Todos))
	for _, item := range req.Todos {
		items = append(items, repository.ItemInput{
			Text:        item.Text,
			IsCompleted: item.IsCompleted,
		})
	}

	list, err := h.Repo.Create(id.UserID, req.Title, items)
	if err != nil {
		util.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toListResp(list))
}

// Update handles PATCH /api/todolists/:id.
func (h *TodoListHandler) Update(c *gin.Context) {
	id, ok := caller(c)
	if !ok {
		return
	}

	var req patchListReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondError(c, err)
		return
	}

	list, err := h.Repo.UpdateFields(c.Param("id"), id.UserID, repository.ListPatch{Title: req.Title})
	if err != nil {
		util.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toListResp(list))
}

// Delete handles DELETE /api/todolists/:id.
func (h *TodoListHandler) Delete(c *gin.Context) {
	id, ok := caller(c)
	if !ok {
		return
	}

	if err := h.Repo.Delete(c.Param("id"), id.UserID); err != nil {
		util.RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AddItem handles POST /api/todolists/:id/todo.
func (h *TodoListHandler) AddItem(c *gin.Context) {
	id, ok := caller(c)
	if !ok {
		return
	}

	var req addItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondError(c, err)
		return
	}

	list, err := h.Repo.AddItem(c.Param("id"), id.UserID, req.Text)
	if err != nil {
		util.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toListResp(list))
}

// UpdateItem handles PATCH /api/todolists/:id/todo.
func (h *TodoListHandler) UpdateItem(c *gin.Context) {
	id, ok := caller(c)
	if !ok {
		return
	}

	var req updateItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondError(c, err)
		return
	}

	list, err := h.Repo.UpdateItem(c.Param("id"), id.UserID, req.Todo.ID, repository.ItemInput{
		Text:        req.Todo.Text,
		IsCompleted: req.Todo.IsCompleted,
	})
	if err != nil {
		util.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toListResp(list))
}

// RemoveItem handles DELETE /api/todolists/:id/todo. A selector that
// matches no item returns the list unchanged.
func (h *TodoListHandler) RemoveItem(c *gin.Context) {
	id, ok := caller(c)
	if !ok {
		return
	}

	var req removeItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondError(c, err)
		return
	}

	var sel repository.ItemSelector
	switch {
	case req.Todo != nil:
		sel.ID = req.Todo.ID
	case req.Position != nil:
		sel.Position = req.Position
	}

	list, err := h.Repo.RemoveItem(c.Param("id"), id.UserID, sel)
	if err != nil {
		util.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toListResp(list))
}
