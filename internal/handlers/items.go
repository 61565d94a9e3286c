package handlers

import (
	"net/http"

	"checklist_api/internal/service"

	"github.com/gin-gonic/gin"
)

// updateItemRequest is a partial update; nil fields leave the stored value
// untouched.
type updateItemRequest struct {
	Name      *string `json:"name"`
	Completed *bool   `json:"completed"`
}

// @Summary      Add a todo item to a checklist
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        id    path      int                true  "Checklist ID"
// @Param        body  body      createItemRequest  true  "Item payload"
// @Success      201   {object}  envelope
// @Failure      400   {object}  envelope
// @Failure      403   {object}  envelope
// @Failure      404   {object}  envelope
// @Router       /api/checklist/{id}/items [post]
// @Security     BearerAuth
func (h *Handler) createTodoItem(c *gin.Context) {
	userID, ok := h.callerID(c)
	if !ok {
		return
	}
	checklistID, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	var req createItemRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	item, err := h.services.Items.Create(c.Request.Context(), userID, checklistID, service.ItemParams{
		Name:      req.Name,
		Completed: req.Completed,
	})
	if err != nil {
		h.respondServiceError(c, "item_create_failed", err, "userId", userID, "checklistId", checklistID)
		return
	}

	respond(c, http.StatusCreated, "Todo item created successfully", item)
}

// @Summary      List the items of a checklist
// @Tags         items
// @Produce      json
// @Param        id   path      int  true  "Checklist ID"
// @Success      200  {object}  envelope
// @Failure      403  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /api/checklist/{id}/items [get]
// @Security     BearerAuth
func (h *Handler) getTodoItems(c *gin.Context) {
	userID, ok := h.callerID(c)
	if !ok {
		return
	}
	checklistID, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	items, err := h.services.Items.List(c.Request.Context(), userID, checklistID)
	if err != nil {
		h.respondServiceError(c, "item_list_failed", err, "userId", userID, "checklistId", checklistID)
		return
	}

	respond(c, http.StatusOK, "Todo items retrieved successfully", items)
}

// @Summary      Update a todo item's name and/or completed flag
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        id      path      int                true  "Checklist ID"
// @Param        itemId  path      int                true  "Item ID"
// @Param        body    body      updateItemRequest  true  "Partial item payload"
// @Success      200     {object}  envelope
// @Failure      403     {object}  envelope
// @Failure      404     {object}  envelope
// @Router       /api/checklist/{id}/items/{itemId} [put]
// @Security     BearerAuth
func (h *Handler) updateTodoItem(c *gin.Context) {
	userID, ok := h.callerID(c)
	if !ok {
		return
	}
	itemID, ok := h.pathID(c, "itemId")
	if !ok {
		return
	}

	var req updateItemRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	item, err := h.services.Items.Update(c.Request.Context(), userID, itemID, service.ItemUpdateParams{
		Name:      req.Name,
		Completed: req.Completed,
	})
	if err != nil {
		h.respondServiceError(c, "item_update_failed", err, "userId", userID, "itemId", itemID)
		return
	}

	respond(c, http.StatusOK, "Todo item updated successfully", item)
}

// @Summary      Toggle a todo item's completed flag
// @Tags         items
// @Produce      json
// @Param        id      path      int  true  "Checklist ID"
// @Param        itemId  path      int  true  "Item ID"
// @Success      200     {object}  envelope
// @Failure      403     {object}  envelope
// @Failure      404     {object}  envelope
// @Router       /api/checklist/{id}/items/{itemId}/status [put]
// @Security     BearerAuth
func (h *Handler) updateTodoItemStatus(c *gin.Context) {
	userID, ok := h.callerID(c)
	if !ok {
		return
	}
	itemID, ok := h.pathID(c, "itemId")
	if !ok {
		return
	}

	item, err := h.services.Items.ToggleStatus(c.Request.Context(), userID, itemID)
	if err != nil {
		h.respondServiceError(c, "item_toggle_failed", err, "userId", userID, "itemId", itemID)
		return
	}

	respond(c, http.StatusOK, "Todo item status updated successfully", item)
}

// @Summary      Delete a todo item
// @Tags         items
// @Produce      json
// @Param        id      path      int  true  "Checklist ID"
// @Param        itemId  path      int  true  "Item ID"
// @Success      200     {object}  envelope
// @Failure      403     {object}  envelope
// @Failure      404     {object}  envelope
// @Router       /api/checklist/{id}/items/{itemId} [delete]
// @Security     BearerAuth
func (h *Handler) deleteTodoItem(c *gin.Context) {
	userID, ok := h.callerID(c)
	if !ok {
		return
	}
	itemID, ok := h.pathID(c, "itemId")
	if !ok {
		return
	}

	if err := h.services.Items.Delete(c.Request.Context(), userID, itemID); err != nil {
		h.respondServiceError(c, "item_delete_failed", err, "userId", userID, "itemId", itemID)
		return
	}

	respond(c, http.StatusOK, "Todo item deleted successfully", nil)
}
