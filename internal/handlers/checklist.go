package handlers

import (
	"net/http"
	"strconv"

	"checklist_api/internal/service"

	"github.com/gin-gonic/gin"
)

// Request DTOs for checklist operations. Items must be present (an empty
// array is fine); each entry needs a name and defaults to not completed.
type createChecklistRequest struct {
	Title       string              `json:"title" binding:"required"`
	Description string              `json:"description"`
	Items       []createItemRequest `json:"items" binding:"required,dive"`
}

type createItemRequest struct {
	Name      string `json:"name" binding:"required"`
	Completed bool   `json:"completed"`
}

// pathID parses a numeric path parameter, answering 400 on garbage input.
func (h *Handler) pathID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid "+name+" parameter")
		return 0, false
	}
	return id, true
}

// callerID fetches the authenticated user id, answering 401 when absent.
func (h *Handler) callerID(c *gin.Context) (int, bool) {
	userID, ok := currentUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Unauthorized")
		return 0, false
	}
	return userID, true
}

// @Summary      Create a checklist with initial items
// @Tags         checklist
// @Accept       json
// @Produce      json
// @Param        body  body      createChecklistRequest  true  "Checklist payload"
// @Success      201   {object}  envelope
// @Failure      400   {object}  envelope
// @Failure      401   {object}  envelope
// @Router       /api/checklist [post]
// @Security     BearerAuth
func (h *Handler) createChecklist(c *gin.Context) {
	userID, ok := h.callerID(c)
	if !ok {
		return
	}

	var req createChecklistRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	items := make([]service.ItemParams, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, service.ItemParams{Name: it.Name, Completed: it.Completed})
	}

	created, err := h.services.Checklists.Create(c.Request.Context(), userID, service.ChecklistParams{
		Title:       req.Title,
		Description: req.Description,
		Items:       items,
	})
	if err != nil {
		h.respondServiceError(c, "checklist_create_failed", err, "userId", userID)
		return
	}

	respond(c, http.StatusCreated, "Checklist created successfully", created)
}

// @Summary      List the caller's checklists, newest first
// @Tags         checklist
// @Produce      json
// @Success      200  {object}  envelope
// @Failure      401  {object}  envelope
// @Router       /api/checklist [get]
// @Security     BearerAuth
func (h *Handler) getChecklists(c *gin.Context) {
	userID, ok := h.callerID(c)
	if !ok {
		return
	}

	checklists, err := h.services.Checklists.List(c.Request.Context(), userID)
	if err != nil {
		h.respondServiceError(c, "checklist_list_failed", err, "userId", userID)
		return
	}

	respond(c, http.StatusOK, "List of checklists retrieved successfully", checklists)
}

// @Summary      Get one checklist with its items
// @Tags         checklist
// @Produce      json
// @Param        id   path      int  true  "Checklist ID"
// @Success      200  {object}  envelope
// @Failure      403  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /api/checklist/{id} [get]
// @Security     BearerAuth
func (h *Handler) getChecklistDetail(c *gin.Context) {
	userID, ok := h.callerID(c)
	if !ok {
		return
	}
	checklistID, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	cl, err := h.services.Checklists.Get(c.Request.Context(), userID, checklistID)
	if err != nil {
		h.respondServiceError(c, "checklist_get_failed", err, "userId", userID, "checklistId", checklistID)
		return
	}

	respond(c, http.StatusOK, "Checklist detail retrieved successfully", cl)
}

// @Summary      Delete a checklist and all of its items
// @Tags         checklist
// @Produce      json
// @Param        id   path      int  true  "Checklist ID"
// @Success      200  {object}  envelope
// @Failure      403  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /api/checklist/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteChecklist(c *gin.Context) {
	userID, ok := h.callerID(c)
	if !ok {
		return
	}
	checklistID, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	if err := h.services.Checklists.Delete(c.Request.Context(), userID, checklistID); err != nil {
		h.respondServiceError(c, "checklist_delete_failed", err, "userId", userID, "checklistId", checklistID)
		return
	}

	respond(c, http.StatusOK, "Checklist and associated items deleted successfully", nil)
}
