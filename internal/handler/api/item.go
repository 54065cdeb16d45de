package api

import (
	"net/http"

	reqdto "shareit/internal/handler/dto/request"
	resdto "shareit/internal/handler/dto/response"
	"shareit/internal/handler/httperr"
	"shareit/internal/handler/middleware"
	"shareit/internal/usecase/commands"
	"shareit/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ItemHandler struct {
	cmds     commands.ItemCommands
	comments commands.CommentCommands
	q        queries.ItemQueries
}

func NewItemHandler(cmds commands.ItemCommands, comments commands.CommentCommands, q queries.ItemQueries) *ItemHandler {
	return &ItemHandler{cmds: cmds, comments: comments, q: q}
}

// @Summary Create item
// @Description Register an item owned by the acting user
// @Tags items
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user ID"
// @Param request body reqdto.CreateItemRequest true "Create item request"
// @Success 201 {object} resdto.ItemDetailsResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /items [post]
func (h *ItemHandler) Create(c *gin.Context) {
	ownerID, ok := middleware.GetSharerID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusBadRequest, errNoSharer, "Missing sharer id", nil)
		return
	}
	var req reqdto.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	id, err := h.cmds.Create(c.Request.Context(), ownerID, commands.CreateItemRequest{
		Name:        req.Name,
		Description: req.Description,
		Available:   req.Available,
		RequestID:   req.RequestID,
	})
	if err != nil {
		abortDomainErr(c, err)
		return
	}
	details, err := h.q.GetByID(c.Request.Context(), ownerID, id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load item", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromItemDetails(details))
}

// @Summary Update item
// @Description Partially update an owned item
// @Tags items
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user ID"
// @Param id path int true "Item ID"
// @Param request body reqdto.UpdateItemRequest true "Update item request"
// @Success 200 {object} resdto.ItemDetailsResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /items/{id} [patch]
func (h *ItemHandler) Update(c *gin.Context) {
	ownerID, ok := middleware.GetSharerID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusBadRequest, errNoSharer, "Missing sharer id", nil)
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.Update(c.Request.Context(), ownerID, id, commands.UpdateItemRequest{
		Name:        req.Name,
		Description: req.Description,
		Available:   req.Available,
	}); err != nil {
		abortDomainErr(c, err)
		return
	}
	details, err := h.q.GetByID(c.Request.Context(), ownerID, id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load item", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromItemDetails(details))
}

// @Summary Get item
// @Description Get an item with comments; booking projections appear only for the owner
// @Tags items
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user ID"
// @Param id path int true "Item ID"
// @Success 200 {object} resdto.ItemDetailsResponse
// @Failure 404 {object} map[string]string
// @Router /items/{id} [get]
func (h *ItemHandler) Get(c *gin.Context) {
	requesterID, ok := middleware.GetSharerID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusBadRequest, errNoSharer, "Missing sharer id", nil)
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	details, err := h.q.GetByID(c.Request.Context(), requesterID, id)
	if err != nil {
		abortDomainErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromItemDetails(details))
}

// @Summary List own items
// @Description List the acting user's items with booking projections and comments
// @Tags items
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user ID"
// @Param from query int false "Row offset"
// @Param size query int false "Page size (0 = all)"
// @Success 200 {array} resdto.ItemDetailsResponse
// @Failure 400 {object} map[string]string
// @Router /items [get]
func (h *ItemHandler) ListOwn(c *gin.Context) {
	ownerID, ok := middleware.GetSharerID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusBadRequest, errNoSharer, "Missing sharer id", nil)
		return
	}
	page, ok := parsePage(c)
	if !ok {
		return
	}
	details, err := h.q.ListByOwner(c.Request.Context(), ownerID, page)
	if err != nil {
		abortDomainErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromItemDetailsList(details))
}

// @Summary Search items
// @Description Case-insensitive substring search over available items; blank text yields an empty list
// @Tags items
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user ID"
// @Param text query string true "Search text"
// @Param from query int false "Row offset"
// @Param size query int false "Page size (0 = all)"
// @Success 200 {array} resdto.ItemResponse
// @Failure 400 {object} map[string]string
// @Router /items/search [get]
func (h *ItemHandler) Search(c *gin.Context) {
	page, ok := parsePage(c)
	if !ok {
		return
	}
	views, err := h.q.Search(c.Request.Context(), c.Query("text"), page)
	if err != nil {
		abortDomainErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromItemViewList(views))
}

// @Summary Add comment
// @Description Comment on an item after a finished booking of it
// @Tags items
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user ID"
// @Param id path int true "Item ID"
// @Param request body reqdto.AddCommentRequest true "Comment request"
// @Success 200 {object} resdto.CommentResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /items/{id}/comment [post]
func (h *ItemHandler) AddComment(c *gin.Context) {
	authorID, ok := middleware.GetSharerID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusBadRequest, errNoSharer, "Missing sharer id", nil)
		return
	}
	itemID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.comments.Add(c.Request.Context(), authorID, itemID, commands.AddCommentRequest{Text: req.Text})
	if err != nil {
		abortDomainErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.CommentResponse{
		ID:         result.ID,
		Text:       result.Text,
		AuthorName: result.AuthorName,
		Created:    result.Created,
	})
}

// @Summary Delete item
// @Tags items
// @Param X-Sharer-User-Id header int true "Acting user ID"
// @Param id path int true "Item ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /items/{id} [delete]
func (h *ItemHandler) Delete(c *gin.Context) {
	ownerID, ok := middleware.GetSharerID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusBadRequest, errNoSharer, "Missing sharer id", nil)
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), ownerID, id); err != nil {
		abortDomainErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
