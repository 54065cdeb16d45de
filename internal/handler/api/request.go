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

type RequestHandler struct {
	cmds commands.RequestCommands
	q    queries.RequestQueries
}

func NewRequestHandler(cmds commands.RequestCommands, q queries.RequestQueries) *RequestHandler {
	return &RequestHandler{cmds: cmds, q: q}
}

// @Summary Create item request
// @Description Post a description of an item the acting user needs
// @Tags requests
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user ID"
// @Param request body reqdto.CreateItemRequestRequest true "Create request"
// @Success 201 {object} resdto.ItemRequestResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /requests [post]
func (h *RequestHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetSharerID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusBadRequest, errNoSharer, "Missing sharer id", nil)
		return
	}
	var req reqdto.CreateItemRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	id, err := h.cmds.Create(c.Request.Context(), userID, commands.CreateRequestRequest{Description: req.Description})
	if err != nil {
		abortDomainErr(c, err)
		return
	}
	details, err := h.q.GetByID(c.Request.Context(), userID, id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load request", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromRequestDetails(details))
}

// @Summary List own requests
// @Description The acting user's requests, newest first, with matching items
// @Tags requests
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user ID"
// @Success 200 {array} resdto.ItemRequestResponse
// @Failure 404 {object} map[string]string
// @Router /requests [get]
func (h *RequestHandler) ListOwn(c *gin.Context) {
	userID, ok := middleware.GetSharerID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusBadRequest, errNoSharer, "Missing sharer id", nil)
		return
	}
	details, err := h.q.ListByUser(c.Request.Context(), userID)
	if err != nil {
		abortDomainErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRequestDetailsList(details))
}

// @Summary List other users' requests
// @Description Requests posted by everyone else, newest first
// @Tags requests
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user ID"
// @Param from query int false "Row offset"
// @Param size query int false "Page size (0 = all)"
// @Success 200 {array} resdto.ItemRequestResponse
// @Failure 400 {object} map[string]string
// @Router /requests/all [get]
func (h *RequestHandler) ListOthers(c *gin.Context) {
	userID, ok := middleware.GetSharerID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusBadRequest, errNoSharer, "Missing sharer id", nil)
		return
	}
	page, ok := parsePage(c)
	if !ok {
		return
	}
	details, err := h.q.ListByOthers(c.Request.Context(), userID, page)
	if err != nil {
		abortDomainErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRequestDetailsList(details))
}

// @Summary Get request
// @Tags requests
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user ID"
// @Param id path int true "Request ID"
// @Success 200 {object} resdto.ItemRequestResponse
// @Failure 404 {object} map[string]string
// @Router /requests/{id} [get]
func (h *RequestHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetSharerID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusBadRequest, errNoSharer, "Missing sharer id", nil)
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	details, err := h.q.GetByID(c.Request.Context(), userID, id)
	if err != nil {
		abortDomainErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRequestDetails(details))
}
