package api

import (
	"net/http"

	reqdto "shareit/internal/handler/dto/request"
	resdto "shareit/internal/handler/dto/response"
	"shareit/internal/handler/httperr"
	"shareit/internal/usecase/commands"
	"shareit/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	cmds commands.UserCommands
	q    queries.UserQueries
}

func NewUserHandler(cmds commands.UserCommands, q queries.UserQueries) *UserHandler {
	return &UserHandler{cmds: cmds, q: q}
}

// @Summary Create user
// @Description Register a new user with a unique email
// @Tags users
// @Accept json
// @Produce json
// @Param request body reqdto.CreateUserRequest true "Create user request"
// @Success 201 {object} resdto.UserResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /users [post]
func (h *UserHandler) Create(c *gin.Context) {
	var req reqdto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	id, err := h.cmds.Create(c.Request.Context(), commands.CreateUserRequest{Name: req.Name, Email: req.Email})
	if err != nil {
		abortDomainErr(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load user", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromUserView(view))
}

// @Summary Update user
// @Description Partially update a user's name and/or email
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body reqdto.UpdateUserRequest true "Update user request"
// @Success 200 {object} resdto.UserResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /users/{id} [patch]
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.Update(c.Request.Context(), id, commands.UpdateUserRequest{Name: req.Name, Email: req.Email}); err != nil {
		abortDomainErr(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load user", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromUserView(view))
}

// @Summary Get user
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} resdto.UserResponse
// @Failure 404 {object} map[string]string
// @Router /users/{id} [get]
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortDomainErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromUserView(view))
}

// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {array} resdto.UserResponse
// @Router /users [get]
func (h *UserHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list users", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromUserList(views))
}

// @Summary Delete user
// @Tags users
// @Param id path int true "User ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /users/{id} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		abortDomainErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
