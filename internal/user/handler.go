package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"terminal-terrace/conduit/internal/dto"
	"terminal-terrace/conduit/internal/middleware"
)

type UserHandler struct {
	userService *UserService
}

func NewUserHandler(db *gorm.DB) *UserHandler {
	return &UserHandler{
		userService: NewUserService(NewUserRepository(db)),
	}
}

// Register 注册
// @Summary 注册新用户
// @Tags User
// @Accept json
// @Produce json
// @Param request body dto.RegisterUserRequest true "注册请求"
// @Success 201 {object} dto.UserResponse
// @Router /users [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	userResult, bizErr := h.userService.Register(req.User)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	c.JSON(http.StatusCreated, dto.UserResponse{User: userResult})
}

// Login 登录
// @Summary 用户登录
// @Tags User
// @Accept json
// @Produce json
// @Param request body dto.LoginUserRequest true "登录请求"
// @Success 200 {object} dto.UserResponse
// @Router /users/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	userResult, bizErr := h.userService.Login(req.User)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	c.JSON(http.StatusOK, dto.UserResponse{User: userResult})
}

// GetCurrent 获取当前用户
// @Summary 获取当前登录用户
// @Tags User
// @Produce json
// @Success 200 {object} dto.UserResponse
// @Router /user [get]
func (h *UserHandler) GetCurrent(c *gin.Context) {
	userResult, bizErr := h.userService.GetCurrent(middleware.CurrentUserID(c))
	if bizErr != nil {
		dto.NotFoundOrErrorResponse(c, bizErr)
		return
	}

	c.JSON(http.StatusOK, dto.UserResponse{User: userResult})
}

// Update 更新当前用户
// @Summary 更新当前登录用户
// @Tags User
// @Accept json
// @Produce json
// @Param request body dto.UpdateUserRequest true "更新请求"
// @Success 200 {object} dto.UserResponse
// @Router /user [put]
func (h *UserHandler) Update(c *gin.Context) {
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	userResult, bizErr := h.userService.Update(middleware.CurrentUserID(c), req.User)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	c.JSON(http.StatusOK, dto.UserResponse{User: userResult})
}
