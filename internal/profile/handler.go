package profile

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"terminal-terrace/conduit/internal/dto"
	"terminal-terrace/conduit/internal/middleware"
	"terminal-terrace/conduit/internal/user"
)

type ProfileHandler struct {
	profileService *ProfileService
}

func NewProfileHandler(db *gorm.DB) *ProfileHandler {
	return &ProfileHandler{
		profileService: NewProfileService(user.NewUserRepository(db)),
	}
}

// View 查看用户资料
// @Summary 查看用户资料
// @Tags Profile
// @Produce json
// @Param username path string true "用户名"
// @Success 200 {object} dto.ProfileResponse
// @Router /profiles/{username} [get]
func (h *ProfileHandler) View(c *gin.Context) {
	profileResult, bizErr := h.profileService.View(middleware.CurrentUserID(c), c.Param("username"))
	if bizErr != nil {
		dto.NotFoundOrErrorResponse(c, bizErr)
		return
	}

	c.JSON(http.StatusOK, dto.ProfileResponse{Profile: profileResult})
}

// Follow 关注用户
// @Summary 关注用户
// @Tags Profile
// @Produce json
// @Param username path string true "用户名"
// @Success 200 {object} dto.ProfileResponse
// @Router /profiles/{username}/follow [post]
func (h *ProfileHandler) Follow(c *gin.Context) {
	profileResult, bizErr := h.profileService.Follow(middleware.CurrentUserID(c), c.Param("username"))
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	c.JSON(http.StatusOK, dto.ProfileResponse{Profile: profileResult})
}

// Unfollow 取消关注
// @Summary 取消关注用户
// @Tags Profile
// @Produce json
// @Param username path string true "用户名"
// @Success 200 {object} dto.ProfileResponse
// @Router /profiles/{username}/follow [delete]
func (h *ProfileHandler) Unfollow(c *gin.Context) {
	profileResult, bizErr := h.profileService.Unfollow(middleware.CurrentUserID(c), c.Param("username"))
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	c.JSON(http.StatusOK, dto.ProfileResponse{Profile: profileResult})
}
