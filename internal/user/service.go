package user

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"terminal-terrace/conduit/internal/dto"
	userModel "terminal-terrace/conduit/internal/model/user"
	"terminal-terrace/conduit/internal/pkg"
	"terminal-terrace/conduit/response"
)

// UserService 用户服务，负责注册、登录与当前用户维护
type UserService struct {
	userRepo *UserRepository
}

func NewUserService(userRepo *UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// Register 注册新用户并签发访问令牌
func (s *UserService) Register(req dto.RegisterUserModel) (dto.UserModel, *response.BusinessError) {
	// 1. 检查用户名和邮箱是否已存在
	usernameTaken, emailTaken, err := s.userRepo.ExistsByUsernameOrEmail(req.Username, req.Email, "")
	if err != nil {
		return dto.UserModel{}, infraError(err)
	}
	if usernameTaken {
		return dto.UserModel{}, response.NewBusinessError(
			response.WithErrorCode(response.Conflict),
			response.WithErrorMessage("Username '"+req.Username+"' is already taken."),
		)
	}
	if emailTaken {
		return dto.UserModel{}, response.NewBusinessError(
			response.WithErrorCode(response.Conflict),
			response.WithErrorMessage("Email '"+req.Email+"' is already registered."),
		)
	}

	// 2. 密码加密
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return dto.UserModel{}, infraError(err)
	}

	// 3. 创建用户
	now := time.Now()
	newUser := &userModel.User{
		ID:           uuid.New().String(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.userRepo.Create(newUser); err != nil {
		return dto.UserModel{}, infraError(err)
	}

	// 4. 签发访问令牌
	return s.toUserModelWithToken(newUser)
}

// Login 校验凭据并签发访问令牌
func (s *UserService) Login(req dto.CredentialsModel) (dto.UserModel, *response.BusinessError) {
	u, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.UserModel{}, invalidCredentials()
		}
		return dto.UserModel{}, infraError(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return dto.UserModel{}, invalidCredentials()
	}

	return s.toUserModelWithToken(u)
}

// GetCurrent 获取当前用户信息（不重新签发令牌）
func (s *UserService) GetCurrent(userID string) (dto.UserModel, *response.BusinessError) {
	u, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.UserModel{}, userNotFound(userID)
		}
		return dto.UserModel{}, infraError(err)
	}
	return toUserModel(u), nil
}

// Update 更新当前用户，省略的字段保持不变
func (s *UserService) Update(userID string, req dto.UpdateUserModel) (dto.UserModel, *response.BusinessError) {
	u, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.UserModel{}, userNotFound(userID)
		}
		return dto.UserModel{}, infraError(err)
	}

	if req.Username != nil {
		u.Username = *req.Username
	}
	if req.Email != nil {
		u.Email = *req.Email
	}
	if req.Bio != nil {
		u.Bio = *req.Bio
	}
	if req.Image != nil {
		u.Image = *req.Image
	}

	// 新的用户名/邮箱不能与其他用户冲突
	usernameTaken, emailTaken, err := s.userRepo.ExistsByUsernameOrEmail(u.Username, u.Email, u.ID)
	if err != nil {
		return dto.UserModel{}, infraError(err)
	}
	if usernameTaken {
		return dto.UserModel{}, response.NewBusinessError(
			response.WithErrorCode(response.Conflict),
			response.WithErrorMessage("Username '"+u.Username+"' is already taken."),
		)
	}
	if emailTaken {
		return dto.UserModel{}, response.NewBusinessError(
			response.WithErrorCode(response.Conflict),
			response.WithErrorMessage("Email '"+u.Email+"' is already registered."),
		)
	}
	u.UpdatedAt = time.Now()

	if err := s.userRepo.Update(u); err != nil {
		return dto.UserModel{}, infraError(err)
	}

	return toUserModel(u), nil
}

func (s *UserService) toUserModelWithToken(u *userModel.User) (dto.UserModel, *response.BusinessError) {
	token, err := pkg.GenerateAccessToken(u.ID, u.Username, u.Email)
	if err != nil {
		return dto.UserModel{}, infraError(err)
	}
	m := toUserModel(u)
	m.Token = token
	return m, nil
}

func toUserModel(u *userModel.User) dto.UserModel {
	return dto.UserModel{
		Email:    u.Email,
		Username: u.Username,
		Bio:      u.Bio,
		Image:    u.Image,
	}
}

func invalidCredentials() *response.BusinessError {
	return response.NewBusinessError(
		response.WithErrorCode(response.ParseError),
		response.WithErrorMessage("Invalid credentials."),
	)
}

func userNotFound(userID string) *response.BusinessError {
	return response.NewBusinessError(
		response.WithErrorCode(response.NotFound),
		response.WithErrorMessage("No user with an id of '"+userID+"' has been found."),
	)
}

func infraError(err error) *response.BusinessError {
	return response.NewBusinessError(
		response.WithErrorCode(response.Internal),
		response.WithErrorMessage("internal error"),
		response.WithError(err),
	)
}
