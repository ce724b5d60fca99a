package profile

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"terminal-terrace/conduit/internal/dto"
	userModel "terminal-terrace/conduit/internal/model/user"
	"terminal-terrace/conduit/internal/user"
	"terminal-terrace/conduit/response"
)

// ProfileService 用户资料与关注关系服务
type ProfileService struct {
	userRepo *user.UserRepository
}

func NewProfileService(userRepo *user.UserRepository) *ProfileService {
	return &ProfileService{userRepo: userRepo}
}

// View 查看用户资料，Following 相对 viewer 计算
func (s *ProfileService) View(viewerID, username string) (dto.ProfileModel, *response.BusinessError) {
	target, bizErr := s.findByUsername(username)
	if bizErr != nil {
		return dto.ProfileModel{}, bizErr
	}
	return s.render(viewerID, target)
}

// Follow 关注用户
// 不能关注自己；重复关注是错误，并发下由复合主键约束兜底
func (s *ProfileService) Follow(followerID, targetUsername string) (dto.ProfileModel, *response.BusinessError) {
	follower, bizErr := s.findByID(followerID)
	if bizErr != nil {
		return dto.ProfileModel{}, bizErr
	}

	target, bizErr := s.findByUsername(targetUsername)
	if bizErr != nil {
		return dto.ProfileModel{}, bizErr
	}

	if follower.ID == target.ID {
		return dto.ProfileModel{}, response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("A user cannot follow himself."),
		)
	}

	following, err := s.userRepo.IsFollowing(follower.ID, target.ID)
	if err != nil {
		return dto.ProfileModel{}, infraError(err)
	}
	if following {
		return dto.ProfileModel{}, response.NewBusinessError(
			response.WithErrorCode(response.Conflict),
			response.WithErrorMessage("You are already following this user"),
		)
	}

	if err := s.userRepo.AddFollow(follower.ID, target.ID); err != nil {
		return dto.ProfileModel{}, infraError(err)
	}

	return s.render(follower.ID, target)
}

// Unfollow 取消关注，未关注时取消是错误
func (s *ProfileService) Unfollow(followerID, targetUsername string) (dto.ProfileModel, *response.BusinessError) {
	follower, bizErr := s.findByID(followerID)
	if bizErr != nil {
		return dto.ProfileModel{}, bizErr
	}

	target, bizErr := s.findByUsername(targetUsername)
	if bizErr != nil {
		return dto.ProfileModel{}, bizErr
	}

	if follower.ID == target.ID {
		return dto.ProfileModel{}, response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("A user cannot unfollow himself."),
		)
	}

	following, err := s.userRepo.IsFollowing(follower.ID, target.ID)
	if err != nil {
		return dto.ProfileModel{}, infraError(err)
	}
	if !following {
		return dto.ProfileModel{}, response.NewBusinessError(
			response.WithErrorCode(response.Conflict),
			response.WithErrorMessage("You cannot unfollow users that you aren't following."),
		)
	}

	if err := s.userRepo.RemoveFollow(follower.ID, target.ID); err != nil {
		return dto.ProfileModel{}, infraError(err)
	}

	return s.render(follower.ID, target)
}

// ===== 内部辅助 =====

func (s *ProfileService) findByID(userID string) (*userModel.User, *response.BusinessError) {
	u, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewBusinessError(
				response.WithErrorCode(response.NotFound),
				response.WithErrorMessage(fmt.Sprintf("No user with an id of '%s' has been found.", userID)),
			)
		}
		return nil, infraError(err)
	}
	return u, nil
}

func (s *ProfileService) findByUsername(username string) (*userModel.User, *response.BusinessError) {
	u, err := s.userRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewBusinessError(
				response.WithErrorCode(response.NotFound),
				response.WithErrorMessage(fmt.Sprintf("No user '%s' has been found.", username)),
			)
		}
		return nil, infraError(err)
	}
	return u, nil
}

func (s *ProfileService) render(viewerID string, target *userModel.User) (dto.ProfileModel, *response.BusinessError) {
	following, err := s.userRepo.IsFollowing(viewerID, target.ID)
	if err != nil {
		return dto.ProfileModel{}, infraError(err)
	}

	return dto.ProfileModel{
		ID:        target.ID,
		Username:  target.Username,
		Bio:       target.Bio,
		Image:     target.Image,
		Following: following,
	}, nil
}

func infraError(err error) *response.BusinessError {
	return response.NewBusinessError(
		response.WithErrorCode(response.Internal),
		response.WithErrorMessage("internal error"),
		response.WithError(err),
	)
}
