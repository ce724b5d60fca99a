package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"terminal-terrace/conduit/internal/dto"
	userModel "terminal-terrace/conduit/internal/model/user"
	"terminal-terrace/conduit/internal/pkg"
	"terminal-terrace/conduit/internal/testutils"
	"terminal-terrace/conduit/response"
)

func setupUserService(t *testing.T) (*UserService, *gorm.DB) {
	db := testutils.SetupTestDB(t)
	testutils.SetupTestConfig(t)
	return NewUserService(NewUserRepository(db)), db
}

func TestUserService_Register(t *testing.T) {
	service, _ := setupUserService(t)

	u, bizErr := service.Register(registerModel("alice", "alice@example.com"))
	require.Nil(t, bizErr)
	assert.Equal(t, "alice", u.Username)
	assert.Equal(t, "alice@example.com", u.Email)
	require.NotEmpty(t, u.Token)

	// The issued token carries the new user's identity
	claims, err := pkg.ParseAccessToken(u.Token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)
	assert.NotEmpty(t, claims.UserID())
}

func TestUserService_Register_Conflicts(t *testing.T) {
	service, _ := setupUserService(t)

	_, bizErr := service.Register(registerModel("alice", "alice@example.com"))
	require.Nil(t, bizErr)

	_, bizErr = service.Register(registerModel("alice", "other@example.com"))
	require.NotNil(t, bizErr)
	assert.Equal(t, response.Conflict, bizErr.Code)
	assert.Contains(t, bizErr.Messages, "Username 'alice' is already taken.")

	_, bizErr = service.Register(registerModel("bob", "alice@example.com"))
	require.NotNil(t, bizErr)
	assert.Equal(t, response.Conflict, bizErr.Code)
	assert.Contains(t, bizErr.Messages, "Email 'alice@example.com' is already registered.")
}

func TestUserService_Login(t *testing.T) {
	service, _ := setupUserService(t)

	_, bizErr := service.Register(registerModel("alice", "alice@example.com"))
	require.Nil(t, bizErr)

	u, bizErr := service.Login(dto.CredentialsModel{
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.Nil(t, bizErr)
	assert.Equal(t, "alice", u.Username)
	assert.NotEmpty(t, u.Token)
}

func TestUserService_Login_BadCredentials(t *testing.T) {
	service, _ := setupUserService(t)

	_, bizErr := service.Register(registerModel("alice", "alice@example.com"))
	require.Nil(t, bizErr)

	// Wrong password and unknown email fail identically
	_, bizErr = service.Login(dto.CredentialsModel{Email: "alice@example.com", Password: "wrong"})
	require.NotNil(t, bizErr)
	assert.Contains(t, bizErr.Messages, "Invalid credentials.")

	_, bizErr = service.Login(dto.CredentialsModel{Email: "ghost@example.com", Password: "secret123"})
	require.NotNil(t, bizErr)
	assert.Contains(t, bizErr.Messages, "Invalid credentials.")
}

func TestUserService_PasswordIsHashed(t *testing.T) {
	service, db := setupUserService(t)

	_, bizErr := service.Register(registerModel("alice", "alice@example.com"))
	require.Nil(t, bizErr)

	var stored userModel.User
	require.NoError(t, db.Where("username = ?", "alice").First(&stored).Error)
	assert.NotEqual(t, "secret123", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret123")))
}

func TestUserService_GetCurrent(t *testing.T) {
	service, db := setupUserService(t)
	u := testutils.CreateTestUser(db, testutils.WithUsername("alice"))

	current, bizErr := service.GetCurrent(u.ID)
	require.Nil(t, bizErr)
	assert.Equal(t, "alice", current.Username)
	assert.Empty(t, current.Token)

	_, bizErr = service.GetCurrent("no-such-user")
	require.NotNil(t, bizErr)
	assert.Equal(t, response.NotFound, bizErr.Code)
}

func TestUserService_Update_Conflicts(t *testing.T) {
	service, db := setupUserService(t)

	alice, bizErr := service.Register(registerModel("alice", "alice@example.com"))
	require.Nil(t, bizErr)
	_, bizErr = service.Register(registerModel("bob", "bob@example.com"))
	require.Nil(t, bizErr)

	bobID := mustUserID(t, db, "bob")

	// Taking another user's username or email is a conflict, not an internal error
	taken := "alice"
	_, bizErr = service.Update(bobID, dto.UpdateUserModel{Username: &taken})
	require.NotNil(t, bizErr)
	assert.Equal(t, response.Conflict, bizErr.Code)
	assert.Contains(t, bizErr.Messages, "Username 'alice' is already taken.")

	takenEmail := "alice@example.com"
	_, bizErr = service.Update(bobID, dto.UpdateUserModel{Email: &takenEmail})
	require.NotNil(t, bizErr)
	assert.Equal(t, response.Conflict, bizErr.Code)
	assert.Contains(t, bizErr.Messages, "Email 'alice@example.com' is already registered.")

	// Re-submitting your own current username is not a conflict
	aliceID := mustUserID(t, db, "alice")
	own := alice.Username
	updated, bizErr := service.Update(aliceID, dto.UpdateUserModel{Username: &own})
	require.Nil(t, bizErr)
	assert.Equal(t, "alice", updated.Username)
}

func mustUserID(t *testing.T, db *gorm.DB, username string) string {
	t.Helper()
	var u userModel.User
	require.NoError(t, db.Where("username = ?", username).First(&u).Error)
	return u.ID
}

func TestUserService_Update_Sparse(t *testing.T) {
	service, db := setupUserService(t)
	u := testutils.CreateTestUser(db, testutils.WithUsername("alice"), testutils.WithEmail("alice@example.com"))

	bio := "I write things."
	updated, bizErr := service.Update(u.ID, dto.UpdateUserModel{Bio: &bio})
	require.Nil(t, bizErr)

	// Omitted fields keep their values
	assert.Equal(t, "alice", updated.Username)
	assert.Equal(t, "alice@example.com", updated.Email)
	assert.Equal(t, "I write things.", updated.Bio)
}

func registerModel(username, email string) dto.RegisterUserModel {
	return dto.RegisterUserModel{
		Username: username,
		Email:    email,
		Password: "secret123",
	}
}
