package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/SscSPs/checkin_ledger/internal/apperrors"
	"github.com/SscSPs/checkin_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/checkin_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/checkin_ledger/internal/core/ports/services"
	"github.com/SscSPs/checkin_ledger/internal/core/services"
	"github.com/SscSPs/checkin_ledger/internal/dto"
	"github.com/SscSPs/checkin_ledger/internal/utils"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

var _ portsrepo.UserRepositoryFacade = (*MockUserRepository)(nil)

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

type UserServiceTestSuite struct {
	suite.Suite
	mockRepo    *MockUserRepository
	userService portssvc.UserSvcFacade
	ctx         context.Context
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockUserRepository)
	suite.userService = services.NewUserService(suite.mockRepo)
	suite.ctx = context.Background()
}

func (suite *UserServiceTestSuite) TestCreateUser_Success() {
	req := dto.CreateUserRequest{Name: "Alice", Username: "  Alice ", Password: "long-enough-password"}
	suite.mockRepo.On("FindUserByUsername", suite.ctx, "alice").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveUser", suite.ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Username == "alice" && u.UserID != "" && u.CreatedBy == u.UserID &&
			u.LastUpdatedBy == u.UserID && u.CreatedAt.Equal(u.LastUpdatedAt) &&
			utils.CheckPasswordHash("long-enough-password", u.PasswordHash)
	})).Return(nil).Once()

	user, err := suite.userService.CreateUser(suite.ctx, req)

	suite.Require().NoError(err)
	suite.Equal("alice", user.Username)
	suite.NotEqual("long-enough-password", user.PasswordHash)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateUser_Duplicate() {
	suite.mockRepo.On("FindUserByUsername", suite.ctx, "alice").Return(&domain.User{UserID: "existing"}, nil).Once()

	_, err := suite.userService.CreateUser(suite.ctx, dto.CreateUserRequest{Name: "Alice", Username: "alice", Password: "long-enough-password"})

	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestCreateUser_Validation() {
	_, err := suite.userService.CreateUser(suite.ctx, dto.CreateUserRequest{Name: "Alice", Username: "al", Password: "short"})

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindUserByUsername", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestCreateUser_LookupFailure() {
	dbErr := errors.New("db down")
	suite.mockRepo.On("FindUserByUsername", suite.ctx, "alice").Return(nil, dbErr).Once()

	_, err := suite.userService.CreateUser(suite.ctx, dto.CreateUserRequest{Name: "Alice", Username: "alice", Password: "long-enough-password"})

	suite.ErrorIs(err, dbErr)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser() {
	hash, err := utils.HashPassword("correct-horse")
	suite.Require().NoError(err)
	stored := &domain.User{UserID: "user-1", Username: "alice", PasswordHash: hash}

	testCases := []struct {
		name     string
		username string
		password string
		setup    func()
		wantErr  error
	}{
		{
			name:     "valid credentials",
			username: "Alice",
			password: "correct-horse",
			setup: func() {
				suite.mockRepo.On("FindUserByUsername", suite.ctx, "alice").Return(stored, nil).Once()
			},
		},
		{
			name:     "wrong password",
			username: "alice",
			password: "battery-staple",
			setup: func() {
				suite.mockRepo.On("FindUserByUsername", suite.ctx, "alice").Return(stored, nil).Once()
			},
			wantErr: apperrors.ErrUnauthorized,
		},
		{
			name:     "unknown user",
			username: "mallory",
			password: "whatever",
			setup: func() {
				suite.mockRepo.On("FindUserByUsername", suite.ctx, "mallory").Return(nil, apperrors.ErrNotFound).Once()
			},
			wantErr: apperrors.ErrUnauthorized,
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			tc.setup()
			user, err := suite.userService.AuthenticateUser(suite.ctx, tc.username, tc.password)
			if tc.wantErr != nil {
				suite.ErrorIs(err, tc.wantErr)
				suite.Nil(user)
				return
			}
			suite.Require().NoError(err)
			suite.Equal("user-1", user.UserID)
		})
	}
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestGetUserByID_NotFound() {
	suite.mockRepo.On("FindUserByID", suite.ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.userService.GetUserByID(suite.ctx, "missing")

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestUserService(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
