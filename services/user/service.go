package user

import (
	"context"
	"fmt"
	"time"

	"eventease/config"
	userRepo "eventease/database/repository/user"
	"eventease/models"
	"eventease/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// DefaultUserService is the production UserService implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

func tokenTTL() time.Duration {
	hours := config.AppConfig.TokenTTLHours
	if hours <= 0 {
		hours = 72
	}
	return time.Duration(hours) * time.Hour
}

// Register creates an account and returns a signed token.
func (s *DefaultUserService) Register(input RegistrationInput) (*models.AuthResponse, error) {
	existing, err := s.Repo.GetByEmail(input.Email)
	if err != nil {
		utils.GetLogger().Error("Register: failed to check for existing user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, ErrDuplicateEmail
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("Register: failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	userObj := models.User{
		ID:           uuid.New().String(),
		Name:         input.Name,
		Email:        input.Email,
		PhoneNumber:  input.PhoneNumber,
		PasswordHash: string(hashedPassword),
		UserType:     "user",
	}

	if err := s.Repo.Create(&userObj); err != nil {
		utils.GetLogger().Error("Register: failed to create user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	return s.issueToken(&userObj)
}

// Authenticate verifies credentials and returns a signed token.
func (s *DefaultUserService) Authenticate(email, password string) (*models.AuthResponse, error) {
	userRec, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("Authenticate: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if userRec == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userRec.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issueToken(userRec)
}

func (s *DefaultUserService) issueToken(userObj *models.User) (*models.AuthResponse, error) {
	token, err := utils.GenerateToken(userObj.ID, userObj.Email, userObj.UserType, tokenTTL())
	if err != nil {
		utils.GetLogger().Error("failed to generate auth token", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	// Cache the token hash so the auth middleware can short-circuit lookups.
	authCache := utils.GetAuthCacheClient()
	if authCache != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		cacheKey := utils.AuthCachePrefix + userObj.ID
		_ = authCache.Set(ctx, cacheKey, utils.HashToken(token), utils.AuthCacheTTL).Err()
	}

	return &models.AuthResponse{
		ID:       userObj.ID,
		Name:     userObj.Name,
		Email:    userObj.Email,
		UserType: userObj.UserType,
		Token:    token,
	}, nil
}

// GetProfile returns a user's profile.
func (s *DefaultUserService) GetProfile(userID string) (*models.User, error) {
	userRec, err := s.Repo.GetByID(userID)
	if err != nil {
		utils.GetLogger().Error("GetProfile: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}
	if userRec == nil {
		return nil, ErrUserNotFound
	}
	return userRec, nil
}

// UpdateProfile applies the patch to the user's profile. A deviceToken is
// appended to the registered tokens if not already present.
func (s *DefaultUserService) UpdateProfile(userID string, update ProfileUpdate) (*models.User, error) {
	userRec, err := s.GetProfile(userID)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		userRec.Name = *update.Name
	}
	if update.PhoneNumber != nil {
		userRec.PhoneNumber = *update.PhoneNumber
	}
	if update.DeviceToken != nil && *update.DeviceToken != "" {
		known := false
		for _, t := range userRec.DeviceTokens {
			if t == *update.DeviceToken {
				known = true
				break
			}
		}
		if !known {
			userRec.DeviceTokens = append(userRec.DeviceTokens, *update.DeviceToken)
		}
	}

	if err := s.Repo.Update(userRec); err != nil {
		utils.GetLogger().Error("UpdateProfile: failed to update user", zap.Error(err))
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return userRec, nil
}
