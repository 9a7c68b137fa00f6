package services

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"booknest/apperr"
	"booknest/models"
	"booknest/store"
	"booknest/utils"
)

type UserService struct {
	users  store.UserStore
	mailer *utils.Mailer
	log    *zap.Logger
}

func NewUserService(users store.UserStore, mailer *utils.Mailer, log *zap.Logger) *UserService {
	return &UserService{users: users, mailer: mailer, log: log}
}

func (s *UserService) Register(ctx context.Context, input *models.RegisterUserInput) (*models.User, error) {
	taken, err := s.users.ExistsByUsername(ctx, input.Username)
	if err != nil {
		return nil, apperr.Internal("failed to check username", err)
	}
	if taken {
		return nil, apperr.Conflict("Username already exists")
	}

	taken, err = s.users.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, apperr.Internal("failed to check email", err)
	}
	if taken {
		return nil, apperr.Conflict("Email already exists")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Internal("failed to hash password", err)
	}

	user := &models.User{
		Username:    input.Username,
		Password:    string(hashed),
		Email:       input.Email,
		FullName:    input.FullName,
		PhoneNumber: input.PhoneNumber,
		Address:     input.Address,
		Role:        models.RoleUser,
		Active:      true,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, apperr.Internal("failed to create user", err)
	}

	s.log.Info("user registered", zap.String("username", user.Username), zap.Uint("id", user.ID))
	s.mailer.SendWelcome(user.Email, user.FullName)

	return user, nil
}

// Login authenticates against active accounts only; a deactivated user gets
// the same answer as a wrong password.
func (s *UserService) Login(ctx context.Context, input *models.LoginUserInput) (*models.User, error) {
	user, err := s.users.FindActiveByUsername(ctx, input.Username)
	if err == store.ErrNotFound {
		return nil, apperr.Unauthorized("Invalid username or password")
	}
	if err != nil {
		return nil, apperr.Internal("failed to look up user", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return nil, apperr.Unauthorized("Invalid username or password")
	}

	return user, nil
}

func (s *UserService) GetByID(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err == store.ErrNotFound {
		return nil, apperr.NotFound("User not found with id: %d", id)
	}
	if err != nil {
		return nil, apperr.Internal("failed to look up user", err)
	}
	return user, nil
}

func (s *UserService) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err == store.ErrNotFound {
		return nil, apperr.NotFound("User not found with username: %s", username)
	}
	if err != nil {
		return nil, apperr.Internal("failed to look up user", err)
	}
	return user, nil
}

func (s *UserService) GetAll(ctx context.Context) ([]models.User, error) {
	users, err := s.users.FindAll(ctx)
	if err != nil {
		return nil, apperr.Internal("failed to list users", err)
	}
	return users, nil
}

// UpdateProfile updates everything except the username, which is immutable.
func (s *UserService) UpdateProfile(ctx context.Context, id uint, input *models.UpdateUserInput) (*models.User, error) {
	user, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if user.Email != input.Email {
		taken, err := s.users.ExistsByEmail(ctx, input.Email)
		if err != nil {
			return nil, apperr.Internal("failed to check email", err)
		}
		if taken {
			return nil, apperr.Conflict("Email already exists")
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Internal("failed to hash password", err)
	}

	user.Password = string(hashed)
	user.Email = input.Email
	user.FullName = input.FullName
	user.PhoneNumber = input.PhoneNumber
	user.Address = input.Address

	if err := s.users.Save(ctx, user); err != nil {
		return nil, apperr.Internal("failed to update user", err)
	}
	return user, nil
}

// Deactivate soft-deletes the account by flipping the active flag.
func (s *UserService) Deactivate(ctx context.Context, id uint) error {
	user, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	user.Active = false
	if err := s.users.Save(ctx, user); err != nil {
		return apperr.Internal("failed to deactivate user", err)
	}
	s.log.Info("user deactivated", zap.Uint("id", id))
	return nil
}

// Delete removes the row permanently.
func (s *UserService) Delete(ctx context.Context, id uint) error {
	user, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.users.Delete(ctx, user); err != nil {
		return apperr.Internal("failed to delete user", err)
	}
	s.log.Info("user permanently deleted", zap.Uint("id", id))
	return nil
}

func (s *UserService) UsernameExists(ctx context.Context, username string) (bool, error) {
	exists, err := s.users.ExistsByUsername(ctx, username)
	if err != nil {
		return false, apperr.Internal("failed to check username", err)
	}
	return exists, nil
}

func (s *UserService) EmailExists(ctx context.Context, email string) (bool, error) {
	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return false, apperr.Internal("failed to check email", err)
	}
	return exists, nil
}
