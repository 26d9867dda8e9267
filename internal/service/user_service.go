package service

import (
	"context"
	"log/slog"

	"userapi/internal/middleware"
	"userapi/internal/models"
	"userapi/internal/observability"
	"userapi/internal/repository"
	"userapi/internal/validation"
)

// UserService orchestrates validation and persistence for user records.
type UserService struct {
	userRepo repository.UserRepository
}

// CreateUserInput carries the fields accepted when creating a user.
type CreateUserInput struct {
	Username string
	Email    string
	FullName string
}

// UpdateUserInput carries the optional fields of a partial update. Nil means
// the field was not supplied and must be left unchanged.
type UpdateUserInput struct {
	Username *string
	Email    *string
	FullName *string
}

// Empty reports whether the update carries no fields at all.
func (in UpdateUserInput) Empty() bool {
	return in.Username == nil && in.Email == nil && in.FullName == nil
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// CreateUser validates the input and inserts a new user, returning its
// assigned ID.
func (s *UserService) CreateUser(ctx context.Context, in CreateUserInput) (uint, error) {
	if err := validation.NewUser(in.Username, in.Email); err != nil {
		observability.RecordUserOperation("create", err)
		return 0, err
	}

	user := &models.User{
		Username: in.Username,
		Email:    in.Email,
		FullName: in.FullName,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		observability.RecordUserOperation("create", err)
		return 0, err
	}

	observability.RecordUserOperation("create", nil)
	middleware.Logger.InfoContext(ctx, "Created user",
		slog.String("username", user.Username),
		slog.Uint64("user_id", uint64(user.ID)),
	)
	return user.ID, nil
}

func (s *UserService) GetUser(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.userRepo.List(ctx)
}

// UpdateUser overwrites only the supplied fields of an existing user.
func (s *UserService) UpdateUser(ctx context.Context, id uint, in UpdateUserInput) error {
	if in.Empty() {
		return models.NewValidationError("No data provided")
	}

	fields := map[string]any{}
	if in.Username != nil {
		if err := validation.Username(*in.Username); err != nil {
			return err
		}
		fields["username"] = *in.Username
	}
	if in.Email != nil {
		if err := validation.Email(*in.Email); err != nil {
			return err
		}
		fields["email"] = *in.Email
	}
	if in.FullName != nil {
		fields["full_name"] = *in.FullName
	}

	// Existence check first so a missing row reports not-found rather than
	// a zero-row update.
	if _, err := s.userRepo.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.userRepo.Update(ctx, id, fields); err != nil {
		observability.RecordUserOperation("update", err)
		return err
	}

	observability.RecordUserOperation("update", nil)
	middleware.Logger.InfoContext(ctx, "Updated user", slog.Uint64("user_id", uint64(id)))
	return nil
}

// DeleteUser removes a user permanently.
func (s *UserService) DeleteUser(ctx context.Context, id uint) error {
	if err := s.userRepo.Delete(ctx, id); err != nil {
		observability.RecordUserOperation("delete", err)
		return err
	}

	observability.RecordUserOperation("delete", nil)
	middleware.Logger.InfoContext(ctx, "Deleted user", slog.Uint64("user_id", uint64(id)))
	return nil
}
