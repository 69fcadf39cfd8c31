package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"taskhive.com/taskhive/internal/auth"
	dto "taskhive.com/taskhive/internal/data_models"
	apperrors "taskhive.com/taskhive/internal/errors"
	"taskhive.com/taskhive/internal/mailer"
	model "taskhive.com/taskhive/internal/models"
	repository "taskhive.com/taskhive/internal/repositories"
)

type AuthService struct {
	users     *repository.UserRepository
	tokens    repository.TokenStore
	notifier  mailer.Notifier
	jwtSecret string
}

func NewAuthService(
	users *repository.UserRepository,
	tokens repository.TokenStore,
	notifier mailer.Notifier,
	jwtSecret string,
) *AuthService {
	return &AuthService{
		users:     users,
		tokens:    tokens,
		notifier:  notifier,
		jwtSecret: jwtSecret,
	}
}

// Register creates an unconfirmed account and mails a one-time
// confirmation code. Mail delivery is best-effort and never fails the
// registration.
func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest) error {
	if _, err := s.users.FindByEmail(ctx, req.Email); err == nil {
		return apperrors.ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return err
	}

	user, err := s.users.Create(ctx, req.Name, req.Email, hashed)
	if err != nil {
		return err
	}

	return s.issueConfirmationCode(ctx, user)
}

// ConfirmAccount consumes the one-time code: a second confirmation with
// the same code fails. Expired codes vanish from the store on their own.
func (s *AuthService) ConfirmAccount(ctx context.Context, code string) error {
	userID, err := s.tokens.Consume(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrTokenNotFound) {
			return apperrors.ErrInvalidToken
		}
		return err
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	user.Confirmed = true
	return s.users.Update(ctx, user)
}

// Login issues a signed session token. An unconfirmed account gets a fresh
// confirmation code mailed and the login is rejected.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperrors.ErrUserNotFound
		}
		return "", err
	}

	if !user.Confirmed {
		if err := s.issueConfirmationCode(ctx, user); err != nil {
			return "", err
		}
		return "", apperrors.ErrAccountNotConfirmed
	}

	if !auth.CheckPassword(password, user.Password) {
		return "", apperrors.ErrInvalidCredentials
	}

	return auth.GenerateJWT(s.jwtSecret, user.ID)
}

func (s *AuthService) RequestConfirmationCode(ctx context.Context, email string) error {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrEmailNotRegistered
		}
		return err
	}

	if user.Confirmed {
		return apperrors.ErrAccountConfirmed
	}

	return s.issueConfirmationCode(ctx, user)
}

func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrEmailNotRegistered
		}
		return err
	}

	code, err := auth.GenerateCode()
	if err != nil {
		return err
	}

	if err := s.tokens.Save(ctx, code, user.ID); err != nil {
		return err
	}

	_ = s.notifier.SendPasswordReset(ctx, user.Email, user.Name, code)
	return nil
}

// ValidateResetCode checks a code without consuming it, so the client can
// show the new-password form before the code is spent.
func (s *AuthService) ValidateResetCode(ctx context.Context, code string) error {
	if _, err := s.tokens.Peek(ctx, code); err != nil {
		if errors.Is(err, repository.ErrTokenNotFound) {
			return apperrors.ErrInvalidToken
		}
		return err
	}
	return nil
}

func (s *AuthService) ResetPassword(ctx context.Context, code, newPassword string) error {
	userID, err := s.tokens.Consume(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrTokenNotFound) {
			return apperrors.ErrInvalidToken
		}
		return err
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	hashed, err := auth.HashPassword(newPassword)
	if err != nil {
		return err
	}

	user.Password = hashed
	return s.users.Update(ctx, user)
}

func (s *AuthService) UpdateProfile(ctx context.Context, actor *model.User, name, email string) error {
	if email != actor.Email {
		existing, err := s.users.FindByEmail(ctx, email)
		if err == nil && existing.ID != actor.ID {
			return apperrors.ErrEmailTaken
		}
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
	}

	actor.Name = name
	actor.Email = email
	return s.users.Update(ctx, actor)
}

func (s *AuthService) UpdatePassword(ctx context.Context, actor *model.User, currentPassword, newPassword string) error {
	if !auth.CheckPassword(currentPassword, actor.Password) {
		return apperrors.ErrInvalidCredentials
	}

	hashed, err := auth.HashPassword(newPassword)
	if err != nil {
		return err
	}

	actor.Password = hashed
	return s.users.Update(ctx, actor)
}

func (s *AuthService) CheckPassword(ctx context.Context, actor *model.User, password string) error {
	if !auth.CheckPassword(password, actor.Password) {
		return apperrors.ErrInvalidCredentials
	}
	return nil
}

func (s *AuthService) issueConfirmationCode(ctx context.Context, user *model.User) error {
	code, err := auth.GenerateCode()
	if err != nil {
		return err
	}

	if err := s.tokens.Save(ctx, code, user.ID); err != nil {
		return err
	}

	_ = s.notifier.SendConfirmation(ctx, user.Email, user.Name, code)
	return nil
}
