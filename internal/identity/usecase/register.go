package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/shandysiswandi/venture/internal/identity/entity"
	"github.com/shandysiswandi/venture/internal/pkg/goerror"
)

type RegisterInput struct {
	Name     string `validate:"required,min=3,max=30,alphaspace"`
	Password string `validate:"required,password"`
}

type RegisterOutput struct {
	Token   string
	Created bool
}

// Register creates the account for the email proven by the verification token.
// An existing account with the same password signs in instead.
func (s *Usecase) Register(ctx context.Context, in RegisterInput) (*RegisterOutput, error) {
	ctx, span := s.startSpan(ctx, "Register")
	defer span.End()

	clm, err := s.verifiedEmail(ctx)
	if err != nil {
		return nil, err
	}

	in.Name = strings.TrimSpace(in.Name)
	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	var out *RegisterOutput
	err = s.consumeVerification(ctx, clm, func(ctx context.Context) error {
		var errRun error
		out, errRun = s.register(ctx, clm.UserEmail, in)
		return errRun
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (s *Usecase) register(ctx context.Context, email string, in RegisterInput) (*RegisterOutput, error) {
	user, err := s.repoDB.GetUserByEmail(ctx, email)
	if err == nil {
		if !s.bcrypt.Verify(user.Password, in.Password) {
			slog.WarnContext(ctx, "email already registered with another password", "user_id", user.ID)
			return nil, goerror.NewBusiness("Email already exists", goerror.CodeConflict)
		}

		token, err := s.jwt.Generate(user.ID, user.Email)
		if err != nil {
			slog.ErrorContext(ctx, "failed to generate session token", "user_id", user.ID, "error", err)
			return nil, goerror.NewServer(err)
		}
		return &RegisterOutput{Token: token}, nil
	}
	if !errors.Is(err, goerror.ErrNotFound) {
		slog.ErrorContext(ctx, "failed to repo get user by email", "email", email, "error", err)
		return nil, goerror.NewServer(err)
	}

	hashed, err := s.bcrypt.Hash(in.Password)
	if err != nil {
		slog.ErrorContext(ctx, "failed to hash password", "error", err)
		return nil, goerror.NewServer(err)
	}

	user, err = s.repoDB.CreateUser(ctx, entity.NewUser{
		ID:       s.uid.Generate(),
		Name:     in.Name,
		Email:    email,
		Password: string(hashed),
	})
	if errors.Is(err, goerror.ErrConflict) {
		slog.WarnContext(ctx, "email registered concurrently", "email", email)
		return nil, goerror.NewBusiness("Email already exists", goerror.CodeConflict)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo create user", "email", email, "error", err)
		return nil, goerror.NewServer(err)
	}

	token, err := s.jwt.Generate(user.ID, user.Email)
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate session token", "user_id", user.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	if err := s.repoMessaging.PublishUserRegistered(ctx, UserRegisteredEvent{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to publish user registered", "user_id", user.ID, "error", err)
	}

	return &RegisterOutput{Token: token, Created: true}, nil
}
