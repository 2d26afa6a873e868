package commands

import (
	"context"

	reqdto "webshopper/internal/handler/dto/request"
	"webshopper/internal/infra"
	"webshopper/internal/pkg/errs"
	"webshopper/internal/pkg/jwt"
	"webshopper/internal/pkg/password"
	"webshopper/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrEmailTaken         = errs.New("email already registered")
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrTokenGeneration    = errs.New("token generation failed")
	ErrUserNotFound       = errs.New("user not found")
)

type LoginResult struct {
	User  *queries.UserView
	Token string
}

type AuthCommands interface {
	Register(ctx context.Context, req reqdto.RegisterRequest) (uuid.UUID, error)
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
	UpdateLocation(ctx context.Context, userID uuid.UUID, req reqdto.UpdateLocationRequest) error
}

type authCommandsImpl struct {
	users      UserRepo
	readStore  queries.UserReadStore
	jwtService *jwt.Service
}

func NewAuthCommands(users UserRepo, readStore queries.UserReadStore, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		users:      users,
		readStore:  readStore,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Register(ctx context.Context, req reqdto.RegisterRequest) (uuid.UUID, error) {
	hash, err := password.HashPassword(req.Password)
	if err != nil {
		return uuid.Nil, errs.Wrap(err, "failed to hash password")
	}

	id, err := a.users.Create(ctx, req.Email, hash)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, errs.Mark(err, ErrEmailTaken)
		}
		return uuid.Nil, err
	}
	return id, nil
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	user, hash, err := a.readStore.FindByEmail(ctx, req.Email)
	if err != nil {
		// Same answer as a password mismatch to prevent account enumeration.
		return nil, ErrInvalidCredentials
	}

	if err := password.ComparePassword(hash, req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := a.jwtService.GenerateToken(user.ID)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{User: user, Token: token}, nil
}

func (a *authCommandsImpl) UpdateLocation(ctx context.Context, userID uuid.UUID, req reqdto.UpdateLocationRequest) error {
	if err := a.users.UpdateLocation(ctx, userID, req.LocationID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrUserNotFound)
		}
		return err
	}
	return nil
}
