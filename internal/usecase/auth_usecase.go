package usecase

import (
	"context"
	"strconv"

	"go-jobboard-portal/internal/domain"
	"go-jobboard-portal/pkg/apperror"
	"go-jobboard-portal/pkg/logger"
	"go-jobboard-portal/pkg/validation"

	"github.com/go-playground/validator/v10"
)

const (
	MsgLoginSuccess     = "Login berhasil"
	MsgInvalidLogin     = "Email atau password salah"
	MsgLoginFailed      = "Terjadi kesalahan saat login"
	MsgFieldsRequired   = "Semua field harus diisi"
	MsgPasswordMismatch = "Password dan konfirmasi password tidak cocok"
	MsgPasswordTooShort = "Password minimal 6 karakter"
	MsgEmailTaken       = "Email sudah terdaftar"
	MsgRegisterSuccess  = "Pendaftaran berhasil. Silakan login."
	MsgRegisterFailed   = "Terjadi kesalahan saat mendaftar"
)

// AuthConfig holds the admin credential pair and the token prefix.
type AuthConfig struct {
	AdminEmail    string
	AdminPassword string
	TokenPrefix   string
}

type authUsecase struct {
	userRepo domain.UserRepository
	cfg      AuthConfig
	validate *validator.Validate
}

func NewAuthUsecase(userRepo domain.UserRepository, cfg AuthConfig, validate *validator.Validate) domain.AuthUsecase {
	return &authUsecase{userRepo: userRepo, cfg: cfg, validate: validate}
}

// ClassifyRole is the only place that decides who is an admin: the submitted
// credentials must equal the configured pair.
func (u *authUsecase) ClassifyRole(creds domain.Credentials) domain.Role {
	if creds.Email == u.cfg.AdminEmail && creds.Password == u.cfg.AdminPassword {
		return domain.RoleAdmin
	}
	return domain.RoleUser
}

func (u *authUsecase) Login(ctx context.Context, creds domain.Credentials) (*domain.LoginResult, error) {
	users, err := u.userRepo.List(ctx, nil)
	if err != nil {
		logger.Log.Error("Failed to load users for login", "error", err)
		return nil, apperror.BadGateway(MsgLoginFailed, err)
	}

	for _, user := range users {
		if user.Email != creds.Email || user.Password != creds.Password {
			continue
		}
		return &domain.LoginResult{
			Token:   u.cfg.TokenPrefix + strconv.FormatInt(user.ID, 10),
			User:    user.Summary(),
			Role:    u.ClassifyRole(creds),
			Message: MsgLoginSuccess,
		}, nil
	}

	return nil, apperror.Unauthorized(MsgInvalidLogin)
}

// Register checks the form before touching the store: missing fields first,
// then the confirmation, then the password length.
func (u *authUsecase) Register(ctx context.Context, req *domain.RegisterRequest) (string, error) {
	if err := u.validate.Struct(req); err != nil {
		switch {
		case validation.HasTag(err, "required"):
			return "", apperror.BadRequest(MsgFieldsRequired)
		case validation.HasTag(err, "eqfield"):
			return "", apperror.BadRequest(MsgPasswordMismatch)
		case validation.HasTag(err, "min"):
			return "", apperror.BadRequest(MsgPasswordTooShort)
		default:
			return "", apperror.BadRequest(validation.FormatValidationErrors(err)[0])
		}
	}

	users, err := u.userRepo.List(ctx, nil)
	if err != nil {
		logger.Log.Error("Failed to load users for registration", "error", err)
		return "", apperror.BadGateway(MsgRegisterFailed, err)
	}

	var maxID int64
	for _, user := range users {
		if user.Email == req.Email {
			return "", apperror.Conflict(MsgEmailTaken)
		}
		if user.ID > maxID {
			maxID = user.ID
		}
	}

	newUser := &domain.User{
		ID:       maxID + 1,
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	}
	if _, err := u.userRepo.Create(ctx, newUser); err != nil {
		logger.Log.Error("Failed to create user", "error", err)
		return "", apperror.BadGateway(MsgRegisterFailed, err)
	}

	return MsgRegisterSuccess, nil
}
