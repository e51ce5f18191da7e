package auth

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Despensa-api/internal/application/dto"
	"github.com/jhoicas/Despensa-api/internal/domain"
	"github.com/jhoicas/Despensa-api/internal/domain/entity"
	"github.com/jhoicas/Despensa-api/internal/domain/repository"
	"github.com/jhoicas/Despensa-api/pkg/jwt"
)

// Config configuración de autenticación.
type Config struct {
	JWTSecret     string // vacío = no se emiten ni aceptan tokens
	JWTIssuer     string
	JWTExpMinutes int
	BcryptCost    int // 0 = bcrypt.DefaultCost
}

// Principal usuario autenticado en una petición.
type Principal struct {
	Username string
	Roles    []string
}

// HasRole indica si el usuario tiene el rol.
func (p Principal) HasRole(role string) bool {
	return slices.Contains(p.Roles, role)
}

// AuthUseCase casos de uso de autenticación: credenciales básicas, tokens y siembra de usuarios.
type AuthUseCase struct {
	store repository.Store
	cfg   Config
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(store repository.Store, cfg Config) *AuthUseCase {
	if cfg.BcryptCost == 0 {
		cfg.BcryptCost = bcrypt.DefaultCost
	}
	return &AuthUseCase{store: store, cfg: cfg}
}

// TokensEnabled indica si hay secreto JWT configurado.
func (uc *AuthUseCase) TokensEnabled() bool {
	return uc.cfg.JWTSecret != ""
}

// Authenticate verifica usuario/contraseña con bcrypt. domain.ErrUnauthorized si no coinciden.
func (uc *AuthUseCase) Authenticate(ctx context.Context, username, password string) (*Principal, error) {
	user, err := uc.store.Repos().Users.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("obtener usuario: %w", err)
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	return &Principal{Username: user.Username, Roles: user.RoleList()}, nil
}

// ParseToken valida un bearer token. domain.ErrUnauthorized si es inválido o no hay secreto.
func (uc *AuthUseCase) ParseToken(token string) (*Principal, error) {
	if !uc.TokensEnabled() {
		return nil, domain.ErrUnauthorized
	}
	claims, err := jwt.Parse(uc.cfg.JWTSecret, uc.cfg.JWTIssuer, token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}
	return &Principal{Username: claims.Username, Roles: claims.Roles}, nil
}

// IssueToken emite un JWT para un usuario ya autenticado.
func (uc *AuthUseCase) IssueToken(p Principal) (*dto.TokenResponse, error) {
	token, exp, err := jwt.Generate(uc.cfg.JWTSecret, p.Username, p.Roles, uc.cfg.JWTIssuer, uc.cfg.JWTExpMinutes)
	if errors.Is(err, jwt.ErrEmptySecret) {
		return nil, fmt.Errorf("%w: tokens deshabilitados", domain.ErrForbidden)
	}
	if err != nil {
		return nil, fmt.Errorf("generar token: %w", err)
	}
	return &dto.TokenResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresAt: exp,
		Username:  p.Username,
		Roles:     p.Roles,
	}, nil
}

// SeedUsers reemplaza todos los usuarios por "admin" (roles admin,user) y "user" (rol user).
// Se invoca una vez al arrancar.
func (uc *AuthUseCase) SeedUsers(ctx context.Context, adminPassword, userPassword string) error {
	if adminPassword == "" || userPassword == "" {
		return fmt.Errorf("%w: contraseñas de usuarios sembrados vacías", domain.ErrInvalidInput)
	}
	adminHash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), uc.cfg.BcryptCost)
	if err != nil {
		return fmt.Errorf("hash admin: %w", err)
	}
	userHash, err := bcrypt.GenerateFromPassword([]byte(userPassword), uc.cfg.BcryptCost)
	if err != nil {
		return fmt.Errorf("hash user: %w", err)
	}
	return uc.store.Run(ctx, func(r repository.Repos) error {
		if err := r.Users.DeleteAll(ctx); err != nil {
			return fmt.Errorf("borrar usuarios: %w", err)
		}
		seed := []*entity.User{
			{Username: "admin", PasswordHash: string(adminHash), Roles: entity.RoleAdmin + "," + entity.RoleUser},
			{Username: "user", PasswordHash: string(userHash), Roles: entity.RoleUser},
		}
		for _, u := range seed {
			if err := r.Users.Create(ctx, u); err != nil {
				return fmt.Errorf("crear usuario %s: %w", u.Username, err)
			}
		}
		return nil
	})
}
