package auth

import (
	"crypto/subtle"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Cartera-api/internal/application/dto"
	"github.com/jhoicas/Cartera-api/internal/domain"
	"github.com/jhoicas/Cartera-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// Owner credenciales del único usuario (dueño del negocio).
type Owner struct {
	Email        string
	PasswordHash string // bcrypt
}

// AuthUseCase login del dueño contra las credenciales de configuración.
type AuthUseCase struct {
	owner  Owner
	jwtCfg JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(owner Owner, jwtCfg JWTConfig) *AuthUseCase {
	owner.Email = strings.ToLower(strings.TrimSpace(owner.Email))
	return &AuthUseCase{owner: owner, jwtCfg: jwtCfg}
}

// Login verifica email/password y genera el JWT. Devuelve domain.ErrUnauthorized
// ante cualquier credencial incorrecta o si no hay dueño configurado.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if uc.owner.Email == "" || uc.owner.PasswordHash == "" {
		return nil, domain.ErrUnauthorized
	}
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if subtle.ConstantTimeCompare([]byte(email), []byte(uc.owner.Email)) != 1 {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(uc.owner.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, uc.owner.Email, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:     token,
		ExpiresIn: uc.jwtCfg.ExpMinutes * 60,
	}, nil
}
