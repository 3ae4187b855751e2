package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dcastano/inventario-taller/internal/application/dto"
	"github.com/dcastano/inventario-taller/internal/domain"
	"github.com/dcastano/inventario-taller/internal/domain/entity"
	"github.com/dcastano/inventario-taller/internal/domain/repository"
	"github.com/dcastano/inventario-taller/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// Usuarios por defecto que siembra SeedDefaultUsers, uno por rol.
var defaultUsers = []struct {
	Usuario string
	Rol     string
}{
	{"taller", entity.RoleTaller},
	{"maquila", entity.RoleMaquila},
	{"admin", entity.RoleAdmin},
}

// AuthUseCase casos de uso de autenticación: login y siembra inicial de usuarios.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Login verifica usuario/password contra el hash bcrypt, genera JWT con el rol
// y retorna token + usuario.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByUsuario(in.Usuario)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Usuario, user.Rol, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

// SeedDefaultUsers crea los usuarios taller/maquila/admin con la contraseña
// inicial dada. No-op si ya existe algún usuario (idempotente).
// Devuelve cuántos usuarios creó.
func (uc *AuthUseCase) SeedDefaultUsers(initialPassword string) (int, error) {
	count, err := uc.userRepo.Count()
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(initialPassword), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}
	created := 0
	for _, du := range defaultUsers {
		user := &entity.User{
			ID:           uuid.New().String(),
			Usuario:      du.Usuario,
			PasswordHash: string(hash),
			Rol:          du.Rol,
			CreatedAt:    time.Now(),
		}
		if err := uc.userRepo.Create(user); err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Usuario:   u.Usuario,
		Rol:       u.Rol,
		CreatedAt: u.CreatedAt,
	}
}
