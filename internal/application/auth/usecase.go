// Package auth implementa login, emisión y validación de sesiones.
//
// El bearer token es un JWT firmado cuya vida coincide con la sesión que lo
// respalda: además de la firma, validar exige una fila viva en sessions con el
// hash SHA-256 del token. Revocar borra la fila, así el token muere aunque el
// JWT siga dentro de su TTL.
package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Pinturas-api/internal/application/authz"
	"github.com/jhoicas/Pinturas-api/internal/application/dto"
	"github.com/jhoicas/Pinturas-api/internal/domain"
	"github.com/jhoicas/Pinturas-api/internal/domain/entity"
	"github.com/jhoicas/Pinturas-api/internal/domain/repository"
	"github.com/jhoicas/Pinturas-api/pkg/jwt"
)

// Config parámetros de emisión de sesiones.
type Config struct {
	JWTSecret string
	Issuer    string
	TokenTTL  time.Duration // default 24h
}

// AuthUseCase casos de uso de autenticación: login de usuarios y de clientes
// del portal, validación y revocación de sesiones.
type AuthUseCase struct {
	users     repository.UserRepository
	customers repository.CustomerRepository
	sessions  repository.SessionRepository
	cfg       Config
	now       func() time.Time
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(users repository.UserRepository, customers repository.CustomerRepository, sessions repository.SessionRepository, cfg Config) *AuthUseCase {
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = 24 * time.Hour
	}
	return &AuthUseCase{users: users, customers: customers, sessions: sessions, cfg: cfg, now: time.Now}
}

// WithClock reemplaza el reloj (tests).
func (uc *AuthUseCase) WithClock(now func() time.Time) *AuthUseCase {
	uc.now = now
	return uc
}

// Login verifica username/password de un usuario interno y emite una sesión.
// Usuario inexistente, password incorrecto y cuenta desactivada devuelven el
// mismo ErrInvalidCredentials: no se filtra cuál fue.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Username == "" || in.Password == "" {
		return nil, domain.ErrValidation
	}
	user, err := uc.users.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive {
		return nil, domain.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}
	token, err := uc.issue(user.ID, entity.ActorUser, user.Role)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User: dto.ProfileResponse{
			ID:       user.ID,
			Username: user.Username,
			Email:    user.Email,
			FullName: user.FullName,
			Role:     user.Role,
		},
	}, nil
}

// CustomerLogin es el login del portal de clientes. Clientes sin credenciales
// configuradas fallan igual que un password incorrecto.
func (uc *AuthUseCase) CustomerLogin(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Username == "" || in.Password == "" {
		return nil, domain.ErrValidation
	}
	customer, err := uc.customers.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if customer == nil || !customer.HasPortalAccess() || customer.Status != "active" {
		return nil, domain.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(*customer.PasswordHash), []byte(in.Password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}
	token, err := uc.issue(customer.ID, entity.ActorCustomer, authz.RoleCustomer)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User: dto.ProfileResponse{
			ID:       customer.ID,
			Username: *customer.Username,
			Email:    customer.Email,
			FullName: customer.Name,
			Role:     authz.RoleCustomer,
		},
	}, nil
}

// issue genera el token firmado y persiste solo su hash con la expiración.
// El texto plano sale de aquí una única vez.
func (uc *AuthUseCase) issue(actorID, actorType, role string) (string, error) {
	token, err := jwt.Generate(uc.cfg.JWTSecret, actorID, actorType, role, uc.cfg.Issuer, uc.cfg.TokenTTL)
	if err != nil {
		return "", err
	}
	now := uc.now()
	session := &entity.Session{
		ID:        uuid.New().String(),
		ActorID:   actorID,
		ActorType: actorType,
		TokenHash: HashToken(token),
		ExpiresAt: now.Add(uc.cfg.TokenTTL),
		CreatedAt: now,
	}
	if err := uc.sessions.Create(session); err != nil {
		return "", err
	}
	return token, nil
}

// Validate resuelve el actor de un bearer token. Firma inválida, token
// expirado, sesión revocada o inexistente: todos devuelven ErrSessionInvalid.
func (uc *AuthUseCase) Validate(token string) (*authz.Actor, error) {
	actorID, actorType, role, err := jwt.Parse(uc.cfg.JWTSecret, token)
	if err != nil {
		return nil, domain.ErrSessionInvalid
	}
	session, err := uc.sessions.FindByTokenHash(HashToken(token), uc.now())
	if err != nil {
		return nil, err
	}
	if session == nil || session.ActorID != actorID {
		return nil, domain.ErrSessionInvalid
	}
	return &authz.Actor{ID: actorID, Type: actorType, Role: role}, nil
}

// Logout revoca la sesión del token. Idempotente: revocar dos veces no es error.
func (uc *AuthUseCase) Logout(token string) error {
	return uc.sessions.DeleteByTokenHash(HashToken(token))
}

// LogoutAll revoca todas las sesiones del actor (todos los dispositivos).
func (uc *AuthUseCase) LogoutAll(actor authz.Actor) error {
	return uc.sessions.DeleteByActor(actor.ID, actor.Type)
}

// Me devuelve el perfil del actor autenticado.
func (uc *AuthUseCase) Me(actor authz.Actor) (*dto.ProfileResponse, error) {
	switch actor.Type {
	case entity.ActorCustomer:
		customer, err := uc.customers.GetByID(actor.ID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, domain.ErrNotFound
		}
		username := ""
		if customer.Username != nil {
			username = *customer.Username
		}
		return &dto.ProfileResponse{
			ID:       customer.ID,
			Username: username,
			Email:    customer.Email,
			FullName: customer.Name,
			Role:     authz.RoleCustomer,
		}, nil
	default:
		user, err := uc.users.GetByID(actor.ID)
		if err != nil {
			return nil, err
		}
		if user == nil {
			return nil, domain.ErrNotFound
		}
		return &dto.ProfileResponse{
			ID:       user.ID,
			Username: user.Username,
			Email:    user.Email,
			FullName: user.FullName,
			Role:     user.Role,
		}, nil
	}
}

// HashToken devuelve el SHA-256 hex del token; es lo único que se persiste.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
