package usecase

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"catalog_service/internal/domain"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// TokenKeySuffix is appended to the session flag key to name the slot entry
// holding the active bearer token.
const TokenKeySuffix = "Token"

// CredentialPolicy decides whether an email/password pair may sign in.
type CredentialPolicy interface {
	Check(email, password string) bool
}

// BcryptPolicy accepts exactly one configured account. The password is kept
// only as a bcrypt hash.
type BcryptPolicy struct {
	email string
	hash  []byte
}

// NewBcryptPolicy hashes password with the given bcrypt cost; a cost outside
// bcrypt's range falls back to bcrypt.DefaultCost.
func NewBcryptPolicy(email, password string, cost int) (*BcryptPolicy, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return nil, errors.New("admin email and password must be configured")
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash admin password: %w", err)
	}
	return &BcryptPolicy{email: normalizeEmail(email), hash: hash}, nil
}

func (p *BcryptPolicy) Check(email, password string) bool {
	if normalizeEmail(email) != p.email || password == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword(p.hash, []byte(password)) == nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// AuthUseCase manages the single admin session persisted in the slot.
type AuthUseCase interface {
	Login(ctx context.Context, email, password string) (token string, ok bool, err error)
	Logout(ctx context.Context) error
	IsAuthenticated(ctx context.Context, token string) bool
}

type authUseCase struct {
	policy   CredentialPolicy
	slot     domain.Slot
	flagKey  string
	tokenKey string
	log      *logrus.Logger
}

// NewAuthUseCase stores the session under flagKey ("true" or absent) and
// flagKey+TokenKeySuffix.
func NewAuthUseCase(policy CredentialPolicy, slot domain.Slot, flagKey string, logger *logrus.Logger) AuthUseCase {
	return &authUseCase{
		policy:   policy,
		slot:     slot,
		flagKey:  flagKey,
		tokenKey: flagKey + TokenKeySuffix,
		log:      logger,
	}
}

// Login returns ok == false for rejected credentials; err is reserved for
// slot failures.
func (uc *authUseCase) Login(ctx context.Context, email, password string) (string, bool, error) {
	uc.log.Infof("Use Case: Attempting admin login for %s", normalizeEmail(email))
	if !uc.policy.Check(email, password) {
		uc.log.Warnf("Use Case: Admin login rejected for %s", normalizeEmail(email))
		return "", false, nil
	}

	token := uuid.NewString()
	if err := uc.slot.Set(ctx, uc.tokenKey, token); err != nil {
		uc.log.Errorf("Use Case: Failed to persist admin session token: %v", err)
		return "", false, fmt.Errorf("failed to start session: %w", err)
	}
	if err := uc.slot.Set(ctx, uc.flagKey, "true"); err != nil {
		uc.log.Errorf("Use Case: Failed to persist admin session flag: %v", err)
		return "", false, fmt.Errorf("failed to start session: %w", err)
	}
	uc.log.Info("Use Case: Admin session started")
	return token, true, nil
}

func (uc *authUseCase) Logout(ctx context.Context) error {
	if err := uc.slot.Delete(ctx, uc.flagKey); err != nil {
		return fmt.Errorf("failed to clear session flag: %w", err)
	}
	if err := uc.slot.Delete(ctx, uc.tokenKey); err != nil {
		return fmt.Errorf("failed to clear session token: %w", err)
	}
	uc.log.Info("Use Case: Admin session ended")
	return nil
}

func (uc *authUseCase) IsAuthenticated(ctx context.Context, token string) bool {
	if token == "" {
		return false
	}
	flag, ok, err := uc.slot.Get(ctx, uc.flagKey)
	if err != nil {
		uc.log.Errorf("Use Case: Failed to read session flag: %v", err)
		return false
	}
	if !ok || flag != "true" {
		return false
	}
	stored, ok, err := uc.slot.Get(ctx, uc.tokenKey)
	if err != nil {
		uc.log.Errorf("Use Case: Failed to read session token: %v", err)
		return false
	}
	return ok && subtle.ConstantTimeCompare([]byte(stored), []byte(token)) == 1
}
