package usecase

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log"
	"net/mail"
	"strings"
	"time"

	"studio_quotation/internal/domain/entities"
	"studio_quotation/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidEmail        = errors.New("invalid email")
	ErrInvalidRole         = errors.New("invalid role")
	ErrInvalidAccessCode   = errors.New("invalid access code")
	ErrCodeNotFound        = errors.New("access code not found")
	ErrCodeExpired         = errors.New("access code expired")
	ErrCodeAlreadyUsed     = errors.New("access code already used")
	ErrInvalidAccessCodeID = errors.New("invalid access code id")
)

// codeAlphabet matches the codes the operator tooling has always issued:
// uppercase letters and digits, 8 characters.
const (
	codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	codeLength   = 8
)

// IAccessCodeUseCase issues, validates and consumes single-use access
// codes that gate client login.
//
// Validate and Consume report not-found, expired and already-used as
// distinct errors; callers show a different message for each.

type IAccessCodeUseCase interface {
	Issue(ctx context.Context, email, name string, role entities.AccessCodeRole) (entities.AccessCode, error)
	Validate(ctx context.Context, code string) (entities.AccessCode, error)
	Consume(ctx context.Context, codeID string) (entities.AccessCode, error)
	List(ctx context.Context) ([]entities.AccessCode, error)
	CleanupExpired(ctx context.Context) (int, error)
}

type AccessCodeUseCase struct {
	repo interfaces.IAccessCodeRepository
	now  func() time.Time
}

var _ IAccessCodeUseCase = (*AccessCodeUseCase)(nil)

func NewAccessCodeUseCase(repo interfaces.IAccessCodeRepository) *AccessCodeUseCase {
	return &AccessCodeUseCase{repo: repo, now: time.Now}
}

func (u *AccessCodeUseCase) Issue(ctx context.Context, email, name string, role entities.AccessCodeRole) (entities.AccessCode, error) {
	email = strings.TrimSpace(email)
	name = strings.TrimSpace(name)
	if _, err := mail.ParseAddress(email); err != nil {
		return entities.AccessCode{}, ErrInvalidEmail
	}
	if role != entities.AccessCodeRoleUser && role != entities.AccessCodeRoleAdmin {
		return entities.AccessCode{}, ErrInvalidRole
	}

	code, err := generateCode()
	if err != nil {
		return entities.AccessCode{}, err
	}

	now := u.now().UTC()
	a := entities.AccessCode{
		ID:        uuid.NewString(),
		Code:      code,
		Email:     email,
		Name:      name,
		Role:      role,
		Used:      false,
		CreatedAt: now,
		ExpiresAt: now.Add(entities.AccessCodeTTL),
	}
	return u.repo.Create(ctx, a)
}

// Validate looks an access code up without consuming it. Used and expiry
// are checked independently; a consumed code reports already-used even
// when it is also past its window.
func (u *AccessCodeUseCase) Validate(ctx context.Context, code string) (entities.AccessCode, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return entities.AccessCode{}, ErrInvalidAccessCode
	}

	a, err := u.repo.GetByCode(ctx, code)
	if err != nil {
		return entities.AccessCode{}, err
	}
	if a.ID == "" {
		return entities.AccessCode{}, ErrCodeNotFound
	}
	if a.Used {
		return entities.AccessCode{}, ErrCodeAlreadyUsed
	}
	if a.Expired(u.now()) {
		return entities.AccessCode{}, ErrCodeExpired
	}
	return a, nil
}

// Consume atomically marks the code used. The second of two racing
// callers learns it lost: the repository's conditional update fails and
// is reported as ErrCodeAlreadyUsed (or ErrCodeNotFound for a code that
// never existed). The losing call has no effect on the record.
func (u *AccessCodeUseCase) Consume(ctx context.Context, codeID string) (entities.AccessCode, error) {
	codeID = strings.TrimSpace(codeID)
	if codeID == "" {
		return entities.AccessCode{}, ErrInvalidAccessCodeID
	}

	a, err := u.repo.Consume(ctx, codeID)
	if err == nil {
		return a, nil
	}
	if !errors.Is(err, interfaces.ErrConditionFailed) {
		return entities.AccessCode{}, err
	}

	existing, getErr := u.repo.GetByID(ctx, codeID)
	if getErr != nil {
		return entities.AccessCode{}, getErr
	}
	if existing.ID == "" {
		return entities.AccessCode{}, ErrCodeNotFound
	}
	return entities.AccessCode{}, ErrCodeAlreadyUsed
}

func (u *AccessCodeUseCase) List(ctx context.Context) ([]entities.AccessCode, error) {
	return u.repo.List(ctx)
}

// CleanupExpired deletes codes past their window and returns how many
// were removed. Used codes inside their window are kept for audit.
func (u *AccessCodeUseCase) CleanupExpired(ctx context.Context) (int, error) {
	codes, err := u.repo.List(ctx)
	if err != nil {
		return 0, err
	}

	now := u.now()
	removed := 0
	for _, a := range codes {
		if !a.Expired(now) {
			continue
		}
		if err := u.repo.Delete(ctx, a.ID); err != nil {
			log.Printf("[access-code][usecase] cleanup delete failed id=%s err=%v", a.ID, err)
			continue
		}
		removed++
	}
	return removed, nil
}

func generateCode() (string, error) {
	buf := make([]byte, codeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate access code: %w", err)
	}
	out := make([]byte, codeLength)
	for i, b := range buf {
		out[i] = codeAlphabet[int(b)%len(codeAlphabet)]
	}
	return string(out), nil
}
