package account

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"quickhaul/internal/entities"
)

type Account struct {
	repository Repository
	hasher     PasswordHasher
	issuer     TokenIssuer
	sessions   SessionStore
	txManager  TxManager
	sessionTTL time.Duration
	now        func() time.Time
	newID      func() string
}

func New(
	repository Repository,
	hasher PasswordHasher,
	issuer TokenIssuer,
	sessions SessionStore,
	txManager TxManager,
	sessionTTL time.Duration,
) *Account {
	return &Account{
		repository: repository,
		hasher:     hasher,
		issuer:     issuer,
		sessions:   sessions,
		txManager:  txManager,
		sessionTTL: sessionTTL,
		now: func() time.Time {
			return time.Now().UTC().Truncate(time.Microsecond)
		},
		newID: uuid.NewString,
	}
}

func (s *Account) Register(ctx context.Context, registration entities.Registration) (*entities.Authenticated, error) {
	registration.Email = normalizeEmail(registration.Email)
	if err := validateRegistration(registration); err != nil {
		return nil, err
	}

	credentialHash, err := s.hasher.Hash(registration.Credential)
	if err != nil {
		return nil, fmt.Errorf("hash credential: %w", err)
	}

	createdAt := s.now()
	account := entities.Account{
		ID:             s.newID(),
		Name:           strings.TrimSpace(registration.Name),
		Email:          registration.Email,
		CredentialHash: credentialHash,
		Role:           registration.Role,
		CreatedAt:      createdAt,
		UpdatedAt:      createdAt,
	}
	if account.IsDriver() {
		account.DriverProfile = entities.NewDriverProfile()
	}

	created, err := s.repository.Create(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("create account: %w", err)
	}

	session, err := s.openSession(ctx, created)
	if err != nil {
		return nil, err
	}

	return &entities.Authenticated{
		Account: *created,
		Session: *session,
	}, nil
}

// Authenticate не различает неизвестный email и неверный пароль.
func (s *Account) Authenticate(ctx context.Context, email, credential string) (*entities.Authenticated, error) {
	email = normalizeEmail(email)
	if !isValidEmail(email) || !isValidCredential(credential) {
		return nil, ErrInvalidCredentials
	}

	account, err := s.repository.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get account by email: %w", err)
	}

	if err := s.hasher.Compare(account.CredentialHash, credential); err != nil {
		return nil, ErrInvalidCredentials
	}

	session, err := s.openSession(ctx, account)
	if err != nil {
		return nil, err
	}

	return &entities.Authenticated{
		Account: *account,
		Session: *session,
	}, nil
}

func (s *Account) openSession(ctx context.Context, account *entities.Account) (*entities.Session, error) {
	session := entities.Session{
		ID:        s.newID(),
		AccountID: account.ID,
		Role:      account.Role,
		ExpiresAt: s.now().Add(s.sessionTTL),
	}

	token, err := s.issuer.Issue(session)
	if err != nil {
		return nil, fmt.Errorf("issue session token: %w", err)
	}

	if err := s.sessions.Save(ctx, session.ID, account.ID, s.sessionTTL); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	session.Token = token
	return &session, nil
}

// EndSession идемпотентен: повторный выход не ошибка.
func (s *Account) EndSession(ctx context.Context, sessionID string) error {
	if isBlank(sessionID) {
		return ErrInvalidSession
	}

	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	return nil
}

func (s *Account) ResolveSession(ctx context.Context, token string) (*entities.Caller, error) {
	if isBlank(token) {
		return nil, ErrInvalidSession
	}

	caller, err := s.issuer.Parse(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSession, err)
	}

	alive, err := s.sessions.Exists(ctx, caller.SessionID)
	if err != nil {
		return nil, fmt.Errorf("check session: %w", err)
	}
	if !alive {
		return nil, ErrInvalidSession
	}

	return caller, nil
}

func (s *Account) GetAccount(ctx context.Context, id string) (*entities.Account, error) {
	if isBlank(id) {
		return nil, ErrInvalidAccountID
	}

	account, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get account: %w", err)
	}

	return account, nil
}

// UpdateProfile применяет частичное обновление. После смены пароля все
// сессии аккаунта, кроме sessionID, отзываются.
func (s *Account) UpdateProfile(ctx context.Context, id, sessionID string, accountModify entities.AccountModify) (*entities.Account, error) {
	if isBlank(id) {
		return nil, ErrInvalidAccountID
	}

	if accountModify.Email != nil {
		accountModify.Email = pointerTo(normalizeEmail(*accountModify.Email))
	}
	if accountModify.Name != nil {
		accountModify.Name = pointerTo(strings.TrimSpace(*accountModify.Name))
	}
	if err := validateModify(accountModify); err != nil {
		return nil, err
	}

	credentialChanged := accountModify.Credential != nil
	if credentialChanged {
		credentialHash, err := s.hasher.Hash(*accountModify.Credential)
		if err != nil {
			return nil, fmt.Errorf("hash credential: %w", err)
		}
		accountModify.CredentialHash = &credentialHash
		accountModify.Credential = nil
	}
	accountModify.ID = &id

	updated, err := s.modifyLocked(ctx, accountModify)
	if err != nil {
		return nil, err
	}

	if credentialChanged {
		if err := s.sessions.DeleteAccountSessions(ctx, id, sessionID); err != nil {
			return nil, fmt.Errorf("revoke sessions: %w", err)
		}
	}

	return updated, nil
}

// SetDriverAvailability вызывается воркером по событиям смены статуса доставки.
func (s *Account) SetDriverAvailability(ctx context.Context, id string, availability entities.DriverAvailability) error {
	if isBlank(id) {
		return ErrInvalidAccountID
	}
	if !isValidAvailability(availability) {
		return ErrInvalidAvailability
	}

	_, err := s.modifyLocked(ctx, entities.AccountModify{
		ID:           &id,
		Availability: &availability,
	})
	return err
}

func (s *Account) modifyLocked(ctx context.Context, accountModify entities.AccountModify) (*entities.Account, error) {
	var updated *entities.Account

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByIDForUpdate(ctx, *accountModify.ID)
		if err != nil {
			return fmt.Errorf("lock account: %w", err)
		}

		if accountModify.HasDriverFields() && !current.IsDriver() {
			return ErrNotDriver
		}

		updated, err = s.repository.Update(ctx, accountModify)
		if err != nil {
			return fmt.Errorf("update account: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func pointerTo[T any](v T) *T {
	return &v
}
