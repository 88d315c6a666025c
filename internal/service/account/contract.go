//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=account_test
package account

import (
	"context"
	"time"

	"quickhaul/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, account entities.Account) (*entities.Account, error)
	GetByID(ctx context.Context, id string) (*entities.Account, error)
	GetByIDForUpdate(ctx context.Context, id string) (*entities.Account, error)
	GetByEmail(ctx context.Context, email string) (*entities.Account, error)
	Update(ctx context.Context, accountModify entities.AccountModify) (*entities.Account, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type PasswordHasher interface {
	Hash(credential string) (string, error)
	Compare(hash, credential string) error
}

type TokenIssuer interface {
	Issue(session entities.Session) (string, error)
	Parse(token string) (*entities.Caller, error)
}

type SessionStore interface {
	Save(ctx context.Context, sessionID, accountID string, ttl time.Duration) error
	Exists(ctx context.Context, sessionID string) (bool, error)
	Delete(ctx context.Context, sessionID string) error
	DeleteAccountSessions(ctx context.Context, accountID, exceptSessionID string) error
}
