package tx

import (
	"context"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/avito-tech/go-transaction-manager/trm/manager"
	"github.com/avito-tech/go-transaction-manager/trm/settings"
	"github.com/jackc/pgx/v5"
)

// Manager открывает транзакции поверх пула и кладёт их в контекст,
// откуда их забирает querier.
type Manager struct {
	internal *manager.Manager
}

func New(db pgxv5.Transactional) *Manager {
	return &Manager{
		internal: manager.Must(pgxv5.NewDefaultFactory(db)),
	}
}

// Do выполняет fn в read committed транзакции. Сериализация записей по одной
// строке обеспечивается SELECT ... FOR UPDATE в репозиториях.
func (m *Manager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.doWithIsoLevel(ctx, pgx.ReadCommitted, fn)
}

func (m *Manager) doWithIsoLevel(
	ctx context.Context,
	level pgx.TxIsoLevel,
	fn func(ctx context.Context) error,
) error {
	txSettings := pgxv5.MustSettings(
		settings.Must(),
		pgxv5.WithTxOptions(pgx.TxOptions{IsoLevel: level}),
	)
	return m.internal.DoWithSettings(ctx, txSettings, fn)
}
