package sqlite

import (
	"context"
	"time"

	"github.com/julien-sketch/progressive-pulse/internal/pulse/domain"
	"github.com/julien-sketch/progressive-pulse/internal/pulse/store"
)

type walletsRepo struct {
	db dbtx
}

func (r *walletsRepo) GetWallet(ctx context.Context, brokerEmail string) (domain.Wallet, error) {
	var w domain.Wallet
	err := r.db.QueryRowContext(ctx, `
		SELECT broker_email, credits, updated_at
		FROM credit_wallets
		WHERE broker_email = ?`, brokerEmail).
		Scan(&w.BrokerEmail, &w.Credits, &w.UpdatedAt)
	if err != nil {
		return domain.Wallet{}, mapNotFound(err)
	}
	return w, nil
}

func (r *walletsRepo) GrantCredits(ctx context.Context, brokerEmail string, credits int) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO credit_wallets (broker_email, credits, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT (broker_email)
		DO UPDATE SET credits = credits + excluded.credits, updated_at = excluded.updated_at`,
		brokerEmail, credits, time.Now().UTC())
	return err
}

// DebitCredit takes one credit with a conditional update so two concurrent
// creations cannot drive the balance negative.
func (r *walletsRepo) DebitCredit(ctx context.Context, brokerEmail string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE credit_wallets
		SET credits = credits - 1, updated_at = ?
		WHERE broker_email = ? AND credits > 0`,
		time.Now().UTC(), brokerEmail)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrInsufficientCredits
	}
	return nil
}
