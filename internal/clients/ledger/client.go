package ledger

import (
	"context"
	"errors"
	"math"

	"referral-server/internal/observability"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/customerbalancetransaction"
	"github.com/stripe/stripe-go/v79/transfer"
)

var (
	ErrFailedToCreditBalance  = errors.New("failed to credit customer balance")
	ErrFailedToCreateTransfer = errors.New("failed to create transfer")
)

// Client moves settled reward money onto the external ledger. Credit-type
// rewards become Stripe customer balance credits; cash-type rewards become
// transfers to the recipient's connected account. Every call carries the
// reward ID as the idempotency key so retries after a partial failure do
// not double-pay.
type Client struct {
	logger *observability.Logger
}

func New(stripeKey string, logger *observability.Logger) *Client {
	stripe.Key = stripeKey
	return &Client{logger: logger}
}

// CreditBalance adds a negative balance transaction (a credit, in Stripe's
// sign convention) to the recipient's Stripe customer.
func (c *Client) CreditBalance(ctx context.Context, customerRef string, amount float64, currency, rewardID, description string) (string, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "customer_ref", Value: customerRef},
		observability.Field{Key: "reward_id", Value: rewardID},
	)

	params := &stripe.CustomerBalanceTransactionParams{
		Customer:    stripe.String(customerRef),
		Amount:      stripe.Int64(-toMinorUnits(amount)),
		Currency:    stripe.String(currency),
		Description: stripe.String(description),
	}
	params.SetIdempotencyKey(rewardID)

	bt, err := customerbalancetransaction.New(params)
	if err != nil {
		c.logger.Error(ctx, "failed to credit customer balance", err)
		return "", ErrFailedToCreditBalance
	}

	c.logger.Info(ctx, "customer balance credited")
	return bt.ID, nil
}

// TransferCash sends a transfer to the recipient's connected account.
func (c *Client) TransferCash(ctx context.Context, accountRef string, amount float64, currency, rewardID, description string) (string, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "account_ref", Value: accountRef},
		observability.Field{Key: "reward_id", Value: rewardID},
	)

	params := &stripe.TransferParams{
		Amount:      stripe.Int64(toMinorUnits(amount)),
		Currency:    stripe.String(currency),
		Destination: stripe.String(accountRef),
		Description: stripe.String(description),
	}
	params.SetIdempotencyKey(rewardID)

	tr, err := transfer.New(params)
	if err != nil {
		c.logger.Error(ctx, "failed to create transfer", err)
		return "", ErrFailedToCreateTransfer
	}

	c.logger.Info(ctx, "cash transfer created")
	return tr.ID, nil
}

func toMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
