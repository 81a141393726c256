package services

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/paymentintent"

	"soulmate/pkg/utils"
)

type StripeConfig struct {
	SecretKey string // sk_... from process configuration
	Currency  string // defaults to usd
}

type PaymentServiceInterface interface {
	CreatePaymentIntent(ctx context.Context, price int64) (string, error)
}

type paymentService struct {
	cfg StripeConfig
}

func NewPaymentService(cfg StripeConfig) (PaymentServiceInterface, error) {
	if cfg.SecretKey == "" {
		return nil, errors.New("missing Stripe secret key")
	}
	if cfg.Currency == "" {
		cfg.Currency = string(stripe.CurrencyUSD)
	}
	stripe.Key = cfg.SecretKey
	return &paymentService{cfg: cfg}, nil
}

// CreatePaymentIntent is a pure pass-through to Stripe: it creates no local
// state and only hands the client secret back for the card form. The
// contact request itself is recorded by a later save-info call.
func (p *paymentService) CreatePaymentIntent(ctx context.Context, price int64) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(price * 100), // Stripe works in cents
		Currency:           stripe.String(p.cfg.Currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	intent, err := paymentintent.New(params)
	if err != nil {
		logrus.WithError(err).Error("stripe payment intent failed")
		return "", utils.ErrPaymentFailed
	}

	return intent.ClientSecret, nil
}
