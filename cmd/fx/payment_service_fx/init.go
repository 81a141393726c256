package payment_service_fx

import (
	"os"

	"github.com/sirupsen/logrus"
	"go.uber.org/fx"

	"soulmate/internal/services"
)

var Module = fx.Provide(
	providePaymentService)

func providePaymentService() services.PaymentServiceInterface {
	cfg := services.StripeConfig{
		SecretKey: os.Getenv("STRIPE_SECRET_KEY"),
	}

	instance, err := services.NewPaymentService(cfg)
	if err != nil {
		logrus.Errorf("failed to initialize payment service: %v", err)
	}

	return instance
}
