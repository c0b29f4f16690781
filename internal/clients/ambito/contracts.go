package ambito

import (
	"context"

	"dolar-hoy/internal/models"
)

type RatesClient interface {
	Quote(ctx context.Context, url string) (*models.Quote, error)
	FetchAll(ctx context.Context, endpoints []models.Endpoint) []models.Outcome
}
