package rates

import (
	"context"
	"strings"

	"dolar-hoy/internal/models"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type Fetcher interface {
	FetchAll(ctx context.Context, endpoints []models.Endpoint) []models.Outcome
}

type Service struct {
	fetcher   Fetcher
	endpoints []models.Endpoint
	log       logrus.FieldLogger
}

func New(f Fetcher, endpoints []models.Endpoint, log logrus.FieldLogger) *Service {
	return &Service{fetcher: f, endpoints: endpoints, log: log}
}

// Latest runs one fetch cycle and returns the records of the endpoints that
// answered. It has no error return: failed endpoints are only logged.
func (s *Service) Latest(ctx context.Context) []models.RateRecord {
	outcomes := s.fetcher.FetchAll(ctx, s.endpoints)

	for _, o := range outcomes {
		if !o.OK() {
			s.log.WithFields(logrus.Fields{
				"label": o.Endpoint.Label,
				"url":   o.Endpoint.URL,
			}).WithError(o.Err).Warn("endpoint dropped")
		}
	}

	return Normalize(outcomes)
}

// Normalize maps successful outcomes to records, keeping their order.
func Normalize(outcomes []models.Outcome) []models.RateRecord {
	out := make([]models.RateRecord, 0, len(outcomes))
	for _, o := range outcomes {
		if !o.OK() {
			continue
		}
		q := o.Quote
		out = append(out, models.RateRecord{
			Label:          o.Endpoint.Label,
			Buy:            q.Compra,
			Sell:           q.Venta,
			BuyValue:       ParsePrice(q.Compra),
			SellValue:      ParsePrice(q.Venta),
			Date:           q.Fecha,
			Variation:      q.Variacion,
			ClassVariation: models.ClassVariation(q.ClassVariacion),
			URL:            o.Endpoint.URL,
		})
	}
	return out
}

// ParsePrice reads an es-AR formatted amount ("1.234,56").
func ParsePrice(s string) decimal.NullDecimal {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.NullDecimal{}
	}

	s = strings.ReplaceAll(s, ".", "")
	s = strings.Replace(s, ",", ".", 1)

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(d)
}
