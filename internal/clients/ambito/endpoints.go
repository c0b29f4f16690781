package ambito

import "dolar-hoy/internal/models"

const (
	LabelOficial  = "Oficial"
	LabelInformal = "Informal"
)

// Endpoints returns the fixed list of variation endpoints, oficial first.
// A fresh slice is returned on every call.
func Endpoints() []models.Endpoint {
	return []models.Endpoint{
		{Label: LabelOficial, URL: "https://mercados.ambito.com/dolar/oficial/variacion"},
		{Label: LabelInformal, URL: "https://mercados.ambito.com/dolar/informal/variacion"},
	}
}
