package view

import (
	"context"
	"io"
	"strings"
	"sync"

	"dolar-hoy/internal/models"
)

// DateSeparator is what ambito puts between date and time ("02/02/2021 - 15:52").
const DateSeparator = " - "

type State int

const (
	StateEmpty State = iota
	StatePopulated
)

func (s State) String() string {
	if s == StatePopulated {
		return "populated"
	}
	return "empty"
}

type Source interface {
	Latest(ctx context.Context) []models.RateRecord
}

type Entry struct {
	Label     string
	Buy       string
	Sell      string
	Variation string
	Marker    models.Marker
	Date      string
}

// View holds the records of one activation. It is not reused across requests.
type View struct {
	src     Source
	once    sync.Once
	records []models.RateRecord
}

func New(src Source) *View {
	return &View{src: src}
}

// Activate fetches once; further calls keep the first result.
func (v *View) Activate(ctx context.Context) {
	v.once.Do(func() {
		v.records = v.src.Latest(ctx)
	})
}

func (v *View) State() State {
	if len(v.records) == 0 {
		return StateEmpty
	}
	return StatePopulated
}

func (v *View) Records() []models.RateRecord {
	if v.records == nil {
		return []models.RateRecord{}
	}
	return v.records
}

func (v *View) Entries() []Entry {
	out := make([]Entry, 0, len(v.records))
	for _, r := range v.records {
		out = append(out, Entry{
			Label:     r.Label,
			Buy:       r.Buy,
			Sell:      r.Sell,
			Variation: r.Variation,
			Marker:    r.ClassVariation.Marker(),
			Date:      FormatDate(r.Date),
		})
	}
	return out
}

func (v *View) Render(w io.Writer) error {
	return page.Execute(w, v.Entries())
}

// FormatDate replaces every DateSeparator with a single space.
func FormatDate(s string) string {
	return strings.Join(strings.Split(s, DateSeparator), " ")
}
