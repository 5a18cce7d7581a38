package service

import (
	"context"

	"github.com/deppfellow/schoolsite/internal/model"
	"github.com/deppfellow/schoolsite/internal/repository"
	"github.com/deppfellow/schoolsite/internal/server"
)

type ResultService struct {
	base
}

func NewResultService(s *server.Server, repos *repository.Repositories) *ResultService {
	return &ResultService{base: newBase(s, repos)}
}

// YearSummary is a result row as shown on the public results page.
type YearSummary struct {
	Year         int    `json:"year"`
	PassRate     string `json:"passRate"`
	Above90      int    `json:"above90"`
	Above95      int    `json:"above95"`
	DistrictRank string `json:"districtRank"`
	StateRank    string `json:"stateRank"`
}

// TopperSummary is a topper as shown on the public results page.
type TopperSummary struct {
	Name        string  `json:"name"`
	Percentage  float64 `json:"percentage"`
	Stream      string  `json:"stream"`
	Achievement string  `json:"achievement"`
	Photo       string  `json:"photo"`
	Year        int     `json:"year"`
}

// ResultsOverview groups results per class plus the latest toppers.
type ResultsOverview struct {
	Class10 []YearSummary   `json:"class10"`
	Class12 []YearSummary   `json:"class12"`
	Toppers []TopperSummary `json:"toppers"`
}

func (s *ResultService) Create(ctx context.Context, res *model.Result) (*model.Result, error) {
	res.ID = model.NewID()
	res.CreatedAt = s.now()

	if err := s.inTx(ctx, func(r *repository.Repositories) error {
		return r.Results.Create(ctx, res)
	}); err != nil {
		return nil, err
	}

	s.logger(ctx).Info().
		Str("class_level", string(res.ClassLevel)).
		Int("year", res.Year).
		Msg("result created")
	return res, nil
}

func (s *ResultService) CreateTopper(ctx context.Context, t *model.Topper) (*model.Topper, error) {
	t.ID = model.NewID()
	t.CreatedAt = s.now()

	if err := s.inTx(ctx, func(r *repository.Repositories) error {
		return r.Results.CreateTopper(ctx, t)
	}); err != nil {
		return nil, err
	}

	s.logger(ctx).Info().Str("topper_id", t.ID).Int("year", t.Year).Msg("topper created")
	return t, nil
}

// Overview returns both classes newest year first and at most
// repository.PublicToppersLimit toppers.
func (s *ResultService) Overview(ctx context.Context) (*ResultsOverview, error) {
	class10, err := s.repos.Results.ListByClass(ctx, model.Class10)
	if err != nil {
		return nil, err
	}
	class12, err := s.repos.Results.ListByClass(ctx, model.Class12)
	if err != nil {
		return nil, err
	}
	toppers, err := s.repos.Results.ListToppers(ctx, repository.PublicToppersLimit)
	if err != nil {
		return nil, err
	}

	out := &ResultsOverview{
		Class10: summarize(class10),
		Class12: summarize(class12),
		Toppers: make([]TopperSummary, 0, len(toppers)),
	}
	for _, t := range toppers {
		out.Toppers = append(out.Toppers, TopperSummary{
			Name:        t.Name,
			Percentage:  t.Percentage,
			Stream:      t.Stream,
			Achievement: t.Achievement,
			Photo:       t.PhotoURL,
			Year:        t.Year,
		})
	}
	return out, nil
}

func summarize(results []*model.Result) []YearSummary {
	out := make([]YearSummary, 0, len(results))
	for _, r := range results {
		out = append(out, YearSummary{
			Year:         r.Year,
			PassRate:     r.PassRate,
			Above90:      r.Above90,
			Above95:      r.Above95,
			DistrictRank: r.DistrictRank,
			StateRank:    r.StateRank,
		})
	}
	return out
}
