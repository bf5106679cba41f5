package config

import (
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/osse101/CaseAssign_Go/internal/domain"
	"github.com/osse101/CaseAssign_Go/internal/session"
	"github.com/osse101/CaseAssign_Go/internal/validation"
)

// Experiment is the treatment file named by EXPERIMENT_CONFIG. Every field is
// optional; unset fields keep the session defaults.
type Experiment struct {
	Judges       *int             `yaml:"judges"`
	Seed         *uint64          `yaml:"seed"`
	IngestPolicy string           `yaml:"ingest_policy"`
	Auction      AuctionTreatment `yaml:"auction"`
	Greedy       GreedyTreatment  `yaml:"greedy"`

	deadline time.Duration
}

// AuctionTreatment overrides auction session settings
type AuctionTreatment struct {
	BidMin       *decimal.Decimal `yaml:"bid_min"`
	BidMax       *decimal.Decimal `yaml:"bid_max"`
	PayoffPolicy string           `yaml:"payoff_policy"`
	Deadline     string           `yaml:"deadline"`
	InitialCases *int             `yaml:"initial_cases"`
}

// GreedyTreatment overrides greedy session settings
type GreedyTreatment struct {
	Budget       *int   `yaml:"budget"`
	MinPool      *int   `yaml:"min_pool"`
	PointsMin    *int   `yaml:"points_min"`
	PointsMax    *int   `yaml:"points_max"`
	Aging        string `yaml:"aging"`
	InitialCases *int   `yaml:"initial_cases"`
}

// LoadExperiment reads and validates the treatment file at path. An empty path
// yields the defaults. defaultDeadline applies when the file sets no auction
// deadline.
func LoadExperiment(path string, defaultDeadline time.Duration) (*Experiment, error) {
	exp := &Experiment{deadline: defaultDeadline}
	if path == "" {
		return exp, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgReadExperiment, err)
	}
	return ParseExperiment(data, defaultDeadline)
}

// ParseExperiment validates data against the experiment schema and decodes it.
func ParseExperiment(data []byte, defaultDeadline time.Duration) (*Experiment, error) {
	if err := validation.NewSchemaValidator().ValidateYAML(data, validation.SchemaExperiment); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgInvalidExperiment, err)
	}

	exp := &Experiment{deadline: defaultDeadline}
	if err := yaml.Unmarshal(data, exp); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgDecodeExperiment, err)
	}

	if exp.Auction.Deadline != "" {
		d, err := time.ParseDuration(exp.Auction.Deadline)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgInvalidDeadline, err)
		}
		exp.deadline = d
	}

	for _, mode := range []domain.Mode{domain.ModeAuction, domain.ModeGreedy} {
		if err := exp.Settings(mode).Validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", fmt.Sprintf(ErrMsgInvalidTreatment, mode), err)
		}
	}
	return exp, nil
}

// Settings returns the session settings for mode with the treatment applied.
func (e *Experiment) Settings(mode domain.Mode) session.Settings {
	s := session.DefaultSettings(mode)

	if e.Judges != nil {
		s.Judges = *e.Judges
	}
	if e.Seed != nil {
		s.Seed = *e.Seed
	}
	if e.IngestPolicy != "" {
		s.IngestPolicy = domain.IngestPolicy(e.IngestPolicy)
	}

	switch mode {
	case domain.ModeAuction:
		a := e.Auction
		if a.BidMin != nil {
			s.BidMin = *a.BidMin
		}
		if a.BidMax != nil {
			s.BidMax = *a.BidMax
		}
		if a.PayoffPolicy != "" {
			s.PayoffPolicy = domain.PayoffPolicy(a.PayoffPolicy)
		}
		if a.InitialCases != nil {
			s.InitialCases = *a.InitialCases
		}
		s.AuctionDeadline = e.deadline
	case domain.ModeGreedy:
		g := e.Greedy
		if g.Budget != nil {
			s.Budget = *g.Budget
		}
		if g.MinPool != nil {
			s.MinPool = *g.MinPool
		}
		if g.PointsMin != nil {
			s.PointsMin = *g.PointsMin
		}
		if g.PointsMax != nil {
			s.PointsMax = *g.PointsMax
		}
		if g.Aging != "" {
			s.Aging = domain.AgingCadence(g.Aging)
		}
		if g.InitialCases != nil {
			s.InitialCases = *g.InitialCases
		}
	}
	return s
}
