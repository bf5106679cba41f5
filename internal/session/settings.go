package session

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/osse101/CaseAssign_Go/internal/domain"
)

// Settings is the treatment a session runs under. It is fixed at creation.
type Settings struct {
	Mode         domain.Mode         `json:"mode"`
	Judges       int                 `json:"judges"`
	Seed         uint64              `json:"seed"`
	InitialCases int                 `json:"initial_cases"`
	IngestPolicy domain.IngestPolicy `json:"ingest_policy"`

	BidMin          decimal.Decimal     `json:"bid_min"`
	BidMax          decimal.Decimal     `json:"bid_max"`
	PayoffPolicy    domain.PayoffPolicy `json:"payoff_policy"`
	AuctionDeadline time.Duration       `json:"auction_deadline"`

	// Budget of 0 disables the budget check.
	Budget    int                 `json:"budget"`
	MinPool   int                 `json:"min_pool"`
	PointsMin int                 `json:"points_min"`
	PointsMax int                 `json:"points_max"`
	Aging     domain.AgingCadence `json:"aging"`
}

// DefaultSettings returns the treatment used when nothing is configured.
func DefaultSettings(mode domain.Mode) Settings {
	return Settings{
		Mode:         mode,
		Judges:       DefaultJudges,
		InitialCases: DefaultInitialCases,
		IngestPolicy: domain.IngestStrict,
		BidMin:       decimal.NewFromInt(DefaultBidMin),
		BidMax:       decimal.NewFromInt(DefaultBidMax),
		PayoffPolicy: domain.PayoffSpread,
		Budget:       DefaultBudget,
		MinPool:      DefaultMinPool,
		PointsMin:    DefaultPointsMin,
		PointsMax:    DefaultPointsMax,
		Aging:        domain.AgingRound,
	}
}

// BudgetEnabled reports whether greedy claims are checked against a budget.
func (s Settings) BudgetEnabled() bool {
	return s.Budget > 0
}

// Validate checks the settings for internal consistency.
func (s Settings) Validate() error {
	if _, err := domain.ParseMode(string(s.Mode)); err != nil {
		return err
	}
	if s.Judges < 1 || s.Judges > MaxJudges {
		return fmt.Errorf("%w: judges must be between 1 and %d", domain.ErrInvalidInput, MaxJudges)
	}
	if s.InitialCases < 0 {
		return fmt.Errorf("%w: initial cases must not be negative", domain.ErrInvalidInput)
	}
	if _, err := domain.ParseIngestPolicy(string(s.IngestPolicy)); err != nil {
		return err
	}
	if s.BidMin.IsNegative() || s.BidMax.LessThan(s.BidMin) {
		return fmt.Errorf("%w: bid range [%s, %s]", domain.ErrInvalidInput, s.BidMin, s.BidMax)
	}
	if !domain.IsCurrencyAmount(s.BidMin) || !domain.IsCurrencyAmount(s.BidMax) {
		return fmt.Errorf("%w: bid bounds carry at most %d decimal places", domain.ErrInvalidInput, domain.CurrencyPlaces)
	}
	if _, err := domain.ParsePayoffPolicy(string(s.PayoffPolicy)); err != nil {
		return err
	}
	if s.AuctionDeadline < 0 {
		return fmt.Errorf("%w: auction deadline must not be negative", domain.ErrInvalidInput)
	}
	if s.Budget < 0 || s.MinPool < 0 {
		return fmt.Errorf("%w: budget and min pool must not be negative", domain.ErrInvalidInput)
	}
	if s.PointsMin < 0 || s.PointsMax < s.PointsMin {
		return fmt.Errorf("%w: points range [%d, %d]", domain.ErrInvalidInput, s.PointsMin, s.PointsMax)
	}
	if _, err := domain.ParseAgingCadence(string(s.Aging)); err != nil {
		return err
	}
	return nil
}
