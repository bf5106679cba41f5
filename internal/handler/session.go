package handler

import (
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/osse101/CaseAssign_Go/internal/domain"
	"github.com/osse101/CaseAssign_Go/internal/logger"
	"github.com/osse101/CaseAssign_Go/internal/session"
)

// SettingsProvider returns the configured treatment for a mode
type SettingsProvider func(mode domain.Mode) session.Settings

// SessionHandler creates sessions and logs participants in
type SessionHandler struct {
	manager  *session.Manager
	defaults SettingsProvider
}

// NewSessionHandler creates a new SessionHandler
func NewSessionHandler(manager *session.Manager, defaults SettingsProvider) *SessionHandler {
	if defaults == nil {
		defaults = session.DefaultSettings
	}
	return &SessionHandler{manager: manager, defaults: defaults}
}

// CreateSessionRequest selects the mode and optionally overrides treatment values
type CreateSessionRequest struct {
	Mode                   string           `json:"mode" validate:"required,mode"`
	Judges                 *int             `json:"judges,omitempty" validate:"omitempty,min=1,max=500"`
	Seed                   *uint64          `json:"seed,omitempty"`
	InitialCases           *int             `json:"initial_cases,omitempty" validate:"omitempty,min=0,max=10000"`
	IngestPolicy           string           `json:"ingest_policy,omitempty" validate:"ingest_policy"`
	BidMin                 *decimal.Decimal `json:"bid_min,omitempty"`
	BidMax                 *decimal.Decimal `json:"bid_max,omitempty"`
	PayoffPolicy           string           `json:"payoff_policy,omitempty" validate:"payoff_policy"`
	AuctionDeadlineSeconds *int             `json:"auction_deadline_seconds,omitempty" validate:"omitempty,min=0"`
	Budget                 *int             `json:"budget,omitempty" validate:"omitempty,min=0"`
	MinPool                *int             `json:"min_pool,omitempty" validate:"omitempty,min=0,max=1000"`
	PointsMin              *int             `json:"points_min,omitempty" validate:"omitempty,min=0"`
	PointsMax              *int             `json:"points_max,omitempty" validate:"omitempty,min=0"`
	Aging                  string           `json:"aging,omitempty" validate:"aging"`
}

// CreateSessionResponse carries the join code of a new session
type CreateSessionResponse struct {
	ID       string           `json:"id"`
	Code     string           `json:"code"`
	Settings session.Settings `json:"settings"`
}

// LoginRequest carries participant credentials
type LoginRequest struct {
	Username string `json:"username" validate:"required,max=100,excludesall=\x00\n\r\t"`
	Password string `json:"password" validate:"required,max=100"`
}

// SessionView is the participant-facing view of a session's cases
type SessionView struct {
	Code         string              `json:"code"`
	Mode         domain.Mode         `json:"mode"`
	Round        int                 `json:"round"`
	AuctionState domain.AuctionState `json:"auction_state,omitempty"`
	Cases        []domain.Case       `json:"cases"`
}

func (req CreateSessionRequest) apply(s session.Settings) session.Settings {
	if req.Judges != nil {
		s.Judges = *req.Judges
	}
	if req.Seed != nil {
		s.Seed = *req.Seed
	}
	if req.InitialCases != nil {
		s.InitialCases = *req.InitialCases
	}
	if req.IngestPolicy != "" {
		s.IngestPolicy = domain.IngestPolicy(req.IngestPolicy)
	}
	if req.BidMin != nil {
		s.BidMin = *req.BidMin
	}
	if req.BidMax != nil {
		s.BidMax = *req.BidMax
	}
	if req.PayoffPolicy != "" {
		s.PayoffPolicy = domain.PayoffPolicy(req.PayoffPolicy)
	}
	if req.AuctionDeadlineSeconds != nil {
		s.AuctionDeadline = time.Duration(*req.AuctionDeadlineSeconds) * time.Second
	}
	if req.Budget != nil {
		s.Budget = *req.Budget
	}
	if req.MinPool != nil {
		s.MinPool = *req.MinPool
	}
	if req.PointsMin != nil {
		s.PointsMin = *req.PointsMin
	}
	if req.PointsMax != nil {
		s.PointsMax = *req.PointsMax
	}
	if req.Aging != "" {
		s.Aging = domain.AgingCadence(req.Aging)
	}
	return s
}

// HandleCreate starts a new experiment session
// @Summary Create session
// @Description Starts an auction or greedy session and returns its join code
// @Tags sessions
// @Accept json
// @Produce json
// @Param request body CreateSessionRequest true "Mode and treatment overrides"
// @Success 201 {object} CreateSessionResponse
// @Failure 400 {object} ValidationErrorResponse
// @Router /sessions [post]
func (h *SessionHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Create session"); err != nil {
		return
	}

	settings := req.apply(h.defaults(domain.Mode(req.Mode)))
	sess, err := h.manager.Create(r.Context(), settings)
	if err != nil {
		respondServiceError(w, r, LogMsgSessionCreateFailed, err)
		return
	}

	respondJSON(w, http.StatusCreated, CreateSessionResponse{
		ID:       sess.ID.String(),
		Code:     sess.Code,
		Settings: sess.Settings,
	})
}

// HandleLogin resolves the caller's role and returns a participant token
// @Summary Log in
// @Description admin/admin logs in as administrator, judge*/judge as a judge
// @Tags sessions
// @Accept json
// @Produce json
// @Param code path string true "Session code"
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} session.Login
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /sessions/{code}/login [post]
func (h *SessionHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Login"); err != nil {
		return
	}

	sess := SessionFromContext(r.Context())
	login, err := sess.Login(req.Username, req.Password)
	if err != nil {
		respondServiceError(w, r, LogMsgLoginFailed, err)
		return
	}

	logger.FromContext(r.Context()).Info("Participant joined",
		"participant_id", login.Participant.ID,
		"role", login.Participant.Role)
	respondJSON(w, http.StatusOK, login)
}

// HandleListCases returns every case in the session with its status
// @Summary List cases
// @Tags cases
// @Produce json
// @Param code path string true "Session code"
// @Param X-Participant-Token header string true "Participant token"
// @Success 200 {object} SessionView
// @Router /sessions/{code}/cases [get]
func (h *SessionHandler) HandleListCases(w http.ResponseWriter, r *http.Request) {
	snap := SessionFromContext(r.Context()).Snapshot()
	respondJSON(w, http.StatusOK, SessionView{
		Code:         snap.Code,
		Mode:         snap.Mode,
		Round:        snap.Round,
		AuctionState: snap.AuctionState,
		Cases:        snap.Cases,
	})
}
