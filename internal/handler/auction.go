package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/osse101/CaseAssign_Go/internal/auction"
	"github.com/osse101/CaseAssign_Go/internal/domain"
)

// AuctionHandler handles sealed-bid submission and results
type AuctionHandler struct {
	service auction.Service
}

// NewAuctionHandler creates a new AuctionHandler
func NewAuctionHandler(service auction.Service) *AuctionHandler {
	return &AuctionHandler{service: service}
}

// SubmitBidsRequest maps case IDs to bid amounts
type SubmitBidsRequest struct {
	Bids map[string]decimal.Decimal `json:"bids"`
}

// HandleSubmitBids records the caller's bids and arrives at the barrier
// @Summary Submit bids
// @Description Body {"bids": {"<case_id>": amount}}; flat bid_case_<id> fields are accepted as JSON or form values
// @Tags auction
// @Accept json
// @Produce json
// @Param code path string true "Session code"
// @Param X-Participant-Token header string true "Judge participant token"
// @Param request body SubmitBidsRequest true "Bids"
// @Success 202 {object} domain.AuctionResult
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /sessions/{code}/auction/bids [post]
func (h *AuctionHandler) HandleSubmitBids(w http.ResponseWriter, r *http.Request) {
	p, _ := ParticipantFromContext(r.Context())

	bids, err := parseBids(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.service.SubmitBids(r.Context(), SessionFromContext(r.Context()), p.ID, bids)
	if err != nil {
		respondServiceError(w, r, LogMsgSubmitBidsFailed, err)
		return
	}

	respondJSON(w, http.StatusAccepted, result)
}

// HandleResults returns the caller's assignment, long-polling when wait=true
// @Summary Auction results
// @Description With wait=true blocks until every judge has bid or the timeout (seconds) passes; 202 means still collecting
// @Tags auction
// @Produce json
// @Param code path string true "Session code"
// @Param X-Participant-Token header string true "Participant token"
// @Param wait query bool false "Block until resolved"
// @Param timeout query int false "Long-poll timeout in seconds"
// @Success 200 {object} domain.AuctionResult
// @Success 202 {object} domain.AuctionResult
// @Router /sessions/{code}/auction/results [get]
func (h *AuctionHandler) HandleResults(w http.ResponseWriter, r *http.Request) {
	p, _ := ParticipantFromContext(r.Context())
	sess := SessionFromContext(r.Context())

	wait, _ := strconv.ParseBool(GetOptionalQueryParam(r, QueryParamWait, "false"))
	timeout, err := strconv.Atoi(GetOptionalQueryParam(r, QueryParamTimeout, strconv.Itoa(DefaultWaitTimeout)))
	if err != nil || timeout < 0 || timeout > MaxWaitTimeout {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidTimeout)
		return
	}

	ctx := r.Context()
	if wait {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(timeout)*time.Second)
		defer cancel()
	}

	result, err := h.service.Results(ctx, sess, p.ID, wait)
	if wait && errors.Is(err, context.DeadlineExceeded) {
		result, err = h.service.Results(r.Context(), sess, p.ID, false)
	}
	if err != nil {
		respondServiceError(w, r, LogMsgResultsFailed, err)
		return
	}

	status := http.StatusOK
	if result.State != domain.AuctionStateResolved {
		status = http.StatusAccepted
	}
	respondJSON(w, status, result)
}

// parseBids accepts {"bids": {...}}, flat {"bid_case_<id>": amount} JSON, or
// url-encoded bid_case_<id> form fields
func parseBids(r *http.Request) (map[int]decimal.Decimal, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	raw := make(map[string]decimal.Decimal)
	if mediaType == "application/x-www-form-urlencoded" {
		if err := r.ParseForm(); err != nil {
			return nil, errors.New(ErrMsgInvalidRequest)
		}
		for key := range r.PostForm {
			value := r.PostForm.Get(key)
			amount, err := decimal.NewFromString(value)
			if err != nil {
				return nil, fmt.Errorf(ErrMsgInvalidBidAmount, key)
			}
			raw[key] = amount
		}
	} else {
		var body map[string]json.RawMessage
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			return nil, errors.New(ErrMsgInvalidRequest)
		}
		if nested, ok := body["bids"]; ok {
			if err := json.Unmarshal(nested, &raw); err != nil {
				return nil, errors.New(ErrMsgInvalidRequest)
			}
		} else {
			for key, value := range body {
				var amount decimal.Decimal
				if err := json.Unmarshal(value, &amount); err != nil {
					return nil, fmt.Errorf(ErrMsgInvalidBidAmount, key)
				}
				raw[key] = amount
			}
		}
	}

	// An empty map is a valid submission: the judge bids on nothing.
	bids := make(map[int]decimal.Decimal, len(raw))
	for key, amount := range raw {
		id, err := strconv.Atoi(strings.TrimPrefix(key, BidKeyPrefix))
		if err != nil {
			return nil, fmt.Errorf(ErrMsgInvalidBidKey, key)
		}
		if _, dup := bids[id]; dup {
			return nil, fmt.Errorf(ErrMsgDuplicateBidKey, id)
		}
		bids[id] = amount
	}
	return bids, nil
}
