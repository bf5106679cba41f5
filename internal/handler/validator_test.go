package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator_CreateSession(t *testing.T) {
	InitValidator()
	v := GetValidator()

	tests := []struct {
		name      string
		req       CreateSessionRequest
		wantField string
		wantMsg   string
	}{
		{"valid auction", CreateSessionRequest{Mode: "auction", PayoffPolicy: "bid"}, "", ""},
		{"valid greedy", CreateSessionRequest{Mode: "greedy", Aging: "poll", IngestPolicy: "lenient"}, "", ""},
		{"missing mode", CreateSessionRequest{}, "mode", "This field is required"},
		{"bad payoff", CreateSessionRequest{Mode: "auction", PayoffPolicy: "max"}, "payoff_policy", "Must be spread or bid"},
		{"bad ingest", CreateSessionRequest{Mode: "greedy", IngestPolicy: "loose"}, "ingest_policy", "Must be strict or lenient"},
		{"zero judges", CreateSessionRequest{Mode: "auction", Judges: intPtr(0)}, "judges", "Must be at least 1"},
		{"negative deadline", CreateSessionRequest{Mode: "auction", AuctionDeadlineSeconds: intPtr(-1)}, "auction_deadline_seconds", "Must be at least 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateStruct(tt.req)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantMsg, FormatValidationError(err)[tt.wantField])
		})
	}
}

func TestValidator_Login(t *testing.T) {
	v := GetValidator()

	assert.NoError(t, v.ValidateStruct(LoginRequest{Username: "judge1", Password: "judge"}))

	err := v.ValidateStruct(LoginRequest{Username: "judge\n1", Password: "judge"})
	require.Error(t, err)
	assert.Equal(t, "Contains invalid characters", FormatValidationError(err)["username"])
}

func TestFormatValidationError_NonValidatorError(t *testing.T) {
	assert.Nil(t, FormatValidationError(nil))
	assert.Equal(t, map[string]string{"error": "Invalid request format"}, FormatValidationError(assert.AnError))
}
