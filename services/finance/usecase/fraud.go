package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bshiribaiev/hackfest/internal/pkg/logger"
	"github.com/bshiribaiev/hackfest/internal/pkg/models"
	"github.com/bshiribaiev/hackfest/services/finance"
)

// Rule weights for the risk heuristic. The three rules sum to 100, so the
// score never leaves the [0,100] range; any new rule must keep that contract
// or clamp explicitly.
const (
	weightLargeAmount       = 40
	weightManyRecent        = 40
	weightOvernight         = 20
	fraudFlagThreshold      = 70
	recentCountSuspicious   = 5
	largeAmountMultiplier   = 3
	overnightHourStart      = 1
	overnightHourEnd        = 5
)

var createdAtLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05.999999999-07:00",
	"2006-01-02",
}

// parseCreatedAt parses an ISO-8601 timestamp. A trailing "Z" is stripped
// before parsing, matching how candidates are submitted.
func parseCreatedAt(value string) (time.Time, error) {
	trimmed := strings.TrimSuffix(value, "Z")
	for _, layout := range createdAtLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: invalid created_at timestamp %q", finance.ErrValidation, value)
}

// CalculateRiskScore scores one candidate transaction against its context.
// The rules are additive and independent; each contributes a fixed weight and
// a reason. The function is pure: it never stores or acts on the candidate.
func CalculateRiskScore(req *models.FraudCheckRequest) (*models.FraudCheckResult, error) {
	createdAt, err := parseCreatedAt(req.CreatedAt)
	if err != nil {
		return nil, err
	}

	score := 0
	reasons := []string{}

	if req.Amount > req.AverageAmount*largeAmountMultiplier {
		score += weightLargeAmount
		reasons = append(reasons, "Unusually large amount")
	}

	if req.RecentCount > recentCountSuspicious {
		score += weightManyRecent
		reasons = append(reasons, "Many transactions in last 10 minutes")
	}

	hour := createdAt.Hour()
	if hour >= overnightHourStart && hour <= overnightHourEnd {
		score += weightOvernight
		reasons = append(reasons, "Unusual overnight transaction")
	}

	return &models.FraudCheckResult{
		RiskScore: score,
		FraudFlag: score > fraudFlagThreshold,
		Reasons:   reasons,
	}, nil
}

// ScoreTransaction scores a candidate transaction for fraud risk without
// persisting anything. The caller decides whether to act on the result. When
// the request names the payer but carries no recent_count, the trailing-window
// counter maintained on submission supplies it; a counter read failure leaves
// the caller-supplied value in place.
func (uc *FinanceUC) ScoreTransaction(ctx context.Context, req *models.FraudCheckRequest) (*models.FraudCheckResult, error) {
	if req.RecentCount <= 0 && req.UserID != uuid.Nil {
		count, err := uc.transactionRepo.GetRecentCount(ctx, req.UserID)
		if err != nil {
			logger.Warn("Failed to read recent transaction counter",
				logger.String("user_id", req.UserID.String()),
				logger.Err(err),
			)
		} else {
			req.RecentCount = int(count)
		}
	}
	return CalculateRiskScore(req)
}
