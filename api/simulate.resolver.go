package api

import (
	"fmt"
	"time"

	"fincontrol/internal/app"
	"fincontrol/internal/domain"
	"fincontrol/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type simulateRequestAsset struct {
	Symbol string `json:"symbol"`
	Role   string `json:"role"`
	// Weight is a raw relative weight (e.g. a percentage); the full
	// set is normalized server-side before the engine runs.
	Weight   float64 `json:"weight"`
	Currency string  `json:"currency,omitempty"`
}

type simulateRequest struct {
	Assets              []simulateRequestAsset `json:"assets"`
	MonthlyContribution float64                `json:"monthlyContribution"`
	RebalanceMonths     int                    `json:"rebalanceMonths"`
	Start               string                 `json:"start"`
	End                 *string                `json:"end,omitempty"`
	DisplayCurrency     string                 `json:"displayCurrency"`
}

type ledgerRowResponse struct {
	Date        string  `json:"date"`
	EquityValue float64 `json:"equityValue"`
	BondValue   float64 `json:"bondValue"`
	CryptoValue float64 `json:"cryptoValue"`
	OtherValue  float64 `json:"otherValue"`
	Cash        float64 `json:"cash"`
	Total       float64 `json:"total"`
}

type simulateResponse struct {
	SimulationID string              `json:"simulationID"`
	Rows         []ledgerRowResponse `json:"rows"`

	Cagr        float64 `json:"cagr"`
	Volatility  float64 `json:"volatility"`
	MaxDrawdown float64 `json:"maxDrawdown"`
	SharpeRatio float64 `json:"sharpeRatio"`

	Hhi                 float64           `json:"hhi"`
	EffectiveAssetCount float64           `json:"effectiveAssetCount"`
	RiskLevel           string            `json:"riskLevel"`
	TrendSignals        map[string]string `json:"trendSignals"`

	FinalValue  float64  `json:"finalValue"`
	Contributed float64  `json:"contributed"`
	Warnings    []string `json:"warnings,omitempty"`
}

type cantSimulateResponse struct {
	Error          string   `json:"error"`
	MissingSymbols []string `json:"missingSymbols"`
}

func (m ApiHandler) simulate(c *gin.Context) {
	ctx := c.Request.Context()

	var requestBody simulateRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJson(err, c)
		return
	}
	if len(requestBody.Assets) == 0 {
		returnErrorJsonCode(fmt.Errorf("at least one asset is required"), c, 400)
		return
	}
	if requestBody.MonthlyContribution <= 0 {
		returnErrorJsonCode(fmt.Errorf("monthlyContribution must be positive"), c, 400)
		return
	}

	start, err := util.ParseDate(requestBody.Start)
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("could not parse start date: %w", err), c, 400)
		return
	}
	var end *time.Time
	if requestBody.End != nil {
		e, err := util.ParseDate(*requestBody.End)
		if err != nil {
			returnErrorJsonCode(fmt.Errorf("could not parse end date: %w", err), c, 400)
			return
		}
		end = &e
	}

	displayCurrency := requestBody.DisplayCurrency
	if displayCurrency == "" {
		displayCurrency = "USD"
	}

	assets, err := normalizeAssets(requestBody.Assets)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	if missing := m.SimulationHandler.MissingHistory(ctx, assets, start); len(missing) > 0 {
		c.JSON(422, cantSimulateResponse{
			Error:          "missing price history for some assets in the requested range",
			MissingSymbols: missing,
		})
		return
	}

	result, err := m.SimulationHandler.Run(ctx, app.SimulationInput{
		Assets:              assets,
		MonthlyContribution: requestBody.MonthlyContribution,
		RebalanceMonths:     requestBody.RebalanceMonths,
		Start:               start,
		End:                 end,
		DisplayCurrency:     displayCurrency,
	})
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	if result.Ledger.Empty() {
		c.JSON(422, cantSimulateResponse{
			Error: "not enough data in the requested range to simulate",
		})
		return
	}

	response := simulateResponse{
		SimulationID:        uuid.NewString(),
		Rows:                make([]ledgerRowResponse, 0, len(result.Ledger)),
		Cagr:                result.Stats.Cagr,
		Volatility:          result.Stats.AnnualizedVolatility,
		MaxDrawdown:         result.Stats.MaxDrawdown,
		SharpeRatio:         result.Stats.SharpeRatio,
		Hhi:                 result.Hhi,
		EffectiveAssetCount: result.EffectiveN,
		RiskLevel:           string(result.RiskLevel),
		TrendSignals:        map[string]string{},
		FinalValue:          result.FinalValue,
		Contributed:         result.Contributed,
		Warnings:            result.Warnings,
	}
	for symbol, signal := range result.TrendSignals {
		response.TrendSignals[symbol] = string(signal)
	}
	for _, row := range result.Ledger {
		response.Rows = append(response.Rows, ledgerRowResponse{
			Date:        row.Date.Format("2006-01-02"),
			EquityValue: row.Value(domain.AssetRole_Equity),
			BondValue:   row.Value(domain.AssetRole_Bond),
			CryptoValue: row.Value(domain.AssetRole_Crypto),
			OtherValue:  row.Value(domain.AssetRole_Other),
			Cash:        row.Cash,
			Total:       row.Total,
		})
	}

	c.JSON(200, response)
}

// normalizeAssets converts raw relative weights into fractions summing
// to 1.0 - the engine expects normalized weights and never
// re-normalizes.
func normalizeAssets(in []simulateRequestAsset) ([]domain.Asset, error) {
	total := 0.0
	for _, a := range in {
		if a.Weight < 0 {
			return nil, fmt.Errorf("asset %s has negative weight", a.Symbol)
		}
		total += a.Weight
	}
	if total <= 0 {
		return nil, fmt.Errorf("asset weights must sum to a positive value")
	}

	out := make([]domain.Asset, 0, len(in))
	for _, a := range in {
		out = append(out, domain.Asset{
			Symbol:   a.Symbol,
			Role:     domain.ParseAssetRole(a.Role),
			Weight:   a.Weight / total,
			Currency: a.Currency,
		})
	}
	return out, nil
}
