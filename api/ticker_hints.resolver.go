package api

import (
	"fmt"

	"fincontrol/internal/domain"
	"fincontrol/internal/service"

	"github.com/gin-gonic/gin"
)

type tickerHintsRequest struct {
	Symbol string `json:"symbol"`
	Role   string `json:"role"`
}

type tickerHintsResponse struct {
	Symbol string `json:"symbol"`
	// FirstAvailableStart is the earliest usable start date for the
	// symbol in YYYY-MM-DD form, absent when the symbol has no
	// history at all.
	FirstAvailableStart *string  `json:"firstAvailableStart,omitempty"`
	Alternatives        []string `json:"alternatives"`
}

// tickerHints helps a caller recover from a "can't simulate" outcome:
// it suggests the first date the symbol has data for, plus liquid
// alternatives for the same role.
func (m ApiHandler) tickerHints(c *gin.Context) {
	ctx := c.Request.Context()

	var requestBody tickerHintsRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJson(err, c)
		return
	}
	if requestBody.Symbol == "" {
		returnErrorJsonCode(fmt.Errorf("symbol is required"), c, 400)
		return
	}

	response := tickerHintsResponse{
		Symbol:       requestBody.Symbol,
		Alternatives: service.RecommendTickers(domain.ParseAssetRole(requestBody.Role)),
	}
	if first := m.PriceService.FirstAvailableMonth(ctx, requestBody.Symbol); first != nil {
		response.FirstAvailableStart = strPtr(first.Format("2006-01-02"))
	}

	c.JSON(200, response)
}
