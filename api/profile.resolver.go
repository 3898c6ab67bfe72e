package api

import (
	"fincontrol/internal/domain"

	"github.com/gin-gonic/gin"
)

type profileRequest struct {
	HorizonYears int `json:"horizonYears"`
	// Tolerance is the 1-10 volatility tolerance answer.
	Tolerance int `json:"tolerance"`
}

type profileResponse struct {
	Profile      string  `json:"profile"`
	EquityWeight float64 `json:"equityWeight"`
	BondWeight   float64 `json:"bondWeight"`
	CryptoWeight float64 `json:"cryptoWeight"`
}

func (m ApiHandler) profile(c *gin.Context) {
	var requestBody profileRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJson(err, c)
		return
	}

	profile := domain.SuggestProfile(requestBody.HorizonYears, requestBody.Tolerance)
	equity, bond, crypto := profile.SuggestedWeights()

	c.JSON(200, profileResponse{
		Profile:      string(profile),
		EquityWeight: equity,
		BondWeight:   bond,
		CryptoWeight: crypto,
	})
}
