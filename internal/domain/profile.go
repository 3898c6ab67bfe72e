package domain

// RiskProfile is the onboarding shortcut: a coarse label with a
// suggested equity/bond/crypto split that users can still edit.
type RiskProfile string

const (
	RiskProfile_Conservative RiskProfile = "conservative"
	RiskProfile_Moderate     RiskProfile = "moderate"
	RiskProfile_Aggressive   RiskProfile = "aggressive"
)

// SuggestedWeights returns the default percentage split for the profile.
func (p RiskProfile) SuggestedWeights() (equity, bond, crypto float64) {
	switch p {
	case RiskProfile_Aggressive:
		return 80, 20, 0
	case RiskProfile_Conservative:
		return 30, 70, 0
	}
	return 50, 50, 0
}

// SuggestProfile maps the onboarding answers to a profile. Horizon is
// in years, tolerance on a 1-10 scale.
func SuggestProfile(horizonYears, tolerance int) RiskProfile {
	if horizonYears >= 5 && tolerance >= 7 {
		return RiskProfile_Aggressive
	}
	if horizonYears >= 3 && tolerance >= 5 {
		return RiskProfile_Moderate
	}
	return RiskProfile_Conservative
}
