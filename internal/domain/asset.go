package domain

import "strings"

// AssetRole groups portfolio constituents into ledger columns. It's an
// open set - anything we don't recognize lands in AssetRole_Other so a
// new role never breaks the engine.
type AssetRole string

const (
	AssetRole_Equity AssetRole = "equity"
	AssetRole_Bond   AssetRole = "bond"
	AssetRole_Crypto AssetRole = "crypto"
	AssetRole_Other  AssetRole = "other"
)

func ParseAssetRole(s string) AssetRole {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "equity":
		return AssetRole_Equity
	case "bond":
		return AssetRole_Bond
	case "crypto":
		return AssetRole_Crypto
	}
	return AssetRole_Other
}

func AllAssetRoles() []AssetRole {
	return []AssetRole{AssetRole_Equity, AssetRole_Bond, AssetRole_Crypto, AssetRole_Other}
}

// Asset is a portfolio constituent. Weight is a fraction in [0, 1];
// weights across one configuration sum to 1.0 and callers normalize
// before constructing the set - the engine never re-normalizes.
type Asset struct {
	Symbol   string
	Role     AssetRole
	Weight   float64
	Currency string
}
