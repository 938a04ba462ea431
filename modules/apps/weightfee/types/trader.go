package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// PriceResolver resolves the current exchange price of a registered asset,
// expressed as canonical fee units per native asset unit. A returned price is
// only valid at the moment it was read.
type PriceResolver interface {
	Price(ctx sdk.Context, id AssetID) (sdk.Dec, bool)
}

// AssetConverter maps between wire-level payment assets and internal asset
// identities.
type AssetConverter interface {
	// ToAssetID resolves the internal identity of a wire payment asset.
	ToAssetID(ctx sdk.Context, asset PaymentAsset) (AssetID, bool)
	// ToDenom resolves the domain-level denomination of an internal asset
	// identity.
	ToDenom(ctx sdk.Context, id AssetID) (string, bool)
}

// WeightToFee converts an amount of weight into a fee in canonical units.
type WeightToFee interface {
	WeightToFee(ctx sdk.Context, weight uint64) sdk.Int
}

// RevenueSink receives unrefunded fee balances when a trading session ends.
// Implementations must absorb all failures; revenue forwarding runs on
// teardown paths that cannot handle errors.
type RevenueSink interface {
	TakeRevenue(ctx sdk.Context, id AssetID, amount uint64)
}
