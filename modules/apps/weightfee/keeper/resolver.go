package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/crosslane/weightfee/modules/apps/weightfee/types"
)

// Price implements types.PriceResolver. It returns the exchange price stored
// in the asset registry, valid at the moment of the read.
func (k Keeper) Price(ctx sdk.Context, id types.AssetID) (sdk.Dec, bool) {
	asset, found := k.GetRegisteredAsset(ctx, id)
	if !found {
		return sdk.Dec{}, false
	}
	return asset.Price, true
}

// ToAssetID implements types.AssetConverter. Only fungible assets with a
// registered location resolve to an identity.
func (k Keeper) ToAssetID(ctx sdk.Context, asset types.PaymentAsset) (types.AssetID, bool) {
	if !asset.Fungible {
		return 0, false
	}

	if err := asset.Location.Validate(); err != nil {
		return 0, false
	}

	return k.GetAssetIDByLocation(ctx, asset.Location)
}

// ToDenom implements types.AssetConverter. It returns the domain-level
// denomination registered for the identity.
func (k Keeper) ToDenom(ctx sdk.Context, id types.AssetID) (string, bool) {
	asset, found := k.GetRegisteredAsset(ctx, id)
	if !found {
		return "", false
	}
	return asset.Denom, true
}

// WeightToFee implements types.WeightToFee with a linear formula: the
// canonical fee is weight multiplied by the FeePerWeight param, truncated.
func (k Keeper) WeightToFee(ctx sdk.Context, weight uint64) sdk.Int {
	return k.FeePerWeight(ctx).MulInt(sdk.NewIntFromUint64(weight)).TruncateInt()
}
