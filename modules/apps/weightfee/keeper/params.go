package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/crosslane/weightfee/modules/apps/weightfee/types"
)

// FeeReceiver retrieves the fee receiver address from the paramstore.
func (k Keeper) FeeReceiver(ctx sdk.Context) string {
	var res string
	k.paramSpace.Get(ctx, types.KeyFeeReceiver, &res)
	return res
}

// FeePerWeight retrieves the canonical fee charged per unit of weight from
// the paramstore.
func (k Keeper) FeePerWeight(ctx sdk.Context) sdk.Dec {
	var res sdk.Dec
	k.paramSpace.Get(ctx, types.KeyFeePerWeight, &res)
	return res
}

// GetParams returns the total set of weightfee parameters.
func (k Keeper) GetParams(ctx sdk.Context) types.Params {
	return types.NewParams(k.FeeReceiver(ctx), k.FeePerWeight(ctx))
}

// SetParams sets the total set of weightfee parameters.
func (k Keeper) SetParams(ctx sdk.Context, params types.Params) {
	k.paramSpace.SetParamSet(ctx, &params)
}
