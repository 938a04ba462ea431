package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/pkg/errors"

	"github.com/crosslane/weightfee/modules/apps/weightfee/types"
)

// InitGenesis initializes the weightfee module state from a genesis state.
func (k Keeper) InitGenesis(ctx sdk.Context, state types.GenesisState) {
	k.SetParams(ctx, state.Params)

	for _, asset := range state.RegisteredAssets {
		if err := k.RegisterAsset(ctx, asset); err != nil {
			panic(errors.Wrapf(err, "failed to register asset %d at genesis", asset.Id))
		}
	}
}

// ExportGenesis exports the weightfee module state.
func (k Keeper) ExportGenesis(ctx sdk.Context) *types.GenesisState {
	return types.NewGenesisState(k.GetParams(ctx), k.GetAllRegisteredAssets(ctx))
}
