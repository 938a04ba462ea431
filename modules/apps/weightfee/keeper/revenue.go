package keeper

import (
	"strconv"

	metrics "github.com/armon/go-metrics"

	"github.com/cosmos/cosmos-sdk/telemetry"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/crosslane/weightfee/modules/apps/weightfee/types"
)

// TakeRevenue implements types.RevenueSink by depositing the amount with the
// configured fee receiver, moving it out of the module escrow account.
//
// It runs on session teardown paths and must not fail: unresolved
// identities, a missing or invalid receiver, and deposit failures are logged
// and swallowed.
func (k Keeper) TakeRevenue(ctx sdk.Context, id types.AssetID, amount uint64) {
	logger := k.Logger(ctx)

	if amount == 0 {
		return
	}

	denom, found := k.ToDenom(ctx, id)
	if !found {
		logger.Error("could not take revenue: asset is not registered", "asset", id, "amount", amount)
		return
	}

	receiver := k.FeeReceiver(ctx)
	if receiver == "" {
		logger.Info(
			"no fee receiver configured, leaving revenue in the module account",
			"account", k.authKeeper.GetModuleAddress(types.ModuleName).String(),
			"denom", denom, "amount", amount,
		)
		return
	}

	receiverAddr, err := sdk.AccAddressFromBech32(receiver)
	if err != nil {
		logger.Error("could not take revenue: invalid fee receiver address", "receiver", receiver, "err", err)
		return
	}

	revenue := sdk.NewCoins(sdk.NewCoin(denom, sdk.NewIntFromUint64(amount)))
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, receiverAddr, revenue); err != nil {
		logger.Error("could not deposit revenue with the fee receiver", "denom", denom, "amount", amount, "err", err)
		return
	}

	telemetry.IncrCounterWithLabels(
		[]string{types.ModuleName, "revenue"},
		float32(amount),
		[]metrics.Label{telemetry.NewLabel("denom", denom)},
	)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeTakeRevenue,
			sdk.NewAttribute(types.AttributeKeyDenom, denom),
			sdk.NewAttribute(types.AttributeKeyAmount, strconv.FormatUint(amount, 10)),
			sdk.NewAttribute(types.AttributeKeyReceiver, receiver),
		),
	)
}
