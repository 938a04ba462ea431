package keeper

import (
	"strconv"

	"github.com/tendermint/tendermint/libs/log"

	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	paramtypes "github.com/cosmos/cosmos-sdk/x/params/types"

	"github.com/crosslane/weightfee/modules/apps/weightfee/types"
)

// Keeper owns the registered-asset registry and provides the reference
// implementations of the trader collaborators: price resolution, asset
// identity conversion, the weight fee formula, and the revenue sink.
type Keeper struct {
	storeKey   sdk.StoreKey
	cdc        *codec.LegacyAmino
	paramSpace paramtypes.Subspace

	authKeeper types.AccountKeeper
	bankKeeper types.BankKeeper
}

var (
	_ types.PriceResolver  = Keeper{}
	_ types.AssetConverter = Keeper{}
	_ types.WeightToFee    = Keeper{}
	_ types.RevenueSink    = Keeper{}
)

// NewKeeper creates a new weightfee Keeper instance
func NewKeeper(
	cdc *codec.LegacyAmino, key sdk.StoreKey, paramSpace paramtypes.Subspace,
	authKeeper types.AccountKeeper, bankKeeper types.BankKeeper,
) Keeper {
	// set KeyTable if it has not already been set
	if !paramSpace.HasKeyTable() {
		paramSpace = paramSpace.WithKeyTable(types.ParamKeyTable())
	}

	return Keeper{
		cdc:        cdc,
		storeKey:   key,
		paramSpace: paramSpace,
		authKeeper: authKeeper,
		bankKeeper: bankKeeper,
	}
}

// Logger returns a module-specific logger.
func (k Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", "x/"+types.ModuleName)
}

// RegisterAsset validates and stores a registered asset record and emits a
// registration event. Re-registering an identity replaces its record.
func (k Keeper) RegisterAsset(ctx sdk.Context, asset types.RegisteredAsset) error {
	if err := asset.Validate(); err != nil {
		return err
	}

	if id, found := k.GetAssetIDByLocation(ctx, asset.Location); found && id != asset.Id {
		return sdkerrors.Wrapf(sdkerrors.ErrInvalidRequest, "location %s is already registered to asset %d", asset.Location, id)
	}

	k.SetRegisteredAsset(ctx, asset)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRegisterAsset,
			sdk.NewAttribute(types.AttributeKeyAssetID, strconv.FormatUint(uint64(asset.Id), 10)),
			sdk.NewAttribute(types.AttributeKeyLocation, asset.Location.String()),
			sdk.NewAttribute(types.AttributeKeyDenom, asset.Denom),
			sdk.NewAttribute(types.AttributeKeyPrice, asset.Price.String()),
		),
	)

	return nil
}

// SetRegisteredAsset stores a registered asset record and its location
// reverse index. A stale reverse index from a previous location is removed.
func (k Keeper) SetRegisteredAsset(ctx sdk.Context, asset types.RegisteredAsset) {
	store := ctx.KVStore(k.storeKey)

	if existing, found := k.GetRegisteredAsset(ctx, asset.Id); found && existing.Location != asset.Location {
		store.Delete(types.AssetLocationKey(existing.Location))
	}

	store.Set(types.RegisteredAssetKey(asset.Id), k.cdc.MustMarshalJSON(&asset))
	store.Set(types.AssetLocationKey(asset.Location), sdk.Uint64ToBigEndian(uint64(asset.Id)))
}

// GetRegisteredAsset retrieves the registered asset record for the given
// identity.
func (k Keeper) GetRegisteredAsset(ctx sdk.Context, id types.AssetID) (types.RegisteredAsset, bool) {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.RegisteredAssetKey(id))
	if bz == nil {
		return types.RegisteredAsset{}, false
	}

	var asset types.RegisteredAsset
	k.cdc.MustUnmarshalJSON(bz, &asset)
	return asset, true
}

// HasRegisteredAsset returns true if an asset record exists for the given
// identity.
func (k Keeper) HasRegisteredAsset(ctx sdk.Context, id types.AssetID) bool {
	store := ctx.KVStore(k.storeKey)
	return store.Has(types.RegisteredAssetKey(id))
}

// DeleteRegisteredAsset removes an asset record and its location reverse
// index.
func (k Keeper) DeleteRegisteredAsset(ctx sdk.Context, id types.AssetID) {
	asset, found := k.GetRegisteredAsset(ctx, id)
	if !found {
		return
	}

	store := ctx.KVStore(k.storeKey)
	store.Delete(types.RegisteredAssetKey(id))
	store.Delete(types.AssetLocationKey(asset.Location))
}

// GetAssetIDByLocation resolves the internal identity registered for the
// given wire location.
func (k Keeper) GetAssetIDByLocation(ctx sdk.Context, location types.AssetLocation) (types.AssetID, bool) {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.AssetLocationKey(location))
	if bz == nil {
		return 0, false
	}
	return types.AssetID(sdk.BigEndianToUint64(bz)), true
}

// SetAssetPrice refreshes the exchange price of an already-registered asset.
func (k Keeper) SetAssetPrice(ctx sdk.Context, id types.AssetID, price sdk.Dec) error {
	asset, found := k.GetRegisteredAsset(ctx, id)
	if !found {
		return sdkerrors.Wrapf(types.ErrAssetNotRegistered, "asset %d", id)
	}

	asset.Price = price
	return k.RegisterAsset(ctx, asset)
}

// IterateRegisteredAssets iterates over all registered assets in identity
// order, calling cb for each; iteration stops when cb returns true.
func (k Keeper) IterateRegisteredAssets(ctx sdk.Context, cb func(asset types.RegisteredAsset) bool) {
	store := ctx.KVStore(k.storeKey)
	iterator := sdk.KVStorePrefixIterator(store, []byte(types.RegisteredAssetKeyPrefix))

	defer iterator.Close()
	for ; iterator.Valid(); iterator.Next() {
		var asset types.RegisteredAsset
		k.cdc.MustUnmarshalJSON(iterator.Value(), &asset)

		if cb(asset) {
			break
		}
	}
}

// GetAllRegisteredAssets returns every registered asset in identity order.
// Used in ExportGenesis.
func (k Keeper) GetAllRegisteredAssets(ctx sdk.Context) []types.RegisteredAsset {
	assets := []types.RegisteredAsset{}
	k.IterateRegisteredAssets(ctx, func(asset types.RegisteredAsset) bool {
		assets = append(assets, asset)
		return false
	})
	return assets
}
