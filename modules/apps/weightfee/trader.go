package weightfee

import (
	"math"
	"sort"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/tendermint/tendermint/libs/log"

	"github.com/crosslane/weightfee/modules/apps/weightfee/types"
)

// Trader meters the fee for cross-boundary weight and accepts multiple assets
// as payment. It tracks the assets used to pay for weight per (identity,
// exchange price) bucket and can refund them one by one (the refund interface
// only returns one asset per call). Any remaining balance is forwarded to the
// revenue sink on Flush.
//
// A Trader is exclusively owned by the session that created it and must not
// be shared across concurrent executions.
type Trader struct {
	weight uint64
	// paid is kept sorted by (asset identity, price); iteration and refund
	// order is key order, not purchase order.
	paid []paidAsset

	prices      types.PriceResolver
	assets      types.AssetConverter
	weightToFee types.WeightToFee
	revenue     types.RevenueSink
}

type paidAsset struct {
	id     types.AssetID
	price  sdk.Dec
	amount uint64
}

// NewTrader creates a zero-initialized trading session with the given
// collaborators.
func NewTrader(
	prices types.PriceResolver, assets types.AssetConverter,
	weightToFee types.WeightToFee, revenue types.RevenueSink,
) *Trader {
	return &Trader{
		prices:      prices,
		assets:      assets,
		weightToFee: weightToFee,
		revenue:     revenue,
	}
}

// Logger returns a module-specific logger.
func (t *Trader) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", "x/"+types.ModuleName)
}

// BuyWeight tries to buy weight with the first fungible asset in payment.
//
// This is a reasonable strategy as the cross-boundary protocol only presents
// one asset per weight purchase. The fee is determined by the injected
// WeightToFee formula in combination with the price resolved for the offered
// asset. On success the deducted remainder of payment is returned; on failure
// the trader state and the offered payment are left untouched.
func (t *Trader) BuyWeight(ctx sdk.Context, weight uint64, payment types.PaymentAssets) (types.PaymentAssets, error) {
	t.Logger(ctx).Debug("buying weight", "weight", weight, "payment", len(payment))

	asset, ok := payment.FirstFungible()
	if !ok {
		return nil, sdkerrors.Wrap(types.ErrAssetNotFound, "payment offers no fungible asset")
	}

	id, ok := t.assets.ToAssetID(ctx, asset)
	if !ok {
		return nil, sdkerrors.Wrapf(types.ErrAssetNotFound, "no identity for asset %s", asset.Location)
	}

	price, ok := t.prices.Price(ctx, id)
	if !ok {
		return nil, sdkerrors.Wrapf(types.ErrAssetNotFound, "no price for asset %s", asset.Location)
	}

	fee := t.weightToFee.WeightToFee(ctx, weight)
	converted := price.MulInt(fee).TruncateInt()
	if !converted.IsUint64() {
		return nil, sdkerrors.Wrapf(types.ErrOverflow, "fee %s at price %s exceeds the native asset width", fee, price)
	}
	amount := converted.Uint64()

	unused, err := payment.Sub(asset.Location, amount)
	if err != nil {
		return nil, err
	}

	t.weight = saturatingAdd(t.weight, weight)
	t.accrue(id, price, amount)

	return unused, nil
}

// RefundWeight refunds up to weight from the first bucket tracked by the
// trader in (identity, price) order. The refunded amount is capped at the
// bucket's balance; the second return is false when nothing was bought.
// Refunding cannot fail: conversions saturate instead of erroring.
func (t *Trader) RefundWeight(ctx sdk.Context, weight uint64) (types.AssetAmount, bool) {
	t.Logger(ctx).Debug("refunding weight", "weight", weight, "buckets", len(t.paid))

	if weight > t.weight {
		weight = t.weight
	}
	t.weight -= weight // cannot underflow because of the clamp above

	if len(t.paid) == 0 {
		return types.AssetAmount{}, false
	}

	fee := t.weightToFee.WeightToFee(ctx, weight)
	bucket := &t.paid[0]

	converted := uint64(math.MaxUint64)
	if c := bucket.price.MulInt(fee).TruncateInt(); c.IsUint64() {
		converted = c.Uint64()
	}

	refund := converted
	if refund > bucket.amount {
		refund = bucket.amount
	}
	bucket.amount -= refund // cannot underflow because of the cap above

	refunded := types.AssetAmount{ID: bucket.id, Amount: refund}
	if bucket.amount == 0 {
		t.paid = t.paid[1:]
	}

	return refunded, true
}

// Flush forwards every remaining bucket to the revenue sink and clears the
// ledger. It is safe to call on any teardown path: a second call forwards
// nothing, and sink failures are absorbed by the sink contract.
func (t *Trader) Flush(ctx sdk.Context) {
	for _, bucket := range t.paid {
		t.Logger(ctx).Debug("forwarding revenue", "asset", bucket.id, "amount", bucket.amount)
		t.revenue.TakeRevenue(ctx, bucket.id, bucket.amount)
	}
	t.paid = nil
}

// accrue adds amount into the bucket for (id, price), creating it in key
// order if absent. Zero amounts do not create buckets.
func (t *Trader) accrue(id types.AssetID, price sdk.Dec, amount uint64) {
	if amount == 0 {
		return
	}

	i := sort.Search(len(t.paid), func(i int) bool {
		if t.paid[i].id != id {
			return t.paid[i].id > id
		}
		return !t.paid[i].price.LT(price)
	})

	if i < len(t.paid) && t.paid[i].id == id && t.paid[i].price.Equal(price) {
		t.paid[i].amount = saturatingAdd(t.paid[i].amount, amount)
		return
	}

	t.paid = append(t.paid, paidAsset{})
	copy(t.paid[i+1:], t.paid[i:])
	t.paid[i] = paidAsset{id: id, price: price, amount: amount}
}

func saturatingAdd(a, b uint64) uint64 {
	if sum := a + b; sum >= a {
		return sum
	}
	return math.MaxUint64
}
