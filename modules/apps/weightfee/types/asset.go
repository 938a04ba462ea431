package types

import (
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// AssetID is the internal identity of an accepted asset. It is assigned when
// the asset is registered and maps one-to-one to a wire AssetLocation.
type AssetID uint32

// AssetAmount pairs an internal asset identity with a quantity expressed in
// the asset's native units.
type AssetAmount struct {
	ID     AssetID
	Amount uint64
}

// PaymentAsset is a single asset offered as payment on the wire: a location
// together with either a fungible amount or a non-fungible instance
// identifier.
type PaymentAsset struct {
	Location AssetLocation
	Fungible bool
	// Amount is the offered quantity of a fungible asset.
	Amount uint64
	// Instance identifies a non-fungible asset instance.
	Instance string
}

// NewFungiblePaymentAsset constructs a fungible PaymentAsset.
func NewFungiblePaymentAsset(location AssetLocation, amount uint64) PaymentAsset {
	return PaymentAsset{
		Location: location,
		Fungible: true,
		Amount:   amount,
	}
}

// NewNonFungiblePaymentAsset constructs a non-fungible PaymentAsset.
func NewNonFungiblePaymentAsset(location AssetLocation, instance string) PaymentAsset {
	return PaymentAsset{
		Location: location,
		Instance: instance,
	}
}

// Validate performs a basic validation of the PaymentAsset fields.
func (a PaymentAsset) Validate() error {
	if err := a.Location.Validate(); err != nil {
		return err
	}

	if !a.Fungible && a.Instance == "" {
		return sdkerrors.Wrapf(ErrInvalidAsset, "non-fungible asset %s must carry an instance identifier", a.Location)
	}

	if a.Fungible && a.Instance != "" {
		return sdkerrors.Wrapf(ErrInvalidAsset, "fungible asset %s cannot carry an instance identifier", a.Location)
	}

	return nil
}

// PaymentAssets is a collection of assets offered as payment. The slice order
// is the caller-supplied offer order and is significant: fee selection takes
// the first fungible element.
type PaymentAssets []PaymentAsset

// FirstFungible returns the first fungible asset in offer order, if any.
// Non-fungible assets are skipped, they are never usable as weight payment.
func (p PaymentAssets) FirstFungible() (PaymentAsset, bool) {
	for _, asset := range p {
		if asset.Fungible {
			return asset, true
		}
	}
	return PaymentAsset{}, false
}

// Sub deducts amount units of the fungible asset at the given location and
// returns the remaining payment. The receiver is left untouched: the
// remainder is always a fresh collection, and on an insufficient balance
// ErrTooExpensive is returned without any deduction.
func (p PaymentAssets) Sub(location AssetLocation, amount uint64) (PaymentAssets, error) {
	available := uint64(0)
	for _, asset := range p {
		if asset.Fungible && asset.Location == location {
			available += asset.Amount
		}
	}
	if available < amount {
		return nil, sdkerrors.Wrapf(
			ErrTooExpensive, "payment holds %d of %s, require %d", available, location, amount,
		)
	}

	remainder := make(PaymentAssets, 0, len(p))
	remaining := amount
	for _, asset := range p {
		if remaining > 0 && asset.Fungible && asset.Location == location {
			if asset.Amount <= remaining {
				remaining -= asset.Amount
				continue
			}
			asset.Amount -= remaining
			remaining = 0
		}
		remainder = append(remainder, asset)
	}

	return remainder, nil
}

// IsEmpty returns true if the payment holds no assets.
func (p PaymentAssets) IsEmpty() bool {
	return len(p) == 0
}
