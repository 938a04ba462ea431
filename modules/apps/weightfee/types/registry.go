package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	yaml "gopkg.in/yaml.v2"
)

// RegisteredAsset is the registry record for an accepted asset: its internal
// identity, its wire location, the domain-level denomination revenue is
// disbursed in, and its current exchange price.
type RegisteredAsset struct {
	Id       AssetID       `yaml:"id"`
	Location AssetLocation `yaml:"location"`
	Denom    string        `yaml:"denom"`
	Price    sdk.Dec       `yaml:"price"`
}

// NewRegisteredAsset constructs a RegisteredAsset.
func NewRegisteredAsset(id AssetID, location AssetLocation, denom string, price sdk.Dec) RegisteredAsset {
	return RegisteredAsset{
		Id:       id,
		Location: location,
		Denom:    denom,
		Price:    price,
	}
}

// Validate performs a basic validation of the RegisteredAsset fields.
func (a RegisteredAsset) Validate() error {
	if err := a.Location.Validate(); err != nil {
		return err
	}

	if err := sdk.ValidateDenom(a.Denom); err != nil {
		return sdkerrors.Wrapf(err, "invalid denomination for asset %d", a.Id)
	}

	if a.Price.IsNil() || a.Price.IsNegative() {
		return sdkerrors.Wrapf(sdkerrors.ErrInvalidRequest, "exchange price for asset %d must be non-negative", a.Id)
	}

	return nil
}

// String returns the RegisteredAsset in yaml format.
func (a RegisteredAsset) String() string {
	out, _ := yaml.Marshal(registeredAssetPretty{
		Id:       uint32(a.Id),
		Location: a.Location.String(),
		Denom:    a.Denom,
		Price:    a.Price.String(),
	})
	return string(out)
}

type registeredAssetPretty struct {
	Id       uint32 `yaml:"id"`
	Location string `yaml:"location"`
	Denom    string `yaml:"denom"`
	Price    string `yaml:"price"`
}
