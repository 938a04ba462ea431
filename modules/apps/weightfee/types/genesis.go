package types

import (
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// NewGenesisState creates a weightfee GenesisState instance.
func NewGenesisState(params Params, registeredAssets []RegisteredAsset) *GenesisState {
	return &GenesisState{
		Params:           params,
		RegisteredAssets: registeredAssets,
	}
}

// GenesisState defines the weightfee module's genesis state: the module
// parameters and the set of accepted assets.
type GenesisState struct {
	Params           Params            `yaml:"params"`
	RegisteredAssets []RegisteredAsset `yaml:"registered_assets"`
}

// DefaultGenesisState returns a default instance of the weightfee
// GenesisState.
func DefaultGenesisState() *GenesisState {
	return &GenesisState{
		Params:           DefaultParams(),
		RegisteredAssets: []RegisteredAsset{},
	}
}

// Validate performs basic genesis state validation returning an error upon
// any failure.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}

	seenIDs := make(map[AssetID]bool)
	seenLocations := make(map[AssetLocation]bool)
	for _, asset := range gs.RegisteredAssets {
		if err := asset.Validate(); err != nil {
			return err
		}

		if seenIDs[asset.Id] {
			return sdkerrors.Wrapf(sdkerrors.ErrInvalidRequest, "duplicate asset identity %d", asset.Id)
		}
		if seenLocations[asset.Location] {
			return sdkerrors.Wrapf(sdkerrors.ErrInvalidRequest, "duplicate asset location %s", asset.Location)
		}

		seenIDs[asset.Id] = true
		seenLocations[asset.Location] = true
	}

	return nil
}
