package types

import (
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// weightfee sentinel errors
var (
	ErrAssetNotFound      = sdkerrors.Register(ModuleName, 2, "no usable asset offered or asset cannot be resolved")
	ErrOverflow           = sdkerrors.Register(ModuleName, 3, "fee conversion does not fit the asset's native width")
	ErrTooExpensive       = sdkerrors.Register(ModuleName, 4, "offered payment does not cover the weight fee")
	ErrInvalidLocation    = sdkerrors.Register(ModuleName, 5, "invalid asset location")
	ErrInvalidAsset       = sdkerrors.Register(ModuleName, 6, "invalid payment asset")
	ErrAssetNotRegistered = sdkerrors.Register(ModuleName, 7, "asset is not registered")
)
