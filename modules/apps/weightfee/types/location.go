package types

import (
	"fmt"
	"strings"

	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// AssetLocation is the wire-level locator of an accepted asset. Base is the
// asset's identifier on its origin boundary and Path is the ordered sequence
// of boundary hops leading there, joined by "/". A native asset has an empty
// Path.
type AssetLocation struct {
	Path string
	Base string
}

// NewAssetLocation constructs an AssetLocation from a routing path and a base
// identifier.
func NewAssetLocation(path, base string) AssetLocation {
	return AssetLocation{
		Path: path,
		Base: base,
	}
}

// ParseAssetLocation parses a full location string into an AssetLocation.
//
// Examples:
//
// - "lane-0/uatom" => AssetLocation{Path: "lane-0", Base: "uatom"}
// - "lane-0/lane-7/uatom" => AssetLocation{Path: "lane-0/lane-7", Base: "uatom"}
// - "uatom" => AssetLocation{Path: "", Base: "uatom"}
func ParseAssetLocation(rawLocation string) AssetLocation {
	locationSplit := strings.Split(rawLocation, "/")
	if len(locationSplit) == 1 {
		return AssetLocation{Base: rawLocation}
	}

	return AssetLocation{
		Path: strings.Join(locationSplit[:len(locationSplit)-1], "/"),
		Base: locationSplit[len(locationSplit)-1],
	}
}

// String returns the location in the format:
// <path>/<base>
func (l AssetLocation) String() string {
	if l.Path == "" {
		return l.Base
	}
	return fmt.Sprintf("%s/%s", l.Path, l.Base)
}

// IsNative returns true if the asset originates on the local boundary.
func (l AssetLocation) IsNative() bool {
	return l.Path == ""
}

// Validate performs a basic validation of the AssetLocation fields.
func (l AssetLocation) Validate() error {
	if strings.TrimSpace(l.Base) == "" {
		return sdkerrors.Wrap(ErrInvalidLocation, "base identifier cannot be blank")
	}

	if l.Path != "" {
		for _, hop := range strings.Split(l.Path, "/") {
			if strings.TrimSpace(hop) == "" {
				return sdkerrors.Wrapf(ErrInvalidLocation, "path %s contains a blank hop", l.Path)
			}
		}
	}

	return nil
}
