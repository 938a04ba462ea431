package types

import (
	"fmt"
	"strconv"
	"strings"

	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

const (
	// ModuleName defines the weightfee module name
	ModuleName = "weightfee"

	// StoreKey is the store key string for the weightfee module
	StoreKey = ModuleName

	// RegisteredAssetKeyPrefix is the key prefix for registered asset records
	RegisteredAssetKeyPrefix = "registeredAsset"

	// AssetLocationKeyPrefix is the key prefix for the location -> asset id
	// reverse index
	AssetLocationKeyPrefix = "assetLocation"
)

// RegisteredAssetKey returns the key that stores the registered asset record
// for the given internal asset identity.
func RegisteredAssetKey(id AssetID) []byte {
	return []byte(fmt.Sprintf("%s/%s", RegisteredAssetKeyPrefix, formatAssetID(id)))
}

// ParseKeyRegisteredAsset parses the key used to store a registered asset
// record and returns the asset identity.
func ParseKeyRegisteredAsset(key string) (AssetID, error) {
	keySplit := strings.Split(key, "/")
	if len(keySplit) != 2 {
		return 0, sdkerrors.Wrapf(
			sdkerrors.ErrLogic, "key provided is incorrect: the key split has incorrect length, expected %d, got %d", 2, len(keySplit),
		)
	}

	if keySplit[0] != RegisteredAssetKeyPrefix {
		return 0, sdkerrors.Wrapf(sdkerrors.ErrLogic, "key prefix is incorrect: expected %s, got %s", RegisteredAssetKeyPrefix, keySplit[0])
	}

	return parseAssetID(keySplit[1])
}

// AssetLocationKey returns the key that stores the asset identity for the
// given wire location.
func AssetLocationKey(location AssetLocation) []byte {
	return []byte(fmt.Sprintf("%s/%s", AssetLocationKeyPrefix, location.String()))
}

// formatAssetID renders an asset identity as fixed-width hex so that store
// iteration order matches numeric identity order.
func formatAssetID(id AssetID) string {
	return fmt.Sprintf("%08x", uint32(id))
}

func parseAssetID(s string) (AssetID, error) {
	if len(s) != 8 {
		return 0, sdkerrors.Wrapf(sdkerrors.ErrLogic, "invalid asset identity segment %s", s)
	}
	id, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, sdkerrors.Wrapf(sdkerrors.ErrLogic, "invalid asset identity segment %s", s)
	}
	return AssetID(id), nil
}
