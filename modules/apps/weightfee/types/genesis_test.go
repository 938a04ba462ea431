package types

import (
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"
)

func TestGenesisStateValidate(t *testing.T) {
	var genesisState GenesisState

	testCases := []struct {
		name     string
		malleate func()
		expPass  bool
	}{
		{
			"default genesis",
			func() { genesisState = *DefaultGenesisState() },
			true,
		},
		{
			"valid genesis with registered assets",
			func() {},
			true,
		},
		{
			"invalid params",
			func() { genesisState.Params.FeePerWeight = sdk.NewDec(-1) },
			false,
		},
		{
			"invalid asset location",
			func() { genesisState.RegisteredAssets[0].Location = AssetLocation{} },
			false,
		},
		{
			"invalid asset denom",
			func() { genesisState.RegisteredAssets[0].Denom = "" },
			false,
		},
		{
			"negative asset price",
			func() { genesisState.RegisteredAssets[0].Price = sdk.NewDec(-1) },
			false,
		},
		{
			"duplicate asset identity",
			func() {
				genesisState.RegisteredAssets[1].Id = genesisState.RegisteredAssets[0].Id
			},
			false,
		},
		{
			"duplicate asset location",
			func() {
				genesisState.RegisteredAssets[1].Location = genesisState.RegisteredAssets[0].Location
			},
			false,
		},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			genesisState = *NewGenesisState(DefaultParams(), []RegisteredAsset{
				NewRegisteredAsset(0, NewAssetLocation("", "ucore"), "ucore", sdk.OneDec()),
				NewRegisteredAsset(123, NewAssetLocation("lane-0", "utest"), "utest", sdk.NewDecWithPrec(5, 1)),
			})

			tc.malleate()

			err := genesisState.Validate()

			if tc.expPass {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
			}
		})
	}
}
