package keeper_test

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/crosslane/weightfee/modules/apps/weightfee/types"
)

func (suite *KeeperTestSuite) TestGenesisRoundTrip() {
	genesisState := types.NewGenesisState(
		types.NewParams("", sdk.NewDecWithPrec(5, 1)),
		[]types.RegisteredAsset{coreAsset, testAsset, cheapAsset},
	)

	suite.keeper.InitGenesis(suite.ctx, *genesisState)

	exported := suite.keeper.ExportGenesis(suite.ctx)
	suite.Require().Equal(genesisState, exported)
}

func (suite *KeeperTestSuite) TestInitGenesisInvalidAssetPanics() {
	invalid := coreAsset
	invalid.Price = sdk.NewDec(-1)

	suite.Require().Panics(func() {
		suite.keeper.InitGenesis(suite.ctx, *types.NewGenesisState(
			types.DefaultParams(),
			[]types.RegisteredAsset{invalid},
		))
	})
}
