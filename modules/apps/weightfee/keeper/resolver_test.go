package keeper_test

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/crosslane/weightfee/modules/apps/weightfee/types"
)

func (suite *KeeperTestSuite) TestPrice() {
	suite.Require().NoError(suite.keeper.RegisterAsset(suite.ctx, testAsset))

	price, found := suite.keeper.Price(suite.ctx, testAsset.Id)
	suite.Require().True(found)
	suite.Require().Equal(testAsset.Price, price)

	_, found = suite.keeper.Price(suite.ctx, 999)
	suite.Require().False(found)
}

func (suite *KeeperTestSuite) TestToAssetID() {
	suite.Require().NoError(suite.keeper.RegisterAsset(suite.ctx, testAsset))

	id, found := suite.keeper.ToAssetID(suite.ctx, types.NewFungiblePaymentAsset(testAsset.Location, 100))
	suite.Require().True(found)
	suite.Require().Equal(testAsset.Id, id)

	// non-fungible assets never resolve
	_, found = suite.keeper.ToAssetID(suite.ctx, types.NewNonFungiblePaymentAsset(testAsset.Location, "instance-1"))
	suite.Require().False(found)

	// invalid locations never resolve
	_, found = suite.keeper.ToAssetID(suite.ctx, types.NewFungiblePaymentAsset(types.AssetLocation{}, 100))
	suite.Require().False(found)

	// unregistered locations never resolve
	_, found = suite.keeper.ToAssetID(suite.ctx, types.NewFungiblePaymentAsset(types.NewAssetLocation("lane-9", "unobody"), 100))
	suite.Require().False(found)
}

func (suite *KeeperTestSuite) TestToDenom() {
	suite.Require().NoError(suite.keeper.RegisterAsset(suite.ctx, testAsset))

	denom, found := suite.keeper.ToDenom(suite.ctx, testAsset.Id)
	suite.Require().True(found)
	suite.Require().Equal(testAsset.Denom, denom)

	_, found = suite.keeper.ToDenom(suite.ctx, 999)
	suite.Require().False(found)
}

func (suite *KeeperTestSuite) TestWeightToFee() {
	params := suite.keeper.GetParams(suite.ctx)
	params.FeePerWeight = sdk.NewDecWithPrec(5, 1)
	suite.keeper.SetParams(suite.ctx, params)

	fee := suite.keeper.WeightToFee(suite.ctx, 1_000)
	suite.Require().Equal(sdk.NewInt(500), fee)

	// the canonical fee truncates toward zero
	fee = suite.keeper.WeightToFee(suite.ctx, 3)
	suite.Require().Equal(sdk.NewInt(1), fee)

	fee = suite.keeper.WeightToFee(suite.ctx, 0)
	suite.Require().True(fee.IsZero())
}
