package keeper_test

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	weightfee "github.com/crosslane/weightfee/modules/apps/weightfee"
	"github.com/crosslane/weightfee/modules/apps/weightfee/types"
)

// exercises a full metering session against the keeper-backed collaborators:
// buy, partial refund, and scope-exit flush into the bank-backed revenue
// sink.
func (suite *KeeperTestSuite) TestTraderSession() {
	suite.Require().NoError(suite.keeper.RegisterAsset(suite.ctx, coreAsset))
	suite.Require().NoError(suite.keeper.RegisterAsset(suite.ctx, testAsset))
	receiver := suite.setFeeReceiver()

	trader := weightfee.NewTrader(suite.keeper, suite.keeper, suite.keeper, suite.keeper)

	err := weightfee.WithSession(suite.ctx, trader, func(tr *weightfee.Trader) error {
		payment := types.PaymentAssets{types.NewFungiblePaymentAsset(coreAsset.Location, 1_000)}
		unused, err := tr.BuyWeight(suite.ctx, 1_000, payment)
		suite.Require().NoError(err)
		suite.Require().True(unused.IsEmpty())

		refund, ok := tr.RefundWeight(suite.ctx, 250)
		suite.Require().True(ok)
		suite.Require().Equal(types.AssetAmount{ID: coreAsset.Id, Amount: 250}, refund)

		return nil
	})
	suite.Require().NoError(err)

	suite.Require().Len(suite.bank.transfers, 1)
	transfer := suite.bank.transfers[0]
	suite.Require().Equal(receiver, transfer.recipient)
	suite.Require().Equal(sdk.NewCoins(sdk.NewInt64Coin(coreAsset.Denom, 750)), transfer.amt)
}
