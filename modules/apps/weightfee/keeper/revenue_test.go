package keeper_test

import (
	"fmt"

	"github.com/cosmos/cosmos-sdk/crypto/keys/secp256k1"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/crosslane/weightfee/modules/apps/weightfee/types"
)

func (suite *KeeperTestSuite) setFeeReceiver() sdk.AccAddress {
	receiver := sdk.AccAddress(secp256k1.GenPrivKey().PubKey().Address())
	params := suite.keeper.GetParams(suite.ctx)
	params.FeeReceiver = receiver.String()
	suite.keeper.SetParams(suite.ctx, params)
	return receiver
}

func (suite *KeeperTestSuite) TestTakeRevenue() {
	suite.Require().NoError(suite.keeper.RegisterAsset(suite.ctx, coreAsset))
	receiver := suite.setFeeReceiver()

	suite.keeper.TakeRevenue(suite.ctx, coreAsset.Id, 1234)

	suite.Require().Len(suite.bank.transfers, 1)
	transfer := suite.bank.transfers[0]
	suite.Require().Equal(types.ModuleName, transfer.senderModule)
	suite.Require().Equal(receiver, transfer.recipient)
	suite.Require().Equal(sdk.NewCoins(sdk.NewInt64Coin(coreAsset.Denom, 1234)), transfer.amt)

	// deposit emits a take_revenue event
	var found bool
	for _, event := range suite.ctx.EventManager().Events() {
		if event.Type == types.EventTypeTakeRevenue {
			found = true
		}
	}
	suite.Require().True(found)
}

func (suite *KeeperTestSuite) TestTakeRevenueZeroAmount() {
	suite.Require().NoError(suite.keeper.RegisterAsset(suite.ctx, coreAsset))
	suite.setFeeReceiver()

	suite.keeper.TakeRevenue(suite.ctx, coreAsset.Id, 0)
	suite.Require().Empty(suite.bank.transfers)
}

func (suite *KeeperTestSuite) TestTakeRevenueUnregisteredAsset() {
	suite.setFeeReceiver()

	suite.keeper.TakeRevenue(suite.ctx, 999, 1234)
	suite.Require().Empty(suite.bank.transfers)
}

func (suite *KeeperTestSuite) TestTakeRevenueNoReceiverConfigured() {
	suite.Require().NoError(suite.keeper.RegisterAsset(suite.ctx, coreAsset))

	suite.keeper.TakeRevenue(suite.ctx, coreAsset.Id, 1234)
	suite.Require().Empty(suite.bank.transfers)
}

// deposit failures are swallowed, revenue forwarding must never abort
// teardown
func (suite *KeeperTestSuite) TestTakeRevenueDepositFailure() {
	suite.Require().NoError(suite.keeper.RegisterAsset(suite.ctx, coreAsset))
	suite.setFeeReceiver()
	suite.bank.err = fmt.Errorf("account is blocked")

	suite.Require().NotPanics(func() {
		suite.keeper.TakeRevenue(suite.ctx, coreAsset.Id, 1234)
	})
	suite.Require().Empty(suite.bank.transfers)
}
