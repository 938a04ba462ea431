package types

// weightfee module event types and attribute keys
const (
	EventTypeRegisterAsset = "register_asset"
	EventTypeTakeRevenue   = "take_revenue"

	AttributeKeyAssetID  = "asset_id"
	AttributeKeyLocation = "location"
	AttributeKeyDenom    = "denom"
	AttributeKeyPrice    = "price"
	AttributeKeyAmount   = "amount"
	AttributeKeyReceiver = "receiver"

	AttributeValueCategory = ModuleName
)
