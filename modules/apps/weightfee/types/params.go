package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	paramtypes "github.com/cosmos/cosmos-sdk/x/params/types"
	yaml "gopkg.in/yaml.v2"
)

// DefaultFeeReceiver is empty: collected revenue stays in the module escrow
// account until a receiver is configured.
const DefaultFeeReceiver = ""

var (
	// KeyFeeReceiver is store's key for the FeeReceiver Param
	KeyFeeReceiver = []byte("FeeReceiver")
	// KeyFeePerWeight is store's key for the FeePerWeight Param
	KeyFeePerWeight = []byte("FeePerWeight")

	// DefaultFeePerWeight charges one canonical fee unit per unit of weight.
	DefaultFeePerWeight = sdk.OneDec()
)

// Params holds the weightfee module parameters.
type Params struct {
	// FeeReceiver is the bech32 address revenue is deposited to. When empty,
	// forwarded revenue is left in the module escrow account.
	FeeReceiver string `yaml:"fee_receiver"`
	// FeePerWeight is the canonical fee charged per unit of weight.
	FeePerWeight sdk.Dec `yaml:"fee_per_weight"`
}

// NewParams creates a new parameter configuration for the weightfee module.
func NewParams(feeReceiver string, feePerWeight sdk.Dec) Params {
	return Params{
		FeeReceiver:  feeReceiver,
		FeePerWeight: feePerWeight,
	}
}

// DefaultParams is the default parameter configuration for the weightfee
// module.
func DefaultParams() Params {
	return NewParams(DefaultFeeReceiver, DefaultFeePerWeight)
}

// Validate all weightfee module parameters.
func (p Params) Validate() error {
	if err := validateFeeReceiver(p.FeeReceiver); err != nil {
		return err
	}
	return validateFeePerWeight(p.FeePerWeight)
}

// ParamKeyTable type declaration for parameters.
func ParamKeyTable() paramtypes.KeyTable {
	return paramtypes.NewKeyTable().RegisterParamSet(&Params{})
}

// ParamSetPairs implements params.ParamSet.
func (p *Params) ParamSetPairs() paramtypes.ParamSetPairs {
	return paramtypes.ParamSetPairs{
		paramtypes.NewParamSetPair(KeyFeeReceiver, &p.FeeReceiver, validateFeeReceiver),
		paramtypes.NewParamSetPair(KeyFeePerWeight, &p.FeePerWeight, validateFeePerWeight),
	}
}

// String returns the Params in yaml format.
func (p Params) String() string {
	out, _ := yaml.Marshal(p)
	return string(out)
}

func validateFeeReceiver(i interface{}) error {
	receiver, ok := i.(string)
	if !ok {
		return fmt.Errorf("invalid parameter type: %T", i)
	}

	if receiver == "" {
		return nil
	}

	if _, err := sdk.AccAddressFromBech32(receiver); err != nil {
		return fmt.Errorf("invalid fee receiver address: %w", err)
	}

	return nil
}

func validateFeePerWeight(i interface{}) error {
	fee, ok := i.(sdk.Dec)
	if !ok {
		return fmt.Errorf("invalid parameter type: %T", i)
	}

	if fee.IsNil() || fee.IsNegative() {
		return fmt.Errorf("fee per weight must be non-negative: %s", fee)
	}

	return nil
}
