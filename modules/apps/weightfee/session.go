package weightfee

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// WithSession runs fn against the trader and guarantees the trader is flushed
// on every exit path: normal return, error return, or panic unwind. Collected
// revenue is therefore never silently lost, regardless of how the session
// terminates.
func WithSession(ctx sdk.Context, trader *Trader, fn func(*Trader) error) error {
	defer trader.Flush(ctx)
	return fn(trader)
}
