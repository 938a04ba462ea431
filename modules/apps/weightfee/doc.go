/*
Package weightfee meters the fee charged for executing cross-boundary weight
and accepts multiple fungible assets as payment.

The package centers on the Trader, a session-scoped ledger that buys weight
against an offered payment, refunds unconsumed weight one asset bucket at a
time, and forwards any unrefunded balance to a revenue sink exactly once when
the session ends. Exchange prices, asset identity conversion, the weight fee
formula, and revenue disbursal are pluggable collaborators injected at
construction; the keeper subpackage provides reference implementations backed
by an on-chain asset registry and the bank module.
*/
package weightfee
