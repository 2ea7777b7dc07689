// Package bootstrap implements the one-time root token minted at startup.
//
// The server has no user accounts of its own; the only way to claim the
// initial root identity is to present the secret printed in the startup log.
// Redemption is a single atomic pending-to-consumed transition: under
// concurrent attempts exactly one caller wins, and the token can never be
// redeemed again for the life of the process.
package bootstrap
