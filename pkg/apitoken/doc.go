// Package apitoken mints bearer API tokens and validates expiry requests.
//
// A token is a signed envelope under the "token" namespace, carried as
// "Authorization: Bearer dstok_<envelope>". The server keeps no record of
// issued tokens: a token is shown once at minting time and is valid until
// its embedded expiry, or forever when minted without one.
package apitoken
