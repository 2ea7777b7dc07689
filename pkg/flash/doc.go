// Package flash carries one-shot user-facing messages across a redirect.
//
// Messages live in the signed ds_messages cookie as an ordered JSON array of
// [text, level] pairs, verified under the "messages" namespace. Add appends
// to any pending messages; Pop reads the whole set and clears the cookie in
// the same response, so each message is displayed at most once. A cookie
// that fails verification is treated as empty, never as an error.
package flash
