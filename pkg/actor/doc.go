// Package actor resolves request credentials into a trusted identity.
//
// An Actor is an opaque string-keyed mapping carried in the request context.
// The Resolver middleware inspects each request exactly once, in strict
// precedence order:
//
//  1. Authorization: Bearer dstok_<envelope> - verified under the "token"
//     namespace. A present-but-invalid token resolves to anonymous without
//     consulting the cookie.
//  2. The signed ds_actor cookie - verified under the "actor" namespace.
//  3. Neither: anonymous.
//
// Both credential shapes carry an optional expiry: the session cookie as a
// base62-encoded epoch string, the API token as a raw epoch integer (null
// for no expiry). Expired or malformed payloads resolve to anonymous; the
// pipeline never distinguishes forgery from absence.
//
// Identities resolved from an API token carry a "token" marker attribute so
// downstream policy can tell the two credential sources apart.
package actor
