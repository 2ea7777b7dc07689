// Package auth mounts the authentication endpoints of the server: root
// bootstrap redemption, API token issuance, logout, and actor introspection.
//
// The module owns no identity state. Identities live in signed client-held
// cookies and bearer tokens; the only mutable server state it touches is the
// process-lifetime one-time bootstrap token. CSRF verification for the POST
// endpoints is delegated to an external collaborator supplied via
// RouterOptions.
package auth
