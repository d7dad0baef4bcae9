// Package auth provides local username/password authentication: bcrypt
// credential hashing, SQLite-backed sessions via scs, CSRF protection for
// form posts, and the gin middleware that resolves the current caller.
//
// The package answers "who is asking" only. Ownership checks on books and
// chapters live in the library core and take the requester explicitly.
package auth
