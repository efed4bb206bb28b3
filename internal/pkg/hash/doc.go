// Package hash wraps password hashing behind the Hash interface.
//
// Only the bcrypt implementation ships. The optional pepper is appended to the
// plaintext before hashing, so changing it invalidates every stored password.
package hash
