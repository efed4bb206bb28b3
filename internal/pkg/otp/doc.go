// Package otp issues and verifies short numeric one-time codes sent to an
// email address.
//
// A code lives under a single key per address ("otp:<email>") in a store with
// per-key expiry. While a code is outstanding the address cannot request a new
// one. A code is single-use: a successful verification removes it.
package otp
