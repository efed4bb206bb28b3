// Package clock hides time.Now behind Clocker so expiry math can be tested
// with a manual clock.
package clock
