// Package mail sends transactional email (OTP codes, welcome and comment
// notices) through a Mail implementation chosen at startup.
//
// The SMTP driver delivers through a relay. The log driver only records the
// message and is meant for local runs.
package mail
