// Package jwt issues and verifies the HS512 tokens used by the HTTP layer.
//
// Two kinds of token share one Claims type and are told apart by Purpose:
//   - session tokens identify a signed-in user.
//   - verification tokens prove that a caller just passed an OTP check for an
//     email address. They carry no user ID and expire quickly.
//
// The package also provides context helpers for storing and retrieving the
// authenticated claims.
package jwt
