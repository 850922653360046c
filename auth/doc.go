// Package auth implements the vendor token provider: configuration-selected
// token-exchange strategies and API-key decoding. Tokens are minted per
// operation and never cached.
package auth
