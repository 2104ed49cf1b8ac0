// Package secretbox seals short strings into authenticated tokens and opens them again.
//
// Tokens use AES-256-GCM with a fresh 16-byte random nonce per call and are laid out as
//
//	<32 hex nonce>:<32 hex tag>:<hex ciphertext>
//
// The key is derived once per Keyring, as SHA-256 of the configured secret.
// Outside production a missing secret yields a random in-memory key instead;
// tokens sealed with it cannot be opened by any other process.
//
// Deterministic tokens use AES-SIV through Tink, keyed with an HKDF subkey,
// and are plain hex without delimiters.
package secretbox
