// Package commands implements the anykeys command line: key generation, signing,
// verification, format conversion, mnemonic derivation and a passphrase protected keystore.
package commands
