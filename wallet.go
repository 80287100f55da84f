// Copyright (c) 2026 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the chainkit library.

package chainkit

import (
	"encoding/hex"

	"github.com/mr-tron/base58"
)

// Wallet holds the key material of a network account. The private key is
// optional: watch-only wallets carry the public key alone. Address and
// signature derivation are left to the network packages.
type Wallet struct {
	publicKey  []byte
	privateKey []byte
}

// NewWallet creates a watch-only Wallet from a public key.
func NewWallet(publicKey []byte) *Wallet {
	return &Wallet{publicKey: publicKey}
}

// NewWalletWithPrivateKey creates a Wallet carrying both keys.
func NewWalletWithPrivateKey(publicKey, privateKey []byte) *Wallet {
	return &Wallet{
		publicKey:  publicKey,
		privateKey: privateKey,
	}
}

// PublicKey returns the wallet's public key bytes.
func (w *Wallet) PublicKey() []byte {
	return w.publicKey
}

// PrivateKey returns the wallet's private key bytes, or nil for a
// watch-only wallet.
func (w *Wallet) PrivateKey() []byte {
	return w.privateKey
}

func (w *Wallet) HasPrivateKey() bool {
	return len(w.privateKey) > 0
}

// PublicKeyHex returns the public key as a lowercase hex string.
func (w *Wallet) PublicKeyHex() string {
	return hex.EncodeToString(w.publicKey)
}

// PublicKeyBase58 returns the public key in base58, the textual form used
// in account listings.
func (w *Wallet) PublicKeyBase58() string {
	return base58.Encode(w.publicKey)
}
