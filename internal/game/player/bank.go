package player

import (
	"strconv"

	"github.com/albion-rpg/albion/internal/game/gameerr"
)

// AccountCount is the number of bank accounts besides the wallet.
const AccountCount = 4

// Bank holds a player's gold: a wallet and four numbered accounts.
//
// Invariant: every balance is >= 0.
type Bank struct {
	Wallet   int `yaml:"wallet"`
	Account1 int `yaml:"account1"`
	Account2 int `yaml:"account2"`
	Account3 int `yaml:"account3"`
	Account4 int `yaml:"account4"`
}

// NewBank returns a bank with the starting wallet and empty accounts.
func NewBank() Bank {
	return Bank{Wallet: StartingGold}
}

// account returns a pointer to the numbered account balance.
//
// Postcondition: ok is false unless 1 <= n <= AccountCount.
func (b *Bank) account(n int) (*int, bool) {
	switch n {
	case 1:
		return &b.Account1, true
	case 2:
		return &b.Account2, true
	case 3:
		return &b.Account3, true
	case 4:
		return &b.Account4, true
	}
	return nil, false
}

// NetWorth returns the sum of the wallet and all accounts.
//
// Postcondition: result == Wallet + Account1 + Account2 + Account3 + Account4.
func (b *Bank) NetWorth() int {
	return b.Wallet + b.Account1 + b.Account2 + b.Account3 + b.Account4
}

// Deposit moves amount into the numbered account. When useWallet is true
// the wallet is the counter-party and must cover the amount; when false
// (developer mode) only the account is credited.
//
// Postcondition: on error, b is unchanged; otherwise no balance is negative.
func (b *Bank) Deposit(account, amount int, useWallet bool) error {
	acct, ok := b.account(account)
	if !ok {
		return gameerr.InvalidInput("no such bank account")
	}
	if amount <= 0 {
		return gameerr.InvalidInput("amount must be positive")
	}
	if useWallet {
		if b.Wallet < amount {
			return gameerr.ErrNotEnoughGold
		}
		b.Wallet -= amount
	}
	*acct += amount
	return nil
}

// Withdraw moves amount out of the numbered account. When useWallet is
// true the wallet is credited; when false (developer mode) only the
// account is debited.
//
// Postcondition: on error, b is unchanged; otherwise no balance is negative.
func (b *Bank) Withdraw(account, amount int, useWallet bool) error {
	acct, ok := b.account(account)
	if !ok {
		return gameerr.InvalidInput("no such bank account")
	}
	if amount <= 0 {
		return gameerr.InvalidInput("amount must be positive")
	}
	if *acct < amount {
		return gameerr.ErrNotEnoughGold
	}
	*acct -= amount
	if useWallet {
		b.Wallet += amount
	}
	return nil
}

// Spend debits the wallet, failing if the balance cannot cover it.
//
// Postcondition: on error, b is unchanged; otherwise Wallet >= 0.
func (b *Bank) Spend(amount int) error {
	if amount < 0 {
		return gameerr.InvalidInput("amount must not be negative")
	}
	if b.Wallet < amount {
		return gameerr.ErrNotEnoughGold
	}
	b.Wallet -= amount
	return nil
}

// Earn credits the wallet.
//
// Precondition: amount >= 0; a negative amount fails with InvalidInput.
func (b *Bank) Earn(amount int) error {
	if amount < 0 {
		return gameerr.InvalidInput("amount must not be negative")
	}
	b.Wallet += amount
	return nil
}

// Drain debits the wallet by up to amount, clamping at zero rather than
// failing. Used by the thieving guild's gold cost.
//
// Postcondition: returns the amount actually drained; Wallet >= 0.
func (b *Bank) Drain(amount int) int {
	if amount <= 0 {
		return 0
	}
	if amount > b.Wallet {
		amount = b.Wallet
	}
	b.Wallet -= amount
	return amount
}

// Rows returns the tabular readout of all balances and the net worth.
func (b Bank) Rows() [][]string {
	return [][]string{
		{"Wallet", strconv.Itoa(b.Wallet)},
		{"Account 1", strconv.Itoa(b.Account1)},
		{"Account 2", strconv.Itoa(b.Account2)},
		{"Account 3", strconv.Itoa(b.Account3)},
		{"Account 4", strconv.Itoa(b.Account4)},
		{"Net Worth", strconv.Itoa(b.NetWorth())},
	}
}
