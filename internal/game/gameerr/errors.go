// Package gameerr defines the typed failure values shared by all core game
// operations. Failures are values, never panics: the menu layer matches them
// with errors.Is / errors.As and renders the user-readable message.
package gameerr

import (
	"errors"
	"fmt"
)

// Sentinel errors for the fixed failure categories.
var (
	// ErrProfileDoesNotExist is returned when a username has no profile file.
	ErrProfileDoesNotExist = errors.New("profile does not exist")
	// ErrProfileExists is returned when registration targets a taken username.
	ErrProfileExists = errors.New("profile already exists")
	// ErrProfileCorrupted is returned when a profile file cannot be decoded.
	// The corrupt file has already been deleted when this is returned.
	ErrProfileCorrupted = errors.New("profile is corrupted")
	// ErrEncodeFailed is returned when a player cannot be encoded for saving.
	ErrEncodeFailed = errors.New("could not encode profile")
	// ErrDecodeFailed is returned when profile bytes cannot be decoded.
	ErrDecodeFailed = errors.New("could not decode profile")
	// ErrNotEnoughGold is returned when the wallet cannot cover a debit.
	ErrNotEnoughGold = errors.New("you do not have enough gold")
	// ErrAlreadyOwned is returned when buying a weapon or armor piece that
	// is already owned.
	ErrAlreadyOwned = errors.New("you already own that item")
	// ErrNotOwned is returned when selling or equipping an unowned item.
	ErrNotOwned = errors.New("you do not own that item")
	// ErrMembershipRequired is returned when working a guild without joining.
	ErrMembershipRequired = errors.New("you must join the guild first")
	// ErrInvalidOperator is returned by developer-menu arithmetic when the
	// operator token is not one of + - * /.
	ErrInvalidOperator = errors.New("invalid operator")
	// ErrInvalidCredentials is returned when a login password does not
	// match the stored hash.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// NotEnoughItemError reports an attempt to consume or sell more of an item
// than the player holds.
type NotEnoughItemError struct {
	// Item is the display name of the missing item.
	Item string
}

// Error implements the error interface.
func (e *NotEnoughItemError) Error() string {
	return fmt.Sprintf("you do not have enough %s", e.Item)
}

// NotEnoughItem constructs a NotEnoughItemError for the named item.
//
// Postcondition: the returned error matches *NotEnoughItemError via errors.As.
func NotEnoughItem(item string) error {
	return &NotEnoughItemError{Item: item}
}

// InvalidInputError reports free-form user input the core could not accept,
// such as a non-numeric quantity or an arithmetic result that would drive a
// counter negative.
type InvalidInputError struct {
	// Input is the offending text or a short description of the violation.
	Input string
}

// Error implements the error interface.
func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s", e.Input)
}

// InvalidInput constructs an InvalidInputError with the given description.
func InvalidInput(input string) error {
	return &InvalidInputError{Input: input}
}

// IsRecoverable reports whether err is a user-recoverable or
// state-consistency failure that the menu layer should surface and retry,
// as opposed to an environmental failure that must abort.
//
// Postcondition: returns true for every error constructed by this package
// except the encode/decode pair, which callers treat as environmental when
// they occur outside of profile loading.
func IsRecoverable(err error) bool {
	switch {
	case errors.Is(err, ErrNotEnoughGold),
		errors.Is(err, ErrAlreadyOwned),
		errors.Is(err, ErrNotOwned),
		errors.Is(err, ErrMembershipRequired),
		errors.Is(err, ErrInvalidOperator),
		errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrProfileDoesNotExist),
		errors.Is(err, ErrProfileExists),
		errors.Is(err, ErrProfileCorrupted):
		return true
	}
	var notEnough *NotEnoughItemError
	if errors.As(err, &notEnough) {
		return true
	}
	var invalid *InvalidInputError
	return errors.As(err, &invalid)
}
