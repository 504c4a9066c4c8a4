package dispense

import "errors"

var (
	// ErrBadSize indicates New was given a negative dispenser size.
	ErrBadSize = errors.New("dispense: size must be non-negative")
	// ErrDeckSize indicates the deck length does not match the dispenser,
	// so some choices could not land or some elements could not be chosen.
	ErrDeckSize = errors.New("dispense: deck length must equal dispenser length")
	// ErrChoice indicates a choice index outside the hand.
	ErrChoice = errors.New("dispense: choice index out of range")
)
