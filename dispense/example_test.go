package dispense_test

import (
	"fmt"

	"github.com/katalvlaran/hiddenvar/dispense"
	"github.com/katalvlaran/hiddenvar/entropy"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleDispenser_MakeHand
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Deal two hands over the same six-rune deck. Whether the two hands agree
//	at an index is up to the hidden shuffle — but choosing the same index
//	from the SAME hand is guaranteed stable.
func ExampleDispenser_MakeHand() {
	deck := []rune{'a', 'b', 'c', 'd', 'e', 'f'}

	d, err := dispense.New[rune](len(deck), entropy.NewSeeded(11))
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	zaHando, err := d.MakeHand(deck)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	starFinger, err := d.MakeHand(deck)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	h1, _ := zaHando.Choose(1)
	h2, _ := zaHando.Choose(1)
	s1, _ := starFinger.Choose(1)
	s2, _ := starFinger.Choose(1)

	fmt.Println("hand one stable:", h1 == h2)
	fmt.Println("hand two stable:", s1 == s2)
	fmt.Println("hands sized alike:", zaHando.Len() == starFinger.Len())
	// Output:
	// hand one stable: true
	// hand two stable: true
	// hands sized alike: true
}
