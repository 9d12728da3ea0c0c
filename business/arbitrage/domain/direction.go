package domain

import "fmt"

// Direction names the round trip: buy the input token where it is cheap,
// sell it where it is dear.
type Direction struct {
	BuyVenue  string
	SellVenue string
}

// String returns a human-readable description of the direction.
func (d Direction) String() string {
	return fmt.Sprintf("Buy on %s, Sell on %s", d.BuyVenue, d.SellVenue)
}
