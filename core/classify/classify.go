// core/classify/classify.go
package classify

import "strconv"

// Label maps an integer to its fizzbuzz label. The rules are evaluated
// first-match-wins: multiples of 15 get "fizzbuzz", multiples of 3 "fizz",
// multiples of 5 "buzz", and everything else its decimal string.
//
// Total over all integers: Go's % keeps the dividend's sign, so negative
// multiples classify like positive ones and 0 lands on "fizzbuzz".
func Label(n int) string {
	switch {
	case n%15 == 0:
		return "fizzbuzz"
	case n%3 == 0:
		return "fizz"
	case n%5 == 0:
		return "buzz"
	default:
		return strconv.Itoa(n)
	}
}
