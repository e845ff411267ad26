package temporal_test

import (
	"fmt"
	"time"

	"github.com/hasbyte1/go-transform-utils/temporal"
)

func ExampleFormat() {
	t := time.Date(2024, time.March, 7, 9, 5, 3, 123456789, time.UTC)

	s, _ := temporal.Format(t, "")
	fmt.Println(s)

	s, _ = temporal.Format(t, "yyyy-MM-dd'T'HH:mm:ss.SSSXXX")
	fmt.Println(s)

	s, _ = temporal.Format(t, "EEEE, MMMM d")
	fmt.Println(s)
	// Output:
	// 2024-03-07 09:05:03
	// 2024-03-07T09:05:03.123Z
	// Thursday, March 7
}

func ExampleParse() {
	t, err := temporal.Parse("07 Mar 2024", "dd MMM yyyy")
	fmt.Println(t, err)

	_, err = temporal.Parse("07/03/2024", "yyyy-MM-dd")
	fmt.Println(err != nil)
	// Output:
	// 2024-03-07 00:00:00 +0000 UTC <nil>
	// true
}

func ExampleNowWith() {
	clock := temporal.FixedClock{T: time.Date(2030, 1, 2, 3, 4, 5, 0, time.UTC)}
	s, _ := temporal.NowWith(clock, "")
	fmt.Println(s)
	// Output: 2030-01-02 03:04:05
}

func ExampleDifference() {
	start := time.Date(2024, 3, 7, 9, 0, 0, 0, time.UTC)
	end := start.Add(90*time.Minute + 30*time.Second)

	fmt.Println(temporal.Difference(start, end, temporal.Minutes))
	fmt.Println(temporal.Difference(end, start, temporal.Hours))
	// Output:
	// 90
	// -1
}

func ExampleParseUnit() {
	u, _ := temporal.ParseUnit("ms")
	fmt.Println(u)
	// Output: milliseconds
}
