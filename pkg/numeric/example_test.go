package numeric_test

import (
	"fmt"

	"github.com/fyrsmithlabs/stringpatterns/pkg/numeric"
)

// ExampleScan demonstrates lazy extraction of embedded numbers.
func ExampleScan() {
	for m := range numeric.Scan("-78.29826, 34.15 160.9", numeric.LocaleStandard) {
		fmt.Println(m.Text)
	}
	// Output:
	// -78.29826
	// 34.15
	// 160.9
}

// ExampleFirstNumber demonstrates locale-aware parsing into a target type.
func ExampleFirstNumber() {
	grams, ok := numeric.FirstNumber[float64]("2.500 grammi di zucchero", numeric.LocaleEuropean)
	fmt.Println(grams, ok)
	// Output: 2500 true
}
