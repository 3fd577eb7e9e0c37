package titlecase_test

import (
	"fmt"

	"github.com/charlievieth/titlecase"
)

func ExampleTitleCase() {
	fmt.Printf("%q\n", titlecase.TitleCase('a'))
	fmt.Printf("%q\n", titlecase.TitleCase('Ǆ'))
	fmt.Printf("%q\n", titlecase.TitleCase('ﬄ'))
	// Output:
	// ['A' '\x00' '\x00']
	// ['ǅ' '\x00' '\x00']
	// ['F' 'f' 'l']
}

func ExampleToTitleCase() {
	rs := titlecase.ToTitleCase('ﬄ')
	fmt.Println(rs.Len())
	for {
		r, ok := rs.Next()
		if !ok {
			break
		}
		fmt.Printf("%c\n", r)
	}
	// Output:
	// 3
	// F
	// f
	// l
}

func ExampleTitle() {
	fmt.Println(titlecase.Title("ǆungla"))
	fmt.Println(titlecase.Title("hELLO"))
	// Output:
	// ǅungla
	// HELLO
}

func ExampleTitleLowerRest() {
	fmt.Println(titlecase.TitleLowerRest("ﬄabc"))
	fmt.Println(titlecase.TitleLowerRest("hELLO"))
	// Output:
	// Fflabc
	// Hello
}

func ExampleTitleLowerRestTrAz() {
	fmt.Println(titlecase.TitleLowerRestTrAz("iIiİ"))
	fmt.Println(titlecase.TitleLowerRestTrAz("istanbul"))
	// Output:
	// İıii
	// İstanbul
}

func ExampleIsTitleCase() {
	fmt.Println(titlecase.IsTitleCase('ǅ'))
	fmt.Println(titlecase.IsTitleCase('Ǆ'))
	fmt.Println(titlecase.IsTitleCase('A'))
	fmt.Println(titlecase.IsTitleCase('a'))
	// Output:
	// true
	// false
	// true
	// false
}

func ExampleStartsTitleCaseLowerRest() {
	fmt.Println(titlecase.StartsTitleCaseLowerRest("Hello"))
	fmt.Println(titlecase.StartsTitleCaseLowerRest("İİ"))
	// Output:
	// true
	// false
}
