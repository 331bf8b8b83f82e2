package basicops_test

import (
	"fmt"

	"github.com/scalecode-solutions/basicops"
)

func ExampleLength() {
	fmt.Println(basicops.Length("Hello"))
	fmt.Println(basicops.Length("👨‍👩‍👧‍👦"))
	// Output: 5
	// 1
}

func ExampleSubstring() {
	fmt.Println(basicops.Substring("Hello World", 1, 5))
	fmt.Println(basicops.Substring("Hello World", 7, 11))
	fmt.Println(basicops.Substring("Hello World", 7, 99))
	// Output: Hello
	// World
	// World
}

func ExampleIndexOf() {
	fmt.Println(basicops.IndexOf("Hello World", "World"))
	fmt.Println(basicops.IndexOf("Test", "xyz"))
	// Output: 7
	// 0
}

func ExampleSplit() {
	fmt.Printf("%q\n", basicops.Split("a,,b", ","))
	fmt.Printf("%q\n", basicops.Split("abc", ""))
	// Output: ["a" "" "b"]
	// ["a" "b" "c"]
}

func ExampleJoin() {
	fmt.Println(basicops.Join([]string{"2026", "08", "30"}, "-"))
	// Output: 2026-08-30
}

func ExampleReplaceAll() {
	fmt.Println(basicops.ReplaceAll("Hello", "l", ""))
	// Output: Heo
}

func ExampleGraphemeIndex_Resolve() {
	idx := basicops.NewGraphemeIndex("🇩🇪x")
	for _, position := range []int{1, 2, 3, 99} {
		offset, exists := idx.Resolve(position)
		fmt.Println(position, offset, exists)
	}
	// Output: 1 0 true
	// 2 8 true
	// 3 9 false
	// 99 9 false
}

func ExampleGraphemeIndex_Boundaries() {
	fmt.Println(basicops.NewGraphemeIndex("éx").Boundaries())
	// Output: [0 3 4]
}
