package arith_test

import (
	"fmt"

	"github.com/arloliu/arith"
	"github.com/arloliu/arith/format"
	"github.com/arloliu/arith/frame"
)

func ExampleEncodeText() {
	res, err := arith.EncodeText(3, "abacaba")
	if err != nil {
		panic(err)
	}
	fmt.Println(res.Frequencies, res.Bits)

	text, err := arith.DecodeText(3, res.Frequencies, res.Bits)
	if err != nil {
		panic(err)
	}
	fmt.Println(text)
	// Output:
	// [4 2 1] 0110100101
	// abacaba
}

func ExampleEncode() {
	bits, err := arith.Encode([]int{0, 3}, []int{1, 1, 1})
	if err != nil {
		panic(err)
	}
	fmt.Println(bits)
	// Output: 0
}

func ExamplePack() {
	data, err := arith.Pack(3, "abacaba", frame.WithTableCompression(format.CompressionS2))
	if err != nil {
		panic(err)
	}

	text, err := arith.UnpackText(3, data)
	if err != nil {
		panic(err)
	}
	fmt.Println(text)
	// Output: abacaba
}
