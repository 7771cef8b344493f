package main

import (
	"github.com/markovian/wordpredict"
)

func main() {
	wordpredict.Main()
}
