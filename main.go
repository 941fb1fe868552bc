package main

import "github.com/shastriUF/calorie-counter/cmd/calcount"

func main() {
	calcount.Execute()
}
