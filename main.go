package main

import "github.com/envgrade/envgrade/cmd/envgrade"

func main() {
	envgrade.Execute()
}
