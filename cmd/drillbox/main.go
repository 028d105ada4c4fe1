package main

import "github.com/advancedcpp/drillbox/internal/cli"

func main() {
	cli.Execute()
}
