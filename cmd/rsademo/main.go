package main

import "github.com/hsiuhsiu/rsademo-go/internal/cli"

func main() {
	cli.Execute()
}
