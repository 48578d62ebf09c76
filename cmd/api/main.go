package main

import "github.com/BruksfildServices01/agenda-negocios/internal/cli"

func main() {
	cli.Execute()
}
