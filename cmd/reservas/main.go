package main

import "github.com/nfrund/reservas/cmd/reservas/cmd"

func main() {
	cmd.Execute()
}
