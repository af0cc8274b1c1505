package main

import "github.com/MeKo-Tech/pixeltex/internal/cmd"

func main() {
	cmd.Execute()
}
