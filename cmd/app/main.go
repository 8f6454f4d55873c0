package main

import (
	"context"

	"housebuilder/cmd"

	"github.com/labstack/gommon/log"
)

func main() {
	if err := cmd.NewRootCommand().ExecuteContext(context.Background()); err != nil {
		log.Fatalf("housebuilder: %v", err)
	}
}
