package main

import (
	"context"
	"os"

	"github.com/thenoetrevino/kanban/cmd"
)

func main() {
	os.Exit(cmd.Execute(context.Background()))
}
