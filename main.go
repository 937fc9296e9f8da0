package main

import (
	"github.com/kozko2001/meme-generator-mcp/cmd/handlers"
)

func main() {
	handlers.Execute()
}
