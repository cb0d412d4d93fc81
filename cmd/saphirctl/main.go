package main

import "github.com/Lex0104/Saphir/internal/cli"

func main() {
	cli.Execute()
}
