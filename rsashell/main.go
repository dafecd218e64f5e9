package main

import (
	"fmt"
	"log"
	"os"

	"github.com/arvid220u/toyrsa/shell"
	"github.com/arvid220u/toyrsa/toyrsa"
)

func main() {
	cfg, err := shell.NewLoader(".env").Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	toyrsa.SetDebug(cfg.Debug, cfg.Dump)

	fmt.Println("welcome to the toy RSA shell! this is NOT secure encryption.")
	if err := shell.New(cfg, nil, os.Stdin, os.Stdout).Run(); err != nil {
		log.Fatalf("err: %v", err)
	}
}
