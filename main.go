package main

import (
	"log"
	"os"

	"git.lost.host/meutraa/beatstat/internal/config"
)

func main() {
	if err := run(os.Args[1:]); nil != err {
		log.Fatalln(err)
	}
}

func run(args []string) error {
	c, err := config.Parse(args)
	if nil != err {
		return err
	}

	p := &Program{}
	if err := p.Init(c); nil != err {
		return err
	}
	defer p.Deinit()

	return p.Run()
}
