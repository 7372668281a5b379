package parser

import "git.lost.host/meutraa/beatstat/internal/game"

// Parser reads replays already decoded into their JSON document form.
type Parser interface {
	Parse(file string) (*game.Replay, error)
	ParseBytes(data []byte) (*game.Replay, error)
}
