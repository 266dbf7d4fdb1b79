package tui

import (
	"github.com/san-kum/sortviz/internal/algo"
	"github.com/san-kum/sortviz/internal/registry"
)

// commandKeys maps keys in the playing view to registry commands.
var commandKeys = map[string]registry.Command{
	" ":   registry.StepCmd(0),
	"r":   registry.ResetCmd(),
	"tab": registry.NextCmd(),
	"1":   registry.SelectCmd(algo.Selection),
	"2":   registry.SelectCmd(algo.Bubble),
	"3":   registry.SelectCmd(algo.Insertion),
	"4":   registry.SelectCmd(algo.Gnome),
	"+":   registry.RepeatCmd(1),
	"=":   registry.RepeatCmd(1),
	"-":   registry.RepeatCmd(-1),
	"_":   registry.RepeatCmd(-1),
	"]":   registry.RepeatCmd(10),
	"[":   registry.RepeatCmd(-10),
}

type keyHelp struct {
	keys, desc string
}

var playingHelp = []keyHelp{
	{"space", "step"},
	{"a", "autoplay"},
	{"r", "reset"},
	{"1-4/tab", "algorithm"},
	{"+/-", "repeat"},
	{"t", "theme"},
	{"esc", "menu"},
	{"q", "quit"},
}
