package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/iamasit07/power-connect-four/internal/domain"
)

type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrUnknownCommand Error = "unknown command"
	ErrBadArguments   Error = "bad arguments"
)

// Command is one parsed input line.
type Command struct {
	Name string
	Args []int
}

// arity of each command; move commands map onto a domain.MoveKind
var commands = map[string]struct {
	args int
	kind domain.MoveKind
}{
	"drop":    {1, domain.MoveDrop},
	"pop":     {1, domain.MovePop},
	"pdrop":   {2, domain.MovePowerDrop},
	"ppop":    {2, domain.MovePowerPop},
	"count":   {2, ""},
	"show":    {0, ""},
	"history": {0, ""},
	"new":     {0, ""},
	"help":    {0, ""},
	"quit":    {0, ""},
}

var aliases = map[string]string{
	"d":     "drop",
	"p":     "pop",
	"pd":    "pdrop",
	"pp":    "ppop",
	"exit":  "quit",
	"q":     "quit",
	"board": "show",
}

// ParseCommand parses lines like "pdrop 2 1". Blank lines parse to a zero Command.
func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return Command{}, nil
	}

	name := fields[0]
	if alias, ok := aliases[name]; ok {
		name = alias
	}
	def, ok := commands[name]
	if !ok {
		return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, fields[0])
	}

	if len(fields)-1 != def.args {
		return Command{}, fmt.Errorf("%w: %s takes %d argument(s), got %d", ErrBadArguments, name, def.args, len(fields)-1)
	}

	args := make([]int, 0, def.args)
	for _, field := range fields[1:] {
		n, err := strconv.Atoi(field)
		if err != nil {
			return Command{}, fmt.Errorf("%w: %q is not a number", ErrBadArguments, field)
		}
		args = append(args, n)
	}

	return Command{Name: name, Args: args}, nil
}

// Move converts a move command into a domain.Move.
func (c Command) Move() (domain.Move, bool) {
	def, ok := commands[c.Name]
	if !ok || def.kind == "" {
		return domain.Move{}, false
	}

	m := domain.Move{Kind: def.kind, Col: c.Args[0]}
	if len(c.Args) > 1 {
		m.Row = c.Args[1]
	}
	return m, true
}

const usage = `Commands:
  drop <col>           drop a token on top of a column
  pop <col>            remove your token from the bottom of a column
  pdrop <col> <row>    power drop: insert a token at a row
  ppop <col> <row>     power pop: remove your token from a row
  count <col> <row>    show line lengths through a cell
  show                 print the board
  history              list the moves played
  new                  start a new game
  help                 show this help
  quit                 leave`
