package tui

import (
	"fmt"
	"strings"

	"github.com/mattn/go-shellwords"
)

// command is one line typed after ':'.
type command struct {
	name string
	args []string
}

var commandArity = map[string][2]int{
	"add":    {1, -1},
	"select": {1, 1},
	"delete": {0, 1},
	"save":   {0, -1},
	"theme":  {0, 1},
	"import": {1, 1},
	"export": {1, 2},
	"init":   {0, 1},
	"quit":   {0, 0},
}

var commandAliases = map[string]string{
	"a":   "add",
	"del": "delete",
	"rm":  "delete",
	"q":   "quit",
	"w":   "save",
}

// parseCommand splits line with shell quoting rules and checks the argument
// count of the named command.
func parseCommand(line string) (command, error) {
	words, err := shellwords.Parse(strings.TrimPrefix(strings.TrimSpace(line), ":"))
	if err != nil {
		return command{}, fmt.Errorf("cannot parse command: %w", err)
	}
	if len(words) == 0 {
		return command{}, nil
	}

	name := strings.ToLower(words[0])
	if alias, ok := commandAliases[name]; ok {
		name = alias
	}
	arity, ok := commandArity[name]
	if !ok {
		return command{}, fmt.Errorf("unknown command %q", words[0])
	}

	args := words[1:]
	if len(args) < arity[0] || (arity[1] >= 0 && len(args) > arity[1]) {
		return command{}, fmt.Errorf("usage: %s", commandUsage(name))
	}
	return command{name: name, args: args}, nil
}

func commandUsage(name string) string {
	switch name {
	case "add":
		return "add <hex>..."
	case "select":
		return "select <hex>"
	case "delete":
		return "delete [hex]"
	case "save":
		return "save [name]"
	case "theme":
		return "theme [dark|light|toggle]"
	case "import":
		return "import <path>"
	case "export":
		return "export <path> [name]"
	case "init":
		return "init [dir]"
	default:
		return name
	}
}
