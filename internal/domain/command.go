package domain

// CommandType classifies a typed instruction from the terminal front end.
type CommandType int

const (
	CommandUnknown CommandType = iota
	CommandActivate            // press a control: Group + Value
	CommandReset               // back to the default selection
	CommandHelp
	CommandQuit
)

// String returns a human-readable command type.
func (c CommandType) String() string {
	switch c {
	case CommandActivate:
		return "activate"
	case CommandReset:
		return "reset"
	case CommandHelp:
		return "help"
	case CommandQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Command is parsed user input. Value carries the raw control value so an
// unknown value still reaches the controller, which degrades it to identity.
type Command struct {
	Type  CommandType
	Group Group
	Value string
}
