package notifier

import "strings"

// Command is a parsed bot command: "/compare@InvestSimBot 12 1000" has
// Name "compare" and Args ["12", "1000"].
type Command struct {
	Name string
	Args []string
}

// ParseCommand splits a chat message into a command. Plain text that
// does not start with "/" is not a command.
func ParseCommand(text string) (Command, bool) {
	fields := strings.Fields(text)
	if len(fields) == 0 || !strings.HasPrefix(fields[0], "/") {
		return Command{}, false
	}
	name := strings.TrimPrefix(fields[0], "/")
	if at := strings.IndexByte(name, '@'); at >= 0 {
		name = name[:at]
	}
	if name == "" {
		return Command{}, false
	}
	return Command{Name: strings.ToLower(name), Args: fields[1:]}, true
}

// CommandFunc answers one command with an HTML reply.
type CommandFunc func(cmd Command) string

// Router dispatches commands by name. Unknown commands and plain text get
// the fallback reply.
type Router struct {
	routes   map[string]CommandFunc
	Fallback func() string
}

// NewRouter creates a router that answers unknown input with FormatHelp.
func NewRouter() *Router {
	return &Router{routes: make(map[string]CommandFunc), Fallback: FormatHelp}
}

// Handle registers fn under a name and its aliases.
func (r *Router) Handle(fn CommandFunc, name string, aliases ...string) {
	for _, n := range append([]string{name}, aliases...) {
		r.routes[strings.ToLower(n)] = fn
	}
}

// Dispatch parses text and runs the matching command. It has the
// CommandHandler signature so it can be passed to StartPolling.
func (r *Router) Dispatch(text string) string {
	cmd, ok := ParseCommand(text)
	if ok {
		if fn, found := r.routes[cmd.Name]; found {
			return fn(cmd)
		}
	}
	if r.Fallback == nil {
		return ""
	}
	return r.Fallback()
}
