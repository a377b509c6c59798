package core

// Handler processes one command against the stage. The opcode byte has
// already been consumed; the handler pulls its own argument bytes from
// the stage's decoder.
type Handler func(s *Stage) error

// Command binds an opcode byte to its handler.
type Command struct {
	Opcode  byte
	Name    string
	Handler Handler
}

// Registry maps opcode bytes to commands. Registration happens once at
// startup; dispatch runs on the single firmware thread.
type Registry struct {
	commands map[byte]*Command
}

// NewRegistry creates an empty command registry.
func NewRegistry() *Registry {
	return &Registry{commands: make(map[byte]*Command)}
}

// Register adds a command for the given opcode, replacing any previous
// registration of the same byte.
func (r *Registry) Register(opcode byte, name string, handler Handler) *Command {
	cmd := &Command{Opcode: opcode, Name: name, Handler: handler}
	r.commands[opcode] = cmd
	return cmd
}

// Lookup retrieves a command by opcode.
func (r *Registry) Lookup(opcode byte) (*Command, bool) {
	cmd, ok := r.commands[opcode]
	return cmd, ok
}

// Count returns the number of registered commands.
func (r *Registry) Count() int {
	return len(r.commands)
}

// Dispatch runs the handler registered for the opcode. An unknown
// opcode consumes no further bytes and changes no state.
func (r *Registry) Dispatch(opcode byte, s *Stage) error {
	cmd, ok := r.commands[opcode]
	if !ok {
		return ErrUnknownCommand
	}
	return cmd.Handler(s)
}
