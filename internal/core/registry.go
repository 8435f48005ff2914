package core

// registry indexes commands by name and alias. Commands self-register from
// their init functions, so the map is read-only once the program is up.
// Component-only handlers (the now-playing controls) live here too; the
// interaction dispatcher looks them up by a fixed name rather than by user
// input.
var registry = map[string]Command{}

// RegisterCommand indexes a command under its name and every alias.
func RegisterCommand(cmd Command) {
	registry[cmd.Name()] = cmd
	for _, alias := range cmd.Aliases() {
		registry[alias] = cmd
	}
}

// GetCommand looks up a command by name or alias.
func GetCommand(name string) (Command, bool) {
	cmd, ok := registry[name]
	return cmd, ok
}

// AllCommands returns each registered command once, regardless of how many
// aliases it carries.
func AllCommands() []Command {
	seen := make(map[string]bool, len(registry))
	list := make([]Command, 0, len(registry))
	for _, cmd := range registry {
		if seen[cmd.Name()] {
			continue
		}
		seen[cmd.Name()] = true
		list = append(list, cmd)
	}
	return list
}
