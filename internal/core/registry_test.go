package core

import "testing"

type stubCommand struct {
	name    string
	aliases []string
}

func (c *stubCommand) Name() string             { return c.name }
func (c *stubCommand) Description() string      { return "stub" }
func (c *stubCommand) Aliases() []string        { return c.aliases }
func (c *stubCommand) Run(ctx interface{}) error { return nil }

func TestRegistryLookup(t *testing.T) {
	cmd := &stubCommand{name: "stub-reg", aliases: []string{"sr", "sreg"}}
	RegisterCommand(cmd)

	for _, name := range []string{"stub-reg", "sr", "sreg"} {
		got, ok := GetCommand(name)
		if !ok {
			t.Fatalf("GetCommand(%q) not found", name)
		}
		if got != Command(cmd) {
			t.Errorf("GetCommand(%q) returned a different command", name)
		}
	}

	if _, ok := GetCommand("stub-missing"); ok {
		t.Error("GetCommand returned a command for an unregistered name")
	}
}

func TestAllCommandsDeduplicatesAliases(t *testing.T) {
	cmd := &stubCommand{name: "stub-dedup", aliases: []string{"sd1", "sd2"}}
	RegisterCommand(cmd)

	count := 0
	for _, c := range AllCommands() {
		if c.Name() == "stub-dedup" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("AllCommands listed the command %d times, want 1", count)
	}
}
