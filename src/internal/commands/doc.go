// Package commands implements the command-line layer of dns-blackhole.
//
// Each command implements Runner: Init parses flags and builds the
// configuration (defaults, then an optional TOML file, then explicitly set
// flags), Run executes it. The compile command is the whole tool:
//
//	cmd := commands.CreateCompileCommand()
//	if err := cmd.Init(os.Args[1:], &commands.AppContext{Version: version}); err != nil {
//	    log.Fatalf("Failed to initialize command: %v", err)
//	}
//	if err := cmd.Run(); err != nil {
//	    log.Fatalf("Failed to run command: %v", err)
//	}
package commands
