// TraduzAi — a tabbed translation app shell for the terminal.
//
// Usage:
//
//	traduzai [command] [flags]
//
// Commands:
//
//	run          Start the interactive app (default)
//	animations   List the built-in animations
//	config       Print the effective configuration
//	version      Print version information
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/Mr-Dark-debug/traduzai/internal/animation"
	"github.com/Mr-Dark-debug/traduzai/internal/config"
	"github.com/Mr-Dark-debug/traduzai/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
)

var (
	Version   = "0.1.0"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	cmd, args := "run", os.Args[1:]
	if len(args) > 0 && args[0] != "" && args[0][0] != '-' {
		cmd, args = args[0], args[1:]
	}

	switch cmd {
	case "run":
		cmdRun(args)
	case "animations":
		cmdAnimations()
	case "config":
		cmdConfig(args)
	case "version":
		fmt.Printf("TraduzAi v%s (commit: %s, built: %s)\n", Version, GitCommit, BuildTime)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`TraduzAi — Traduzir textos e áudio nunca foi tão fácil.

Usage:
  traduzai [command] [flags]

Commands:
  run          Start the interactive app (default)
  animations   List the built-in animations
  config       Print the effective configuration
  version      Print version information

Run 'traduzai <command> --help' for details on each command.`)
}

// cmdRun starts the TUI.
func cmdRun(args []string) {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to config file (default: $TRADUZAI_CONFIG or ~/.config/traduzai/config.toml)")
	splashDelay := fs.Duration("splash", -1, "Override the splash screen delay")
	loopMode := fs.String("loop", "", "Override the animation loop mode: once, loop, autoreverse")
	debugLog := fs.String("debug", os.Getenv("TRADUZAI_DEBUG"), "Write debug logs to this file")
	fs.Parse(args)

	if *debugLog != "" {
		f, err := tea.LogToFile(*debugLog, "traduzai")
		if err != nil {
			log.Fatalf("Failed to open debug log %s: %v", *debugLog, err)
		}
		defer f.Close()
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *splashDelay >= 0 {
		cfg.Splash.Delay = *splashDelay
	}
	if *loopMode != "" {
		cfg.Animation.LoopMode = *loopMode
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	model, err := tui.NewModel(cfg, animation.Builtin())
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
	if *debugLog != "" {
		log.Printf("starting: splash=%s loop=%s languages=%v",
			cfg.Splash.Delay, cfg.LoopMode(), cfg.Languages.Available)
	}

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

// cmdAnimations lists the embedded animations with their frame counts.
func cmdAnimations() {
	reg := animation.Builtin()
	names, err := reg.Names()
	if err != nil {
		log.Fatalf("Failed to list animations: %v", err)
	}
	for _, name := range names {
		a, err := reg.Load(name)
		if err != nil {
			log.Fatalf("Failed to load animation %s: %v", name, err)
		}
		fmt.Printf("  %-16s %2d frames  %2d fps\n", a.Name, len(a.Frames), a.FPS)
	}
}

// cmdConfig prints the configuration the app would start with.
func cmdConfig(args []string) {
	fs := flag.NewFlagSet("config", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to config file")
	fs.Parse(args)

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Encode(os.Stdout); err != nil {
		log.Fatalf("Failed to print configuration: %v", err)
	}
}
