package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	pagekit "github.com/tejaspathak99/pagekit"
	"github.com/tejaspathak99/pagekit/pkg/config"
	"github.com/tejaspathak99/pagekit/pkg/confirm"
	"github.com/tejaspathak99/pagekit/pkg/snippet"
)

func main() {
	mode := flag.String("mode", "snippet", "what to emit: snippet or script")
	output := flag.String("output", "", "output file (stdout if empty)")
	settingsPath := flag.String("config", "", "behavior settings file (YAML)")
	message := flag.String("message", "", "confirmation message override")
	askConfirm := flag.Bool("confirm", false, "prompt the delete confirmation and exit 0 on accept, 1 on decline")
	flag.Parse()

	ctx := context.Background()

	if *askConfirm {
		gate, err := confirm.NewGate(confirm.Terminal{})
		if err != nil {
			log.Fatalf("Failed to build confirmation gate: %v", err)
		}
		if gate.Confirm(ctx, *message) {
			fmt.Println("confirmed")
			return
		}
		fmt.Println("declined")
		os.Exit(1)
	}

	settings, err := config.Load(*settingsPath)
	if err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}
	if *message != "" {
		settings.Confirm.Message = *message
	}

	payload, err := emit(ctx, *mode, settings)
	if err != nil {
		log.Fatalf("Failed to emit %s: %v", *mode, err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, payload, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("%s written to %s\n", *mode, *output)
		return
	}
	fmt.Println(string(payload))
}

func emit(ctx context.Context, mode string, settings config.Settings) ([]byte, error) {
	switch mode {
	case "script":
		script := pagekit.RuntimeScript()
		if len(script) == 0 {
			return nil, fmt.Errorf("runtime script is unavailable")
		}
		return script, nil
	case "snippet":
		renderer, err := snippet.New()
		if err != nil {
			return nil, err
		}
		return renderer.Render(ctx, snippet.Data{
			DismissDelay:   settings.Dismiss.Delay.Std(),
			AlertSelector:  settings.Dismiss.Selector,
			MarkerClass:    settings.Validate.MarkerClass,
			ConfirmMessage: settings.Confirm.Message,
		})
	default:
		return nil, fmt.Errorf("unknown mode %q", mode)
	}
}
