package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/ethanbaker/relay/internal/relay"
	"github.com/ethanbaker/relay/pkg/completion"
	"github.com/ethanbaker/relay/pkg/utils"
)

func main() {
	// Find env file
	envFile := ".env"
	if os.Getenv("ENV_FILE") != "" {
		envFile = os.Getenv("ENV_FILE")
	}

	// Load global config
	cfg := utils.NewConfigFromEnv(envFile)

	// Create the completion client
	completer, err := completion.NewClient(cfg)
	if err != nil {
		log.Fatalf("[COMMANDLINE]: Failed to initialize completion client: %v", err)
	}

	// Create the relay service with the configured persona
	persona := utils.LoadPromptWithFallback(cfg.Get("RELAY_SYSPROMPT_PATH"), "You are a helpful assistant.")
	service := relay.New(persona, completer)

	// Start interactive session
	ctx := context.Background()
	if err := startInteractiveSession(ctx, service); err != nil {
		log.Fatalf("[COMMANDLINE]: Failed to start interactive session: %v", err)
	}
}

// startInteractiveSession runs a read-eval loop against the relay service
func startInteractiveSession(ctx context.Context, service *relay.Service) error {
	fmt.Println("Conversation relay started. Type 'exit' to quit.")
	fmt.Println("Paste an image URL to have it described.")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("\n> ")
		if !scanner.Scan() {
			break
		}

		input := strings.TrimSpace(scanner.Text())
		if input == "exit" {
			break
		}

		reply, err := service.HandleMessage(ctx, input)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			continue
		}

		fmt.Printf("Assistant: %s\n", reply)
	}

	return scanner.Err()
}
