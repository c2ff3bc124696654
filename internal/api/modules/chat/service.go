package chat

import (
	"log"

	"github.com/ethanbaker/relay/internal/relay"
	"github.com/ethanbaker/relay/pkg/completion"
	"github.com/ethanbaker/relay/pkg/utils"
)

// defaultPersona is the fallback system prompt used when no prompt file is
// configured ("You are a smart friend who speaks Arabic and likes to explain
// simply, with short, clear, quick answers")
const defaultPersona = "أنت صديق ذكي تتحدث العربية وتحب أن تشرح ببساطة وكأنك تتحدث مع صديق، بإجابات قصيرة وواضحة وسريعة."

var service *relay.Service

// Init creates the relay service for the chat module to run off of
func Init(cfg *utils.Config) {
	completer, err := completion.NewClient(cfg)
	if err != nil {
		log.Fatalf("[CHAT]: Failed to initialize completion client: %v", err)
	}

	persona := utils.LoadPromptWithFallback(cfg.Get("RELAY_SYSPROMPT_PATH"), defaultPersona)

	service = relay.New(persona, completer)
}

// GetService returns the singleton relay service
func GetService() *relay.Service {
	return service
}
