package assist

import (
	"context"
	"fmt"
	"log"

	"google.golang.org/genai"
)

// Expert is a chat with a model configured for one task.
type Expert struct {
	Name      string
	ModelName string
	Config    *genai.GenerateContentConfig
	Library   Library
	chat      *genai.Chat
}

// Start creates the chat session.
func (e *Expert) Start(ctx context.Context, client *genai.Client) error {
	chat, err := client.Chats.Create(ctx, e.ModelName, e.Config, nil)
	if err != nil {
		return fmt.Errorf("starting %s chat: %w", e.Name, err)
	}
	e.chat = chat
	return nil
}

// maxCalls bounds the function calls answered for a single question.
const maxCalls = 5

// Ask sends parts to the chat and returns the first text answer, answering
// the function calls the model makes on the way.
func (e *Expert) Ask(ctx context.Context, parts ...*genai.Part) (string, error) {
	if e.chat == nil {
		return "", fmt.Errorf("%s chat is not started", e.Name)
	}
	for range maxCalls + 1 {
		resp, err := e.chat.Send(ctx, parts...)
		if err != nil {
			return "", err
		}
		if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
			return "", fmt.Errorf("no response from %s", e.Name)
		}
		part0 := resp.Candidates[0].Content.Parts[0]
		if part0.FunctionCall == nil {
			return part0.Text, nil
		}
		if e.Library == nil {
			return "", fmt.Errorf("%s cannot answer function call %q", e.Name, part0.FunctionCall.Name)
		}
		log.Printf("%s calls %s(%v)", e.Name, part0.FunctionCall.Name, part0.FunctionCall.Args)
		parts = []*genai.Part{{FunctionResponse: e.Library(ctx, part0.FunctionCall)}}
	}
	return "", fmt.Errorf("%s made more than %d function calls", e.Name, maxCalls)
}
