package aiperson

import (
	"context"

	"github.com/viant/aiperson/service"
)

// CreateCmd creates an AI person.
type CreateCmd struct {
	Name        string `short:"n" long:"name" description:"AI person name" required:"yes"`
	Prompt      string `short:"p" long:"prompt" description:"system prompt" required:"yes"`
	Model       string `short:"m" long:"model" description:"model identifier (e.g. gpt2)" required:"yes"`
	SaveLocally bool   `long:"save-locally" description:"save the model weights locally"`
	Force       bool   `long:"force" description:"overwrite an existing AI person"`
}

func (c *CreateCmd) Execute(_ []string) error { return c.Run(context.Background()) }

func (c *CreateCmd) Run(ctx context.Context) error {
	return createPersona(ctx, serviceSingleton(ctx), stdio, &service.CreateInput{
		Name:        c.Name,
		Prompt:      c.Prompt,
		Model:       c.Model,
		SaveLocally: c.SaveLocally,
		Overwrite:   c.Force,
	})
}

// createPersona reports progress on con. A model that fails to load aborts
// creation; a failed local save keeps the persona uncached.
func createPersona(ctx context.Context, svc *service.Service, con *console, input *service.CreateInput) error {
	con.printf("Loading model '%s'...\n", input.Model)
	p, err := svc.Create(ctx, input)
	if p == nil {
		if err != nil {
			reportError(con, err)
		}
		return err
	}
	con.printf("AI person '%s' saved successfully.\n", p.Name)
	if err != nil {
		con.printf("Error saving model locally: %v\n", err)
		return err
	}
	if p.ModelSavedLocally {
		con.printf("Model saved locally at '%s'.\n", p.ModelPath)
	}
	return nil
}
