package aiperson

import (
	"context"
	"strings"

	"github.com/viant/aiperson/genai/persona"
	"github.com/viant/aiperson/service"
)

// ModifyCmd changes an AI person. Empty flags keep the current value.
type ModifyCmd struct {
	Name        string `short:"n" long:"name" description:"AI person name" required:"yes"`
	NewName     string `long:"new-name" description:"rename to"`
	Prompt      string `long:"prompt" description:"new system prompt"`
	Model       string `long:"model" description:"new model identifier"`
	SaveLocally string `long:"save-locally" description:"save the model locally: yes|no"`
}

func (c *ModifyCmd) Execute(_ []string) error { return c.Run(context.Background()) }

func (c *ModifyCmd) Run(ctx context.Context) error {
	saveLocally, err := parseYesNo(c.SaveLocally)
	if err != nil {
		return err
	}
	return modifyPersona(ctx, serviceSingleton(ctx), stdio, c.Name, &persona.Change{
		Name:        c.NewName,
		Prompt:      c.Prompt,
		Model:       c.Model,
		SaveLocally: saveLocally,
	})
}

// modifyPersona applies change and offers to remove weights a model switch
// left behind.
func modifyPersona(ctx context.Context, svc *service.Service, con *console, name string, change *persona.Change) error {
	out, err := svc.Modify(ctx, name, change)
	if err != nil {
		reportError(con, err)
		return err
	}
	effect, p := out.Effect, out.Persona
	if effect.Renamed() {
		con.printf("Changed name from '%s' to '%s'.\n", effect.RenamedFrom, p.Name)
	}
	if effect.PromptChanged {
		con.println("Updated prompt.")
	}
	if effect.ModelSwitched {
		con.printf("Updated model to '%s'.\n", p.Model)
	}
	if p.ModelSavedLocally {
		con.printf("Model saved locally at '%s'.\n", p.ModelPath)
	}
	if len(out.SharedWith) > 0 {
		con.printf("Local model kept, still used by: %s.\n", strings.Join(out.SharedWith, ", "))
	}
	con.printf("AI person '%s' saved successfully.\n", p.Name)

	orphan := effect.PreviousModelPath
	if orphan == "" || orphan == p.ModelPath {
		return nil
	}
	users, err := svc.ModelUsers(ctx, orphan, "")
	if err != nil {
		return err
	}
	if len(users) > 0 {
		con.printf("The previous model at '%s' is still used by: %s.\n", orphan, strings.Join(users, ", "))
		return nil
	}
	con.printf("The previous model is still saved locally at '%s'.\n", orphan)
	if !con.askYesNo("Do you want to remove the local model? (yes/no): ") {
		return nil
	}
	if err := svc.RemoveModel(ctx, orphan); err != nil {
		con.printf("Error removing local model: %v\n", err)
		return err
	}
	con.println("Local model removed successfully.")
	return nil
}
