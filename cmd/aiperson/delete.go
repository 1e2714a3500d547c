package aiperson

import (
	"context"
	"errors"

	"github.com/viant/aiperson/service"
)

// DeleteCmd removes an AI person record.
type DeleteCmd struct {
	Name  string `short:"n" long:"name" description:"AI person name" required:"yes"`
	Evict bool   `long:"evict" description:"also remove the locally saved model"`
}

func (c *DeleteCmd) Execute(_ []string) error { return c.Run(context.Background()) }

func (c *DeleteCmd) Run(ctx context.Context) error {
	svc := serviceSingleton(ctx)
	p, err := svc.Delete(ctx, c.Name)
	if err != nil {
		return err
	}
	stdio.printf("AI person '%s' deleted.\n", c.Name)
	if p == nil || !p.ModelSavedLocally {
		return nil
	}
	if !c.Evict {
		stdio.printf("Model remains saved locally at '%s'.\n", p.ModelPath)
		return nil
	}
	if err := svc.RemoveModel(ctx, p.ModelPath); err != nil {
		if errors.Is(err, service.ErrModelInUse) {
			stdio.printf("Model at '%s' is still used by another AI person; it was kept.\n", p.ModelPath)
			return nil
		}
		return err
	}
	stdio.println("Local model removed successfully.")
	return nil
}
