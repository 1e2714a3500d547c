package aiperson

import (
	"context"
	"strings"

	"github.com/viant/aiperson/service"
)

// CacheCmd saves the model weights of an AI person locally.
type CacheCmd struct {
	Name string `short:"n" long:"name" description:"AI person name" required:"yes"`
}

func (c *CacheCmd) Execute(_ []string) error { return c.Run(context.Background()) }

func (c *CacheCmd) Run(ctx context.Context) error {
	svc := serviceSingleton(ctx)
	p, err := svc.Get(ctx, c.Name)
	if err != nil {
		return err
	}
	stdio.printf("Saving model '%s' locally...\n", p.Model)
	if p, err = svc.Cache(ctx, c.Name); err != nil {
		return err
	}
	stdio.printf("Model saved locally at '%s'.\n", p.ModelPath)
	return nil
}

// EvictCmd removes the locally saved model of an AI person.
type EvictCmd struct {
	Name string `short:"n" long:"name" description:"AI person name" required:"yes"`
	Yes  bool   `short:"y" long:"yes" description:"do not ask for confirmation"`
}

func (c *EvictCmd) Execute(_ []string) error { return c.Run(context.Background()) }

func (c *EvictCmd) Run(ctx context.Context) error {
	return evictModel(ctx, serviceSingleton(ctx), stdio, c.Name, c.Yes)
}

func evictModel(ctx context.Context, svc *service.Service, con *console, name string, confirmed bool) error {
	p, err := svc.Get(ctx, name)
	if err != nil {
		return err
	}
	if !p.ModelSavedLocally {
		con.println("No local model found to remove.")
		return nil
	}
	con.printf("Model is currently saved locally at '%s'.\n", p.ModelPath)
	users, err := svc.ModelUsers(ctx, p.ModelPath, name)
	if err != nil {
		return err
	}
	if len(users) > 0 {
		con.printf("The model files are also used by: %s. They will be kept.\n", strings.Join(users, ", "))
	}
	if !confirmed && !con.askYesNo("Do you want to remove the local model? (yes/no): ") {
		con.println("No changes to model local storage.")
		return nil
	}
	if _, err := svc.Evict(ctx, name); err != nil {
		con.printf("Error removing local model: %v\n", err)
		return err
	}
	if len(users) > 0 {
		con.printf("AI person '%s' no longer uses the local model.\n", name)
		return nil
	}
	con.println("Local model removed successfully.")
	return nil
}
