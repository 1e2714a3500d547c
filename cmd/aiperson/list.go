package aiperson

import (
	"context"

	"github.com/viant/aiperson/service"
)

// ListCmd prints stored AI persons.
type ListCmd struct{}

func (c *ListCmd) Execute(_ []string) error { return c.Run(context.Background()) }

func (c *ListCmd) Run(ctx context.Context) error {
	listPersonas(ctx, serviceSingleton(ctx), stdio)
	return nil
}

func listPersonas(ctx context.Context, svc *service.Service, con *console) []string {
	names, err := svc.List(ctx)
	if err != nil {
		reportError(con, err)
		return nil
	}
	if len(names) == 0 {
		con.println("No AI persons created yet.")
		return nil
	}
	con.println("Available AI Persons:")
	for _, name := range names {
		con.printf("- %s\n", name)
	}
	return names
}
