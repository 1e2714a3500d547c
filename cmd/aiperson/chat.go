package aiperson

import (
	"context"

	"github.com/viant/aiperson/genai/conversation"
	"github.com/viant/aiperson/service"
)

// ChatCmd handles interactive or single-turn chat with an AI person.
type ChatCmd struct {
	Name  string `short:"n" long:"name" description:"AI person name" required:"yes"`
	Query string `short:"q" long:"query" description:"single user message"`
}

func (c *ChatCmd) Execute(_ []string) error { return c.Run(context.Background()) }

func (c *ChatCmd) Run(ctx context.Context) error {
	svc := serviceSingleton(ctx)
	session, err := svc.StartChat(ctx, c.Name)
	if err != nil {
		return err
	}
	// Single-turn when -q provided.
	if c.Query != "" {
		reply, err := session.Send(ctx, c.Query)
		if err != nil {
			return err
		}
		stdio.println(session.Format(reply))
		archive(ctx, svc, stdio, session)
		return nil
	}
	converse(ctx, svc, stdio, session)
	return nil
}

// converse reads user lines until quit, end of input or interrupt.
func converse(ctx context.Context, svc *service.Service, con *console, session *conversation.Session) {
	name := session.Persona().Name
	con.printf("Starting chat with %s. Type '%s' to exit.\n", name, conversation.QuitCommand)
	for {
		line := con.ask("User: ")
		if conversation.IsQuit(line) || (con.eof && line == "") {
			break
		}
		reply, err := session.Send(ctx, line)
		if err != nil {
			con.println()
			break
		}
		con.println(session.Format(reply))
		if con.eof {
			break
		}
	}
	con.printf("Ending chat with %s.\n", name)
	if agg := session.Usage(); agg != nil {
		if total := agg.Totals(); total.Calls > 0 {
			con.printf("[usage] prompt: %d, completion: %d tokens\n", total.PromptTokens, total.CompletionTokens)
		}
	}
	archive(ctx, svc, con, session)
}

func archive(ctx context.Context, svc *service.Service, con *console, session *conversation.Session) {
	archived, err := svc.Archive(context.WithoutCancel(ctx), session)
	if err != nil {
		con.printf("warning: unable to archive conversation: %v\n", err)
		return
	}
	if archived {
		con.printf("[conversation-id] %s\n", session.ID())
	}
}
