package aiperson

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/viant/aiperson/genai/persona"
	"github.com/viant/aiperson/service"
)

// MenuCmd runs the numbered interactive menu.
type MenuCmd struct{}

func (c *MenuCmd) Execute(_ []string) error { return c.Run(context.Background()) }

func (c *MenuCmd) Run(ctx context.Context) error {
	return newMenu(serviceSingleton(ctx), stdio).Run(ctx)
}

type menu struct {
	svc *service.Service
	con *console
}

func newMenu(svc *service.Service, con *console) *menu {
	return &menu{svc: svc, con: con}
}

// Run loops until the user quits, input ends or ctx is cancelled. Errors of a
// single action are reported and the menu is shown again.
func (m *menu) Run(ctx context.Context) error {
	for ctx.Err() == nil {
		m.con.println("\nHere are your options:")
		m.con.println("1. Create a new AI person")
		m.con.println("2. List AI persons")
		m.con.println("3. Modify an AI person")
		m.con.println("4. Chat with an AI person")
		m.con.println("5. Quit")
		choice := strings.TrimSpace(m.con.ask("Enter your choice: "))
		switch choice {
		case "1":
			m.create(ctx)
		case "2":
			m.list(ctx)
		case "3":
			m.modify(ctx)
		case "4":
			m.chat(ctx)
		case "5":
			m.con.println("Goodbye!")
			return nil
		default:
			if m.con.eof {
				return nil
			}
			m.con.println("Invalid choice. Please try again.")
		}
	}
	return nil
}

func (m *menu) create(ctx context.Context) {
	input := &service.CreateInput{
		Prompt: strings.TrimSpace(m.con.ask("Enter the prompt for the chatbot: ")),
		Name:   strings.TrimSpace(m.con.ask("Enter the name for the chatbot: ")),
		Model:  strings.TrimSpace(m.con.ask("Enter the Hugging Face model for the chatbot (e.g., 'gpt2'): ")),
	}
	input.SaveLocally = m.con.askYesNo("Do you want to save the model locally? (yes/no): ")

	exists, err := m.svc.Exists(ctx, input.Name)
	if err != nil {
		m.reportError(err)
		return
	}
	if exists {
		if !m.con.askYesNo(fmt.Sprintf("AI person '%s' already exists. Overwrite? (yes/no): ", input.Name)) {
			m.con.println("Creation cancelled.")
			return
		}
		input.Overwrite = true
	}
	createPersona(ctx, m.svc, m.con, input)
}

func (m *menu) list(ctx context.Context) []string {
	return listPersonas(ctx, m.svc, m.con)
}

func (m *menu) modify(ctx context.Context) {
	if names := m.list(ctx); len(names) == 0 {
		return
	}
	selected := strings.TrimSpace(m.con.ask("Enter the name of the AI person you want to modify: "))
	p, err := m.svc.Get(ctx, selected)
	if err != nil {
		m.reportError(err)
		return
	}
	m.con.println("Enter new values or press Enter to keep existing values.")
	change := &persona.Change{
		Name:   strings.TrimSpace(m.con.ask(fmt.Sprintf("New name (current: %s): ", p.Name))),
		Prompt: strings.TrimSpace(m.con.ask(fmt.Sprintf("New prompt (current: %s): ", p.Prompt))),
		Model:  strings.TrimSpace(m.con.ask(fmt.Sprintf("New model (current: %s): ", p.Model))),
	}
	if change.Model != "" {
		saveLocally := m.con.askYesNo("Do you want to save the new model locally? (yes/no): ")
		change.SaveLocally = &saveLocally
	}
	modifyPersona(ctx, m.svc, m.con, selected, change)
}

func (m *menu) chat(ctx context.Context) {
	if names := m.list(ctx); len(names) == 0 {
		return
	}
	selected := strings.TrimSpace(m.con.ask("Enter the name of the AI person you want to chat with: "))
	session, err := m.svc.StartChat(ctx, selected)
	if err != nil {
		m.reportError(err)
		return
	}
	converse(ctx, m.svc, m.con, session)
}

func (m *menu) reportError(err error) {
	reportError(m.con, err)
}

func reportError(con *console, err error) {
	switch {
	case errors.Is(err, persona.ErrNotFound):
		con.printf("Error: %v. Choose a name from the list.\n", err)
	default:
		con.printf("Error: %v\n", err)
	}
}
