package conversation

import (
	"context"
	"fmt"

	"github.com/viant/afs"
	"github.com/viant/aiperson/genai/conversation"
	"github.com/viant/aiperson/internal/workspace"
	baserepo "github.com/viant/aiperson/internal/workspace/repository/base"
)

// Repository archives finished sessions as <id>.json.
type Repository struct {
	*baserepo.Repository[conversation.Record]
}

// New returns an archive rooted at dir; an empty dir selects the workspace
// conversations folder.
func New(fs afs.Service, dir string) *Repository {
	if dir == "" {
		return &Repository{Repository: baserepo.New[conversation.Record](fs, workspace.KindConversation, ".json")}
	}
	return &Repository{Repository: baserepo.NewWithDir[conversation.Record](fs, dir, ".json")}
}

// Archive stores record under its ID.
func (r *Repository) Archive(ctx context.Context, record *conversation.Record) error {
	if record == nil || record.ID == "" {
		return fmt.Errorf("conversation record has no id")
	}
	if err := r.Save(ctx, record.ID, record); err != nil {
		return fmt.Errorf("failed to archive conversation %v: %w", record.ID, err)
	}
	return nil
}
