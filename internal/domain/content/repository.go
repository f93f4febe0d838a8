package content

import (
	"context"

	"github.com/google/uuid"
)

// ScriptRepository defines the interface for script persistence
type ScriptRepository interface {
	Create(ctx context.Context, script *Script) error
	Update(ctx context.Context, script *Script) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*Script, error)
	FindAll(ctx context.Context) ([]*Script, error)
	FindPublished(ctx context.Context, category string) ([]*Script, error)
}

// TechniqueRepository defines the interface for technique persistence
type TechniqueRepository interface {
	Create(ctx context.Context, technique *Technique) error
	Update(ctx context.Context, technique *Technique) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*Technique, error)
	FindAll(ctx context.Context) ([]*Technique, error)
	FindPublished(ctx context.Context) ([]*Technique, error)
}
