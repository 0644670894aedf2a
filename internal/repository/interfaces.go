// Package repository contains repository interfaces for roster storage.
package repository

import (
	"context"

	"github.com/grape-tasting-acid/workshop-team-drawer/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// RosterInterface exposes roster reads.
type RosterInterface interface {
	Leaders(ctx context.Context) ([]entities.Person, error)
	Pool(ctx context.Context, c entities.Category) ([]entities.Person, error)
}

// TemplateInterface exposes template bootstrapping.
type TemplateInterface interface {
	EnsureTemplates(ctx context.Context) ([]string, error)
}
