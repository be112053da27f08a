package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dperalta/projecthub/internal/domain"
	"github.com/dperalta/projecthub/internal/service"
)

// resolveProject matches input against the snapshot's projects by exact id,
// id prefix, or case-insensitive name.
func resolveProject(snap *service.Snapshot, input string) (*domain.Project, error) {
	if input == "" {
		return nil, fmt.Errorf("se requiere el proyecto")
	}

	for _, p := range snap.Projects {
		if p.ID == input {
			return p, nil
		}
	}
	for _, p := range snap.Projects {
		if strings.EqualFold(p.Name, input) {
			return p, nil
		}
	}

	var matches []*domain.Project
	for _, p := range snap.Projects {
		if strings.HasPrefix(p.ID, input) {
			matches = append(matches, p)
		}
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("proyecto no encontrado: %q", input)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("prefijo de proyecto %q ambiguo (%d coincidencias)", input, len(matches))
	}
}

// resolvePerson matches input against the snapshot's personnel by exact id,
// id prefix, or case-insensitive name.
func resolvePerson(snap *service.Snapshot, input string) (*domain.Person, error) {
	if input == "" {
		return nil, fmt.Errorf("se requiere la persona")
	}

	for _, p := range snap.Personnel {
		if p.ID == input {
			return p, nil
		}
	}
	for _, p := range snap.Personnel {
		if strings.EqualFold(p.Name, input) {
			return p, nil
		}
	}

	var matches []*domain.Person
	for _, p := range snap.Personnel {
		if strings.HasPrefix(p.ID, input) {
			matches = append(matches, p)
		}
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("persona no encontrada: %q", input)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("prefijo de persona %q ambiguo (%d coincidencias)", input, len(matches))
	}
}

func loadSnapshot(ctx context.Context, app *App) (*service.Snapshot, error) {
	return app.Refresh.Load(ctx)
}
