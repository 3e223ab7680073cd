package ports

import "github.com/sklarow/brutalist-color-pallete/internal/domain"

type WorkspaceInitializer interface {
	Init(spec domain.WorkspaceSpec, force bool) error
}
