package platform

import (
	"github.com/aretw0/hosts/pkg/core"
)

// New creates a hosts Service operating on path.
// An empty path selects the system hosts file.
//
//	svc, err := hosts.New("", hosts.WithAtomicWrite(true))
func New(path string, opts ...Option) (*core.Service, error) {
	o := applyOptions(opts)

	repo, err := initRepository(path, o)
	if err != nil {
		return nil, err
	}

	return core.NewService(repo, o.safeResolver(), o.logger), nil
}

// Init builds the repository without wrapping it in a Service.
func Init(path string, opts ...Option) (core.Repository, error) {
	return initRepository(path, applyOptions(opts))
}
