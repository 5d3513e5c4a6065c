package registry

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/fredshone/factory/internal/config"
	"github.com/fredshone/factory/internal/ctxlog"
)

// ValidateRegistry performs a strict parity check between the model and the
// registered types: every tool spec must be well formed and every station
// catalog entry must reference a registered type.
func (r *Registry) ValidateRegistry(ctx context.Context, model *config.Model) error {
	var errs []string
	logger := ctxlog.FromContext(ctx)

	for _, typ := range r.Types() {
		if err := r.Tools[typ].Validate(); err != nil {
			errs = append(errs, err.Error())
		}
	}

	used := make(map[string]bool)
	for _, s := range model.Stations {
		names := make([]string, 0, len(s.Provides))
		for name := range s.Provides {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			typ := s.Provides[name]
			if _, ok := r.Tools[typ]; !ok {
				errs = append(errs, fmt.Sprintf("station '%s': requirement '%s' references unknown tool type '%s'", s.Name, name, typ))
				continue
			}
			used[typ] = true
		}
	}

	for _, typ := range r.Types() {
		if !used[typ] {
			logger.Debug("Tool type is registered but no station provides it.", "type", typ)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("registry validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}
