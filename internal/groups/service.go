package groups

import (
	"cmp"
	"context"
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/goliatone/go-widgetlayout/internal/logging"
	"github.com/goliatone/go-widgetlayout/pkg/interfaces"
	"github.com/goliatone/go-widgetlayout/widgets"
)

// privilegeGroupPattern matches the per-category groups that back the
// privilege system. They are never offered as visibility targets.
var privilegeGroupPattern = regexp.MustCompile(`^cid:\d+:privileges:`)

// IsPrivilegeGroup reports whether name belongs to a privilege group.
func IsPrivilegeGroup(name string) bool {
	return privilegeGroupPattern.MatchString(name)
}

// Service lists groups for the widget settings panel.
type Service struct {
	repo   Repository
	logger interfaces.Logger
}

var _ interfaces.GroupLister = (*Service)(nil)

// ServiceOption configures the group service.
type ServiceOption func(*Service)

// WithLogger overrides the logger used by the service.
func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewService constructs a group service over repo.
func NewService(repo Repository, opts ...ServiceOption) (*Service, error) {
	if repo == nil {
		return nil, ErrRepositoryNeeded
	}
	s := &Service{repo: repo, logger: logging.NoOp()}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s, nil
}

// Create stores a new group.
func (s *Service) Create(ctx context.Context, group *Group) (*Group, error) {
	created, err := s.repo.Create(ctx, group)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("groups.created", "slug", created.Slug, "system", created.System)
	return created, nil
}

// ListNonPrivilegeGroups returns every group that is not a privilege group,
// ordered by sortKey and windowed by offset and limit. A negative limit
// returns everything after offset.
func (s *Service) ListNonPrivilegeGroups(ctx context.Context, sortKey string, offset, limit int) ([]widgets.Group, error) {
	compare, ok := comparators[sortKey]
	if !ok {
		return nil, fmt.Errorf("%w: %q", widgets.ErrUnknownSortKey, sortKey)
	}

	records, err := s.repo.List(ctx)
	if err != nil {
		s.logger.WithContext(ctx).Error("groups.list.failed", "error", err)
		return nil, err
	}

	out := make([]widgets.Group, 0, len(records))
	for _, record := range records {
		if record == nil || IsPrivilegeGroup(record.Name) {
			continue
		}
		out = append(out, record.View())
	}
	slices.SortStableFunc(out, compare)
	return window(out, offset, limit), nil
}

// comparators order groups oldest first, largest first and alphabetically.
var comparators = map[string]func(a, b widgets.Group) int{
	widgets.SortCreateTime: func(a, b widgets.Group) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	},
	widgets.SortMemberCount: func(a, b widgets.Group) int {
		return cmp.Compare(b.MemberCount, a.MemberCount)
	},
	widgets.SortName: func(a, b widgets.Group) int {
		return cmp.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	},
}

func window(groups []widgets.Group, offset, limit int) []widgets.Group {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(groups) {
		return []widgets.Group{}
	}
	end := len(groups)
	if limit >= 0 && offset+limit < end {
		end = offset + limit
	}
	return groups[offset:end]
}
