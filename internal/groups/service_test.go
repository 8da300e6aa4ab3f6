package groups_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/goliatone/go-widgetlayout/internal/groups"
	"github.com/goliatone/go-widgetlayout/widgets"
)

func seedGroups(t *testing.T, repo groups.Repository) {
	t.Helper()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	records := []*groups.Group{
		{Name: "administrators", System: true, MemberCount: 2, CreatedAt: base},
		{Name: "Beta Testers", MemberCount: 40, CreatedAt: base.Add(time.Hour)},
		{Name: "cid:1:privileges:find", Slug: "cid-1-privileges-find", System: true, CreatedAt: base.Add(2 * time.Hour)},
		{Name: "alpha crew", MemberCount: 7, CreatedAt: base.Add(3 * time.Hour)},
		{Name: "Global Moderators", System: true, MemberCount: 5, CreatedAt: base.Add(4 * time.Hour)},
	}
	for _, record := range records {
		if _, err := repo.Create(context.Background(), record); err != nil {
			t.Fatalf("create group %s: %v", record.Name, err)
		}
	}
}

func names(list []widgets.Group) []string {
	out := make([]string, len(list))
	for i, g := range list {
		out[i] = g.Name
	}
	return out
}

func equalNames(t *testing.T, got []widgets.Group, want ...string) {
	t.Helper()
	gotNames := names(got)
	if len(gotNames) != len(want) {
		t.Fatalf("expected %v, got %v", want, gotNames)
	}
	for i := range want {
		if gotNames[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, gotNames)
		}
	}
}

func TestListNonPrivilegeGroupsSortKeys(t *testing.T) {
	repo := groups.NewMemoryRepository()
	seedGroups(t, repo)
	svc, err := groups.NewService(repo)
	if err != nil {
		t.Fatalf("NewService() error = %v", err)
	}
	ctx := context.Background()

	byTime, err := svc.ListNonPrivilegeGroups(ctx, widgets.SortCreateTime, 0, -1)
	if err != nil {
		t.Fatalf("createtime: %v", err)
	}
	equalNames(t, byTime, "administrators", "Beta Testers", "alpha crew", "Global Moderators")

	byMembers, err := svc.ListNonPrivilegeGroups(ctx, widgets.SortMemberCount, 0, -1)
	if err != nil {
		t.Fatalf("memberCount: %v", err)
	}
	equalNames(t, byMembers, "Beta Testers", "alpha crew", "Global Moderators", "administrators")

	byName, err := svc.ListNonPrivilegeGroups(ctx, widgets.SortName, 0, -1)
	if err != nil {
		t.Fatalf("name: %v", err)
	}
	equalNames(t, byName, "administrators", "alpha crew", "Beta Testers", "Global Moderators")
}

func TestListNonPrivilegeGroupsWindow(t *testing.T) {
	repo := groups.NewMemoryRepository()
	seedGroups(t, repo)
	svc, _ := groups.NewService(repo)
	ctx := context.Background()

	page, err := svc.ListNonPrivilegeGroups(ctx, widgets.SortName, 1, 2)
	if err != nil {
		t.Fatalf("window: %v", err)
	}
	equalNames(t, page, "alpha crew", "Beta Testers")

	past, err := svc.ListNonPrivilegeGroups(ctx, widgets.SortName, 10, -1)
	if err != nil {
		t.Fatalf("past end: %v", err)
	}
	if past == nil || len(past) != 0 {
		t.Fatalf("expected empty non-nil page, got %#v", past)
	}
}

func TestListNonPrivilegeGroupsRejectsUnknownSortKey(t *testing.T) {
	svc, _ := groups.NewService(groups.NewMemoryRepository())
	if _, err := svc.ListNonPrivilegeGroups(context.Background(), "groups:bogus", 0, -1); !errors.Is(err, widgets.ErrUnknownSortKey) {
		t.Fatalf("expected ErrUnknownSortKey, got %v", err)
	}
}

func TestNewServiceRequiresRepository(t *testing.T) {
	if _, err := groups.NewService(nil); !errors.Is(err, groups.ErrRepositoryNeeded) {
		t.Fatalf("expected ErrRepositoryNeeded, got %v", err)
	}
}

func TestIsPrivilegeGroup(t *testing.T) {
	cases := map[string]bool{
		"cid:12:privileges:groups:read": true,
		"cid:0:privileges:find":         true,
		"cid:x:privileges:find":         false,
		"registered-users":              false,
		"my cid:1:privileges:":          false,
	}
	for name, want := range cases {
		if got := groups.IsPrivilegeGroup(name); got != want {
			t.Fatalf("IsPrivilegeGroup(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestMemoryRepositoryDerivesSlugs(t *testing.T) {
	repo := groups.NewMemoryRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, &groups.Group{Name: "Global Moderators"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if created.Slug == "" || created.Slug == "Global Moderators" {
		t.Fatalf("expected normalized slug, got %q", created.Slug)
	}
	if _, err := repo.Create(ctx, &groups.Group{Name: "Global Moderators"}); !errors.Is(err, groups.ErrDuplicateSlug) {
		t.Fatalf("expected ErrDuplicateSlug, got %v", err)
	}
	if _, err := repo.Create(ctx, &groups.Group{Name: "  "}); !errors.Is(err, groups.ErrGroupNameRequired) {
		t.Fatalf("expected ErrGroupNameRequired, got %v", err)
	}

	var notFound *groups.NotFoundError
	if _, err := repo.GetBySlug(ctx, "missing"); !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}
