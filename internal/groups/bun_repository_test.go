package groups_test

import (
	"context"
	"errors"
	"testing"

	"github.com/goliatone/go-widgetlayout/internal/groups"
	"github.com/goliatone/go-widgetlayout/pkg/testsupport"
	"github.com/goliatone/go-widgetlayout/widgets"
	repocache "github.com/goliatone/go-repository-cache/cache"
)

func TestBunGroupRepositoryListsThroughService(t *testing.T) {
	ctx := context.Background()
	db := testsupport.NewBunDB(t)
	if err := groups.CreateSchema(ctx, db); err != nil {
		t.Fatalf("create schema: %v", err)
	}

	cacheService, err := repocache.NewCacheService(repocache.DefaultConfig())
	if err != nil {
		t.Fatalf("cache service: %v", err)
	}
	repo := groups.NewBunGroupRepositoryWithCache(db, cacheService, repocache.NewDefaultKeySerializer())
	seedGroups(t, repo)

	svc, err := groups.NewService(repo)
	if err != nil {
		t.Fatalf("NewService() error = %v", err)
	}
	listed, err := svc.ListNonPrivilegeGroups(ctx, widgets.SortCreateTime, 0, -1)
	if err != nil {
		t.Fatalf("ListNonPrivilegeGroups() error = %v", err)
	}
	equalNames(t, listed, "administrators", "Beta Testers", "alpha crew", "Global Moderators")

	record, err := repo.GetBySlug(ctx, listed[0].Slug)
	if err != nil {
		t.Fatalf("GetBySlug() error = %v", err)
	}
	if !record.System {
		t.Fatalf("expected system flag to round trip")
	}
}

func TestBunGroupRepositoryNotFound(t *testing.T) {
	ctx := context.Background()
	db := testsupport.NewBunDB(t)
	if err := groups.CreateSchema(ctx, db); err != nil {
		t.Fatalf("create schema: %v", err)
	}
	repo := groups.NewBunGroupRepository(db)

	var notFound *groups.NotFoundError
	if _, err := repo.GetBySlug(ctx, "nobody"); !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}
