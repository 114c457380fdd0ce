package service

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/arefinkhan/examine/internal/dto"
	"github.com/arefinkhan/examine/internal/model"
	"github.com/arefinkhan/examine/internal/repository"
)

func newPostService(t *testing.T) (PostService, repository.PostRepository) {
	t.Helper()
	repo := repository.NewPostRepository(openTestDB(t))
	return NewPostService(repo), repo
}

func TestPostService_CreateTrimsAndValidates(t *testing.T) {
	svc, _ := newPostService(t)

	post, err := svc.Create(1, dto.PostCreateRequest{Title: "  Exam week  ", Content: "  Good luck.  "})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if post.Title != "Exam week" || post.Content != "Good luck." {
		t.Fatalf("not trimmed: %+v", post)
	}

	if _, err := svc.Create(1, dto.PostCreateRequest{Title: "   ", Content: "body"}); !errors.Is(err, ErrPostIncomplete) {
		t.Fatalf("blank title: want ErrPostIncomplete, got %v", err)
	}
	if _, err := svc.Create(1, dto.PostCreateRequest{Title: "t", Content: " "}); !errors.Is(err, ErrPostIncomplete) {
		t.Fatalf("blank content: want ErrPostIncomplete, got %v", err)
	}
}

func TestPostService_ListNewestFirstWithExcerpt(t *testing.T) {
	svc, repo := newPostService(t)

	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	long := "<h1>Notice</h1><p>" + strings.Repeat("word ", 60) + "</p>"
	seed := []model.Post{
		{SiteID: 1, Title: "older", Content: long, CreatedAt: base},
		{SiteID: 1, Title: "newer", Content: "<b>short</b> note", CreatedAt: base.Add(time.Hour)},
		{SiteID: 2, Title: "foreign", Content: "other site", CreatedAt: base.Add(2 * time.Hour)},
	}
	for i := range seed {
		if err := repo.Create(&seed[i]); err != nil {
			t.Fatalf("seed post: %v", err)
		}
	}

	items, err := svc.List(1)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("want 2 posts for site 1, got %d", len(items))
	}
	if items[0].Title != "newer" || items[1].Title != "older" {
		t.Fatalf("not newest first: %q, %q", items[0].Title, items[1].Title)
	}
	if items[0].Excerpt != "short note" {
		t.Fatalf("markup survived the excerpt: %q", items[0].Excerpt)
	}
	if got := items[1].Excerpt; len([]rune(got)) != excerptLength+3 || !strings.HasSuffix(got, "...") {
		t.Fatalf("excerpt not cut at bound: %d runes, %q", len([]rune(got)), got)
	}
}

func TestPostService_SiteScoping(t *testing.T) {
	svc, _ := newPostService(t)

	post, err := svc.Create(1, dto.PostCreateRequest{Title: "mine", Content: "body"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Another site can neither read, rewrite nor delete the post.
	if _, err := svc.Get(2, post.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("cross-site get: want ErrNotFound, got %v", err)
	}
	if _, err := svc.Update(2, post.ID, dto.PostUpdateRequest{Title: "theirs", Content: "x"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("cross-site update: want ErrNotFound, got %v", err)
	}
	if err := svc.Delete(2, post.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("cross-site delete: want ErrNotFound, got %v", err)
	}

	got, err := svc.Get(1, post.ID)
	if err != nil || got.Title != "mine" {
		t.Fatalf("post damaged by foreign site: %+v, %v", got, err)
	}

	updated, err := svc.Update(1, post.ID, dto.PostUpdateRequest{Title: "mine, edited", Content: "new body"})
	if err != nil || updated.Content != "new body" {
		t.Fatalf("owner update: %+v, %v", updated, err)
	}
	if err := svc.Delete(1, post.ID); err != nil {
		t.Fatalf("owner delete: %v", err)
	}
	if _, err := svc.Get(1, post.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("post survived delete: %v", err)
	}
}
