package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumalink/profile-service/internal/domain"
	"github.com/lumalink/profile-service/internal/repository"
)

func pageFixtures() (*profileRepoMock, *pageRepoMock) {
	profiles := &profileRepoMock{
		getByUserIDFunc: func(_ context.Context, userID string) (*domain.Profile, error) {
			return &domain.Profile{ID: "profile-1", UserID: userID}, nil
		},
	}
	pages := &pageRepoMock{}
	return profiles, pages
}

func newPageServiceForTest(profiles *profileRepoMock, pages *pageRepoMock) *PageService {
	profileSvc := newProfileService(profiles, pages, &socialLinkRepoMock{}, &templateRepoMock{}, &userRepoMock{})
	return NewPageService(pages, profileSvc)
}

func TestPageCreateAppendsAtEnd(t *testing.T) {
	profiles, pages := pageFixtures()
	pages.listByProfileFunc = func(_ context.Context, _ string, _ bool) ([]domain.Page, error) {
		return []domain.Page{{ID: "page-1"}, {ID: "page-2"}}, nil
	}
	var created *domain.Page
	pages.createFunc = func(_ context.Context, page *domain.Page) error {
		page.ID = "page-3"
		created = page
		return nil
	}
	svc := newPageServiceForTest(profiles, pages)

	page, err := svc.Create(context.Background(), starterUser(), PageInput{
		Type:    domain.PageTypeAbout,
		Slug:    "about",
		Title:   "About me",
		Content: json.RawMessage(`{"blocks":[]}`),
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, 2, page.Position)
	assert.Equal(t, "profile-1", created.ProfileID)
}

func TestPageCreateRejectsInvalidContent(t *testing.T) {
	profiles, pages := pageFixtures()
	svc := newPageServiceForTest(profiles, pages)

	_, err := svc.Create(context.Background(), starterUser(), PageInput{
		Slug:    "about",
		Title:   "About me",
		Content: json.RawMessage(`{not json`),
	})
	require.Error(t, err)
}

func TestPageCreateDuplicateSlug(t *testing.T) {
	profiles, pages := pageFixtures()
	pages.createFunc = func(_ context.Context, _ *domain.Page) error {
		return repository.ErrDuplicateSlug
	}
	svc := newPageServiceForTest(profiles, pages)

	_, err := svc.Create(context.Background(), starterUser(), PageInput{Slug: "home", Title: "Home"})
	require.ErrorIs(t, err, ErrSlugTaken)
}

func TestPageUpdateChecksOwnership(t *testing.T) {
	profiles, pages := pageFixtures()
	pages.getByIDFunc = func(_ context.Context, id string) (*domain.Page, error) {
		return &domain.Page{ID: id, ProfileID: "someone-elses-profile"}, nil
	}
	svc := newPageServiceForTest(profiles, pages)

	_, err := svc.Update(context.Background(), starterUser(), "page-1", PageInput{Slug: "home", Title: "Home"})
	require.ErrorIs(t, err, ErrNotPageOwner)
}

func TestPageDelete(t *testing.T) {
	profiles, pages := pageFixtures()
	pages.getByIDFunc = func(_ context.Context, id string) (*domain.Page, error) {
		return &domain.Page{ID: id, ProfileID: "profile-1"}, nil
	}
	var deleted []string
	pages.deleteFunc = func(_ context.Context, id string) error {
		deleted = append(deleted, id)
		return nil
	}
	svc := newPageServiceForTest(profiles, pages)

	require.NoError(t, svc.Delete(context.Background(), starterUser(), "page-1"))
	assert.Equal(t, []string{"page-1"}, deleted)
}

func TestPageReorder(t *testing.T) {
	profiles, pages := pageFixtures()
	var gotOrder []string
	pages.reorderFunc = func(_ context.Context, profileID string, orderedIDs []string) error {
		assert.Equal(t, "profile-1", profileID)
		gotOrder = orderedIDs
		return nil
	}
	svc := newPageServiceForTest(profiles, pages)

	require.NoError(t, svc.Reorder(context.Background(), starterUser(), []string{"page-2", "page-1"}))
	assert.Equal(t, []string{"page-2", "page-1"}, gotOrder)
}
