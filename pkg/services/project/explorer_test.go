package project

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/folio-tools/folio-api/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockContentStore struct {
	mock.Mock
}

func (m *mockContentStore) Query(ctx context.Context, groq string, params map[string]string, result any) error {
	args := m.Called(ctx, groq, params, result)
	return args.Error(0)
}

func TestGetProject_FromStore(t *testing.T) {
	store := new(mockContentStore)
	store.On("Query", mock.Anything, projectQuery, map[string]string{"slug": "screentime"}, mock.Anything).
		Run(func(args mock.Arguments) {
			doc := `{
				"id": "screentime",
				"title": "Screentime Receipt",
				"year": "2025",
				"description": "A receipt for your screentime.",
				"toolCategories": [{"label": "Frontend", "tools": ["TypeScript", "React"]}]
			}`
			require.NoError(t, json.Unmarshal([]byte(doc), args.Get(3)))
		}).
		Return(nil).Once()

	explorer := NewExplorer(store)
	project, err := explorer.GetProject(context.Background(), "screentime")

	require.NoError(t, err)
	assert.Equal(t, "Screentime Receipt", project.Title)
	require.Len(t, project.ToolCategories, 1)
	assert.Equal(t, domain.ToolCategory{Label: "Frontend", Tools: []string{"TypeScript", "React"}}, project.ToolCategories[0])
	store.AssertExpectations(t)
}

func TestGetProject_FallbackOnStoreError(t *testing.T) {
	store := new(mockContentStore)
	store.On("Query", mock.Anything, projectQuery, map[string]string{"slug": "screentime"}, mock.Anything).
		Return(assert.AnError).Once()

	explorer := NewExplorer(store)
	project, err := explorer.GetProject(context.Background(), "screentime")

	require.NoError(t, err)
	assert.Equal(t, DefaultScreentimeProject(), project)
}

func TestGetProject_FallbackOnMissingDocument(t *testing.T) {
	store := new(mockContentStore)
	store.On("Query", mock.Anything, projectQuery, map[string]string{"slug": "screentime"}, mock.Anything).
		Return(nil).Once()

	explorer := NewExplorer(store)
	project, err := explorer.GetProject(context.Background(), "screentime")

	require.NoError(t, err)
	assert.Equal(t, "screentime", project.ID)
}

func TestGetProject_UnknownSlug(t *testing.T) {
	store := new(mockContentStore)
	store.On("Query", mock.Anything, projectQuery, map[string]string{"slug": "nope"}, mock.Anything).
		Return(nil).Once()

	explorer := NewExplorer(store)
	_, err := explorer.GetProject(context.Background(), "nope")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetProject_UnknownSlugWithStoreError(t *testing.T) {
	store := new(mockContentStore)
	store.On("Query", mock.Anything, projectQuery, map[string]string{"slug": "nope"}, mock.Anything).
		Return(assert.AnError).Once()

	explorer := NewExplorer(store)
	_, err := explorer.GetProject(context.Background(), "nope")

	assert.ErrorIs(t, err, assert.AnError)
}
