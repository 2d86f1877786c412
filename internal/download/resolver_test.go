package download

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/handiism/rover/internal/manifest"
	"github.com/handiism/rover/internal/model"
)

var (
	iris = model.Dataset{Filename: "iris.csv", Description: "Fisher's iris flower dataset", URL: "https://example.org/iris.csv"}
	wine = model.Dataset{Filename: "wine.csv", Description: "Wine recognition data", URL: "https://example.org/wine.csv"}
	zoo  = model.Dataset{Filename: "zoo.csv", Description: "Zoo animals", URL: "https://example.org/zoo.csv"}
)

func testCatalog() *manifest.Manifest {
	return manifest.New(map[string]model.Dataset{
		"iris": iris,
		"wine": wine,
		"zoo":  zoo,
	})
}

func TestResolve_AllKnown(t *testing.T) {
	tests := []struct {
		name      string
		requested []string
		want      []model.Dataset
	}{
		{"single", []string{"iris"}, []model.Dataset{iris}},
		{"request order kept", []string{"zoo", "iris", "wine"}, []model.Dataset{zoo, iris, wine}},
		{"duplicates kept", []string{"iris", "wine", "iris"}, []model.Dataset{iris, wine, iris}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(testCatalog(), tt.requested)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolve_Empty(t *testing.T) {
	got, err := Resolve(testCatalog(), nil)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestResolve_UnknownNames(t *testing.T) {
	tests := []struct {
		name      string
		requested []string
		want      []string
	}{
		{"single unknown", []string{"banana"}, []string{"banana"}},
		{"unknown after known", []string{"iris", "banana"}, []string{"banana"}},
		{"unknown before known", []string{"banana", "iris", "wine"}, []string{"banana"}},
		{"several unknown", []string{"kiwi", "iris", "banana", "wine", "plum"}, []string{"kiwi", "banana", "plum"}},
		{"case sensitive", []string{"Iris", "iris"}, []string{"Iris"}},
		{"repeated unknown reported once", []string{"banana", "iris", "banana"}, []string{"banana"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(testCatalog(), tt.requested)
			assert.Nil(t, got)

			var unknown *UnknownDatasetsError
			require.True(t, errors.As(err, &unknown), "want *UnknownDatasetsError, got %T", err)
			assert.Equal(t, tt.want, unknown.Names)
		})
	}
}

func TestUnknownDatasetsError_Message(t *testing.T) {
	err := &UnknownDatasetsError{Names: []string{"banana", "kiwi"}}
	assert.Equal(t, "unknown dataset(s) encountered: banana kiwi", err.Error())
}
