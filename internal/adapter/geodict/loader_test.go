package geodict

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDictionary(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "geography.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeDictionary(t, `{
		"countries": [{"id": 1, "name": "Հայաստան"}],
		"cities": [
			{"id": 10, "countryId": 1, "name": "Երևան"},
			{"id": 11, "countryId": 1, "name": "Գյումրի"}
		],
		"districts": [
			{"id": 100, "cityId": 10, "name": "Կենտրոն"},
			{"id": 101, "cityId": 10, "name": "Նորք-Մարաշ"}
		]
	}`)

	dict, err := Load(path)
	require.NoError(t, err)

	assert.Len(t, dict.Countries, 1)
	assert.Len(t, dict.Cities, 2)
	assert.Len(t, dict.Districts, 2)

	city, ok := dict.CityByID(10)
	require.True(t, ok)
	assert.Equal(t, "Երևան", city.Name)
	assert.Equal(t, int64(1), city.CountryID)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read dictionary")
}

func TestLoad_MalformedJSON(t *testing.T) {
	path := writeDictionary(t, `{"countries": [`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse dictionary")
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name: "orphan district",
			content: `{
				"countries": [{"id": 1, "name": "Հայաստան"}],
				"cities": [{"id": 10, "countryId": 1, "name": "Երևան"}],
				"districts": [{"id": 100, "cityId": 99, "name": "Կենտրոն"}]
			}`,
			wantErr: "unknown city 99",
		},
		{
			name: "orphan city",
			content: `{
				"countries": [{"id": 1, "name": "Հայաստան"}],
				"cities": [{"id": 10, "countryId": 7, "name": "Երևան"}]
			}`,
			wantErr: "unknown country 7",
		},
		{
			name: "duplicate city id",
			content: `{
				"countries": [{"id": 1, "name": "Հայաստան"}],
				"cities": [
					{"id": 10, "countryId": 1, "name": "Երևան"},
					{"id": 10, "countryId": 1, "name": "Գյումրի"}
				]
			}`,
			wantErr: "duplicate city id 10",
		},
		{
			name: "missing name",
			content: `{
				"countries": [{"id": 1, "name": ""}]
			}`,
			wantErr: "id and name are required",
		},
		{
			name: "zero id",
			content: `{
				"countries": [{"id": 1, "name": "Հայաստան"}],
				"cities": [{"id": 0, "countryId": 1, "name": "Երևան"}]
			}`,
			wantErr: "id and name are required",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeDictionary(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
