package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/guregu/null.v3"
)

func TestGuideDetail_JSONFlattensSummary(t *testing.T) {
	g := GuideDetail{
		GuideSummary: GuideSummary{
			ID:       1,
			Title:    "Terremoto",
			Category: null.StringFrom("Natural"),
		},
		ContentMD: null.StringFrom("# Abrigo..."),
	}

	b, err := json.Marshal(g)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(b, &got))

	assert.Equal(t, float64(1), got["id"])
	assert.Equal(t, "Terremoto", got["title"])
	assert.Equal(t, "Natural", got["category"])
	assert.Equal(t, "# Abrigo...", got["content_md"])
	assert.Contains(t, got, "difficulty")
	assert.Nil(t, got["difficulty"])
	assert.NotContains(t, got, "GuideSummary")
}

func TestGuideSummary_JSONHasNoBody(t *testing.T) {
	b, err := json.Marshal(GuideSummary{ID: 1, Title: "Terremoto"})
	require.NoError(t, err)
	assert.NotContains(t, string(b), "content_md")
}

func TestSupportPoint_JSONCoordinatesAreNumbers(t *testing.T) {
	b, err := json.Marshal(SupportPoint{
		ID:        3,
		Name:      "Abrigo Central",
		Type:      "abrigo",
		Latitude:  null.FloatFrom(-30.0346),
		Longitude: null.FloatFrom(-51.2177),
	})
	require.NoError(t, err)

	assert.Contains(t, string(b), `"latitude":-30.0346`)
	assert.Contains(t, string(b), `"longitude":-51.2177`)
	assert.Contains(t, string(b), `"services":null`)
	assert.Contains(t, string(b), `"address":null`)
}
