package docs_test

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"

	"github.com/sandroescobar/MiamiSmokeShopWebPage/docs"
)

type swaggerDoc struct {
	Info struct {
		Title string `json:"title"`
	} `json:"info"`
	Paths map[string]json.RawMessage `json:"paths"`
}

func TestSwaggerDoc_Registered(t *testing.T) {
	raw, err := swag.ReadDoc()
	require.NoError(t, err)

	var doc swaggerDoc
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	assert.Equal(t, docs.SwaggerInfo.Title, doc.Info.Title)
	for _, p := range []string{"/api/ingestions", "/api/ingestions/preview", "/api/stores", "/api/stores/{store}/inventory"} {
		assert.Contains(t, doc.Paths, p)
	}
}

func TestSwaggerJSON_MatchesRegisteredPaths(t *testing.T) {
	raw, err := swag.ReadDoc()
	require.NoError(t, err)
	var registered swaggerDoc
	require.NoError(t, json.Unmarshal([]byte(raw), &registered))

	b, err := os.ReadFile("swagger.json")
	require.NoError(t, err)
	var served swaggerDoc
	require.NoError(t, json.Unmarshal(b, &served))

	assert.Len(t, served.Paths, len(registered.Paths))
	for p := range registered.Paths {
		assert.Contains(t, served.Paths, p)
	}
}
