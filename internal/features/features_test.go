package features

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sdamera/agriadvisor-backend/internal/models"
)

func sampleRequest() models.RecommendRequest {
	return models.RecommendRequest{
		N:           10,
		P:           20,
		K:           15,
		PH:          6.5,
		Moisture:    30,
		Temperature: 25,
		CropType:    "Wheat",
		SoilType:    "Loamy",
	}
}

func TestEncodeCategorical(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		choices []string
		want    int
	}{
		{"first soil", "Sandy", SoilTypes, 0},
		{"second soil", "Loamy", SoilTypes, 1},
		{"last soil", "Peaty", SoilTypes, 4},
		{"crop", "Sugarcane", CropTypes, 4},
		{"unknown falls to zero", "Volcanic", SoilTypes, 0},
		{"empty falls to zero", "", SoilTypes, 0},
		{"numeric string falls to zero", "3", SoilTypes, 0},
		{"negative numeric falls to zero", "-2", SoilTypes, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EncodeCategorical(tt.value, tt.choices))
		})
	}
}

func TestAlignWithSchema(t *testing.T) {
	schema := ResolveSchema([]string{"N", "P", "K", "pH", "moisture"})
	vec := Align(sampleRequest(), schema)

	require.Len(t, vec, 5)
	assert.Equal(t, []float64{10, 20, 15, 6.5, 30}, vec)
}

func TestAlignIsDeterministic(t *testing.T) {
	schema := ResolveSchema([]string{"temperature", "soil_type", "crop_type", "N"})
	first := Align(sampleRequest(), schema)
	second := Align(sampleRequest(), schema)
	assert.Equal(t, first, second)
	require.Len(t, first, 4)
}

func TestAlignUnknownColumnDefaultsToZero(t *testing.T) {
	schema := ResolveSchema([]string{"N", "rainfall", "pH"})
	vec := Align(sampleRequest(), schema)
	assert.Equal(t, []float64{10, 0, 6.5}, vec)
}

func TestAlignUnknownCategoricalMapsToZero(t *testing.T) {
	req := sampleRequest()
	req.SoilType = "Martian"
	req.CropType = "Kale"

	schema := ResolveSchema([]string{"soil_type", "crop_type"})
	assert.Equal(t, []float64{0, 0}, Align(req, schema))
}

func TestAlignCanonicalFallback(t *testing.T) {
	// Empty schema: the canonical training order applies, humidity slot 0.
	vec := Align(sampleRequest(), Schema{})
	require.Len(t, vec, 9)
	assert.Equal(t, []float64{25, 0, 30, 1, 0, 10, 20, 15, 6.5}, vec)
}

func TestMinimalVector(t *testing.T) {
	assert.Equal(t, []float64{10, 20, 15, 6.5, 30}, MinimalVector(sampleRequest()))
}

func TestResolveSchemaDropsBlankColumns(t *testing.T) {
	schema := ResolveSchema([]string{" N ", "", "pH"})
	assert.Equal(t, []string{"N", "pH"}, schema.Columns)
}
