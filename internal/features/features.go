// Package features turns a raw measurement record into the ordered numeric
// vector the classifier expects. Alignment never fails a request: when the
// model's declared columns can't be honored the vector degrades, first to a
// canonical training order and last to the minimal 5-feature form.
package features

import (
	"strings"

	"github.com/sdamera/agriadvisor-backend/internal/models"
)

// Reference lists for categorical encoding. Order must match training.
var (
	SoilTypes = []string{"Sandy", "Loamy", "Clay", "Silty", "Peaty"}
	CropTypes = []string{"Wheat", "Rice", "Maize", "Cotton", "Sugarcane"}
)

// canonicalOrder is the column order used in training, the fallback when the
// bundle carries no feature names. humidity is not collected by the form and
// defaults to 0.
var canonicalOrder = []string{"temperature", "humidity", "moisture", "soil_type", "crop_type", "N", "P", "K", "pH"}

// minimalOrder is the last-resort vector shape.
var minimalOrder = []string{"N", "P", "K", "pH", "moisture"}

// EncodeCategorical maps a category to its position in choices. Anything not
// in the list, numeric strings included, falls soft to 0 rather than erroring.
func EncodeCategorical(value string, choices []string) int {
	for i, c := range choices {
		if c == value {
			return i
		}
	}
	return 0
}

// Schema is the expected-column list negotiated once at model-load time.
// An empty schema means "model declares nothing"; Align then uses the
// canonical training order.
type Schema struct {
	Columns []string
}

func ResolveSchema(featureNames []string) Schema {
	cols := make([]string, 0, len(featureNames))
	for _, n := range featureNames {
		n = strings.TrimSpace(n)
		if n != "" {
			cols = append(cols, n)
		}
	}
	return Schema{Columns: cols}
}

func featureMap(req models.RecommendRequest) map[string]float64 {
	return map[string]float64{
		"temperature": req.Temperature,
		"humidity":    0,
		"moisture":    req.Moisture,
		"soil_type":   float64(EncodeCategorical(req.SoilType, SoilTypes)),
		"crop_type":   float64(EncodeCategorical(req.CropType, CropTypes)),
		"N":           req.N,
		"P":           req.P,
		"K":           req.K,
		"pH":          req.PH,
	}
}

// Align builds the feature vector for req. Column names the input doesn't
// cover become 0, so the result always has exactly one value per schema
// column, in schema order.
func Align(req models.RecommendRequest, schema Schema) []float64 {
	cols := schema.Columns
	if len(cols) == 0 {
		cols = canonicalOrder
	}
	fm := featureMap(req)
	vec := make([]float64, len(cols))
	for i, c := range cols {
		vec[i] = fm[c]
	}
	return vec
}

// MinimalVector is the {N, P, K, pH, moisture} fallback used when the
// schema-aligned vector is rejected by the model.
func MinimalVector(req models.RecommendRequest) []float64 {
	fm := featureMap(req)
	vec := make([]float64, len(minimalOrder))
	for i, c := range minimalOrder {
		vec[i] = fm[c]
	}
	return vec
}
