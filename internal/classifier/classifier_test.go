package classifier

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stumpTree returns a single-split tree: feature fi <= threshold goes to the
// left leaf (class left), otherwise the right leaf (class right).
func stumpTree(fi int, threshold float64, left, right int) Tree {
	leafValue := func(class int) []float64 {
		v := make([]float64, 3)
		v[class] = 1
		return v
	}
	return Tree{
		ChildrenLeft:  []int{1, -1, -1},
		ChildrenRight: []int{2, -1, -1},
		Feature:       []int{fi, -2, -2},
		Threshold:     []float64{threshold, -2, -2},
		Value:         [][]float64{{0, 0, 0}, leafValue(left), leafValue(right)},
	}
}

func testModel() *Model {
	return &Model{
		FeatureNames: []string{"N", "P", "K", "pH", "moisture"},
		Classes:      []string{"Urea", "DAP", "14-35-14"},
		NumFeatures:  5,
		Forest: []Tree{
			stumpTree(0, 50, 0, 1),
			stumpTree(0, 50, 0, 1),
			stumpTree(3, 7, 2, 1),
		},
	}
}

func TestPredictMajorityVote(t *testing.T) {
	m := testModel()

	// N=10 <= 50: two trees vote Urea(0); pH=6.5 <= 7: one tree votes 14-35-14(2).
	class, err := m.Predict([]float64{10, 0, 0, 6.5, 0})
	require.NoError(t, err)
	assert.Equal(t, 0, class)
	assert.Equal(t, "Urea", m.Label(class))

	// N=80 > 50 and pH=9 > 7: all three trees vote DAP(1).
	class, err = m.Predict([]float64{80, 0, 0, 9, 0})
	require.NoError(t, err)
	assert.Equal(t, 1, class)
	assert.Equal(t, "DAP", m.Label(class))
}

func TestPredictRejectsShortVector(t *testing.T) {
	m := testModel()
	_, err := m.Predict([]float64{1, 2})
	assert.Error(t, err)
}

func TestPredictEmptyForest(t *testing.T) {
	m := &Model{}
	_, err := m.Predict([]float64{1})
	assert.ErrorIs(t, err, ErrNoForest)
}

func TestLabelOutOfRangeKeepsRawPrediction(t *testing.T) {
	m := testModel()
	assert.Equal(t, "7", m.Label(7))
	assert.Equal(t, "-1", m.Label(-1))
}

func TestLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fertilizer_model.json")
	bundle := `{
		"feature_names": ["N", "P", "K", "pH", "moisture"],
		"classes": ["Urea", "DAP"],
		"forest": [{
			"children_left": [1, -1, -1],
			"children_right": [2, -1, -1],
			"feature": [0, -2, -2],
			"threshold": [50, -2, -2],
			"value": [[0, 0], [1, 0], [0, 1]]
		}]
	}`
	require.NoError(t, os.WriteFile(path, []byte(bundle), 0o644))

	m, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"N", "P", "K", "pH", "moisture"}, m.FeatureNames)
	assert.Equal(t, []string{"Urea", "DAP"}, m.Classes)
	// n_features not in the bundle: inferred from the column list.
	assert.Equal(t, 5, m.NumFeatures)

	class, err := m.Predict([]float64{100, 0, 0, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, "DAP", m.Label(class))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadEmptyForest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"classes":["Urea"],"forest":[]}`), 0o644))
	_, err := Load(path)
	assert.ErrorIs(t, err, ErrNoForest)
}

func TestLoadMalformedBundle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0o644))
	_, err := Load(path)
	assert.Error(t, err)
}
