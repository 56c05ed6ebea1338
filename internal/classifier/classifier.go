// Package classifier loads the pre-trained fertilizer model bundle and runs
// predictions against it. The bundle is a JSON export of the offline training
// artifact: a random forest in flattened node-array form plus the label
// encoder's class table. The model is opaque to the rest of the system —
// everything upstream only sees Predict(vector) -> class index.
package classifier

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
)

// Tree is a single decision tree in flattened array form: index i is a node,
// leaves have children_left[i] == -1.
type Tree struct {
	ChildrenLeft  []int       `json:"children_left"`
	ChildrenRight []int       `json:"children_right"`
	Feature       []int       `json:"feature"`
	Threshold     []float64   `json:"threshold"`
	Value         [][]float64 `json:"value"` // per-node class score distribution
}

// Model is the deserialized bundle. FeatureNames is the ordered column list
// the forest was trained on; Classes is the label encoder table mapping class
// indices back to fertilizer names.
type Model struct {
	FeatureNames []string `json:"feature_names"`
	Classes      []string `json:"classes"`
	NumFeatures  int      `json:"n_features"`
	Forest       []Tree   `json:"forest"`
}

var ErrNoForest = errors.New("classifier: bundle contains no trees")

// Load reads the model bundle from disk. Callers treat a load failure as
// "no model": the recommendation engine degrades to its default label
// instead of failing requests, so startup never crashes on a missing bundle.
func Load(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var m Model
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("classifier: parse bundle: %w", err)
	}
	if len(m.Forest) == 0 {
		return nil, ErrNoForest
	}
	if m.NumFeatures == 0 {
		m.NumFeatures = len(m.FeatureNames)
	}
	return &m, nil
}

// Predict runs the feature vector through every tree and majority-votes the
// class. The vector must cover the trained feature count.
func (m *Model) Predict(features []float64) (int, error) {
	if m == nil || len(m.Forest) == 0 {
		return 0, ErrNoForest
	}
	if m.NumFeatures > 0 && len(features) < m.NumFeatures {
		return 0, fmt.Errorf("classifier: got %d features, model expects %d", len(features), m.NumFeatures)
	}

	votes := make(map[int]int)
	best, bestCount := 0, 0
	for ti := range m.Forest {
		class, err := m.Forest[ti].predict(features)
		if err != nil {
			return 0, fmt.Errorf("classifier: tree %d: %w", ti, err)
		}
		votes[class]++
		// Ties resolve to the lowest class index, matching the exporter.
		if votes[class] > bestCount || (votes[class] == bestCount && class < best) {
			best, bestCount = class, votes[class]
		}
	}
	return best, nil
}

// Label decodes a predicted class index to a fertilizer name. Indices outside
// the class table keep the raw prediction as text.
func (m *Model) Label(class int) string {
	if m != nil && class >= 0 && class < len(m.Classes) {
		return m.Classes[class]
	}
	return strconv.Itoa(class)
}

func (t *Tree) predict(features []float64) (int, error) {
	node := 0
	for {
		if node < 0 || node >= len(t.ChildrenLeft) || node >= len(t.ChildrenRight) {
			return 0, fmt.Errorf("node %d out of range", node)
		}
		if t.ChildrenLeft[node] < 0 {
			break // leaf
		}
		if node >= len(t.Feature) || node >= len(t.Threshold) {
			return 0, fmt.Errorf("node %d missing split", node)
		}
		fi := t.Feature[node]
		if fi < 0 || fi >= len(features) {
			return 0, fmt.Errorf("feature %d out of range", fi)
		}
		if features[fi] <= t.Threshold[node] {
			node = t.ChildrenLeft[node]
		} else {
			node = t.ChildrenRight[node]
		}
	}
	if node >= len(t.Value) || len(t.Value[node]) == 0 {
		return 0, fmt.Errorf("leaf %d has no value", node)
	}
	best := 0
	for i, v := range t.Value[node] {
		if v > t.Value[node][best] {
			best = i
		}
	}
	return best, nil
}
