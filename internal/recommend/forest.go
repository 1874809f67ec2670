// Package recommend implements the serving side of the offline-trained book
// rating model. Training happens in a separate pipeline; this package only
// loads the serialized regression forest and evaluates it. The loaded forest
// is never mutated after LoadForest returns, so concurrent reads from request
// handlers need no synchronization.
package recommend

import (
	"encoding/json"
	"fmt"
	"os"
)

// Node is one decision node in a tree, stored in a flat array.  A
// node with Left < 0 and Right < 0 is a leaf and Value is its
// prediction; otherwise Feature/Threshold route the sample left
// (feature <= threshold) or right.
type Node struct {
	Feature   int     `json:"feature"`
	Threshold float64 `json:"threshold"`
	Left      int     `json:"left"`
	Right     int     `json:"right"`
	Value     float64 `json:"value"`
}

// Tree is a single regression tree; Nodes[0] is the root.
type Tree struct {
	Nodes []Node `json:"nodes"`
}

// Forest is the deserialized model file: the ordered genre list
// captured at training time plus the trained trees. The genre order
// matters because a genre's feature code is its index in this list.
type Forest struct {
	Genres []string `json:"genres"`
	Trees  []Tree   `json:"trees"`
}

// LoadForest reads and validates a serialized forest from path. The
// process is expected to treat any error as fatal at startup: serving
// recommendations without a model is not meaningful.
func LoadForest(path string) (*Forest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model file: %w", err)
	}
	var f Forest
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("decode model file: %w", err)
	}
	if len(f.Genres) == 0 {
		return nil, fmt.Errorf("model file %s has no genre table", path)
	}
	if len(f.Trees) == 0 {
		return nil, fmt.Errorf("model file %s has no trees", path)
	}
	for ti, t := range f.Trees {
		if len(t.Nodes) == 0 {
			return nil, fmt.Errorf("model file %s: tree %d is empty", path, ti)
		}
		for ni, n := range t.Nodes {
			if n.Left >= len(t.Nodes) || n.Right >= len(t.Nodes) {
				return nil, fmt.Errorf("model file %s: tree %d node %d references a child out of range", path, ti, ni)
			}
			// A node is either a leaf (both children absent) or an internal node (both present)
			if (n.Left < 0) != (n.Right < 0) {
				return nil, fmt.Errorf("model file %s: tree %d node %d has exactly one child", path, ti, ni)
			}
		}
	}
	return &f, nil
}

// GenreIndex resolves a genre string to its training-time code, the
// position of the genre in the ordered training set.  The second
// return value reports whether the genre was seen during training.
func (f *Forest) GenreIndex(genre string) (int, bool) {
	for i, g := range f.Genres {
		if g == genre {
			return i, true
		}
	}
	return 0, false
}

// Predict evaluates the forest on a batch of feature vectors and
// returns one predicted rating per row, in input order.  Each row
// must carry a value for every feature index referenced by the
// trees; for the shipped model that is [genre_code, year_published].
func (f *Forest) Predict(features [][]float64) ([]float64, error) {
	out := make([]float64, len(features))
	for i, row := range features {
		sum := 0.0
		for ti := range f.Trees {
			v, err := f.Trees[ti].eval(row)
			if err != nil {
				return nil, fmt.Errorf("tree %d row %d: %w", ti, i, err)
			}
			sum += v
		}
		out[i] = sum / float64(len(f.Trees)) // forest output is the mean over trees
	}
	return out, nil
}

// eval walks one tree for one sample.
func (t *Tree) eval(row []float64) (float64, error) {
	idx := 0
	for steps := 0; steps <= len(t.Nodes); steps++ {
		n := t.Nodes[idx]
		if n.Left < 0 && n.Right < 0 {
			return n.Value, nil
		}
		if n.Feature < 0 || n.Feature >= len(row) {
			return 0, fmt.Errorf("node %d wants feature %d but sample has %d features", idx, n.Feature, len(row))
		}
		if row[n.Feature] <= n.Threshold {
			idx = n.Left
		} else {
			idx = n.Right
		}
	}
	// The step bound only trips on a cyclic node graph, which LoadForest
	// cannot fully rule out.
	return 0, fmt.Errorf("tree walk did not reach a leaf")
}
