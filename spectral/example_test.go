// SPDX-License-Identifier: MIT

package spectral_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/codeclust/core"
	"github.com/katalvlaran/codeclust/spectral"
)

// ExampleClusterer_Analyze summarizes a 4-cycle.
func ExampleClusterer_Analyze() {
	g := core.NewGraph()
	ids := []string{"a", "b", "c", "d"}
	for i := range ids {
		_ = g.Connect(core.Vertex{ID: ids[i]}, core.Vertex{ID: ids[(i+1)%len(ids)]}, core.DefaultWeight)
	}

	r, err := spectral.New().Analyze(context.Background(), g)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(r.Regularity, r.Connected, r.ZeroEigenvalues, r.ClusterCount)
	// Output:
	// 2-regular true 1 2
}
