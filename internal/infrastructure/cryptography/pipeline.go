package cryptography

import "fmt"

// stage is one named transform in a cipher pipeline. Round order is the whole
// difference between encryption and decryption, so each direction is expressed
// as its own stage list.
type stage[S any] struct {
	name  string
	apply func(S) (S, error)
}

// runPipeline applies the stages to the state in order, halting on the first
// failure.
func runPipeline[S any](stages []stage[S], state S) (S, error) {
	for _, s := range stages {
		var err error
		state, err = s.apply(state)
		if err != nil {
			return state, fmt.Errorf("%s: %w", s.name, err)
		}
	}
	return state, nil
}

// stageNames lists the stage names in pipeline order.
func stageNames[S any](stages []stage[S]) []string {
	names := make([]string, len(stages))
	for i, s := range stages {
		names[i] = s.name
	}
	return names
}
