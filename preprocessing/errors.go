package preprocessing

import (
	"errors"
	"fmt"
)

// ErrMissingSignal is returned at Compute() time by the Rename and Fault
// stages when a signal they read is not present in the table they
// receive. Missing inputs of a pipeline's first stage are reported as a
// LinkError instead, before any stage runs.
var ErrMissingSignal = errors.New("preprocessing: missing required signal")

// LinkError reports that composing two Plugs failed because the
// downstream stage's required inputs are not a subset of the upstream
// stage's outputs (spec §4.1 "Composition rule"). Pipeline.Compute also
// returns it when the table lacks an input of the first stage.
type LinkError struct {
	Missing []string
}

func (e LinkError) Error() string {
	return fmt.Sprintf("preprocessing: pipeline link error, stage requires missing signals %v", e.Missing)
}
