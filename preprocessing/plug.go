package preprocessing

// Plug describes a Stage's input/output signal contract (spec §4.1).
// The zero value is not meaningful; use FreePlug or NewRestrictedPlug.
type Plug struct {
	free    bool
	inputs  map[string]struct{}
	outputs map[string]struct{}
}

// FreePlug accepts any input signal set and passes every signal
// through untouched.
func FreePlug() Plug {
	return Plug{free: true}
}

// NewRestrictedPlug requires `inputs` to be a subset of the incoming
// signal names and replaces them with `outputs`, preserving any
// untouched signal.
func NewRestrictedPlug(inputs, outputs []string) Plug {
	return Plug{
		free:    false,
		inputs:  toSet(inputs),
		outputs: toSet(outputs),
	}
}

// Free reports whether this is a FreePlug.
func (p Plug) Free() bool { return p.free }

// Inputs returns the required input signal names (empty for a free plug).
func (p Plug) Inputs() []string { return fromSet(p.inputs) }

// Outputs returns the produced output signal names (empty for a free plug).
func (p Plug) Outputs() []string { return fromSet(p.outputs) }

// Compose implements the pipeline composition rule of spec §4.1 for
// "A ∘ B" (B runs after A): it always returns a fresh Plug value, never
// mutating the receiver or the argument.
func (a Plug) Compose(b Plug) (Plug, error) {
	switch {
	case a.free && b.free:
		return FreePlug(), nil
	case a.free && !b.free:
		return b, nil
	case !a.free && b.free:
		return a, nil
	default:
		missing := hasAll(setAsSignals(a.outputs), b.inputs)
		if len(missing) > 0 {
			return Plug{}, LinkError{Missing: missing}
		}
		outputs := unionMinus(b.outputs, a.outputs, b.inputs)
		return Plug{free: false, inputs: a.inputs, outputs: outputs}, nil
	}
}

func toSet(names []string) map[string]struct{} {
	out := make(map[string]struct{}, len(names))
	for _, n := range names {
		out[n] = struct{}{}
	}
	return out
}

func fromSet(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for n := range set {
		out = append(out, n)
	}
	return out
}

func setAsSignals(set map[string]struct{}) map[string][]float64 {
	out := make(map[string][]float64, len(set))
	for n := range set {
		out[n] = nil
	}
	return out
}

// unionMinus returns outputs(b) ∪ (outputs(a) \ inputs(b)), per the
// "both restricted" composition rule.
func unionMinus(b, a, bInputs map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{}, len(b)+len(a))
	for n := range b {
		out[n] = struct{}{}
	}
	for n := range a {
		if _, consumed := bInputs[n]; !consumed {
			out[n] = struct{}{}
		}
	}
	return out
}
