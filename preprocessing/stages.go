package preprocessing

import "math/rand"

// Clip returns a Free stage that clamps every cell of every signal to
// [lower, upper].
func Clip(lower, upper float64) Stage {
	return newStage(FreePlug(), func(t ScenarioTable) (ScenarioTable, error) {
		data := map[int]map[string][]float64{}
		for _, scn := range t.Scenarios() {
			signals := t.Signals(scn)
			cp := make(map[string][]float64, len(signals))
			for name, series := range signals {
				clipped := make([]float64, len(series))
				for i, v := range series {
					switch {
					case v < lower:
						clipped[i] = lower
					case v > upper:
						clipped[i] = upper
					default:
						clipped[i] = v
					}
				}
				cp[name] = clipped
			}
			data[scn] = cp
		}
		return NewScenarioTable(data), nil
	})
}

// Rename returns a Restricted stage that renames signals per mapping
// (old -> new), leaving every other signal untouched.
func Rename(mapping map[string]string) Stage {
	olds := make([]string, 0, len(mapping))
	news := make([]string, 0, len(mapping))
	for old, newName := range mapping {
		olds = append(olds, old)
		news = append(news, newName)
	}
	targets := make(map[string]bool, len(mapping))
	for _, newName := range mapping {
		targets[newName] = true
	}
	return newStage(NewRestrictedPlug(olds, news), func(t ScenarioTable) (ScenarioTable, error) {
		data := map[int]map[string][]float64{}
		for _, scn := range t.Scenarios() {
			signals := t.Signals(scn)
			cp := make(map[string][]float64, len(signals))
			for name, series := range signals {
				// A renamed signal is dropped under its old name unless
				// that name is also some other key's rename target (b in
				// {a:b, b:c}); such a name is overwritten below with the
				// series renamed into it, not its pre-rename contents.
				if _, renamed := mapping[name]; renamed && !targets[name] {
					continue
				}
				cp[name] = series
			}
			for old, newName := range mapping {
				series, ok := signals[old]
				if !ok {
					return ScenarioTable{}, ErrMissingSignal
				}
				cp[newName] = series
			}
			data[scn] = cp
		}
		return NewScenarioTable(data), nil
	})
}

// Drop returns a Restricted stage that removes the given signal names.
func Drop(names ...string) Stage {
	return newStage(NewRestrictedPlug(names, nil), func(t ScenarioTable) (ScenarioTable, error) {
		out := t
		for _, name := range names {
			out = out.WithoutSignal(name)
		}
		return out, nil
	})
}

// RepeatScenario returns a Free stage that tiles the scenario axis n
// times, reindexing scenario s in copy i (0 <= i < n) to
// s + i*nbScnIn, matching original_source/hadar/preprocessing/pipeline.py's
// RepeatScenario indexing scheme (so Property P5's round-trip holds).
func RepeatScenario(n int) Stage {
	return newStage(FreePlug(), func(t ScenarioTable) (ScenarioTable, error) {
		scns := t.Scenarios()
		nbScnIn := len(scns)
		data := map[int]map[string][]float64{}
		for i := 0; i < n; i++ {
			for _, scn := range scns {
				signals := t.Signals(scn)
				cp := make(map[string][]float64, len(signals))
				for name, series := range signals {
					s := make([]float64, len(series))
					copy(s, series)
					cp[name] = s
				}
				data[scn+i*nbScnIn] = cp
			}
		}
		return NewScenarioTable(data), nil
	})
}

// Fault returns a Restricted({quantity}->{quantity}) stage that, for
// each scenario, deterministically (from seed) samples a Bernoulli(freq)
// fault start indicator per timestep, draws a uniform duration in
// [dtMin, dtMax] timesteps, and subtracts loss from quantity over each
// resulting interval (overlapping intervals sum, clamped at zero so
// quantity never goes negative). With freq == 0 this is the identity
// (spec scenario S6).
func Fault(loss, freq float64, dtMin, dtMax int, seed int64) Stage {
	return newStage(NewRestrictedPlug([]string{"quantity"}, []string{"quantity"}), func(t ScenarioTable) (ScenarioTable, error) {
		out := t
		for _, scn := range t.Scenarios() {
			series, ok := t.Signals(scn)["quantity"]
			if !ok {
				return ScenarioTable{}, ErrMissingSignal
			}
			horizon := len(series)
			lost := make([]float64, horizon)
			rng := rand.New(rand.NewSource(seed + int64(scn)*1_000_003))
			for start := 0; start < horizon; start++ {
				if rng.Float64() >= freq {
					continue
				}
				dur := dtMin
				if dtMax > dtMin {
					dur += rng.Intn(dtMax - dtMin + 1)
				}
				end := start + dur
				if end > horizon {
					end = horizon
				}
				for i := start; i < end; i++ {
					lost[i] += loss
				}
			}
			adjusted := make([]float64, horizon)
			for i, v := range series {
				adjusted[i] = v - lost[i]
				if adjusted[i] < 0 {
					adjusted[i] = 0
				}
			}
			out = out.WithSignal(scn, "quantity", adjusted)
		}
		return out, nil
	})
}

// ScenarioFunc transforms one scenario's signals in isolation; it is
// the per-scenario unit FocusStage dispatches.
type ScenarioFunc func(scn int, signals map[string][]float64) (map[string][]float64, error)

// Focus returns a Stage with the given Plug that applies fn once per
// scenario, reassembling the results into a single table (spec §4.1
// "FocusStage ... reshapes and dispatches a user-supplied
// scalar-scenario function over the table").
func Focus(plug Plug, fn ScenarioFunc) Stage {
	return newStage(plug, func(t ScenarioTable) (ScenarioTable, error) {
		data := map[int]map[string][]float64{}
		for _, scn := range t.Scenarios() {
			signals, err := fn(scn, t.Signals(scn))
			if err != nil {
				return ScenarioTable{}, err
			}
			data[scn] = signals
		}
		return NewScenarioTable(data), nil
	})
}
