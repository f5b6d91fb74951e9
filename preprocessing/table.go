package preprocessing

import "sort"

// ScenarioTable is the systems re-expression of the Python pipeline's
// pandas multi-index frame (spec §9 "Multi-indexed tables"): a mapping
// scenario -> signal name -> a length-horizon series of values, plus a
// canonical ordering of scenario indices. Every exported Stage API
// takes and returns this structure, and it is always copied between
// stages rather than mutated in place (spec §4.1 "Execution").
type ScenarioTable struct {
	scenarios []int
	data      map[int]map[string][]float64
}

// NewScenarioTable builds a table from raw data, deriving the
// canonical scenario ordering by sorting the scenario indices present.
func NewScenarioTable(data map[int]map[string][]float64) ScenarioTable {
	t := ScenarioTable{data: map[int]map[string][]float64{}}
	for scn, signals := range data {
		cp := make(map[string][]float64, len(signals))
		for name, series := range signals {
			s := make([]float64, len(series))
			copy(s, series)
			cp[name] = s
		}
		t.data[scn] = cp
		t.scenarios = append(t.scenarios, scn)
	}
	sort.Ints(t.scenarios)
	return t
}

// NewSingleScenarioTable builds a one-scenario (scenario 0) table,
// the shape most stage catalog examples and tests use directly.
func NewSingleScenarioTable(signals map[string][]float64) ScenarioTable {
	return NewScenarioTable(map[int]map[string][]float64{0: signals})
}

// Scenarios returns the canonical, ascending scenario indices.
func (t ScenarioTable) Scenarios() []int {
	out := make([]int, len(t.scenarios))
	copy(out, t.scenarios)
	return out
}

// Signals returns the signal map for one scenario (nil if absent).
func (t ScenarioTable) Signals(scn int) map[string][]float64 {
	return t.data[scn]
}

// SignalNames returns the sorted union of signal names across every
// scenario in the table.
func (t ScenarioTable) SignalNames() []string {
	seen := map[string]struct{}{}
	for _, signals := range t.data {
		for name := range signals {
			seen[name] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Horizon returns the length of the series in the table (0 if empty).
func (t ScenarioTable) Horizon() int {
	for _, signals := range t.data {
		for _, series := range signals {
			return len(series)
		}
	}
	return 0
}

// Clone deep-copies the table; stages never mutate their input, always
// producing a fresh table (spec §4.1 "The table is copied between
// stages").
func (t ScenarioTable) Clone() ScenarioTable {
	return NewScenarioTable(t.data)
}

// WithSignal returns a new table with signal `name` in scenario `scn`
// set to series (added or replaced), leaving every other cell intact.
// Only scn's own signal map is copied — every other scenario's map (and
// every untouched series within scn's map) is shared with t, since
// nothing ever mutates a ScenarioTable's series slices in place once
// written. Stages call this once per signal per scenario, so an O(S*K)
// full Clone here would make them quadratic in table size.
func (t ScenarioTable) WithSignal(scn int, name string, series []float64) ScenarioTable {
	out := ScenarioTable{data: make(map[int]map[string][]float64, len(t.data)+1)}
	for s, signals := range t.data {
		out.data[s] = signals
	}
	existing := out.data[scn]
	newSignals := make(map[string][]float64, len(existing)+1)
	for name, s := range existing {
		newSignals[name] = s
	}
	cp := make([]float64, len(series))
	copy(cp, series)
	newSignals[name] = cp
	out.data[scn] = newSignals

	out.scenarios = t.Scenarios()
	if existing == nil {
		out.scenarios = append(out.scenarios, scn)
		sort.Ints(out.scenarios)
	}
	return out
}

// WithoutSignal returns a new table with signal `name` removed from
// every scenario. Every scenario's map must be visited to drop the
// name, but the series slices themselves are shared with t rather
// than copied.
func (t ScenarioTable) WithoutSignal(name string) ScenarioTable {
	out := ScenarioTable{
		scenarios: t.Scenarios(),
		data:      make(map[int]map[string][]float64, len(t.data)),
	}
	for s, signals := range t.data {
		newSignals := make(map[string][]float64, len(signals))
		for n, series := range signals {
			if n == name {
				continue
			}
			newSignals[n] = series
		}
		out.data[s] = newSignals
	}
	return out
}

// normalize inserts an empty scenario 0 if the table has no scenarios
// at all (spec §4.1: "inserting scenario 0 if absent").
func normalize(t ScenarioTable) ScenarioTable {
	if len(t.scenarios) > 0 {
		return t
	}
	out := t.Clone()
	out.data[0] = map[string][]float64{}
	out.scenarios = []int{0}
	return out
}

// hasAll returns the names in names that are not keys of signals (nil
// when every name is present).
func hasAll(signals map[string][]float64, names map[string]struct{}) (missing []string) {
	for name := range names {
		if _, ok := signals[name]; !ok {
			missing = append(missing, name)
		}
	}
	return missing
}
