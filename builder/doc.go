// Package builder provides the fluent, validating constructor for a
// domain.Study (spec §4.2): Study(horizon, nbScn).Network(n).Node(x).
// Consumption(...).Production(...).Storage(...).Link(src, dest, ...).Build().
//
// Grounded on lvlath/builder's functional-option and sentinel-error
// conventions (options.go, errors.go): the only panic is Study(horizon,
// nbScn) on a non-positive horizon or scenario count, a caller bug. The
// storage option constructors (WithEfficiency, WithInitCapacity) do not
// validate; Storage checks their values once they have run. Every
// data-dependent problem (shape mismatches, negative or out-of-range
// values, duplicate names, dangling link endpoints) is collected and
// surfaced as an error from Build(), never a panic — the "builder
// 99-rules" split the teacher enforces between construction-time panics
// and data-validation errors.
package builder
