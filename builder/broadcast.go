package builder

import "github.com/hadar-solver/hadar-go/domain"

// broadcast converts a scalar, a per-time vector, or an already-shaped
// matrix into a domain.Matrix of shape (nbScn, horizon), per spec §3
// ("scalars and 1-D vectors are broadcast to this shape at build time").
//
// Accepted inputs:
//   - nil              -> all-zero matrix
//   - float64           -> every (scn, t) set to the scalar
//   - []float64         -> must have length horizon; tiled across every scenario
//   - domain.Matrix / [][]float64 -> must already be (nbScn, horizon)
func broadcast(field string, v interface{}, nbScn, horizon int) (domain.Matrix, error) {
	out := domain.NewMatrix(nbScn, horizon)
	switch val := v.(type) {
	case nil:
		return out, nil
	case float64:
		for s := 0; s < nbScn; s++ {
			for t := 0; t < horizon; t++ {
				out[s][t] = val
			}
		}
		return out, nil
	case int:
		return broadcast(field, float64(val), nbScn, horizon)
	case []float64:
		if len(val) != horizon {
			return nil, domain.ShapeError{Field: field, WantScn: nbScn, WantHrz: horizon, GotScn: 1, GotHrz: len(val)}
		}
		for s := 0; s < nbScn; s++ {
			copy(out[s], val)
		}
		return out, nil
	case domain.Matrix:
		return copyMatrix(field, val, nbScn, horizon)
	case [][]float64:
		return copyMatrix(field, domain.Matrix(val), nbScn, horizon)
	default:
		return nil, domain.ShapeError{Field: field, WantScn: nbScn, WantHrz: horizon}
	}
}

// nonNegative enforces the spec §3 "≥ 0" invariant that applies to
// Consumption/Production cost and quantity, Storage capacity/flow_in/
// flow_out, and Link quantity/cost — any matrix a negative value in
// would let the LP layer treat as a signed flow instead of a bound.
func nonNegative(field string, m domain.Matrix) error {
	if min := m.Min(); min < 0 {
		return domain.ValueError{Field: field, Constraint: "be >= 0", Got: min}
	}
	return nil
}

func copyMatrix(field string, val domain.Matrix, nbScn, horizon int) (domain.Matrix, error) {
	if len(val) != nbScn {
		return nil, domain.ShapeError{Field: field, WantScn: nbScn, WantHrz: horizon, GotScn: len(val)}
	}
	out := domain.NewMatrix(nbScn, horizon)
	for s, row := range val {
		if len(row) != horizon {
			return nil, domain.ShapeError{Field: field, WantScn: nbScn, WantHrz: horizon, GotScn: nbScn, GotHrz: len(row)}
		}
		copy(out[s], row)
	}
	return out, nil
}
