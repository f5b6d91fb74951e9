// Package solver is hadar's batch driver and result facade: it
// partitions a Study's scenarios across workers, builds and solves one
// LP per batch via package lp and internal/simplex, merges the solved
// batches into a Result, and offers a remote HTTP backend as an
// alternative to the in-process path.
//
// The batch driver is grounded on other_examples' distri batch
// scheduler's errgroup.WithContext fan-out/cancel-on-first-error
// shape, generalized from package builds to independent per-scenario
// LPs. The remote client/server is grounded on
// rwcarlsen-cloudlus/cloudlus/{client,server_restful}.go's POST-body,
// query-param-token, status-code-to-error wire shape.
package solver
