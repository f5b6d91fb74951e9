package builder

import "errors"

// ErrNoDefaultNetwork is returned by Build when the study never
// declared a network named "default" (spec §3: "at least one network
// named 'default'").
var ErrNoDefaultNetwork = errors.New("builder: study has no \"default\" network")

// ErrNoCurrentNode is returned when Consumption/Production/Storage is
// called before any Node has been selected via Node(name).
var ErrNoCurrentNode = errors.New("builder: no current node; call Node(name) first")

// ErrNoCurrentNetwork is returned when Node/Link is called before any
// Network has been selected via Network(name).
var ErrNoCurrentNetwork = errors.New("builder: no current network; call Network(name) first")
