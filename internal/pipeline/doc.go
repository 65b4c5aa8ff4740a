// Package pipeline provides a framework for executing analysis steps in
// sequence.
//
// The pipeline pattern is used to take a cohort report through its stages:
// simulation, dataset persistence, descriptive statistics, correlation
// tests, group comparisons, and break-outcome summary. Each stage is
// implemented as a Step that receives the current report and can modify it.
//
// Design decision: We use a pipeline pattern instead of direct function
// calls because:
//  1. It allows easy addition/removal of steps without modifying core logic
//  2. It provides consistent error handling and logging across steps
//  3. It supports cancellation via context
//
// Steps always run sequentially. The whole workload is a single
// deterministic pass over a few hundred in-memory records, so there is
// nothing to parallelize, and the generator's single pseudorandom source
// must not be shared across goroutines anyway.
package pipeline
