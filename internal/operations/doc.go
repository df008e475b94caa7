// Package operations runs a normalizer pass as an ordered list of steps.
//
// A run is:
//
//	load -> schema -> client -> campaign -> economics -> write
//
// Each step reads and extends a shared RunState. Every step gets its own span
// and log records and its duration is recorded in the run metrics. The first
// failing step stops the run; the steps after it are marked skipped and
// nothing is written.
//
//	normalizer := operations.NewNormalizer(cfg, paths, logger, metrics, tracer)
//	state, err := normalizer.Run(ctx)
//	if err != nil {
//	    // state.Steps shows which step failed
//	}
package operations
