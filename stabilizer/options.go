package stabilizer

// ProjectOptions bundles project!'s keep_result/phases keyword arguments,
// resolved via the functional-options pattern the teacher uses throughout
// (core.GraphOption, dfs.Option, builder.BuilderOption).
type ProjectOptions struct {
	// KeepResult requests the residual phase be computed when P commutes
	// with every row (an O(n) to O(n^3) extra cost depending on variant).
	// Default true, matching the Julia source's keyword default.
	KeepResult bool

	// Phases requests phase tracking during row eliminations. Default
	// true; set false only in hot loops that discard phase information
	// (e.g. pure tableau-support bookkeeping).
	Phases bool
}

// ProjectOption mutates a ProjectOptions value.
type ProjectOption func(*ProjectOptions)

// WithKeepResult toggles whether project! computes a residual phase when
// the operator commutes with the whole group.
func WithKeepResult(keep bool) ProjectOption {
	return func(o *ProjectOptions) { o.KeepResult = keep }
}

// WithPhases toggles phase tracking during row eliminations.
func WithPhases(phases bool) ProjectOption {
	return func(o *ProjectOptions) { o.Phases = phases }
}

// DefaultProjectOptions returns {KeepResult: true, Phases: true}.
func DefaultProjectOptions() ProjectOptions {
	return ProjectOptions{KeepResult: true, Phases: true}
}

func resolveProjectOptions(opts []ProjectOption) ProjectOptions {
	cfg := DefaultProjectOptions()
	for _, fn := range opts {
		fn(&cfg)
	}
	return cfg
}

// TraceoutOptions bundles traceout!'s phases keyword argument. There is no
// rank option: the traceout functions always return the kept-row count.
type TraceoutOptions struct {
	Phases bool
}

// TraceoutOption mutates a TraceoutOptions value.
type TraceoutOption func(*TraceoutOptions)

// WithTraceoutPhases toggles phase tracking during the canonicalization
// traceout! performs internally.
func WithTraceoutPhases(phases bool) TraceoutOption {
	return func(o *TraceoutOptions) { o.Phases = phases }
}

// DefaultTraceoutOptions returns {Phases: true}.
func DefaultTraceoutOptions() TraceoutOptions { return TraceoutOptions{Phases: true} }

func resolveTraceoutOptions(opts []TraceoutOption) TraceoutOptions {
	cfg := DefaultTraceoutOptions()
	for _, fn := range opts {
		fn(&cfg)
	}
	return cfg
}

// ResetOptions bundles reset_qubits!'s phases keyword argument.
type ResetOptions struct {
	Phases bool
}

// ResetOption mutates a ResetOptions value.
type ResetOption func(*ResetOptions)

// WithResetPhases toggles whether reset_qubits! enforces the caller's
// requested phase on the MixedDestabilizer variant's already-in-group case.
func WithResetPhases(phases bool) ResetOption {
	return func(o *ResetOptions) { o.Phases = phases }
}

// DefaultResetOptions returns {Phases: true}.
func DefaultResetOptions() ResetOptions { return ResetOptions{Phases: true} }

func resolveResetOptions(opts []ResetOption) ResetOptions {
	cfg := DefaultResetOptions()
	for _, fn := range opts {
		fn(&cfg)
	}
	return cfg
}
