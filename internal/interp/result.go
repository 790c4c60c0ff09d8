package interp

// RTResult carries the outcome of evaluating one AST node: at most one of
// a value, an error, a function return value, or a loop/exit control
// flag is set at a time, except that SuccessExit records a value alongside
// the exit flag (spec.md §5.2). Every recursive Eval call checks
// ShouldReturn after registering a nested result to propagate control
// flow without panics or sentinel values.
type RTResult struct {
	Value              Value
	Err                error
	FuncReturnValue    Value
	LoopShouldContinue bool
	LoopShouldBreak    bool
	ShouldExit         bool
}

// NewRTResult returns a zeroed result ready for use.
func NewRTResult() *RTResult {
	return &RTResult{}
}

func (r *RTResult) reset() {
	r.Value = nil
	r.Err = nil
	r.FuncReturnValue = nil
	r.LoopShouldContinue = false
	r.LoopShouldBreak = false
	r.ShouldExit = false
}

// Register folds a nested result's control-flow state into r and returns
// its value.
func (r *RTResult) Register(res *RTResult) Value {
	r.Err = res.Err
	r.FuncReturnValue = res.FuncReturnValue
	r.LoopShouldContinue = res.LoopShouldContinue
	r.LoopShouldBreak = res.LoopShouldBreak
	r.ShouldExit = res.ShouldExit
	return res.Value
}

// Success resets r and records a plain value.
func (r *RTResult) Success(value Value) *RTResult {
	r.reset()
	r.Value = value
	return r
}

// SuccessReturn resets r and records a `RETURN value` having fired.
func (r *RTResult) SuccessReturn(value Value) *RTResult {
	r.reset()
	r.FuncReturnValue = value
	return r
}

// SuccessContinue resets r and records a `CONTINUE` having fired.
func (r *RTResult) SuccessContinue() *RTResult {
	r.reset()
	r.LoopShouldContinue = true
	return r
}

// SuccessBreak resets r and records a `BREAK` having fired.
func (r *RTResult) SuccessBreak() *RTResult {
	r.reset()
	r.LoopShouldBreak = true
	return r
}

// SuccessExit resets r and records the `exit()` builtin having fired.
func (r *RTResult) SuccessExit(exitValue Value) *RTResult {
	r.reset()
	r.ShouldExit = true
	r.Value = exitValue
	return r
}

// Failure resets r and records err.
func (r *RTResult) Failure(err error) *RTResult {
	r.reset()
	r.Err = err
	return r
}

// ShouldReturn reports whether the enclosing evaluation must stop and
// propagate r unchanged rather than continue normal evaluation.
func (r *RTResult) ShouldReturn() bool {
	return r.Err != nil || r.FuncReturnValue != nil || r.LoopShouldContinue || r.LoopShouldBreak || r.ShouldExit
}
