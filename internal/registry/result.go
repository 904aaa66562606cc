package registry

// Status is the terminal state of one node evaluation.
type Status string

const (
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

// Result is the structured outcome of one node evaluation. Inputs and
// ProcessData capture whatever diagnostics were gathered up to the point of
// failure, so a failed node still explains what it was looking at.
type Result struct {
	Status      Status
	Inputs      map[string]any
	ProcessData map[string]any
	Outputs     map[string]any
	Error       string
}

// Succeeded builds a successful result.
func Succeeded(inputs, processData, outputs map[string]any) *Result {
	return &Result{
		Status:      StatusSucceeded,
		Inputs:      inputs,
		ProcessData: processData,
		Outputs:     outputs,
	}
}

// Failed builds a failed result carrying the captured error message.
func Failed(errMsg string, inputs, processData map[string]any) *Result {
	return &Result{
		Status:      StatusFailed,
		Inputs:      inputs,
		ProcessData: processData,
		Error:       errMsg,
	}
}
