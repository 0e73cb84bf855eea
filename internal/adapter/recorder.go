package adapter

// Step is one action Consume asked a Page to perform.
type Step struct {
	Action string `json:"action"`
	Detail string `json:"detail,omitempty"`
}

// Actions recorded in Step.Action, one per Page method.
const (
	ActionSelectTool = "select-tool"
	ActionFill       = "fill"
	ActionPasteImage = "paste-image"
	ActionSubmit     = "submit"
	ActionClearHash  = "clear-hash"
)

// Recorder is a Page that only records what it was asked to do.
type Recorder struct {
	Steps []Step
}

// SelectTool records a select-tool step.
func (r *Recorder) SelectTool(tool string) error {
	r.Steps = append(r.Steps, Step{Action: ActionSelectTool, Detail: tool})
	return nil
}

// FillPrompt records a fill step carrying the prompt.
func (r *Recorder) FillPrompt(prompt string) error {
	r.Steps = append(r.Steps, Step{Action: ActionFill, Detail: prompt})
	return nil
}

// PasteImage records a paste-image step.
func (r *Recorder) PasteImage() error {
	r.Steps = append(r.Steps, Step{Action: ActionPasteImage})
	return nil
}

// Submit records a submit step.
func (r *Recorder) Submit() error {
	r.Steps = append(r.Steps, Step{Action: ActionSubmit})
	return nil
}

// ClearHash records a clear-hash step.
func (r *Recorder) ClearHash() error {
	r.Steps = append(r.Steps, Step{Action: ActionClearHash})
	return nil
}
