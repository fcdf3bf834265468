package trellis

import (
	"encoding/json"
	"errors"
	"fmt"
)

// scriptStep is one action of a test script.
type scriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
	Width  int     `json:"width,omitempty"`
	Height int     `json:"height,omitempty"`
}

type script struct {
	Steps []scriptStep `json:"steps"`
}

var knownActions = map[string]bool{
	"click":      true,
	"drag":       true,
	"wait":       true,
	"resize":     true,
	"screenshot": true,
}

// TestRunner plays a scripted sequence of pointer input, waits, window
// resizes and screenshots across frames. Attach it with Scene.SetTestRunner.
//
// A script is JSON of the form
//
//	{"steps": [
//	  {"action": "click", "x": 100, "y": 50},
//	  {"action": "drag", "fromX": 10, "fromY": 10, "toX": 200, "toY": 10, "frames": 8},
//	  {"action": "wait", "frames": 30},
//	  {"action": "resize", "width": 640, "height": 480},
//	  {"action": "screenshot", "label": "after-drag"}
//	]}
type TestRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a test script. Unknown actions are rejected.
func LoadTestScript(data []byte) (*TestRunner, error) {
	var sc script
	if err := json.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(sc.Steps) == 0 {
		return nil, errors.New("parse test script: no steps")
	}
	for i, st := range sc.Steps {
		if !knownActions[st.Action] {
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: sc.Steps}, nil
}

// SetTestRunner attaches r to the scene. Scene.Update advances it once per
// frame, before input is processed.
func (s *Scene) SetTestRunner(r *TestRunner) {
	s.testRunner = r
}

// Done reports whether every step has run and its input has drained.
func (r *TestRunner) Done() bool {
	return r.done
}

func (r *TestRunner) step(s *Scene) {
	if r.done || len(s.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++
	switch st.Action {
	case "click":
		s.InjectClick(st.X, st.Y)
	case "drag":
		s.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, max(st.Frames, 2))
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts
		}
	case "resize":
		s.Resize(st.Width, st.Height)
	case "screenshot":
		s.Screenshot(st.Label)
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(s.injectQueue) == 0 {
		r.done = true
	}
}
