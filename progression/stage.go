package progression

import (
	"errors"
	"fmt"
)

var ErrInvalidStage = errors.New("progression: invalid stage")

// Stage is one difficulty gate. Y grows downward, so TopBoundY is the
// smallest value and BottomBoundY the largest.
type Stage struct {
	Name         string   `yaml:"name"`
	CheckpointY  float64  `yaml:"checkpoint_y"`
	TopBoundY    float64  `yaml:"top_bound_y"`
	BottomBoundY float64  `yaml:"bottom_bound_y"`
	TargetLen    float64  `yaml:"target_len"`
	StepLen      float64  `yaml:"step_len"`
	Hints        []string `yaml:"hints"`
	ToastStep    string   `yaml:"toast_step"`
	ToastUnlock  string   `yaml:"toast_unlock"`
}

func (s Stage) Validate() error {
	if s.TopBoundY >= s.CheckpointY {
		return fmt.Errorf("%w: %s: top bound %v not above checkpoint %v", ErrInvalidStage, s.Name, s.TopBoundY, s.CheckpointY)
	}
	if s.BottomBoundY <= s.CheckpointY {
		return fmt.Errorf("%w: %s: bottom bound %v not below checkpoint %v", ErrInvalidStage, s.Name, s.BottomBoundY, s.CheckpointY)
	}
	if s.StepLen < 0 {
		return fmt.Errorf("%w: %s: negative step %v", ErrInvalidStage, s.Name, s.StepLen)
	}
	if s.TargetLen <= 0 {
		return fmt.Errorf("%w: %s: target %v", ErrInvalidStage, s.Name, s.TargetLen)
	}
	return nil
}

// DefaultStages is the built-in story sequence.
func DefaultStages() []Stage {
	return []Stage{
		{Name: "longArm", CheckpointY: 0, TopBoundY: -192, BottomBoundY: 256, TargetLen: 174, StepLen: 18,
			Hints: []string{"FAIL_HINT_1", "FAIL_HINT_2", "FAIL_HINT_3"}, ToastStep: "ARM_STEP", ToastUnlock: "ARM_UNLOCK"},
		{Name: "swingWall", CheckpointY: -768, TopBoundY: -1088, BottomBoundY: -512, TargetLen: 216, StepLen: 14,
			Hints: []string{"FAIL_HINT_4", "FAIL_HINT_5", "FAIL_HINT_6"}, ToastStep: "ARM_STEP", ToastUnlock: "ARM_UNLOCK"},
		{Name: "wallPush", CheckpointY: -2048, TopBoundY: -2264, BottomBoundY: -1856, TargetLen: 300, StepLen: 28,
			Hints: []string{"FAIL_HINT_7", "FAIL_HINT_8", "FAIL_HINT_9"}, ToastStep: "ARM_STEP", ToastUnlock: "ARM_UNLOCK"},
		{Name: "finalChallenge", CheckpointY: -2752, TopBoundY: -3168, BottomBoundY: -2560, TargetLen: 300, StepLen: 0,
			Hints: []string{"FAIL_HINT_10", "FAIL_HINT_11", "FAIL_HINT_12"}, ToastStep: "ARM_STEP", ToastUnlock: "ARM_UNLOCK"},
	}
}
