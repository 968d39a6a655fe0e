package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/milk9111/climb/progression"
	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type TuningSpec struct {
	Name    string        `yaml:"name"`
	World   WorldSpec     `yaml:"world"`
	Player  PlayerSpec    `yaml:"player"`
	Physics PhysicsSpec   `yaml:"physics"`
	Arm     ArmSpec       `yaml:"arm"`
	Camera  CameraSpec    `yaml:"camera"`
	Ending  EndingSpec    `yaml:"ending"`
	Debug   DebugToolSpec `yaml:"debug"`
}

type WorldSpec struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	InnerX   float64 `yaml:"inner_x"`
	GridUnit float64 `yaml:"grid_unit"`
	Scale    float64 `yaml:"scale"`
}

type PlayerSpec struct {
	Radius float64 `yaml:"radius"`
	// SpawnLaneFrac places the spawn at this fraction of the lane width,
	// resting on the ground.
	SpawnLaneFrac float64 `yaml:"spawn_lane_frac"`
}

type PhysicsSpec struct {
	Gravity         float64 `yaml:"gravity"`
	Friction        float64 `yaml:"friction"`
	SweepEps        float64 `yaml:"sweep_eps"`
	SweepClamp      float64 `yaml:"sweep_clamp"`
	LandDampFree    float64 `yaml:"land_damp_free"`
	LandDampLatched float64 `yaml:"land_damp_latched"`
	SideDampFree    float64 `yaml:"side_damp_free"`
	SideDampLatched float64 `yaml:"side_damp_latched"`
	MaxStepFactor   float64 `yaml:"max_step_factor"`
}

type ArmSpec struct {
	BaseLen     float64     `yaml:"base_len"`
	MinLen      float64     `yaml:"min_len"`
	EdgeTol     float64     `yaml:"edge_tol"`
	Sensitivity float64     `yaml:"sensitivity"`
	Ease        float64     `yaml:"ease"`
	Palette     []YAMLColor `yaml:"palette"`
}

type CameraSpec struct {
	LiftSpeed float64 `yaml:"lift_speed"`
	DropSpeed float64 `yaml:"drop_speed"`
}

type EndingSpec struct {
	X   float64 `yaml:"x"`
	Y   float64 `yaml:"y"`
	Pad float64 `yaml:"pad"`
}

type DebugToolSpec struct {
	LongArm   float64 `yaml:"long_arm"`
	TeleportX float64 `yaml:"teleport_x"`
	TeleportY float64 `yaml:"teleport_y"`
	MoveStep  float64 `yaml:"move_step"`
}

func LoadTuningSpec() (*TuningSpec, error) {
	spec, err := LoadSpec[TuningSpec]("tuning.yaml")
	if err != nil {
		return nil, err
	}
	if spec.Player.Radius <= 0 || spec.Arm.BaseLen <= 0 || spec.World.InnerX <= 0 {
		return nil, fmt.Errorf("prefabs: tuning.yaml: radius, base_len and inner_x must be positive")
	}
	if spec.World.Scale <= 0 {
		spec.World.Scale = 1
	}
	return &spec, nil
}

type failStatesSpec struct {
	Stages []progression.Stage `yaml:"stages"`
}

// LoadStages reads and validates the fail-state sequence.
func LoadStages() ([]progression.Stage, error) {
	spec, err := LoadSpec[failStatesSpec]("fail_states.yaml")
	if err != nil {
		return nil, err
	}
	if len(spec.Stages) == 0 {
		return nil, fmt.Errorf("prefabs: fail_states.yaml: %w: no stages", progression.ErrInvalidStage)
	}
	for _, st := range spec.Stages {
		if err := st.Validate(); err != nil {
			return nil, fmt.Errorf("prefabs: fail_states.yaml: %w", err)
		}
	}
	return spec.Stages, nil
}

type StorySpec struct {
	ToastFrames     int               `yaml:"toast_frames"`
	GuideFadeFrames int               `yaml:"guide_fade_frames"`
	GuideFrames     int               `yaml:"guide_frames"`
	Tutorial        []string          `yaml:"tutorial"`
	Markers         []MarkerSpec      `yaml:"markers"`
	Ending          EndingCopySpec    `yaml:"ending"`
	Lines           map[string]string `yaml:"lines"`
}

type MarkerSpec struct {
	Y   float64 `yaml:"y"`
	Key string  `yaml:"key"`
}

type EndingCopySpec struct {
	Title        string          `yaml:"title"`
	Prompt       string          `yaml:"prompt"`
	TitleFrame   int             `yaml:"title_frame"`
	SummaryFrame int             `yaml:"summary_frame"`
	PromptFrame  int             `yaml:"prompt_frame"`
	Lines        []TimedLineSpec `yaml:"lines"`
}

type TimedLineSpec struct {
	Frame int    `yaml:"frame"`
	Key   string `yaml:"key"`
}

// LoadStorySpec reads the narrative copy. Every key referenced by the
// tutorial, markers and ending must exist in lines.
func LoadStorySpec() (*StorySpec, error) {
	spec, err := LoadSpec[StorySpec]("story.yaml")
	if err != nil {
		return nil, err
	}
	if spec.ToastFrames <= 0 {
		spec.ToastFrames = 300
	}
	var keys []string
	keys = append(keys, spec.Tutorial...)
	for _, m := range spec.Markers {
		keys = append(keys, m.Key)
	}
	for _, l := range spec.Ending.Lines {
		keys = append(keys, l.Key)
	}
	for _, k := range keys {
		if _, ok := spec.Lines[k]; !ok {
			return nil, fmt.Errorf("prefabs: story.yaml: missing line %q", k)
		}
	}
	return &spec, nil
}

type YAMLColor struct {
	color.Color
}

// NRGBA returns the colour in non-premultiplied form.
func (c YAMLColor) NRGBA() color.NRGBA {
	if c.Color == nil {
		return color.NRGBA{}
	}
	return color.NRGBAModel.Convert(c.Color).(color.NRGBA)
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
