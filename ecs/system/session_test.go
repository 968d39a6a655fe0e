package system

import (
	"math"
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/climb/ecs"
	"github.com/milk9111/climb/ecs/component"
	"github.com/milk9111/climb/ecs/entity"
	"github.com/milk9111/climb/level"
)

// scriptedInput replays whatever the test sets before each frame. Key
// presses last one frame.
type scriptedInput struct {
	x, y         int
	pressed      bool
	justPressed  bool
	justReleased bool
	keys         map[ebiten.Key]bool
}

func (s *scriptedInput) Pointer() (int, int)              { return s.x, s.y }
func (s *scriptedInput) Pressed() bool                    { return s.pressed }
func (s *scriptedInput) JustPressed() bool                { return s.justPressed }
func (s *scriptedInput) JustReleased() bool               { return s.justReleased }
func (s *scriptedInput) KeyPressed(k ebiten.Key) bool     { return false }
func (s *scriptedInput) KeyJustPressed(k ebiten.Key) bool { return s.keys[k] }

type testSession struct {
	t         *testing.T
	w         *ecs.World
	scheduler *ecs.Scheduler
	input     *scriptedInput
	story     *StorySystem
	player    player
	tuning    *component.Tuning
}

func newTestSession(t *testing.T) *testSession {
	t.Helper()
	w := ecs.NewWorld()
	sess, err := entity.NewSession(w, entity.Options{Name: "Tester", Muted: true})
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	lines, err := NewCopyRuntime(sess.Story.Lines, sess.Flags.Name)
	if err != nil {
		t.Fatalf("copy runtime: %v", err)
	}
	story := NewStorySystem(lines, sess.Story)
	input := &scriptedInput{keys: map[ebiten.Key]bool{}}
	scheduler := ecs.NewScheduler(
		NewInputSystem(input),
		NewSessionSystem(),
		NewDebugSystem(),
		NewGrappleSystem(),
		NewProgressionSystem(),
		NewPhysicsSystem(),
		NewCameraSystem(),
		story,
		NewAudioSystem(),
	)
	p, ok := findPlayer(w)
	if !ok {
		t.Fatalf("no player in session")
	}
	return &testSession{t: t, w: w, scheduler: scheduler, input: input, story: story, player: p, tuning: sess.Tuning}
}

// pointAt sets the screen pointer so it maps to world position at under the
// current camera.
func (s *testSession) pointAt(at cp.Vector) {
	cam := single(s.w, component.CameraComponent.Kind())
	s.input.x = int(math.Round(at.X * s.tuning.Scale))
	s.input.y = int(math.Round((at.Y - cam.Y) * s.tuning.Scale))
}

func (s *testSession) step(frames int) {
	for i := 0; i < frames; i++ {
		s.scheduler.Update(s.w)
		s.input.justPressed = false
		s.input.justReleased = false
		s.input.keys = map[ebiten.Key]bool{}
	}
}

func (s *testSession) press(k ebiten.Key) {
	s.input.keys[k] = true
	s.step(1)
}

func (s *testSession) storyState() *component.Story {
	return single(s.w, component.StoryComponent.Kind())
}

func (s *testSession) progress() *component.Progress {
	return single(s.w, component.ProgressComponent.Kind())
}

// addLedge puts a latchable ledge straight above the spawn.
func (s *testSession) addLedge() {
	single(s.w, component.LevelComponent.Kind()).Store.Add(64, 300, 64, 32, 32, false, level.TinyGrass)
}

func (s *testSession) latchAbove() {
	s.pointAt(cp.Vector{X: s.player.body.Pos.X, Y: 320})
	s.input.pressed = true
	s.input.justPressed = true
	s.step(1)
}

func (s *testSession) release() {
	s.input.pressed = false
	s.input.justReleased = true
	s.step(1)
}

func TestSessionSpawnsOnGround(t *testing.T) {
	s := newTestSession(t)
	s.step(30)

	want := cp.Vector{X: 96, Y: 376}
	if got := s.player.body.Pos; got.Distance(want) > 1 {
		t.Fatalf("expected body to rest at %v, got %v", want, got)
	}
	if s.player.arm.Reach.Len() != 120 {
		t.Fatalf("expected base reach 120, got %v", s.player.arm.Reach.Len())
	}
}

func TestSessionLatchHoldRelease(t *testing.T) {
	s := newTestSession(t)
	s.addLedge()
	s.step(30)

	s.latchAbove()
	arm := s.player.arm
	if !arm.Latched || arm.Anchor == nil {
		t.Fatalf("expected latch on ledge, tip %v", arm.Tip)
	}
	if arm.Anchor.Y < 298 || arm.Anchor.Y > 334 {
		t.Fatalf("anchor %v outside padded ledge", *arm.Anchor)
	}

	s.step(30)
	if !arm.Latched {
		t.Fatalf("expected to stay latched while held")
	}
	if d := s.player.body.Pos.Distance(*arm.Anchor); d > arm.RopeLen+s.player.body.R+1 {
		t.Fatalf("rope stretched: distance %v, rope %v", d, arm.RopeLen)
	}

	s.release()
	if arm.Latched || arm.Anchor != nil {
		t.Fatalf("expected release")
	}
	s.step(120)
	if got := s.player.body.Pos.Y; math.Abs(got-376) > 1 {
		t.Fatalf("expected to settle on the ground, y=%v", got)
	}
}

func TestSessionStoneRejectsLatch(t *testing.T) {
	s := newTestSession(t)
	single(s.w, component.LevelComponent.Kind()).Store.Add(64, 260, 64, 64, 64, false, level.StoneBlock)
	s.step(30)

	s.latchAbove()
	if s.player.arm.Latched {
		t.Fatalf("expected stone to reject the latch")
	}
}

func TestSessionFailGrowsReach(t *testing.T) {
	s := newTestSession(t)
	s.step(10)

	s.player.body.Place(cp.Vector{X: 300, Y: -10})
	s.step(1)
	if !s.progress().Cursor.Checkpointed {
		t.Fatalf("expected checkpoint after rising above it")
	}

	s.step(150)
	c := s.progress().Cursor
	if c.Fails != 1 {
		t.Fatalf("expected one fail, got %d", c.Fails)
	}
	if got := s.player.arm.Reach.Len(); got != 138 {
		t.Fatalf("expected reach 138, got %v", got)
	}
	if segs := s.player.arm.Reach.Segments; len(segs) != 1 || segs[0].Len != 18 {
		t.Fatalf("expected one growth ring of 18, got %+v", segs)
	}
	toast := s.storyState().Toast
	if !toast.Active() || !strings.Contains(toast.Text, "Tester stretched") {
		t.Fatalf("expected grow toast, got %q", toast.Text)
	}
}

func TestSessionCameraFollowsBody(t *testing.T) {
	s := newTestSession(t)
	s.step(120)
	cam := single(s.w, component.CameraComponent.Kind())
	want := s.player.body.Pos.Y - s.tuning.ViewH/2
	if math.Abs(cam.Y-want) > 1 {
		t.Fatalf("expected camera near %v, got %v", want, cam.Y)
	}

	s.player.body.Place(cp.Vector{X: 300, Y: -400})
	before := cam.Y
	s.step(1)
	if cam.Y >= before {
		t.Fatalf("expected camera to lift, %v -> %v", before, cam.Y)
	}
	if lift := before - cam.Y; lift > (before-(-400-s.tuning.ViewH/2))*s.tuning.LiftSpeed+1 {
		t.Fatalf("camera lifted too fast: %v", lift)
	}
}

func TestSessionMarkersShowOnce(t *testing.T) {
	s := newTestSession(t)
	s.player.body.Place(cp.Vector{X: 300, Y: 100})
	s.step(1)

	story := s.storyState()
	if !story.MarkersSeen[0] {
		t.Fatalf("expected first marker seen")
	}
	first := story.Toast.Text
	if !strings.HasPrefix(first, "Tester began") {
		t.Fatalf("unexpected marker toast %q", first)
	}
	story.Toast = component.Toast{}
	s.player.body.Place(cp.Vector{X: 300, Y: 100})
	s.step(1)
	if story.Toast.Active() {
		t.Fatalf("expected marker not to repeat, got %q", story.Toast.Text)
	}
}

func TestSessionTutorial(t *testing.T) {
	s := newTestSession(t)
	s.addLedge()
	story := s.storyState()
	s.story.StartTutorial(story, false)
	if !story.Tutorial.Active || !strings.HasPrefix(story.Tutorial.Text, "Tester saw") {
		t.Fatalf("expected first tutorial step, got %+v", story.Tutorial)
	}
	s.step(30)

	s.latchAbove()
	if story.Tutorial.Step != 1 {
		t.Fatalf("expected step 1 after latch, got %d", story.Tutorial.Step)
	}
	s.release()
	if story.Tutorial.Step != 2 || story.Tutorial.Text != "Tester started climbing!" {
		t.Fatalf("expected final step after release, got %+v", story.Tutorial)
	}

	s.step(tutorialAlpha + 5)
	if story.Tutorial.Active {
		t.Fatalf("expected tutorial to fade out")
	}
	if sess := single(s.w, component.SessionComponent.Kind()); !sess.Flags.TutorialSeen {
		t.Fatalf("expected tutorial flag set")
	}
}

func TestSessionTutorialSkippedWhenSeen(t *testing.T) {
	s := newTestSession(t)
	story := s.storyState()
	s.story.StartTutorial(story, true)
	if story.Tutorial.Active {
		t.Fatalf("expected no tutorial")
	}
}

func TestSessionEndingAndRestart(t *testing.T) {
	s := newTestSession(t)
	s.player.arm.Grant(30, s.tuning.Grapple)
	s.step(1)

	s.player.body.Place(s.tuning.EndingPos)
	s.step(1)
	story := s.storyState()
	if !story.Ending.Triggered {
		t.Fatalf("expected ending at %v", s.tuning.EndingPos)
	}
	frozen := s.player.body.Pos
	s.step(10)
	if s.player.body.Pos != frozen {
		t.Fatalf("expected body frozen during ending")
	}

	for i := 0; i < 3000 && story.Ending.Prompt == ""; i++ {
		s.step(1)
	}
	end := story.Ending
	if end.Title != "A Game About Failing" {
		t.Fatalf("unexpected title %q", end.Title)
	}
	if !strings.Contains(end.Summary, "without a single fail") {
		t.Fatalf("unexpected summary %q", end.Summary)
	}
	if end.Prompt == "" {
		t.Fatalf("expected replay prompt")
	}

	s.press(ebiten.KeyEnter)
	if story.Ending.Triggered {
		t.Fatalf("expected ending cleared on restart")
	}
	if got := s.player.body.Pos; got.Distance(s.tuning.Spawn) > 1 {
		t.Fatalf("expected respawn at %v, got %v", s.tuning.Spawn, got)
	}
	if got := s.player.arm.Reach.Len(); got != s.tuning.BaseLen {
		t.Fatalf("expected reach reset to %v, got %v", s.tuning.BaseLen, got)
	}
	if s.progress().Cursor.Index != 0 {
		t.Fatalf("expected first stage after restart")
	}
}

func TestSessionRespawnKeepsReach(t *testing.T) {
	s := newTestSession(t)
	s.player.arm.Grant(18, s.tuning.Grapple)
	s.player.body.Place(cp.Vector{X: 300, Y: 100})
	s.step(1)

	s.press(ebiten.KeyEscape)
	if got := s.player.body.Pos; got.Distance(s.tuning.Spawn) > 1 {
		t.Fatalf("expected respawn at %v, got %v", s.tuning.Spawn, got)
	}
	if got := s.player.arm.Reach.Len(); got != 138 {
		t.Fatalf("expected reach kept, got %v", got)
	}
}
