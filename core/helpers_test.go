package core

import "bytes"

// scriptedSource feeds a fixed byte sequence to the code under test.
// Tests supply exactly the bytes a command consumes, so the no-timeout
// blocking contract never actually spins.
type scriptedSource struct {
	data []byte
	pos  int
}

func (s *scriptedSource) Available() int {
	return len(s.data) - s.pos
}

func (s *scriptedSource) ReadByte() byte {
	b := s.data[s.pos]
	s.pos++
	return b
}

// fakeStepper is a scripted StepperDriver: one step per Run call,
// immediate halt on Stop.
type fakeStepper struct {
	position int
	target   int
	maxSpeed int
	accel    int
	enabled  bool

	runCalls     int
	stopCalls    int
	enableCalls  int
	disableCalls int
}

func (f *fakeStepper) SetMaxSpeed(v int)     { f.maxSpeed = v }
func (f *fakeStepper) SetAcceleration(v int) { f.accel = v }

func (f *fakeStepper) SetCurrentPosition(p int) {
	f.position = p
	f.target = p
}

func (f *fakeStepper) MoveTo(t int) { f.target = t }

func (f *fakeStepper) EnableOutputs() {
	f.enabled = true
	f.enableCalls++
}

func (f *fakeStepper) DisableOutputs() {
	f.enabled = false
	f.disableCalls++
}

func (f *fakeStepper) IsRunning() bool {
	return f.position != f.target
}

func (f *fakeStepper) Run() {
	f.runCalls++
	if f.position < f.target {
		f.position++
	} else if f.position > f.target {
		f.position--
	}
}

func (f *fakeStepper) Stop() {
	f.stopCalls++
	f.target = f.position
}

// shiftRecorder captures every frame pushed to the LED output.
type shiftRecorder struct {
	frames [][]byte
}

func (r *shiftRecorder) Push(groups []byte) error {
	frame := make([]byte, len(groups))
	copy(frame, groups)
	r.frames = append(r.frames, frame)
	return nil
}

func (r *shiftRecorder) last() []byte {
	if len(r.frames) == 0 {
		return nil
	}
	return r.frames[len(r.frames)-1]
}

// pinWrite records one GPIO level change.
type pinWrite struct {
	pin   GPIOPin
	value bool
}

// fakeGPIO records pin configuration and every write, in order.
type fakeGPIO struct {
	configured map[GPIOPin]bool
	levels     map[GPIOPin]bool
	trace      []pinWrite
}

func newFakeGPIO() *fakeGPIO {
	return &fakeGPIO{
		configured: make(map[GPIOPin]bool),
		levels:     make(map[GPIOPin]bool),
	}
}

func (g *fakeGPIO) ConfigureOutput(pin GPIOPin) error {
	g.configured[pin] = true
	return nil
}

func (g *fakeGPIO) SetPin(pin GPIOPin, value bool) error {
	g.levels[pin] = value
	g.trace = append(g.trace, pinWrite{pin: pin, value: value})
	return nil
}

// newTestStage wires a stage over scripted collaborators. input is the
// argument byte stream the command under test will consume.
func newTestStage(input []byte) (*Stage, *fakeStepper, *shiftRecorder, *scriptedSource, *bytes.Buffer) {
	src := &scriptedSource{data: input}
	drv := &fakeStepper{}
	rec := &shiftRecorder{}
	tx := &bytes.Buffer{}
	stage, err := NewStage(DefaultConfig(), src, drv, rec, tx)
	if err != nil {
		panic(err)
	}
	return stage, drv, rec, src, tx
}
