package core

type Input struct {
	keys    map[Key]bool
	touches []Touch
}

func NewInput() *Input { return &Input{keys: map[Key]bool{}} }

func (in *Input) Handle(ev Event) {
	switch e := ev.(type) {
	case EventKey:
		in.keys[e.Key] = e.Down
	case EventTouch:
		in.touches = append(in.touches[:0], e.Touches...)
	}
}

func (in *Input) IsKeyDown(k Key) bool { return in.keys[k] }

// PrimaryTouch returns the first active touch, if any.
func (in *Input) PrimaryTouch() (Touch, bool) {
	if len(in.touches) == 0 {
		return Touch{}, false
	}
	return in.touches[0], true
}
