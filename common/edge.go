package common

// Edge is a one-shot trigger. Fire reports true the first time it is called
// after the edge was armed, and false until Arm is called again.
type Edge struct {
	fired bool
}

// Arm re-enables the trigger.
func (e *Edge) Arm() {
	e.fired = false
}

// Fire consumes the trigger.
func (e *Edge) Fire() bool {
	if e.fired {
		return false
	}
	e.fired = true
	return true
}

// Fired reports whether the trigger was consumed since the last Arm.
func (e *Edge) Fired() bool {
	return e.fired
}

// Rising tracks a boolean signal and reports false→true transitions.
type Rising struct {
	prev bool
}

// Update feeds the current value and reports whether it just became true.
func (r *Rising) Update(v bool) bool {
	up := v && !r.prev
	r.prev = v
	return up
}
