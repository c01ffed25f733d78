package api

import "sync/atomic"

// Gate makes the session-invalidated reaction idempotent. Concurrent 401
// responses may each call Fire, but the reaction runs at most once per Arm;
// the composition root re-arms the gate on every successful login.
type Gate struct {
	armed atomic.Bool
	fn    func()
}

// NewGate returns an armed Gate wrapping fn.
func NewGate(fn func()) *Gate {
	g := &Gate{fn: fn}
	g.armed.Store(true)
	return g
}

// Arm re-enables the gate so the next Fire runs the reaction again.
func (g *Gate) Arm() {
	g.armed.Store(true)
}

// Fire runs the reaction if the gate is armed, disarming it first.
func (g *Gate) Fire() {
	if g.armed.CompareAndSwap(true, false) {
		g.fn()
	}
}
