package engine

// System is an interface that all systems must implement
type System interface {
	// Update runs one tick of the system; world update lock is held by the caller
	Update()
	// Priority orders systems within a tick, lower values run first
	Priority() int
}
