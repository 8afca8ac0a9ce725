package util

import "sync/atomic"

// SafeCounter is safe to use concurrently.
type SafeCounter struct {
	value atomic.Int64
}

// NewSafeInt creates a new SafeCounter.
func NewSafeInt() *SafeCounter {
	return &SafeCounter{}
}

// NewSafeIntWithValue creates a new SafeCounter with an initial value.
func NewSafeIntWithValue(initialValue int) *SafeCounter {
	sc := &SafeCounter{}
	sc.value.Store(int64(initialValue))
	return sc
}

// Increment increments the counter's value and returns the new value.
func (sc *SafeCounter) Increment() int {
	return int(sc.value.Add(1))
}

// Set sets the value of the counter.
func (sc *SafeCounter) Set(newValue int) {
	sc.value.Store(int64(newValue))
}

// Value returns the current value of the counter.
func (sc *SafeCounter) Value() int {
	return int(sc.value.Load())
}

// SafeFlag is safe to use concurrently.
type SafeFlag struct {
	value atomic.Bool
}

// NewSafeBool creates a new SafeFlag.
func NewSafeBool() *SafeFlag {
	return &SafeFlag{}
}

// NewSafeBoolWithValue creates a new SafeFlag with an initial value.
func NewSafeBoolWithValue(initialValue bool) *SafeFlag {
	sf := &SafeFlag{}
	sf.value.Store(initialValue)
	return sf
}

// Set sets the value of the flag and returns the new value.
func (sf *SafeFlag) Set(newValue bool) bool {
	sf.value.Store(newValue)
	return newValue
}

// Value returns the current value of the flag.
func (sf *SafeFlag) Value() bool {
	return sf.value.Load()
}

// CompareAndSwap sets the flag to newValue only if it currently equals old.
func (sf *SafeFlag) CompareAndSwap(old, newValue bool) bool {
	return sf.value.CompareAndSwap(old, newValue)
}
