package fibonacci

import (
	"fmt"
	"sort"
	"sync"
)

// CalculatorFactory creates and looks up calculators by short name
// (e.g. "fast", "iterative").
type CalculatorFactory interface {
	// Register adds a calculator under name, replacing any previous entry.
	Register(name string, calc Calculator)
	// Get returns the calculator registered under name.
	Get(name string) (Calculator, error)
	// MustGet is like Get but panics when name is unknown.
	MustGet(name string) Calculator
	// List returns the registered names in sorted order.
	List() []string
	// GetAll returns a copy of the registry.
	GetAll() map[string]Calculator
}

// DefaultFactory is the map-backed CalculatorFactory. It is safe for
// concurrent use.
type DefaultFactory struct {
	mu          sync.RWMutex
	calculators map[string]Calculator
}

// NewDefaultFactory returns a factory pre-populated with the built-in
// calculators.
func NewDefaultFactory() *DefaultFactory {
	f := &DefaultFactory{calculators: make(map[string]Calculator)}
	f.Register("fast", FastDoubling{})
	f.Register("iterative", Iterative{})
	return f
}

var (
	globalFactory     *DefaultFactory
	globalFactoryOnce sync.Once
)

// GlobalFactory returns the process-wide default factory.
func GlobalFactory() *DefaultFactory {
	globalFactoryOnce.Do(func() {
		globalFactory = NewDefaultFactory()
	})
	return globalFactory
}

// Register adds a calculator under name.
func (f *DefaultFactory) Register(name string, calc Calculator) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calculators[name] = calc
}

// Get returns the calculator registered under name.
func (f *DefaultFactory) Get(name string) (Calculator, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	calc, ok := f.calculators[name]
	if !ok {
		return nil, fmt.Errorf("unknown calculator %q (available: %v)", name, f.listLocked())
	}
	return calc, nil
}

// MustGet returns the calculator registered under name or panics.
func (f *DefaultFactory) MustGet(name string) Calculator {
	calc, err := f.Get(name)
	if err != nil {
		panic(err)
	}
	return calc
}

// List returns the registered names in sorted order.
func (f *DefaultFactory) List() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.listLocked()
}

func (f *DefaultFactory) listLocked() []string {
	names := make([]string, 0, len(f.calculators))
	for name := range f.calculators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetAll returns a copy of the registry.
func (f *DefaultFactory) GetAll() map[string]Calculator {
	f.mu.RLock()
	defer f.mu.RUnlock()
	all := make(map[string]Calculator, len(f.calculators))
	for name, calc := range f.calculators {
		all[name] = calc
	}
	return all
}
