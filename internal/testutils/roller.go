package testutils

import (
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-duel/internal/errors"
)

// ScriptedRoller returns queued values in order and records the die sizes it
// was asked for. Rolling past the end of the script returns an error.
type ScriptedRoller struct {
	mu     sync.Mutex
	values []int
	sizes  []int
}

var _ dice.Roller = (*ScriptedRoller)(nil)

// NewScriptedRoller creates a roller that will return values in order
func NewScriptedRoller(values ...int) *ScriptedRoller {
	return &ScriptedRoller{values: values}
}

// Roll returns the next scripted value. Values larger than size are clamped
// so a script stays valid when stats change.
func (r *ScriptedRoller) Roll(size int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sizes = append(r.sizes, size)
	if len(r.values) == 0 {
		return 0, errors.Internalf("scripted roller exhausted on d%d", size)
	}

	v := r.values[0]
	r.values = r.values[1:]
	if v > size {
		v = size
	}
	return v, nil
}

// RollN returns the next count scripted values
func (r *ScriptedRoller) RollN(count, size int) ([]int, error) {
	results := make([]int, 0, count)
	for i := 0; i < count; i++ {
		v, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		results = append(results, v)
	}
	return results, nil
}

// Sizes returns the die sizes requested so far
func (r *ScriptedRoller) Sizes() []int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]int(nil), r.sizes...)
}

// Remaining returns how many scripted values are left
func (r *ScriptedRoller) Remaining() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.values)
}
