// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"time"

	mockclock "github.com/KirkDiggler/rpg-duel/internal/pkg/clock/mock"
	idgenmock "github.com/KirkDiggler/rpg-duel/internal/pkg/idgen/mock"
)

// ExpectAttackStamp sets up the ID and timestamp a resolved attack receives
func ExpectAttackStamp(mockIDGen *idgenmock.MockGenerator, mockClock *mockclock.MockClock, attackID string, at time.Time) {
	mockIDGen.EXPECT().Generate().Return(attackID)
	mockClock.EXPECT().Now().Return(at)
}

// ExpectAttackID sets up only the ID, for attacks that fail before they are stamped
func ExpectAttackID(mockIDGen *idgenmock.MockGenerator, attackID string) {
	mockIDGen.EXPECT().Generate().Return(attackID)
}
