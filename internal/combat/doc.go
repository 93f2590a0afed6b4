// Package combat resolves a single attack between two combatants.
//
// Resolution runs through fixed stages:
//
//	DetermineAttackType -> RollHit -> ApplyDamage -> ResolveParry -> ResolveDodge -> Done
//
// A miss, a defeated defender or a successful parry ends the sequence early.
// All randomness comes from the dice.Roller passed in, so a seeded roller
// replays the same outcome. HP changes are computed first and written to the
// combatants only once every roll has succeeded; an error never leaves a
// combatant half updated.
package combat
