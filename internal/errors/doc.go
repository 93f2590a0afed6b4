// Package errors provides the structured error type used across rpg-duel.
//
// Errors carry a Code, a user-facing message, an optional cause and
// metadata. Codes line up with gRPC status codes; ToStatus converts an error
// at the CLI boundary and the two combat codes map onto their closest gRPC
// equivalent.
//
// # Combat taxonomy
//
//   - InvalidConfiguration: a capability or combatant was built with a
//     negative value or an unknown category.
//   - MissingCapability: an attack was attempted while a combatant had no
//     weapon or no magic equipped.
//
// An attacker with no offensive capability is not an error; the resolver
// reports it as a regular outcome.
//
// # Usage
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateNonNegative("attack", cfg.Attack, vb)
//	if err := vb.Build(); err != nil {
//	    return nil, errors.WrapWithCode(err, errors.CodeInvalidConfiguration, "invalid character config")
//	}
//
//	if errors.IsMissingCapability(err) {
//	    // re-equip and retry
//	}
package errors
