package combat

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-duel/internal/entities"
	"github.com/KirkDiggler/rpg-duel/internal/errors"
)

// percentileDie is rolled against parry and dodge chances
const percentileDie = 100

// Options tune how the resolver applies damage
type Options struct {
	// MagicDamageForMagicAttacks applies the offensive magic's damage when
	// magic carried the attack. Off by default: the attacker's weapon damage
	// is what lands, whatever carried the attack.
	MagicDamageForMagicAttacks bool
}

// Resolver resolves attacks. It holds no combat state and can be shared.
type Resolver struct {
	opts Options
}

// NewResolver creates a resolver with the given options
func NewResolver(opts Options) *Resolver {
	return &Resolver{opts: opts}
}

// ResolveAttack resolves one attack with default options
func ResolveAttack(attacker, defender entities.Combatant, roller dice.Roller) (*AttackOutcome, error) {
	return NewResolver(Options{}).Resolve(attacker, defender, roller)
}

// Resolve runs one attack from attacker against defender. On error neither
// combatant is modified.
func (r *Resolver) Resolve(attacker, defender entities.Combatant, roller dice.Roller) (*AttackOutcome, error) {
	if err := validateParticipants(attacker, defender, roller); err != nil {
		return nil, err
	}

	res := &resolution{
		opts:       r.opts,
		attacker:   attacker,
		defender:   defender,
		roller:     roller,
		attackerHP: attacker.HP(),
		defenderHP: defender.HP(),
		outcome:    &AttackOutcome{AttackType: AttackTypeNone},
	}

	if err := res.run(); err != nil {
		return nil, err
	}

	return res.commit(), nil
}

func validateParticipants(attacker, defender entities.Combatant, roller dice.Roller) error {
	if attacker == nil {
		return errors.InvalidArgument("attacker is required")
	}
	if defender == nil {
		return errors.InvalidArgument("defender is required")
	}
	if roller == nil {
		return errors.InvalidArgument("roller is required")
	}
	if attacker == defender {
		return errors.InvalidArgumentf("%s cannot attack itself", attacker.GetName())
	}

	for _, c := range []entities.Combatant{attacker, defender} {
		if c.Weapon() == nil {
			return errors.MissingCapabilityf("%s has no weapon equipped", c.GetName()).
				WithMeta("combatant_id", c.GetID()).
				WithMeta("slot", string(entities.KindWeapon))
		}
		if c.Magic() == nil {
			return errors.MissingCapabilityf("%s has no magic equipped", c.GetName()).
				WithMeta("combatant_id", c.GetID()).
				WithMeta("slot", string(entities.KindMagic))
		}
	}

	return nil
}

// resolution is the working state of a single Resolve call. HP values are
// local until commit.
type resolution struct {
	opts     Options
	attacker entities.Combatant
	defender entities.Combatant
	roller   dice.Roller

	attackerHP int
	defenderHP int
	// applied is the damage currently standing against the defender
	applied int

	outcome *AttackOutcome
}

func (r *resolution) run() error {
	if !r.determineAttackType() {
		return nil
	}

	hit, err := r.rollHit()
	if err != nil {
		return err
	}
	if !hit {
		return nil
	}

	r.applyDamage()
	if r.outcome.Terminal {
		// a defeated defender cannot parry or dodge
		return nil
	}

	if err := r.resolveParry(); err != nil {
		return err
	}
	if r.outcome.ParrySucceeded {
		return nil
	}

	return r.resolveDodge()
}

// determineAttackType reports false when the attacker has nothing offensive
func (r *resolution) determineAttackType() bool {
	magic := r.attacker.Magic()
	weapon := r.attacker.Weapon()

	switch {
	case magic.IsOffensive():
		r.outcome.AttackType = AttackTypeMagic
		r.outcome.EffectiveDefense = r.defender.DefenseStat()
	case weapon.IsOffensive():
		r.outcome.AttackType = AttackTypeWeapon
		r.outcome.EffectiveDefense = r.defender.DefenseStat()
		if defMagic := r.defender.Magic(); defMagic.IsDefensive() {
			r.outcome.EffectiveDefense += defMagic.Defense()
		}
	default:
		r.outcome.NoOffensiveCapability = true
		return false
	}

	return true
}

func (r *resolution) rollHit() (bool, error) {
	attackerRoll, err := r.roller.Roll(atLeastOne(r.attacker.AttackStat()))
	if err != nil {
		return false, errors.Wrap(err, "failed to roll attack")
	}
	defenderRoll, err := r.roller.Roll(atLeastOne(r.outcome.EffectiveDefense))
	if err != nil {
		return false, errors.Wrap(err, "failed to roll defense")
	}

	r.outcome.AttackerRoll = attackerRoll
	r.outcome.DefenderRoll = defenderRoll
	r.outcome.Margin = attackerRoll - defenderRoll
	r.outcome.Hit = r.outcome.Margin > 0

	return r.outcome.Hit, nil
}

func (r *resolution) applyDamage() {
	source := r.attacker.Weapon()
	if r.opts.MagicDamageForMagicAttacks && r.outcome.AttackType == AttackTypeMagic {
		source = r.attacker.Magic()
	}

	damage := source.Damage()
	r.outcome.DamageSource = source.Name()
	r.outcome.Damage = damage

	r.applied = min(damage, r.defenderHP)
	r.defenderHP -= r.applied
	r.outcome.Terminal = r.defenderHP == 0
}

func (r *resolution) resolveParry() error {
	if !r.attacker.Weapon().IsMelee() || !r.defender.Weapon().IsDefensive() {
		return nil
	}

	chance := ParryChance(r.defender)
	roll, err := r.roller.Roll(percentileDie)
	if err != nil {
		return errors.Wrap(err, "failed to roll parry")
	}

	r.outcome.ParryAttempted = true
	r.outcome.ParryChance = chance
	r.outcome.ParryRoll = roll
	if roll > chance {
		// the damage already applied stands
		return nil
	}

	r.outcome.ParrySucceeded = true
	r.revertDamage()

	counter := r.defender.Weapon().Damage()
	r.outcome.CounterDamage = counter
	r.attackerHP -= min(counter, r.attackerHP)

	return nil
}

func (r *resolution) resolveDodge() error {
	if !r.defender.Weapon().IsRanged() {
		return nil
	}

	chance := DodgeChance(r.defender)
	roll, err := r.roller.Roll(percentileDie)
	if err != nil {
		return errors.Wrap(err, "failed to roll dodge")
	}

	r.outcome.DodgeAttempted = true
	r.outcome.DodgeChance = chance
	r.outcome.DodgeRoll = roll
	if roll > chance {
		return nil
	}

	r.outcome.DodgeSucceeded = true
	r.revertDamage()

	return nil
}

func (r *resolution) revertDamage() {
	r.defenderHP += r.applied
	r.applied = 0
}

// commit writes the resolved HP changes to the combatants
func (r *resolution) commit() *AttackOutcome {
	r.defender.TakeDamage(r.applied)
	r.attacker.TakeDamage(r.attacker.HP() - r.attackerHP)

	r.outcome.DamageDealt = r.applied
	r.outcome.DefenderRemainingHP = r.defender.HP()
	r.outcome.AttackerRemainingHP = r.attacker.HP()
	r.outcome.AttackerDefeated = r.outcome.CounterDamage > 0 && r.attacker.IsDefeated()

	return r.outcome
}

func atLeastOne(n int) int {
	if n < 1 {
		return 1
	}
	return n
}
