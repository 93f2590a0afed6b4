package combat

// AttackType is the capability that carried the attack
type AttackType string

// Attack types
const (
	AttackTypeNone   AttackType = "none"
	AttackTypeMagic  AttackType = "magic"
	AttackTypeWeapon AttackType = "weapon"
)

// AttackOutcome is the fully resolved result of one attack. It is a value
// owned by the caller; the resolver keeps no reference to it.
type AttackOutcome struct {
	AttackType AttackType `json:"attack_type"`
	// NoOffensiveCapability is set when the attacker had nothing to attack
	// with. No dice were rolled and nobody was touched.
	NoOffensiveCapability bool `json:"no_offensive_capability"`

	Hit              bool `json:"hit"`
	AttackerRoll     int  `json:"attacker_roll"`
	DefenderRoll     int  `json:"defender_roll"`
	EffectiveDefense int  `json:"effective_defense"`
	Margin           int  `json:"margin"`

	// DamageSource names the capability whose damage value was applied
	DamageSource string `json:"damage_source,omitempty"`
	// Damage is what the hit inflicted before any parry or dodge
	Damage int `json:"damage"`
	// DamageDealt is what the defender finally lost
	DamageDealt         int  `json:"damage_dealt"`
	DefenderRemainingHP int  `json:"defender_remaining_hp"`
	Terminal            bool `json:"terminal"`

	ParryAttempted bool `json:"parry_attempted"`
	ParrySucceeded bool `json:"parry_succeeded"`
	ParryChance    int  `json:"parry_chance,omitempty"`
	ParryRoll      int  `json:"parry_roll,omitempty"`
	CounterDamage  int  `json:"counter_damage"`

	DodgeAttempted bool `json:"dodge_attempted"`
	DodgeSucceeded bool `json:"dodge_succeeded"`
	DodgeChance    int  `json:"dodge_chance,omitempty"`
	DodgeRoll      int  `json:"dodge_roll,omitempty"`

	AttackerRemainingHP int  `json:"attacker_remaining_hp"`
	AttackerDefeated    bool `json:"attacker_defeated"`
}
