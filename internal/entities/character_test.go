package entities_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-duel/internal/entities"
	"github.com/KirkDiggler/rpg-duel/internal/errors"
)

type CharacterTestSuite struct {
	suite.Suite
	sword  *entities.Capability
	shield *entities.Capability
	flame  *entities.Capability
}

func TestCharacterSuite(t *testing.T) {
	suite.Run(t, new(CharacterTestSuite))
}

func (s *CharacterTestSuite) SetupTest() {
	var err error
	s.sword, err = entities.NewWeapon(entities.WeaponConfig{
		Name: "Sword", Damage: 20, Category: entities.CategoryOffensive, Range: entities.RangeMelee,
	})
	s.Require().NoError(err)
	s.shield, err = entities.NewWeapon(entities.WeaponConfig{
		Name: "Shield", Damage: 5, Defense: 10, Category: entities.CategoryDefensive, Range: entities.RangeMelee,
	})
	s.Require().NoError(err)
	s.flame, err = entities.NewMagic(entities.MagicConfig{
		Name: "Flame", Damage: 15, Category: entities.CategoryOffensive,
	})
	s.Require().NoError(err)
}

func (s *CharacterTestSuite) newPlayer(hp int) *entities.PlayerCharacter {
	pc, err := entities.NewPlayerCharacter(&entities.CharacterConfig{
		ID: 1, Name: "Aria", HP: hp, Attack: 50, Defense: 10, Weapon: s.sword, Magic: s.flame,
	})
	s.Require().NoError(err)
	return pc
}

func (s *CharacterTestSuite) TestConstruction() {
	pc := s.newPlayer(100)

	s.Equal("1", pc.GetID())
	s.Equal(1, pc.NumericID())
	s.Equal(entities.TypePlayer, pc.GetType())
	s.Equal("Aria", pc.GetName())
	s.Equal(100, pc.HP())
	s.Equal(50, pc.AttackStat())
	s.Equal(10, pc.DefenseStat())
	s.Same(s.sword, pc.Weapon())
	s.Same(s.flame, pc.Magic())

	npc, err := entities.NewNonPlayerCharacter(&entities.CharacterConfig{ID: 2, Name: "Goblin", HP: 30})
	s.Require().NoError(err)
	s.Equal(entities.TypeNPC, npc.GetType())
	s.Nil(npc.Weapon())
	s.Nil(npc.Magic())
}

func (s *CharacterTestSuite) TestConstructionRejectsNegativeStats() {
	testCases := []struct {
		name string
		cfg  *entities.CharacterConfig
	}{
		{"nil config", nil},
		{"negative hp", &entities.CharacterConfig{Name: "A", HP: -1}},
		{"negative attack", &entities.CharacterConfig{Name: "A", Attack: -5}},
		{"negative defense", &entities.CharacterConfig{Name: "A", Defense: -5}},
		{"missing name", &entities.CharacterConfig{HP: 10}},
		{"magic in weapon slot", &entities.CharacterConfig{Name: "A", Weapon: s.flame}},
		{"weapon in magic slot", &entities.CharacterConfig{Name: "A", Magic: s.sword}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			pc, err := entities.NewPlayerCharacter(tc.cfg)
			s.Nil(pc)
			s.True(errors.IsInvalidConfiguration(err), "got %v", err)
		})
	}
}

func (s *CharacterTestSuite) TestTakeDamageClampsAtZero() {
	pc := s.newPlayer(15)

	s.Equal(10, pc.TakeDamage(10))
	s.Equal(5, pc.HP())
	s.False(pc.IsDefeated())

	s.Equal(5, pc.TakeDamage(20))
	s.Equal(0, pc.HP())
	s.True(pc.IsDefeated())

	s.Equal(0, pc.TakeDamage(7))
	s.Equal(0, pc.HP())
}

func (s *CharacterTestSuite) TestTakeDamageNeverNegative() {
	for hp := 0; hp <= 30; hp += 3 {
		for amount := 0; amount <= 40; amount += 4 {
			pc := s.newPlayer(hp)
			pc.TakeDamage(amount)
			s.GreaterOrEqual(pc.HP(), 0)
		}
	}

	pc := s.newPlayer(10)
	s.Equal(0, pc.TakeDamage(-5))
	s.Equal(10, pc.HP())
}

func (s *CharacterTestSuite) TestHealAndSetters() {
	pc := s.newPlayer(10)

	s.Equal(4, pc.Heal(4))
	s.Equal(14, pc.HP())
	s.Equal(0, pc.Heal(-2))

	pc.SetHP(-8)
	s.Equal(0, pc.HP())

	pc.SetName("Bran")
	pc.SetID(9)
	s.Equal("Bran", pc.GetName())
	s.Equal("9", pc.GetID())
}

func (s *CharacterTestSuite) TestEquip() {
	pc := s.newPlayer(10)

	s.NoError(pc.EquipWeapon(s.shield))
	s.Same(s.shield, pc.Weapon())

	err := pc.EquipWeapon(s.flame)
	s.True(errors.IsInvalidArgument(err))
	s.Same(s.shield, pc.Weapon())

	s.True(errors.IsInvalidArgument(pc.EquipWeapon(nil)))
	s.True(errors.IsInvalidArgument(pc.EquipMagic(nil)))
	s.True(errors.IsInvalidArgument(pc.EquipMagic(s.sword)))
	s.NoError(pc.EquipMagic(s.flame))
}
