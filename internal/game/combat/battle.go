// Package combat implements the turn-based battle state machine: enemy
// generation, player and enemy turns with durability wear, post-turn
// healing, level-gated victory rewards, the hardmode defeat branch, and
// the stronghold battle loop.
package combat

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/albion-rpg/albion/internal/game/dice"
	"github.com/albion-rpg/albion/internal/game/player"
)

// Action is the player's choice on their battle turn.
type Action int

const (
	// ActionAttack swings the equipped weapon.
	ActionAttack Action = iota
	// ActionInventory opens the in-battle inventory to equip or heal.
	// It does not consume the turn.
	ActionInventory
	// ActionRetreat leaves the battle cleanly.
	ActionRetreat
)

// Outcome is the terminal result of one battle or battle loop.
type Outcome int

const (
	// OutcomeVictory: the enemy fell and rewards were applied.
	OutcomeVictory Outcome = iota
	// OutcomeDefeat: the player fell; defeat handling has run.
	OutcomeDefeat
	// OutcomeRetreat: the player withdrew.
	OutcomeRetreat
	// OutcomeDeclined: the player refused the under-equipped prelude
	// confirmation and never entered battle.
	OutcomeDeclined
)

// state is one node of the battle state machine.
type state int

const (
	statePrelude state = iota
	stateEnemyGenerated
	stateAwaitingAction
	statePlayerTurn
	stateEnemyTurn
	statePostTurnHeal
	stateVictory
	stateDefeat
	stateRetreat
)

// UI is the interaction surface a battle needs from the menu layer.
// Implementations block on user input; the scripted test double answers
// immediately.
type UI interface {
	// Sayf prints one narrated battle line.
	Sayf(format string, args ...any)
	// Confirm asks a yes/no question.
	Confirm(prompt string) (bool, error)
	// ChooseAction presents the in-battle menu and returns the choice.
	ChooseAction(enemy *Enemy, p *player.Player) (Action, error)
	// ManageInventory runs the in-battle equip/heal screen.
	ManageInventory(p *player.Player) error
}

// Saver persists a player at the battle's save points.
type Saver interface {
	Save(p *player.Player) error
}

// Engine runs battles for one player.
type Engine struct {
	src    dice.Source
	ui     UI
	saver  Saver
	logger *zap.Logger
}

// NewEngine creates a combat Engine.
//
// Precondition: all arguments must be non-nil.
func NewEngine(src dice.Source, ui UI, saver Saver, logger *zap.Logger) *Engine {
	return &Engine{src: src, ui: ui, saver: saver, logger: logger}
}

// loopState tracks progress through a multi-battle loop.
type loopState struct {
	remaining  int
	floor      int
	onComplete func(p *player.Player) error
}

// Wander runs a single random encounter.
//
// Postcondition: on Victory the player is restored, rewarded, and saved;
// on Defeat the defeat penalty has been applied and saved.
func (e *Engine) Wander(p *player.Player) (Outcome, error) {
	return e.run(p, nil)
}

// Stronghold runs the fixed battle loop of the given depth. Completing
// every floor latches the StrongholdDefeated achievement and saves.
//
// Precondition: depth > 0.
func (e *Engine) Stronghold(p *player.Player, depth int) (Outcome, error) {
	loop := &loopState{
		remaining: depth,
		onComplete: func(p *player.Player) error {
			p.Achievements.StrongholdDefeated = true
			e.ui.Sayf("The stronghold has fallen!")
			return e.saver.Save(p)
		},
	}
	return e.run(p, loop)
}

// run drives the battle state machine until a terminal state. A non-nil
// loop restarts the machine after each victory until no floors remain.
func (e *Engine) run(p *player.Player, loop *loopState) (Outcome, error) {
	var enemy Enemy
	st := statePrelude

	for {
		switch st {
		case statePrelude:
			p.RepairEquipment()
			if !p.Equipment.HasWeapon() || !p.Equipment.HasArmor() {
				ok, err := e.ui.Confirm("You are not fully equipped. Fight anyway?")
				if err != nil {
					return OutcomeDeclined, err
				}
				if !ok {
					return OutcomeDeclined, nil
				}
			}
			if loop != nil {
				loop.remaining--
				loop.floor++
				e.ui.Sayf("Floor %d of the stronghold.", loop.floor)
			}
			st = stateEnemyGenerated

		case stateEnemyGenerated:
			enemy = GenerateEnemy(p, e.src)
			e.logger.Debug("enemy generated",
				zap.String("kind", string(enemy.Kind)),
				zap.Int("hp", enemy.HP),
				zap.Int("damage", enemy.Damage),
			)
			e.ui.Sayf("A %s appears! (%d HP)", enemy.Kind.DisplayName(), enemy.HP)
			st = stateAwaitingAction

		case stateAwaitingAction:
			action, err := e.ui.ChooseAction(&enemy, p)
			if err != nil {
				return OutcomeRetreat, err
			}
			switch action {
			case ActionAttack:
				st = statePlayerTurn
			case ActionInventory:
				// equipping does not consume the turn
				if err := e.ui.ManageInventory(p); err != nil {
					return OutcomeRetreat, err
				}
			case ActionRetreat:
				st = stateRetreat
			}

		case statePlayerTurn:
			st = e.playerTurn(p, &enemy)

		case stateEnemyTurn:
			st = e.enemyTurn(p, &enemy)

		case statePostTurnHeal:
			if healed := p.Health.Heal(e.src); healed > 0 {
				e.ui.Sayf("You recover %d health.", healed)
			}
			st = stateAwaitingAction

		case stateVictory:
			if err := e.victory(p, &enemy); err != nil {
				return OutcomeVictory, err
			}
			if loop != nil && loop.remaining > 0 {
				st = statePrelude
				continue
			}
			if loop != nil && loop.onComplete != nil {
				if err := loop.onComplete(p); err != nil {
					return OutcomeVictory, err
				}
			}
			return OutcomeVictory, nil

		case stateDefeat:
			if err := e.defeat(p, &enemy); err != nil {
				return OutcomeDefeat, err
			}
			return OutcomeDefeat, nil

		case stateRetreat:
			e.ui.Sayf("You flee from the %s.", enemy.Kind.DisplayName())
			return OutcomeRetreat, nil
		}
	}
}

// playerTurn resolves the player's attack and returns the next state.
func (e *Engine) playerTurn(p *player.Player, enemy *Enemy) state {
	e.ui.Sayf("You attack the %s...", enemy.Kind.DisplayName())

	if !dice.CoinFlip(e.src) || !p.Equipment.HasWeapon() {
		e.ui.Sayf("You miss!")
		return stateEnemyTurn
	}

	weapon := p.Equipment.Weapon
	damage := weapon.Spec().Damage
	if p.WearWeapon(dice.Between(e.src, 1, 4)) {
		e.ui.Sayf("Your %s breaks!", weapon.DisplayName())
	}
	e.ui.Sayf("You hit the %s for %d damage.", enemy.Kind.DisplayName(), damage)

	if enemy.HP < damage {
		return stateVictory
	}
	enemy.HP -= damage
	return stateEnemyTurn
}

// enemyTurn resolves the enemy's attack and returns the next state.
func (e *Engine) enemyTurn(p *player.Player, enemy *Enemy) state {
	damage := enemy.Damage
	if p.Equipment.HasArmor() {
		armor := p.Equipment.Armor
		damage -= armor.Spec().Defense
		if damage < 0 {
			damage = 0
		}
		if p.WearArmor(dice.Between(e.src, 1, 4)) {
			e.ui.Sayf("Your %s breaks!", armor.DisplayName())
		}
	}

	switch {
	case !dice.CoinFlip(e.src):
		e.ui.Sayf("The %s misses you!", enemy.Kind.DisplayName())
	case damage == 0:
		e.ui.Sayf("Your armor negates the blow.")
	default:
		if p.Health.HP < damage {
			e.ui.Sayf("The %s hits you for %d damage. You collapse!", enemy.Kind.DisplayName(), damage)
			return stateDefeat
		}
		p.Health.HP -= damage
		e.ui.Sayf("The %s hits you for %d damage.", enemy.Kind.DisplayName(), damage)
	}
	return statePostTurnHeal
}

// victory applies the win: restore, kill count, rewards, achievement
// evaluation, and a save.
func (e *Engine) victory(p *player.Player, enemy *Enemy) error {
	e.ui.Sayf("You defeated the %s!", enemy.Kind.DisplayName())
	p.Health.Restore()
	p.Achievements.MonstersKilled++
	ApplyRewards(p, enemy.Rewards)
	p.EvaluateAchievements()

	e.logger.Info("battle won",
		zap.String("enemy", string(enemy.Kind)),
		zap.Int("monsters_killed", p.Achievements.MonstersKilled),
	)
	if err := e.saver.Save(p); err != nil {
		return fmt.Errorf("saving after victory: %w", err)
	}
	return nil
}

// defeat applies the loss. Outside hardmode the player revives at full
// hit points. In hardmode a coin flip picks between the death penalty
// (then revive) and a full profile reset.
func (e *Engine) defeat(p *player.Player, enemy *Enemy) error {
	e.logger.Info("battle lost",
		zap.String("enemy", string(enemy.Kind)),
		zap.Bool("hardmode", p.Settings.Hardmode),
	)

	if !p.Settings.Hardmode {
		p.Health.HP = player.MaxHP
		e.ui.Sayf("You wake up at the tavern, sore but alive.")
	} else if dice.CoinFlip(e.src) {
		p.Die()
		e.ui.Sayf("Death takes its toll. Your possessions are gone.")
	} else {
		p.Reset()
		e.ui.Sayf("Your legend ends here. The realm forgets you.")
	}

	if err := e.saver.Save(p); err != nil {
		return fmt.Errorf("saving after defeat: %w", err)
	}
	return nil
}
