package menu

import (
	"github.com/albion-rpg/albion/internal/game/combat"
	"github.com/albion-rpg/albion/internal/game/player"
	"github.com/albion-rpg/albion/internal/tui"
)

// battleUI adapts the terminal to the combat engine's interaction
// surface.
type battleUI struct {
	app *App
}

var _ combat.UI = (*battleUI)(nil)

// Sayf prints one narrated battle line with the configured delay.
func (u *battleUI) Sayf(format string, args ...any) {
	u.app.term.Statusf(tui.BrightWhite, format, args...)
}

// Confirm asks a yes/no question.
func (u *battleUI) Confirm(prompt string) (bool, error) {
	return u.app.term.Confirm(prompt)
}

// ChooseAction presents the in-battle menu.
func (u *battleUI) ChooseAction(enemy *combat.Enemy, p *player.Player) (combat.Action, error) {
	u.app.term.Statusf(tui.BrightRed, "%s: %d HP", enemy.Kind.DisplayName(), enemy.HP)
	u.app.term.Statusf(tui.BrightGreen, "You: %d HP, %d hunger", p.Health.HP, p.Health.Hunger)

	choice, err := u.app.term.Select("Your move?", []string{
		"Attack",
		"Inventory",
		"Retreat",
	})
	if err != nil {
		return combat.ActionRetreat, err
	}
	switch choice {
	case 0:
		return combat.ActionAttack, nil
	case 1:
		return combat.ActionInventory, nil
	default:
		return combat.ActionRetreat, nil
	}
}

// ManageInventory opens the shared inventory screen mid-battle.
func (u *battleUI) ManageInventory(p *player.Player) error {
	return u.app.inventoryScreen()
}
