package menu

import (
	"go.uber.org/zap"

	"github.com/albion-rpg/albion/internal/game/combat"
	"github.com/albion-rpg/albion/internal/tui"
)

// mainScreen runs the town menu loop for the logged-in player.
func (a *App) mainScreen() (screen, error) {
	for {
		a.term.Clear()
		a.term.Header("The Town of Albion")
		p := a.player
		a.term.Println(tui.Colorf(tui.BrightYellow, "%s | Level %d | %d HP | %d gold",
			p.Settings.Username, p.XP.TotalLevel(), p.Health.HP, p.Bank.Wallet))

		options := []string{
			"Wander the Wilds",
			"Enter the Stronghold",
			"Guild Hall",
			"Bank",
			"Trading Post",
			"Weapons Shop",
			"Armor Shop",
			"Inventory",
			"Hall of Records",
			"Settings",
			"Save Game",
			"Logout",
			"Exit Game",
		}
		developer := p.Settings.Developer
		if developer {
			options = append(options, "Developer Menu")
		}

		choice, err := a.term.Select("Where to?", options)
		if err != nil {
			return screenQuit, err
		}

		switch choice {
		case 0:
			if err := a.wander(); err != nil {
				return screenQuit, err
			}
		case 1:
			if err := a.stronghold(); err != nil {
				return screenQuit, err
			}
		case 2:
			if err := a.guildScreen(); err != nil {
				return screenQuit, err
			}
		case 3:
			if err := a.bankScreen(); err != nil {
				return screenQuit, err
			}
		case 4:
			if err := a.tradingPostScreen(); err != nil {
				return screenQuit, err
			}
		case 5:
			if err := a.weaponsShopScreen(); err != nil {
				return screenQuit, err
			}
		case 6:
			if err := a.armorShopScreen(); err != nil {
				return screenQuit, err
			}
		case 7:
			if err := a.inventoryScreen(); err != nil {
				return screenQuit, err
			}
		case 8:
			a.recordsScreen()
		case 9:
			deleted, err := a.settingsScreen()
			if err != nil {
				return screenQuit, err
			}
			if deleted {
				return screenAccounts, nil
			}
		case 10:
			if err := a.save(); err != nil {
				return screenQuit, err
			}
		case 11:
			if err := a.shutdown(); err != nil {
				return screenQuit, err
			}
			return screenAccounts, nil
		case 12:
			return screenQuit, nil
		case 13:
			if err := a.developerScreen(); err != nil {
				return screenQuit, err
			}
		}
	}
}

// wander runs one random encounter.
func (a *App) wander() error {
	outcome, err := a.combat.Wander(a.player)
	if err != nil {
		return err
	}
	a.reportOutcome(outcome)
	return nil
}

// stronghold runs the configured battle gauntlet.
func (a *App) stronghold() error {
	depth := a.cfg.Game.StrongholdDepth
	ok, err := a.term.Confirm("The stronghold holds " +
		tui.Colorf(tui.BrightRed, "%d", depth) + " battles with no rest. Enter?")
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	outcome, err := a.combat.Stronghold(a.player, depth)
	if err != nil {
		return err
	}
	a.logger.Info("stronghold attempt finished",
		zap.String("username", a.player.Settings.Username),
		zap.Int("outcome", int(outcome)),
	)
	a.reportOutcome(outcome)
	return nil
}

func (a *App) reportOutcome(outcome combat.Outcome) {
	switch outcome {
	case combat.OutcomeVictory:
		a.term.Statusf(tui.BrightGreen, "You return to town victorious.")
	case combat.OutcomeDefeat:
		a.term.Statusf(tui.BrightRed, "You return to town in defeat.")
	case combat.OutcomeRetreat:
		a.term.Statusf(tui.BrightYellow, "You slip back to town unharmed.")
	case combat.OutcomeDeclined:
		a.term.Statusf(tui.BrightYellow, "You think better of it.")
	}
	a.term.Pause()
}
