package menu

import (
	"go.uber.org/zap"

	"github.com/albion-rpg/albion/internal/tui"
)

// settingsScreen runs the settings loop. It reports deleted=true when
// the player removed their account, which forces a return to the
// account screen.
func (a *App) settingsScreen() (deleted bool, err error) {
	for {
		a.term.Clear()
		a.term.Header("Settings")
		p := a.player

		hardmode := "Off"
		if p.Settings.Hardmode {
			hardmode = tui.Colorize(tui.BrightRed, "On")
		}

		choice, err := a.term.Select("Settings", []string{
			"Change password",
			"Toggle hardmode (currently " + hardmode + ")",
			"Enter a secret code",
			"Delete this account",
			"Back",
		})
		if err != nil {
			return false, err
		}

		switch choice {
		case 0:
			err = a.changePassword()
		case 1:
			p.Settings.Hardmode = !p.Settings.Hardmode
			a.logger.Info("hardmode toggled",
				zap.String("username", p.Settings.Username),
				zap.Bool("hardmode", p.Settings.Hardmode),
			)
			if p.Settings.Hardmode {
				a.term.Statusf(tui.BrightRed, "Hardmode is on. Defeat can now cost you everything.")
			} else {
				a.term.Statusf(tui.BrightGreen, "Hardmode is off.")
			}
		case 2:
			err = a.enterSecretCode()
		case 3:
			done, delErr := a.deleteAccount()
			if delErr != nil {
				err = delErr
			} else if done {
				return true, nil
			}
		case 4:
			return false, nil
		}
		if err != nil {
			if err = a.recover(err); err != nil {
				return false, err
			}
		}
	}
}

func (a *App) changePassword() error {
	password, err := a.term.Password("New password:")
	if err != nil {
		return err
	}
	confirm, err := a.term.Password("Repeat the password:")
	if err != nil {
		return err
	}
	if password != confirm {
		a.term.Statusf(tui.BrightRed, "Passwords do not match.")
		return nil
	}
	if err := a.auth.ChangePassword(a.player, password); err != nil {
		return err
	}
	a.term.Statusf(tui.BrightGreen, "Password changed.")
	return nil
}

// enterSecretCode checks the developer code and unlocks the developer
// menu permanently for this profile.
func (a *App) enterSecretCode() error {
	code, err := a.term.Prompt("Code:")
	if err != nil {
		return err
	}
	if code != developerCode {
		a.term.Statusf(tui.BrightRed, "Nothing happens.")
		return nil
	}
	a.player.Settings.Developer = true
	a.player.EvaluateAchievements()
	a.logger.Warn("developer mode unlocked",
		zap.String("username", a.player.Settings.Username),
	)
	a.term.Statusf(tui.BrightCyan, "The fabric of the realm bends to your will.")
	return a.store.Save(a.player)
}

// deleteAccount removes the profile file after confirmation.
//
// Postcondition: on deleted=true the App has no active player.
func (a *App) deleteAccount() (bool, error) {
	ok, err := a.term.Confirm("Delete this account forever? There is no way back.")
	if err != nil || !ok {
		return false, err
	}
	username := a.player.Settings.Username
	if err := a.store.Delete(username); err != nil {
		return false, err
	}
	a.player = nil
	a.logger.Info("account deleted", zap.String("username", username))
	a.term.Statusf(tui.BrightRed, "The realm forgets %s.", username)
	return true, nil
}
