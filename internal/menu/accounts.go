package menu

import (
	"go.uber.org/zap"

	"github.com/albion-rpg/albion/internal/auth"
	"github.com/albion-rpg/albion/internal/tui"
)

// accountsScreen runs the login/register loop until a player is logged
// in or the user exits.
func (a *App) accountsScreen() (screen, error) {
	for {
		a.term.Clear()
		a.term.Header("ALBION")

		names, err := a.store.List()
		if err != nil {
			return screenQuit, err
		}
		if len(names) > 0 {
			rows := make([][]string, 0, len(names))
			for _, n := range names {
				rows = append(rows, []string{n})
			}
			a.term.Table([]string{"Saved Profiles"}, rows)
		}

		choice, err := a.term.Select("Welcome, adventurer.", []string{
			"Login",
			"Register",
			"Exit",
		})
		if err != nil {
			return screenQuit, err
		}

		switch choice {
		case 0:
			ok, err := a.login()
			if err != nil {
				return screenQuit, err
			}
			if ok {
				return screenMain, nil
			}
		case 1:
			ok, err := a.register()
			if err != nil {
				return screenQuit, err
			}
			if ok {
				return screenMain, nil
			}
		case 2:
			return screenQuit, nil
		}
	}
}

// login prompts for credentials and loads the profile. A recoverable
// failure returns (false, nil) so the account screen loops.
func (a *App) login() (bool, error) {
	username, err := a.term.Prompt("Username:")
	if err != nil {
		return false, err
	}
	password, err := a.term.Password("Password:")
	if err != nil {
		return false, err
	}

	p, err := a.auth.Login(username, password)
	if err != nil {
		return false, a.recover(err)
	}

	a.player = p
	a.logger.Info("player logged in", zap.String("username", username))
	a.term.Statusf(tui.BrightGreen, "Welcome back, %s.", username)
	return true, nil
}

// register prompts for a new username and a double-entered password,
// then creates and saves the profile.
func (a *App) register() (bool, error) {
	username, err := a.term.Prompt("Choose a username:")
	if err != nil {
		return false, err
	}
	if !auth.ValidUsername(username) {
		a.term.Statusf(tui.BrightRed, "Usernames are 1-32 letters, digits, '-' or '_'.")
		return false, nil
	}

	password, err := a.term.Password("Choose a password:")
	if err != nil {
		return false, err
	}
	confirm, err := a.term.Password("Repeat the password:")
	if err != nil {
		return false, err
	}
	if password != confirm {
		a.term.Statusf(tui.BrightRed, "Passwords do not match.")
		return false, nil
	}

	p, err := a.auth.Register(username, password)
	if err != nil {
		return false, a.recover(err)
	}

	a.player = p
	a.logger.Info("player registered", zap.String("username", username))
	a.term.Statusf(tui.BrightGreen, "Welcome to Albion, %s.", username)
	return true, nil
}
