// Package menu drives the interactive game: the account screen, the
// town menu and its sub-screens, and the in-battle interaction surface.
// Navigation is an explicit screen loop, never recursion, so a long
// session cannot grow the stack.
package menu

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/albion-rpg/albion/internal/auth"
	"github.com/albion-rpg/albion/internal/config"
	"github.com/albion-rpg/albion/internal/game/combat"
	"github.com/albion-rpg/albion/internal/game/dice"
	"github.com/albion-rpg/albion/internal/game/gameerr"
	"github.com/albion-rpg/albion/internal/game/guild"
	"github.com/albion-rpg/albion/internal/game/player"
	"github.com/albion-rpg/albion/internal/game/shop"
	"github.com/albion-rpg/albion/internal/storage/profile"
	"github.com/albion-rpg/albion/internal/tui"
)

// developerCode unlocks the developer menu for a profile that has not
// latched the flag yet.
const developerCode = "3.141592"

// screen is one node of the navigation loop.
type screen int

const (
	screenAccounts screen = iota
	screenMain
	screenQuit
)

// App wires the game services to a terminal and runs the screen loop.
type App struct {
	term   *tui.Terminal
	store  *profile.Store
	auth   *auth.Service
	shop   *shop.Shop
	guilds *guild.Service
	combat *combat.Engine
	cfg    config.Config
	src    dice.Source
	logger *zap.Logger

	// player is non-nil between login and logout.
	player *player.Player
}

// New creates the App and its combat engine.
//
// Precondition: all arguments must be non-nil.
func New(
	term *tui.Terminal,
	store *profile.Store,
	authSvc *auth.Service,
	src dice.Source,
	cfg config.Config,
	logger *zap.Logger,
) *App {
	a := &App{
		term:   term,
		store:  store,
		auth:   authSvc,
		shop:   shop.New(logger),
		guilds: guild.New(src, logger),
		cfg:    cfg,
		src:    src,
		logger: logger,
	}
	a.combat = combat.NewEngine(src, &battleUI{app: a}, store, logger)
	return a
}

// Run executes the screen loop until the user exits or input ends.
//
// Postcondition: a logged-in player has been saved before return, even
// on EOF.
func (a *App) Run() error {
	sc := screenAccounts
	for {
		var (
			next screen
			err  error
		)
		switch sc {
		case screenAccounts:
			next, err = a.accountsScreen()
		case screenMain:
			next, err = a.mainScreen()
		case screenQuit:
			return a.shutdown()
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				// input closed; treat as an exit request
				return a.shutdown()
			}
			return err
		}
		sc = next
	}
}

// Shutdown saves the active player, if any. It is safe to call from a
// signal handler while Run is blocked on input.
func (a *App) Shutdown() error {
	return a.shutdown()
}

func (a *App) shutdown() error {
	if a.player == nil {
		return nil
	}
	username := a.player.Settings.Username
	if err := a.store.Save(a.player); err != nil {
		return fmt.Errorf("final save for %s: %w", username, err)
	}
	a.logger.Info("session ended", zap.String("username", username))
	a.player = nil
	return nil
}

// save persists the active player and reports the result on screen.
func (a *App) save() error {
	if err := a.store.Save(a.player); err != nil {
		return err
	}
	a.term.Statusf(tui.BrightGreen, "Game saved.")
	return nil
}

// recover reports a recoverable error on screen and swallows it; any
// other error is returned to abort the session.
func (a *App) recover(err error) error {
	if err == nil {
		return nil
	}
	if gameerr.IsRecoverable(err) {
		a.term.Statusf(tui.BrightRed, "%v", err)
		return nil
	}
	return err
}
