// Package guild implements guild membership purchases and the single-tick
// work loop: each tick consumes the guild's input, produces its output,
// and grants experience in the guild's skill.
package guild

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/albion-rpg/albion/internal/game/dice"
	"github.com/albion-rpg/albion/internal/game/gameerr"
	"github.com/albion-rpg/albion/internal/game/item"
	"github.com/albion-rpg/albion/internal/game/player"
)

// recipe is one guild's consume/produce rule. Thieving is the odd one out:
// it drains and produces gold instead of items, handled separately in Work.
type recipe struct {
	consumes item.ConsumableKind // "" = nothing consumed
	produces item.ConsumableKind // "" = no item output
}

var recipes = map[player.GuildKind]recipe{
	player.GuildFishing:     {produces: item.Fish},
	player.GuildCooking:     {consumes: item.Fish, produces: item.Food},
	player.GuildWoodcutting: {produces: item.Wood},
	player.GuildMining:      {produces: item.Ore},
	player.GuildSmithing:    {consumes: item.Ore, produces: item.Ingots},
	player.GuildThieving:    {},
}

// WorkResult reports what one work tick produced and consumed, for the
// menu layer to narrate.
type WorkResult struct {
	// Produced is the item produced, or "" for thieving.
	Produced item.ConsumableKind
	// GoldGained is the gold produced (thieving only).
	GoldGained int
	// GoldLost is the wallet drain paid (thieving only).
	GoldLost int
	// XPGained is the experience credited to the guild's skill.
	XPGained int
}

// Service runs guild membership and work operations.
type Service struct {
	src    dice.Source
	logger *zap.Logger
}

// New creates a guild Service.
//
// Precondition: src and logger must be non-nil.
func New(src dice.Source, logger *zap.Logger) *Service {
	return &Service{src: src, logger: logger}
}

// Join purchases membership in the guild. When useWallet is false
// (developer mode) membership is granted without payment.
//
// Postcondition: on error, p is unchanged; otherwise p.Guilds.Joined(k).
func (s *Service) Join(p *player.Player, k player.GuildKind, useWallet bool) error {
	if p.Guilds.Joined(k) {
		return gameerr.ErrAlreadyOwned
	}
	if useWallet {
		if err := p.Bank.Spend(k.Price()); err != nil {
			return fmt.Errorf("joining %s: %w", k.DisplayName(), err)
		}
	}
	p.Guilds.Join(k)
	s.logger.Info("joined guild",
		zap.String("guild", string(k)),
		zap.Int("price", k.Price()),
	)
	return nil
}

// Work runs one tick of the guild's work loop: membership gate, input
// consumption, output production, and a 1-4 experience gain. Thieving
// drains 1-3 gold (clamped at the wallet floor) and produces 0-2 gold.
//
// Postcondition: on error, p is unchanged.
func (s *Service) Work(p *player.Player, k player.GuildKind) (WorkResult, error) {
	if !k.Valid() {
		return WorkResult{}, gameerr.InvalidInput(string(k))
	}
	if !p.Guilds.Joined(k) {
		return WorkResult{}, gameerr.ErrMembershipRequired
	}

	var result WorkResult
	if k == player.GuildThieving {
		result.GoldLost = p.Bank.Drain(dice.Between(s.src, 1, 3))
		result.GoldGained = dice.Between(s.src, 0, 2)
		_ = p.Bank.Earn(result.GoldGained)
	} else {
		r := recipes[k]
		if r.consumes != "" {
			if err := p.Items.Remove(r.consumes, 1); err != nil {
				return WorkResult{}, fmt.Errorf("working %s: %w", k.DisplayName(), err)
			}
		}
		_ = p.Items.Add(r.produces, 1)
		result.Produced = r.produces
	}

	result.XPGained = p.XP.Increment(k.Skill(), s.src)
	s.logger.Debug("worked guild",
		zap.String("guild", string(k)),
		zap.Int("xp_gained", result.XPGained),
	)
	return result, nil
}
