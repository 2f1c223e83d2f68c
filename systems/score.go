package systems

import (
	"github.com/automoto/hopdrop/components"
	cfg "github.com/automoto/hopdrop/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// AddScore awards points to a player and publishes a score_increment event.
func AddScore(ecs *ecs.ECS, player *donburi.Entry, amount int, reason string) {
	if !isActive(player) || !player.HasComponent(components.Player) {
		return
	}
	data := components.Player.Get(player)
	data.Score += amount

	if stats := runStatsOf(ecs.World); stats != nil && data.Score > stats.BestScore {
		stats.BestScore = data.Score
	}

	ScoreIncrementEvent.Publish(ecs.World, ScoreIncrement{
		Player: player,
		Amount: amount,
		Total:  data.Score,
		Reason: reason,
	})
}

// Stomp resolves a player landing on an enemy: the player scores and the
// enemy dies. Both motors call it, so it only acts while both are alive and
// reports whether it did.
func Stomp(ecs *ecs.ECS, player, enemy *donburi.Entry) bool {
	if !isActive(player) || !isActive(enemy) {
		return false
	}
	if !player.HasComponent(components.Player) || !enemy.HasComponent(components.Enemy) {
		return false
	}
	if components.Actor.Get(enemy).Dying || components.Actor.Get(player).Dying {
		return false
	}

	AddScore(ecs, player, cfg.Player.StompScore, "stomp")
	StartDeath(ecs, enemy)
	return true
}
