package session

import (
	"github.com/automoto/hopdrop/storage"
	"github.com/automoto/hopdrop/systems"
)

// recorder logs gameplay events and stores run outcomes.
type recorder struct {
	session *Session
}

func (r *recorder) ScoreIncremented(e systems.ScoreIncrement) {
	r.session.logger.Debug("score", "reason", e.Reason, "amount", e.Amount, "total", e.Total)
}

func (r *recorder) CameraShook(e systems.CameraShake) {
	r.session.logger.Debug("camera shake", "duration", e.Duration, "magnitude", e.Magnitude)
}

func (r *recorder) PlayerDied(e systems.PlayerDied) {
	r.session.logger.Info("player died", "score", e.Score)
	r.save(e.Score, storage.OutcomeDied)
}

func (r *recorder) EnemyDied(systems.EnemyDied) {
	r.session.logger.Debug("enemy died")
}

func (r *recorder) LevelFinished(e systems.LevelFinished) {
	r.session.logger.Info("level finished", "level", e.Level, "score", e.Score)
	r.save(e.Score, storage.OutcomeFinished)
}

func (r *recorder) save(score int, outcome storage.Outcome) {
	if r.session.opts.Recorder == nil {
		return
	}
	level := r.session.Level().Name
	if _, err := r.session.opts.Recorder.SaveScore(level, score, outcome); err != nil {
		r.session.logger.Warn("could not record score", "level", level, "err", err)
	}
}
