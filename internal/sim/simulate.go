// Package sim computes the day-by-day premium purchase and coverage series.
package sim

import "covsim/internal/model"

// purchase is one unexpired entry in the active-purchase queue. Purchases
// happen in day order, so insertion order equals day order and the queue
// stays sorted by day without any extra work.
type purchase struct {
	day    int
	amount float64
}

// Simulate produces the daily series for cfg: one point per day from day 0
// through cfg.TotalDays() inclusive. It is a pure function: identical
// configs yield identical output. It assumes cfg is inside the documented
// parameter ranges (callers clamp or validate at the boundary).
//
// Each day: the recurring premium is purchased on every positive multiple
// of CadenceDays, the bootstrap amount is added on day 0 only, purchases
// older than PolicyDays fall out of the active set, and coverage is the
// active premium total divided by CostPct/100.
func Simulate(cfg model.Config) []model.DailyPoint {
	totalDays := cfg.TotalDays()
	points := make([]model.DailyPoint, 0, totalDays+1)

	// FIFO queue of active purchases. head indexes the oldest live entry;
	// expired entries are left behind rather than resliced away.
	var queue []purchase
	head := 0

	var cumulative, active float64

	for day := 0; day <= totalDays; day++ {
		var amount float64
		if day > 0 && day%cfg.CadenceDays == 0 {
			amount = cfg.Premium
		}
		if day == 0 {
			amount += cfg.Bootstrap
		}

		if amount > 0 {
			cumulative += amount
			active += amount
			queue = append(queue, purchase{day: day, amount: amount})
		}

		// An entry survives through age PolicyDays-1 and expires exactly
		// when its age reaches PolicyDays.
		for head < len(queue) && day-queue[head].day >= cfg.PolicyDays {
			active -= queue[head].amount
			head++
		}

		var coverage float64
		if cfg.CostPct > 0 {
			coverage = active / (cfg.CostPct / 100)
		}

		points = append(points, model.DailyPoint{
			Day:        day,
			Purchase:   amount,
			Cumulative: cumulative,
			Coverage:   coverage,
		})
	}

	return points
}
