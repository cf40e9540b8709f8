package collector

import "time"

// Pacer spaces outbound requests so the run stays inside the remote
// service's rate limits. The sleep function is injectable so tests can run
// the full loop without real delays.
type Pacer struct {
	paginationDelay time.Duration
	detailDelay     time.Duration
	searchDelay     time.Duration
	sleep           func(time.Duration)
}

// NewPacer creates a pacing policy. A nil sleep function uses time.Sleep.
func NewPacer(pagination, detail, search time.Duration, sleep func(time.Duration)) *Pacer {
	if sleep == nil {
		sleep = time.Sleep
	}
	return &Pacer{
		paginationDelay: pagination,
		detailDelay:     detail,
		searchDelay:     search,
		sleep:           sleep,
	}
}

// BeforeNextPage waits out the token warm-up the service requires before a
// next-page token becomes valid
func (p *Pacer) BeforeNextPage() {
	p.pause(p.paginationDelay)
}

// BeforeDetail waits between successive detail fetches
func (p *Pacer) BeforeDetail() {
	p.pause(p.detailDelay)
}

// BetweenTasks waits between successive search tasks
func (p *Pacer) BetweenTasks() {
	p.pause(p.searchDelay)
}

func (p *Pacer) pause(d time.Duration) {
	if d > 0 {
		p.sleep(d)
	}
}
