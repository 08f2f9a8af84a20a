package gen_ids

import (
	"fmt"
	"strings"
	"time"

	"bomapay-gateway/utils/helpers"
)

// Generator hands out merchant order numbers of the form PREFIX + YYYYMMDD + "-" + RUN + SEQ.
// SEQ restarts every day; RUN is random per generator so two processes do not collide on the
// gateway, which rejects duplicated order numbers.
type Generator struct {
	Prefix string
	MaxLen int

	run      string
	latestId int64
	date     string
	requests chan chan string
	done     chan struct{}
	now      func() time.Time
}

func NewGenerator(prefix string, maxLen int) *Generator {
	g := &Generator{
		Prefix:   prefix,
		MaxLen:   maxLen,
		run:      strings.ToUpper(strings.ReplaceAll(helpers.GetUUId(), "-", "")[:4]),
		requests: make(chan chan string, 1000),
		done:     make(chan struct{}),
		now:      time.Now,
	}
	go g.serve()
	return g
}

func (g *Generator) serve() {
	for {
		select {
		case v := <-g.requests:
			today := g.now().Format("20060102")
			if g.date != today {
				g.date = today
				g.latestId = 0
			}
			g.latestId++
			v <- g.format(today, g.latestId)
		case <-g.done:
			return
		}
	}
}

func (g *Generator) format(date string, id int64) string {
	seq := fmt.Sprint(id)
	if g.MaxLen > len(seq) {
		seq = strings.Repeat("0", g.MaxLen-len(seq)) + seq
	}
	return g.Prefix + date + "-" + g.run + seq
}

// GetId returns the next order number.
func (g *Generator) GetId() string {
	id := make(chan string, 1)
	g.requests <- id
	return <-id
}

// Stop ends the generator goroutine. GetId must not be called afterwards.
func (g *Generator) Stop() {
	close(g.done)
}
