// Package scope renders recorded GPIO edges as a logic-analyzer style PNG,
// one lane per channel.
package scope

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/fogleman/gg"

	"github.com/gogazub/edf-demo/internal/gpio"
)

var ErrNoChannels = errors.New("scope: no channels")

// Channel names one traced pin.
type Channel struct {
	Label string
	Port  gpio.Port
	Pin   gpio.Pin
}

type Options struct {
	Width int
	// LaneHeight is the height of one channel lane in pixels.
	LaneHeight int
	// From and To bound the time window. Zero values fit the window to the
	// recorded edges.
	From, To time.Time
}

const (
	defaultWidth      = 1024
	defaultLaneHeight = 48
	labelWidth        = 140
	margin            = 8
)

// Render draws edges for channels and encodes the result as PNG to w.
func Render(w io.Writer, edges []gpio.Edge, channels []Channel, opts Options) error {
	if len(channels) == 0 {
		return ErrNoChannels
	}
	if opts.Width <= labelWidth+2*margin {
		opts.Width = defaultWidth
	}
	if opts.LaneHeight <= 2*margin {
		opts.LaneHeight = defaultLaneHeight
	}
	from, to := window(edges, opts.From, opts.To)

	dc := gg.NewContext(opts.Width, opts.LaneHeight*len(channels))
	dc.SetRGB(0.05, 0.05, 0.08)
	dc.Clear()

	plotL := float64(labelWidth)
	plotR := float64(opts.Width - margin)
	span := to.Sub(from)
	xOf := func(t time.Time) float64 {
		if span <= 0 {
			return plotL
		}
		return plotL + float64(t.Sub(from))/float64(span)*(plotR-plotL)
	}

	for i, ch := range channels {
		top := float64(i*opts.LaneHeight + margin)
		bottom := float64((i+1)*opts.LaneHeight - margin)
		yOf := func(l gpio.Level) float64 {
			if l == gpio.High {
				return top
			}
			return bottom
		}

		dc.SetRGB(0.6, 0.6, 0.6)
		dc.DrawString(ch.Label, margin, (top+bottom)/2+4)

		level := levelAt(edges, ch, from)
		dc.SetRGB(0.2, 0.9, 0.3)
		dc.SetLineWidth(1.5)
		dc.MoveTo(plotL, yOf(level))
		for _, e := range edges {
			if e.Port != ch.Port || e.Pin != ch.Pin || !e.At.After(from) || e.At.After(to) {
				continue
			}
			x := xOf(e.At)
			dc.LineTo(x, yOf(level))
			dc.LineTo(x, yOf(e.Level))
			level = e.Level
		}
		dc.LineTo(plotR, yOf(level))
		dc.Stroke()
	}

	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("scope: encode png: %w", err)
	}
	return nil
}

func window(edges []gpio.Edge, from, to time.Time) (time.Time, time.Time) {
	if len(edges) > 0 {
		if from.IsZero() {
			from = edges[0].At
		}
		if to.IsZero() {
			to = edges[len(edges)-1].At
		}
	}
	if to.Before(from) {
		to = from
	}
	return from, to
}

// levelAt is the channel level at t, low if nothing was recorded before t.
func levelAt(edges []gpio.Edge, ch Channel, t time.Time) gpio.Level {
	level := gpio.Low
	for _, e := range edges {
		if e.At.After(t) {
			break
		}
		if e.Port == ch.Port && e.Pin == ch.Pin {
			level = e.Level
		}
	}
	return level
}
