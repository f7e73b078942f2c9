package components

import (
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
)

const (
	pulseEmpty = "◯"
	pulseFull  = "◉"

	// Spring physics parameters
	pulseAngularFrequency = 8.0
	pulseDampingRatio     = 0.7

	// pulseHoldTicks keeps the indicator lit after the last trigger
	pulseHoldTicks = 3

	pulseFrameThreshold = 0.3
	pulseRestThreshold  = 0.01
)

// Pulse is a spring-driven activity indicator lit by Trigger and fading when left alone
type Pulse struct {
	spring   harmonica.Spring
	position float64
	velocity float64
	target   float64
	hold     int
}

// NewPulse creates an idle pulse animated at the UI tick rate
func NewPulse() *Pulse {
	return &Pulse{
		spring: harmonica.NewSpring(harmonica.FPS(UITicksPerSecond), pulseAngularFrequency, pulseDampingRatio),
	}
}

// Trigger lights the indicator
func (p *Pulse) Trigger() {
	p.target = 1
	p.hold = pulseHoldTicks
}

// Reset puts the indicator back at rest immediately
func (p *Pulse) Reset() {
	p.position = 0
	p.velocity = 0
	p.target = 0
	p.hold = 0
}

// Update advances the animation by one tick
func (p *Pulse) Update() {
	if p.hold > 0 {
		p.hold--
	} else {
		p.target = 0
	}

	p.position, p.velocity = p.spring.Update(p.position, p.velocity, p.target)
}

// Active reports whether the indicator is lit or still fading
func (p *Pulse) Active() bool {
	return p.target > 0 || p.position > pulseRestThreshold
}

// Frame returns the current glyph
func (p *Pulse) Frame() string {
	if p.position < pulseFrameThreshold {
		return pulseEmpty
	}

	return pulseFull
}

// Render returns the styled frame
func (p *Pulse) Render(style lipgloss.Style) string {
	return style.Render(p.Frame())
}
