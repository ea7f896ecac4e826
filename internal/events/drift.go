package events

import "github.com/deepfield/genesis/internal/probe"

// applyDrift nudges a probe's personality after an emission. Every type
// bumps one primary trait scaled by the probe's own drift rate; Encounter
// and Wonder carry additional direct nudges per the source behavior.
func applyDrift(p *probe.Probe, t Type) {
	rate := p.Personality.DriftRate

	switch t {
	case Discovery:
		p.Personality.Curiosity += 0.08 * rate
	case Anomaly:
		p.Personality.Curiosity += 0.05 * rate
	case Hazard, Crisis:
		p.Personality.ExistentialAngst += 0.06 * rate
	case Wonder:
		p.Personality.NostalgiaForEarth += 0.10 * rate
		p.Personality.NostalgiaForEarth += 0.03
		p.Personality.ExistentialAngst += 0.02
	case Encounter:
		p.Personality.Curiosity += 0.08 * rate
		p.Personality.Empathy += 0.05 * rate
		p.Personality.Curiosity += 0.05 * rate
	}

	p.Personality.Clamp()
}
