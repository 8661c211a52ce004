package check

import (
	"math"

	"github.com/danielpatrickdp/thermobench/go-engine/internal/provider"
)

// #region c4
// SpeedOfSound runs C4: at the fixed reference pressure cfg.PRef, the
// surrogate's a^2 must agree with the reference's within a median relative
// error of cfg.TolSound (boundary inclusive) over the sampled temperatures.
func SpeedOfSound(sur provider.Provider, ref provider.Reference, temps []float64, cfg Config) Result {
	if !sur.Capabilities().SpeedOfSound {
		return skipped(C4SpeedOfSound, "surrogate does not expose speed_of_sound")
	}
	if !ref.Capabilities().SpeedOfSound {
		return skipped(C4SpeedOfSound, "reference does not expose speed_of_sound")
	}
	if len(temps) == 0 {
		return skipped(C4SpeedOfSound, "no temperatures sampled")
	}

	diag := &SoundDiag{PRef: cfg.PRef}
	for _, T := range temps {
		aRef, err := ref.SpeedOfSound(T, cfg.PRef)
		if err != nil {
			res := failed(C4SpeedOfSound, err.Error())
			res.Sound = diag
			return res
		}
		aSur, err := sur.SpeedOfSound(T, cfg.PRef)
		if err != nil {
			res := failed(C4SpeedOfSound, err.Error())
			res.Sound = diag
			return res
		}

		a2Ref := aRef * aRef
		a2Sur := aSur * aSur
		denom := a2Ref
		if denom < 1e-30 {
			denom = 1e-30
		}

		diag.Temps = append(diag.Temps, T)
		diag.A2Ref = append(diag.A2Ref, a2Ref)
		diag.A2Sur = append(diag.A2Sur, a2Sur)
		diag.RelErrors = append(diag.RelErrors, math.Abs(a2Sur-a2Ref)/denom)
	}

	med := median(diag.RelErrors)
	passed := med <= cfg.TolSound
	res := evaluated(C4SpeedOfSound, passed, false)
	res.Metric = &med
	res.Sound = diag
	return res
}

// #endregion c4
