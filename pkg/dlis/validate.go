package dlis

import (
	"fmt"
	"time"

	"github.com/samcharles93/dlis/pkg/dlis/eflr"
)

// validateGraph runs the pre-write checks on the object graph. It is
// called before any byte reaches the sink; every error it returns is
// fatal to the write.
func (lf *LogicalFile) validateGraph() error {
	if len(lf.origins) == 0 {
		return configErr("a logical file requires at least one origin")
	}

	if err := lf.validateChannels(); err != nil {
		return err
	}
	if err := lf.validateFrames(); err != nil {
		return err
	}
	if err := lf.validateZones(); err != nil {
		return err
	}
	if err := lf.validateComputations(); err != nil {
		return err
	}
	return nil
}

func (lf *LogicalFile) validateChannels() error {
	owners := make(map[*eflr.Channel]*eflr.Frame)
	for _, frame := range lf.frameOrder {
		for _, ch := range frame.Channels() {
			if prev, taken := owners[ch]; taken {
				return configErr("channel %q is referenced by frames %q and %q; a channel belongs to at most one frame",
					ch.Name(), prev.Name(), frame.Name())
			}
			owners[ch] = frame
		}
	}
	for _, ch := range lf.channelOrder {
		if _, used := owners[ch]; !used {
			if lf.highCompat {
				return &ValueError{Label: "CHANNELS", Kind: eflr.ErrOutOfRange,
					Cause: fmt.Sprintf("channel %q is not referenced by any frame", ch.Name())}
			}
			lf.log.Warn("channel is not referenced by any frame", "channel", ch.Name())
		}
		dim := ch.Dimension()
		if len(dim) != 1 {
			return &ValueError{Label: "DIMENSION", Kind: eflr.ErrInvalidCount,
				Cause: fmt.Sprintf("channel %q declares %d dimension entries; only scalar and single-dimension array channels are supported",
					ch.Name(), len(dim))}
		}
		if lim := ch.ElementLimit(); lim != nil {
			if len(lim) != len(dim) {
				return &ValueError{Label: "ELEMENT-LIMIT", Kind: eflr.ErrInvalidCount,
					Cause: fmt.Sprintf("channel %q element limit has %d entries; dimension has %d", ch.Name(), len(lim), len(dim))}
			}
			for i := range lim {
				if lim[i] != dim[i] {
					return &ValueError{Label: "ELEMENT-LIMIT", Kind: eflr.ErrOutOfRange,
						Cause: fmt.Sprintf("channel %q element limit %v disagrees with dimension %v", ch.Name(), lim, dim)}
				}
			}
		}
	}
	return nil
}

func (lf *LogicalFile) validateFrames() error {
	for _, frame := range lf.frameOrder {
		if len(frame.Channels()) == 0 {
			return configErr("frame %q has no channels", frame.Name())
		}
		if index := frame.IndexChannel(); index != nil && index.Width() != 1 {
			return &ValueError{Label: "INDEX-TYPE", Kind: eflr.ErrInvalidCount,
				Cause: fmt.Sprintf("index channel %q of frame %q must be scalar; it declares %d samples per row",
					index.Name(), frame.Name(), index.Width())}
		}
	}
	return nil
}

func (lf *LogicalFile) validateZones() error {
	for _, set := range lf.sets[eflr.SetTypeZone] {
		for _, it := range set.Items() {
			zone := &eflr.Zone{Item: it}
			domain := zone.Domain()
			if domain != "" && !eflr.KnownZoneDomain(domain) {
				return &ValueError{Label: "DOMAIN", Kind: eflr.ErrOutOfRange,
					Cause: fmt.Sprintf("zone %q domain %q is not one of the standard domains", it.Name(), domain)}
			}
			if err := lf.validateZoneBounds(zone, domain); err != nil {
				return err
			}
		}
	}
	return nil
}

func (lf *LogicalFile) validateZoneBounds(zone *eflr.Zone, domain string) error {
	minAttr, maxAttr := zone.Attr("MINIMUM"), zone.Attr("MAXIMUM")
	minTime, minIsTime := minAttr.FirstTime()
	maxTime, maxIsTime := maxAttr.FirstTime()

	if (minIsTime || maxIsTime) && domain != "" && domain != eflr.ZoneTime {
		return &ValueError{Label: "DOMAIN", Kind: eflr.ErrTypeMismatch,
			Cause: fmt.Sprintf("zone %q carries time bounds but its domain is %s", zone.Name(), domain)}
	}
	if minIsTime != maxIsTime && minAttr.HasValue() && maxAttr.HasValue() {
		return &ValueError{Label: "MINIMUM", Kind: eflr.ErrTypeMismatch,
			Cause: fmt.Sprintf("zone %q mixes time and numeric bounds", zone.Name())}
	}
	switch {
	case minIsTime && maxIsTime:
		if maxTime.Before(minTime) {
			return &ValueError{Label: "MAXIMUM", Kind: eflr.ErrOutOfRange,
				Cause: fmt.Sprintf("zone %q maximum %s precedes minimum %s",
					zone.Name(), maxTime.Format(time.RFC3339), minTime.Format(time.RFC3339))}
		}
	case minAttr.HasValue() && maxAttr.HasValue():
		lo, hi := minAttr.Floats(), maxAttr.Floats()
		if len(lo) == 1 && len(hi) == 1 && hi[0] < lo[0] {
			return &ValueError{Label: "MAXIMUM", Kind: eflr.ErrOutOfRange,
				Cause: fmt.Sprintf("zone %q maximum %v is below minimum %v", zone.Name(), hi[0], lo[0])}
		}
	}
	return nil
}

func (lf *LogicalFile) validateComputations() error {
	for _, set := range lf.sets[eflr.SetTypeComputation] {
		for _, it := range set.Items() {
			values := it.Attr("VALUES")
			zones := it.Attr("ZONES")
			if values.HasValue() && zones.HasValue() && values.Count() != zones.Count() {
				return &ValueError{Label: "VALUES", Kind: eflr.ErrInvalidCount,
					Cause: fmt.Sprintf("computation %q has %d values for %d zones", it.Name(), values.Count(), zones.Count())}
			}
		}
	}
	return nil
}
