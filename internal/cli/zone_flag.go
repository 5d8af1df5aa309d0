package cli

import (
	"github.com/alexanderramin/tabgroups/internal/domain"
	"github.com/spf13/pflag"
)

// zoneValue adapts domain.DropZone to a pflag.Value so `--zone` is
// validated at parse time.
type zoneValue struct {
	zone *domain.DropZone
}

var _ pflag.Value = zoneValue{}

func newZoneValue(z *domain.DropZone) zoneValue {
	return zoneValue{zone: z}
}

func (v zoneValue) String() string {
	if v.zone == nil || *v.zone == domain.ZoneNone {
		return ""
	}
	return v.zone.String()
}

func (v zoneValue) Set(s string) error {
	z, err := domain.ParseDropZone(s)
	if err != nil {
		return err
	}
	*v.zone = z
	return nil
}

func (zoneValue) Type() string { return "zone" }
