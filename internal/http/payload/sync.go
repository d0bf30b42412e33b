package payload

import (
	"github.com/jellydator/validation"
)

const defaultSyncLimit = 10

type SyncRequest struct {
	Limit int `json:"limit"`
}

func (s SyncRequest) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Limit, validation.Min(0), validation.Max(100)),
	)
}

// EffectiveLimit returns the requested page size or the default when the
// body omitted it.
func (s SyncRequest) EffectiveLimit() int {
	if s.Limit <= 0 {
		return defaultSyncLimit
	}
	return s.Limit
}
