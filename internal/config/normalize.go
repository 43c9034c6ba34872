// internal/config/normalize.go
package config

const (
	defaultStormLimit = 16
	defaultTimeoutMs  = 1000
	defaultIntervalMs = 100
	deviceNameMax     = 16
)

// Normalize applies defaults after validation.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}
	s := &cfg.Sim

	if s.StormLimit <= 0 {
		s.StormLimit = defaultStormLimit
	}

	for ri := range s.Routers {
		r := &s.Routers[ri]
		if r.Enable == nil {
			on := true
			r.Enable = &on
		}
	}

	for ei := range s.Events {
		if s.Events[ei].Repeat == 0 {
			s.Events[ei].Repeat = 1
		}
	}

	if s.Source.Kind == "" {
		s.Source.Kind = SourceScript
	}
	if m := s.Source.Modbus; m != nil {
		if m.TimeoutMs <= 0 {
			m.TimeoutMs = defaultTimeoutMs
		}
		if m.IntervalMs <= 0 {
			m.IntervalMs = defaultIntervalMs
		}
	}

	if st := s.Status; st != nil {
		if st.TimeoutMs <= 0 {
			st.TimeoutMs = defaultTimeoutMs
		}
		// ASCII already validated
		if len(st.DeviceName) > deviceNameMax {
			st.DeviceName = st.DeviceName[:deviceNameMax]
		}
	}
}
